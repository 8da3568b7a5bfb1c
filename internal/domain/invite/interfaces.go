package invite

import "context"

// CreateRequest defines invite creation inputs.
type CreateRequest struct {
	InvitedEmail string `json:"invited_email"`
}

// API is the invite surface of the collaborator service.
type API interface {
	ListPending(ctx context.Context) ([]Invite, error)
	Create(ctx context.Context, projectID string, req CreateRequest) (*Invite, error)
	Accept(ctx context.Context, id string) (*Invite, error)
	Decline(ctx context.Context, id string) (*Invite, error)
}
