package invite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service handles invite operations against the collaborator API.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new invite service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Pending fetches the invites awaiting a response from the current user.
func (s *Service) Pending(ctx context.Context) ([]Invite, error) {
	invites, err := s.api.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending invites: %w", err)
	}
	return invites, nil
}

// Send invites a user to the project by email. The server rejects
// self-invites and duplicate pending invites for the same address.
func (s *Service) Send(ctx context.Context, projectID, email string) (*Invite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	inv, err := s.api.Create(ctx, projectID, CreateRequest{InvitedEmail: email})
	if err != nil {
		return nil, fmt.Errorf("sending invite: %w", err)
	}
	return inv, nil
}

// Accept resolves the invite as accepted. Accepting grants collaborator
// access, so the caller must refetch its project lists afterwards: the
// invite record alone cannot populate shared-with-me.
func (s *Service) Accept(ctx context.Context, id string) (*Invite, error) {
	inv, err := s.api.Accept(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("accepting invite: %w", err)
	}
	return inv, nil
}

// Decline resolves the invite as declined.
func (s *Service) Decline(ctx context.Context, id string) (*Invite, error) {
	inv, err := s.api.Decline(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("declining invite: %w", err)
	}
	return inv, nil
}
