package project

import (
	"context"
	"time"

	"github.com/atelierhq/atelier/internal/domain/user"
)

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateRequest defines a partial project update. Nil fields are left
// unchanged; the server responds with the full updated project. A nil
// Deadline means "unchanged", so clearing it goes through ClearDeadline.
type UpdateRequest struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	IsArchived    *bool      `json:"is_archived,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ClearDeadline bool       `json:"clear_deadline,omitempty"`
}

// API is the project surface of the collaborator service. Participant
// management is owner-only on the server side.
type API interface {
	List(ctx context.Context) ([]Project, error)
	ListArchived(ctx context.Context) ([]Project, error)
	ListShared(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, req CreateRequest) (*Project, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Project, error)
	Delete(ctx context.Context, id string) error
	Leave(ctx context.Context, id string) error
	Participants(ctx context.Context, id string) ([]user.User, error)
	RemoveParticipant(ctx context.Context, projectID, userID string) error
}
