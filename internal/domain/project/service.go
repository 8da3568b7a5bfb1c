package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atelierhq/atelier/internal/domain/user"
)

// Service handles project operations against the collaborator API.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// Lists holds the three server-side project snapshots fetched on load.
type Lists struct {
	OwnedActive   []Project
	OwnedArchived []Project
	Shared        []Project
}

// LoadAll fetches the owned, archived and shared project lists.
func (s *Service) LoadAll(ctx context.Context) (Lists, error) {
	owned, err := s.api.List(ctx)
	if err != nil {
		return Lists{}, fmt.Errorf("listing projects: %w", err)
	}
	archived, err := s.api.ListArchived(ctx)
	if err != nil {
		return Lists{}, fmt.Errorf("listing archived projects: %w", err)
	}
	shared, err := s.api.ListShared(ctx)
	if err != nil {
		return Lists{}, fmt.Errorf("listing shared projects: %w", err)
	}
	return Lists{OwnedActive: owned, OwnedArchived: archived, Shared: shared}, nil
}

// Create creates a new project. The name must be non-blank; it is validated
// before any request is sent.
func (s *Service) Create(ctx context.Context, name, description string, deadline *time.Time) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	proj, err := s.api.Create(ctx, CreateRequest{
		Name:        name,
		Description: strings.TrimSpace(description),
		Deadline:    deadline,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return proj, nil
}

// Rename changes the project name and returns the updated snapshot.
func (s *Service) Rename(ctx context.Context, id, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	proj, err := s.api.Update(ctx, id, UpdateRequest{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("renaming project: %w", err)
	}
	return proj, nil
}

// SetArchived toggles the archive flag and returns the updated snapshot.
func (s *Service) SetArchived(ctx context.Context, id string, archived bool) (*Project, error) {
	proj, err := s.api.Update(ctx, id, UpdateRequest{IsArchived: &archived})
	if err != nil {
		return nil, fmt.Errorf("updating archive state: %w", err)
	}
	return proj, nil
}

// SetDeadline updates the project deadline and returns the updated
// snapshot. A nil deadline clears it.
func (s *Service) SetDeadline(ctx context.Context, id string, deadline *time.Time) (*Project, error) {
	req := UpdateRequest{Deadline: deadline}
	if deadline == nil {
		req.ClearDeadline = true
	}
	proj, err := s.api.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("updating deadline: %w", err)
	}
	return proj, nil
}

// Delete destroys the project and everything under it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// Leave relinquishes collaborator access to a shared project.
func (s *Service) Leave(ctx context.Context, id string) error {
	if err := s.api.Leave(ctx, id); err != nil {
		return fmt.Errorf("leaving project: %w", err)
	}
	return nil
}

// Participants lists the project's collaborators. The owner is not a
// participant record and never appears here.
func (s *Service) Participants(ctx context.Context, id string) ([]user.User, error) {
	participants, err := s.api.Participants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	return participants, nil
}

// RemoveParticipant revokes a collaborator's access to an owned project.
func (s *Service) RemoveParticipant(ctx context.Context, projectID, userID string) error {
	if err := s.api.RemoveParticipant(ctx, projectID, userID); err != nil {
		return fmt.Errorf("removing participant: %w", err)
	}
	return nil
}
