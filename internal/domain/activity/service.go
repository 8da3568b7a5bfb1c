package activity

import (
	"context"
	"fmt"
	"log/slog"
)

// API is the read-only activity surface of the collaborator service.
type API interface {
	List(ctx context.Context, projectID string) ([]Entry, error)
}

// Service fetches activity feeds.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List fetches the project's activity feed, newest first.
func (s *Service) List(ctx context.Context, projectID string) ([]Entry, error) {
	entries, err := s.api.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return entries, nil
}
