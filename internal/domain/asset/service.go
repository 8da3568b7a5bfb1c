package asset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service handles asset operations against the collaborator API.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new asset service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List fetches the project's assets, newest first.
func (s *Service) List(ctx context.Context, projectID string) ([]Asset, error) {
	assets, err := s.api.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	return assets, nil
}

// Upload registers a new asset for the project. The server assigns the
// stored file path, version number and the default needs_feedback status.
func (s *Service) Upload(ctx context.Context, projectID, originalFilename string) (*Asset, error) {
	originalFilename = strings.TrimSpace(originalFilename)
	if originalFilename == "" {
		return nil, ErrFilenameRequired
	}

	a, err := s.api.Upload(ctx, projectID, UploadRequest{OriginalFilename: originalFilename})
	if err != nil {
		return nil, fmt.Errorf("uploading asset: %w", err)
	}
	return a, nil
}

// Delete destroys the asset and its comments. Owner-only; the server
// enforces authority and the call surfaces its forbidden error unchanged.
func (s *Service) Delete(ctx context.Context, projectID, assetID string) error {
	if err := s.api.Delete(ctx, projectID, assetID); err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	return nil
}

// SetStatus transitions the asset to the target status. The value is
// validated against the enum before any request is sent; authority (project
// owner only) is enforced server-side. The returned snapshot fully replaces
// the local copy.
func (s *Service) SetStatus(ctx context.Context, projectID, assetID string, status Status) (*Asset, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	a, err := s.api.UpdateStatus(ctx, projectID, assetID, status)
	if err != nil {
		return nil, fmt.Errorf("updating asset status: %w", err)
	}
	return a, nil
}
