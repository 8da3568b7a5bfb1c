package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service handles comment operations against the collaborator API.
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService creates a new comment service.
func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List fetches the asset's full flat comment list.
func (s *Service) List(ctx context.Context, assetID string) ([]Comment, error) {
	comments, err := s.api.List(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// Add posts a comment, optionally as a reply. Content must be non-blank;
// this is validated before any request is sent.
func (s *Service) Add(ctx context.Context, assetID, content string, parentID *string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	c, err := s.api.Create(ctx, assetID, CreateRequest{Content: content, ParentID: parentID})
	if err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	return c, nil
}

// Delete removes a comment. The server allows the comment author and the
// project owner; anyone else gets a forbidden error.
func (s *Service) Delete(ctx context.Context, assetID, commentID string) error {
	if err := s.api.Delete(ctx, assetID, commentID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

// ToggleReaction adds or removes the current user's reaction for the emoji
// and returns the authoritative updated comment. There is no optimistic
// local mutation: state changes only after the round trip, so a rejected
// toggle leaves nothing to roll back.
func (s *Service) ToggleReaction(ctx context.Context, assetID, commentID, emoji string) (*Comment, error) {
	if strings.TrimSpace(emoji) == "" {
		return nil, ErrEmojiRequired
	}

	c, err := s.api.ToggleReaction(ctx, assetID, commentID, emoji)
	if err != nil {
		return nil, fmt.Errorf("toggling reaction: %w", err)
	}
	return c, nil
}
