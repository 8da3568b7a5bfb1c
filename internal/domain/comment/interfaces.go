package comment

import "context"

// CreateRequest defines comment creation inputs. ParentID must reference an
// existing comment on the same asset.
type CreateRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id,omitempty"`
}

// API is the comment and reaction surface of the collaborator service.
// ToggleReaction returns the full updated comment including its reaction
// set; callers replace their local copy wholesale rather than merging.
type API interface {
	List(ctx context.Context, assetID string) ([]Comment, error)
	Create(ctx context.Context, assetID string, req CreateRequest) (*Comment, error)
	Delete(ctx context.Context, assetID, commentID string) error
	ToggleReaction(ctx context.Context, assetID, commentID, emoji string) (*Comment, error)
}
