package activity

import "time"

// EntryType classifies an activity feed event.
type EntryType string

const (
	TypeAssetUploaded  EntryType = "asset_uploaded"
	TypeCommentAdded   EntryType = "comment_added"
	TypeCommentReacted EntryType = "comment_reacted"
)

// Entry is one line of a project's activity feed. The feed is read-only on
// the client: message and timestamp, no reconciliation logic.
type Entry struct {
	ID        int64     `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Type      EntryType `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
