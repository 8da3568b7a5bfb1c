package comment

import (
	"time"

	"github.com/atelierhq/atelier/internal/domain/user"
)

// Comment is a feedback message on an asset. ParentID, when set, references
// another comment on the same asset; nil means a root comment.
type Comment struct {
	ID        string     `json:"id"`
	AssetID   string     `json:"asset_id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	ParentID  *string    `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Author    user.User  `json:"author"`
	Reactions []Reaction `json:"reactions"`
}

// Reaction is one user's emoji reaction to a comment. A reaction has no
// identity beyond the (comment, user, emoji) triple.
type Reaction struct {
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}
