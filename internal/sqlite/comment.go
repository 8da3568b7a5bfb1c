package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/store"
)

// CommentStore implements store.CommentStore for SQLite
type CommentStore struct {
	db *DB
}

// NewCommentStore creates a new CommentStore
func NewCommentStore(db *DB) *CommentStore {
	return &CommentStore{db: db}
}

// Create inserts a comment
func (s *CommentStore) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, asset_id, user_id, content, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.AssetID,
		c.UserID,
		c.Content,
		c.ParentID,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

const commentSelect = `
	SELECT c.id, c.asset_id, c.user_id, c.content, c.parent_id, c.created_at,
	       u.id, u.email, u.display_name, u.created_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

// Get retrieves a comment with its author and full reaction set
func (s *CommentStore) Get(ctx context.Context, id string) (*comment.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx, commentSelect+` WHERE c.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	reactions, err := s.reactionsFor(ctx, []string{c.ID})
	if err != nil {
		return nil, err
	}
	c.Reactions = reactions[c.ID]
	if c.Reactions == nil {
		c.Reactions = []comment.Reaction{}
	}
	return c, nil
}

// ListByAsset lists the asset's comments oldest first, with authors and
// reactions hydrated
func (s *CommentStore) ListByAsset(ctx context.Context, assetID string) ([]comment.Comment, error) {
	rows, err := s.db.QueryContext(ctx, commentSelect+` WHERE c.asset_id = ? ORDER BY c.created_at ASC, c.id ASC`, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var out []comment.Comment
	var ids []string
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		out = append(out, *c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	reactions, err := s.reactionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Reactions = reactions[out[i].ID]
		if out[i].Reactions == nil {
			out[i].Reactions = []comment.Reaction{}
		}
	}
	return out, nil
}

// Delete removes the comment and its reactions. Replies survive with a
// dangling parent reference; the client promotes them to roots.
func (s *CommentStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comment_reactions WHERE comment_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete reactions: %w", err)
	}
	// Detach replies so the parent row can go
	if _, err := tx.ExecContext(ctx, `UPDATE comments SET parent_id = NULL WHERE parent_id = ?`, id); err != nil {
		return fmt.Errorf("failed to detach replies: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}

	return tx.Commit()
}

// ToggleReaction removes the (comment, user, emoji) reaction if present,
// otherwise inserts it
func (s *CommentStore) ToggleReaction(ctx context.Context, commentID, userID, emoji string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM comment_reactions WHERE comment_id = ? AND user_id = ? AND emoji = ?`,
		commentID, userID, emoji,
	)
	if err != nil {
		return fmt.Errorf("failed to toggle reaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to toggle reaction: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO comment_reactions (comment_id, user_id, emoji) VALUES (?, ?, ?)`,
		commentID, userID, emoji,
	)
	if err != nil {
		return fmt.Errorf("failed to toggle reaction: %w", err)
	}
	return nil
}

func (s *CommentStore) reactionsFor(ctx context.Context, commentIDs []string) (map[string][]comment.Reaction, error) {
	out := make(map[string][]comment.Reaction, len(commentIDs))
	if len(commentIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT comment_id, user_id, emoji, created_at
		FROM comment_reactions
		WHERE comment_id IN (` + placeholders(len(commentIDs)) + `)
		ORDER BY created_at ASC
	`
	args := make([]any, len(commentIDs))
	for i, id := range commentIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r comment.Reaction
		if err := rows.Scan(&r.CommentID, &r.UserID, &r.Emoji, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		out[r.CommentID] = append(out[r.CommentID], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reactions: %w", err)
	}
	return out, nil
}

func scanComment(row rowScanner) (*comment.Comment, error) {
	var c comment.Comment
	var parentID sql.NullString
	var displayName sql.NullString
	err := row.Scan(
		&c.ID,
		&c.AssetID,
		&c.UserID,
		&c.Content,
		&parentID,
		&c.CreatedAt,
		&c.Author.ID,
		&c.Author.Email,
		&displayName,
		&c.Author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		v := parentID.String
		c.ParentID = &v
	}
	c.Author.DisplayName = displayName.String
	return &c, nil
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	out := make([]byte, 0, n*2-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '?')
	}
	return string(out)
}
