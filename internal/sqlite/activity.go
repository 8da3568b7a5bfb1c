package sqlite

import (
	"context"
	"fmt"

	"github.com/atelierhq/atelier/internal/domain/activity"
)

// ActivityStore implements store.ActivityStore for SQLite
type ActivityStore struct {
	db *DB
}

// NewActivityStore creates a new ActivityStore
func NewActivityStore(db *DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Log appends an entry to the project's activity feed
func (s *ActivityStore) Log(ctx context.Context, e *activity.Entry) error {
	query := `
		INSERT INTO activity_log (project_id, user_id, type, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query, e.ProjectID, e.UserID, e.Type, e.Message, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		e.ID = id
	}
	return nil
}

// ListByProject lists the project's activity feed, newest first
func (s *ActivityStore) ListByProject(ctx context.Context, projectID string) ([]activity.Entry, error) {
	query := `
		SELECT id, project_id, user_id, type, message, created_at
		FROM activity_log
		WHERE project_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var out []activity.Entry
	for rows.Next() {
		var e activity.Entry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.UserID, &e.Type, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity: %w", err)
	}
	return out, nil
}
