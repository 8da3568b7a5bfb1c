package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
	"github.com/atelierhq/atelier/internal/store"
)

// ProjectStore implements store.ProjectStore for SQLite
type ProjectStore struct {
	db *DB
}

// NewProjectStore creates a new ProjectStore
func NewProjectStore(db *DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, name, description, owner_id, is_archived, deadline, created_at`

// Create creates a new project
func (s *ProjectStore) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.OwnerID,
		p.IsArchived,
		p.Deadline,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Get retrieves a project by ID
func (s *ProjectStore) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Update replaces the mutable project fields
func (s *ProjectStore) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?, is_archived = ?, deadline = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, p.Name, p.Description, p.IsArchived, p.Deadline, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the project and everything hanging off it
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM comment_reactions WHERE comment_id IN (
			SELECT c.id FROM comments c
			JOIN assets a ON a.id = c.asset_id
			WHERE a.project_id = ?)`,
		`DELETE FROM comments WHERE asset_id IN (SELECT id FROM assets WHERE project_id = ?)`,
		`DELETE FROM assets WHERE project_id = ?`,
		`DELETE FROM invites WHERE project_id = ?`,
		`DELETE FROM activity_log WHERE project_id = ?`,
		`DELETE FROM project_participants WHERE project_id = ?`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to cascade delete: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}

	return tx.Commit()
}

// ListOwned lists the owner's projects filtered by archive flag, newest first
func (s *ProjectStore) ListOwned(ctx context.Context, ownerID string, archived bool) ([]project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE owner_id = ? AND is_archived = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// ListShared lists projects the user participates in, newest first
func (s *ProjectStore) ListShared(ctx context.Context, userID string) ([]project.Project, error) {
	query := `
		SELECT p.id, p.name, p.description, p.owner_id, p.is_archived, p.deadline, p.created_at
		FROM projects p
		JOIN project_participants pp ON pp.project_id = p.id
		WHERE pp.user_id = ?
		ORDER BY p.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// AddParticipant grants collaborator membership, idempotently
func (s *ProjectStore) AddParticipant(ctx context.Context, projectID, userID string) error {
	query := `
		INSERT OR IGNORE INTO project_participants (project_id, user_id, role)
		VALUES (?, ?, 'member')
	`
	if _, err := s.db.ExecContext(ctx, query, projectID, userID); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// RemoveParticipant revokes collaborator membership
func (s *ProjectStore) RemoveParticipant(ctx context.Context, projectID, userID string) (bool, error) {
	query := `DELETE FROM project_participants WHERE project_id = ? AND user_id = ?`
	res, err := s.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to remove participant: %w", err)
	}
	return n > 0, nil
}

// ListParticipants lists the project's collaborators in join order. The
// owner is not a participant row and is never returned.
func (s *ProjectStore) ListParticipants(ctx context.Context, projectID string) ([]user.User, error) {
	query := `
		SELECT u.id, u.email, u.display_name, u.created_at
		FROM project_participants pp
		JOIN users u ON u.id = pp.user_id
		WHERE pp.project_id = ?
		ORDER BY pp.rowid
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		var u user.User
		var displayName sql.NullString
		if err := rows.Scan(&u.ID, &u.Email, &displayName, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		u.DisplayName = displayName.String
		out = append(out, u)
	}
	return out, rows.Err()
}

// IsParticipant reports collaborator membership
func (s *ProjectStore) IsParticipant(ctx context.Context, projectID, userID string) (bool, error) {
	query := `SELECT 1 FROM project_participants WHERE project_id = ? AND user_id = ?`
	var one int
	err := s.db.QueryRowContext(ctx, query, projectID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var p project.Project
	var description sql.NullString
	var deadline sql.NullTime
	err := row.Scan(&p.ID, &p.Name, &description, &p.OwnerID, &p.IsArchived, &deadline, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	if deadline.Valid {
		t := deadline.Time
		p.Deadline = &t
	}
	return &p, nil
}

func collectProjects(rows *sql.Rows) ([]project.Project, error) {
	var out []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return out, nil
}
