package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/store"
)

// InviteStore implements store.InviteStore for SQLite
type InviteStore struct {
	db *DB
}

// NewInviteStore creates a new InviteStore
func NewInviteStore(db *DB) *InviteStore {
	return &InviteStore{db: db}
}

// Create inserts an invite
func (s *InviteStore) Create(ctx context.Context, inv *invite.Invite) error {
	query := `
		INSERT INTO invites (id, project_id, invited_email, invited_by_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		inv.ID,
		inv.ProjectID,
		inv.InvitedEmail,
		inv.InvitedBy.ID,
		inv.Status,
		inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	return nil
}

const inviteSelect = `
	SELECT i.id, i.project_id, i.invited_email, i.status, i.created_at,
	       p.id, p.name, p.description, p.owner_id, p.is_archived, p.deadline, p.created_at,
	       u.id, u.email, u.display_name, u.created_at
	FROM invites i
	JOIN projects p ON p.id = i.project_id
	JOIN users u ON u.id = i.invited_by_id
`

// Get retrieves an invite with its project and inviter hydrated
func (s *InviteStore) Get(ctx context.Context, id string) (*invite.Invite, error) {
	inv, err := scanInvite(s.db.QueryRowContext(ctx, inviteSelect+` WHERE i.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}
	return inv, nil
}

// ListPendingByEmail lists the address's pending invites, newest first
func (s *InviteStore) ListPendingByEmail(ctx context.Context, email string) ([]invite.Invite, error) {
	rows, err := s.db.QueryContext(ctx,
		inviteSelect+` WHERE i.invited_email = ? AND i.status = 'pending' ORDER BY i.created_at DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var out []invite.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		out = append(out, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invites: %w", err)
	}
	return out, nil
}

// HasPending reports whether the address already has a pending invite for
// the project
func (s *InviteStore) HasPending(ctx context.Context, projectID, email string) (bool, error) {
	query := `SELECT 1 FROM invites WHERE project_id = ? AND invited_email = ? AND status = 'pending'`
	var one int
	err := s.db.QueryRowContext(ctx, query, projectID, email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check pending invite: %w", err)
	}
	return true, nil
}

// SetStatus resolves the invite
func (s *InviteStore) SetStatus(ctx context.Context, id string, status invite.Status, respondedAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE invites SET status = ?, responded_at = ? WHERE id = ?`,
		status, respondedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update invite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update invite: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanInvite(row rowScanner) (*invite.Invite, error) {
	var inv invite.Invite
	var projDescription, inviterName sql.NullString
	var projDeadline sql.NullTime
	err := row.Scan(
		&inv.ID,
		&inv.ProjectID,
		&inv.InvitedEmail,
		&inv.Status,
		&inv.CreatedAt,
		&inv.Project.ID,
		&inv.Project.Name,
		&projDescription,
		&inv.Project.OwnerID,
		&inv.Project.IsArchived,
		&projDeadline,
		&inv.Project.CreatedAt,
		&inv.InvitedBy.ID,
		&inv.InvitedBy.Email,
		&inviterName,
		&inv.InvitedBy.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Project.Description = projDescription.String
	if projDeadline.Valid {
		t := projDeadline.Time
		inv.Project.Deadline = &t
	}
	inv.InvitedBy.DisplayName = inviterName.String
	return &inv, nil
}
