package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierhq/atelier/internal/domain/user"
	"github.com/atelierhq/atelier/internal/store"
)

// UserStore implements store.UserStore for SQLite
type UserStore struct {
	db *DB
}

// NewUserStore creates a new UserStore
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create creates a new user
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, display_name, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, u.ID, u.Email, u.DisplayName, u.CreatedAt)
	if isUniqueViolation(err) {
		return store.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (s *UserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	return s.getBy(ctx, "id = ?", id)
}

// GetByEmail retrieves a user by email
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getBy(ctx, "email = ?", email)
}

func (s *UserStore) getBy(ctx context.Context, where string, arg any) (*user.User, error) {
	query := `SELECT id, email, display_name, created_at FROM users WHERE ` + where

	var u user.User
	var displayName sql.NullString
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &displayName, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.DisplayName = displayName.String
	return &u, nil
}

// AddToken stores a hashed bearer token for the user
func (s *UserStore) AddToken(ctx context.Context, tokenHash, userID string) error {
	query := `INSERT INTO auth_tokens (token_hash, user_id) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, tokenHash, userID); err != nil {
		return fmt.Errorf("failed to add token: %w", err)
	}
	return nil
}

// ResolveToken returns the user owning the hashed bearer token
func (s *UserStore) ResolveToken(ctx context.Context, tokenHash string) (*user.User, error) {
	query := `
		SELECT u.id, u.email, u.display_name, u.created_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token_hash = ?
	`

	var u user.User
	var displayName sql.NullString
	err := s.db.QueryRowContext(ctx, query, tokenHash).Scan(&u.ID, &u.Email, &displayName, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	u.DisplayName = displayName.String
	return &u, nil
}
