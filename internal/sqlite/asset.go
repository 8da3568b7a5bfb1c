package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/store"
)

// AssetStore implements store.AssetStore for SQLite
type AssetStore struct {
	db *DB
}

// NewAssetStore creates a new AssetStore
func NewAssetStore(db *DB) *AssetStore {
	return &AssetStore{db: db}
}

const assetColumns = `id, project_id, uploader_id, file_path, original_filename, version, status, created_at`

// Create inserts the asset, assigning the next version number within its
// project.
func (s *AssetStore) Create(ctx context.Context, a *asset.Asset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin create: %w", err)
	}
	defer tx.Rollback()

	var version int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM assets WHERE project_id = ?`,
		a.ProjectID,
	).Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to assign version: %w", err)
	}
	a.Version = version

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.UploaderID,
		a.FilePath,
		a.OriginalFilename,
		a.Version,
		a.Status,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return tx.Commit()
}

// Get retrieves an asset by ID
func (s *AssetStore) Get(ctx context.Context, id string) (*asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ?`

	var a asset.Asset
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.ProjectID,
		&a.UploaderID,
		&a.FilePath,
		&a.OriginalFilename,
		&a.Version,
		&a.Status,
		&a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &a, nil
}

// ListByProject lists the project's assets, newest first
func (s *AssetStore) ListByProject(ctx context.Context, projectID string) ([]asset.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE project_id = ?
		ORDER BY created_at DESC, version DESC
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var out []asset.Asset
	for rows.Next() {
		var a asset.Asset
		err := rows.Scan(
			&a.ID,
			&a.ProjectID,
			&a.UploaderID,
			&a.FilePath,
			&a.OriginalFilename,
			&a.Version,
			&a.Status,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}
	return out, nil
}

// UpdateStatus sets the asset's review status
func (s *AssetStore) UpdateStatus(ctx context.Context, id string, status asset.Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE assets SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the asset and cascades to its comments and reactions
func (s *AssetStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM comment_reactions WHERE comment_id IN (SELECT id FROM comments WHERE asset_id = ?)`,
		id,
	); err != nil {
		return fmt.Errorf("failed to cascade delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE asset_id = ?`, id); err != nil {
		return fmt.Errorf("failed to cascade delete: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}

	return tx.Commit()
}
