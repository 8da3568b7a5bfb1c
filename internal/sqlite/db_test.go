package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
)

// NewTestDB returns a migrated in-memory database. Shared-cache mode keys
// the database to the test name so every pooled connection sees the same
// store.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := New(dsn)
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func insertUser(t *testing.T, db *DB, id, email string) user.User {
	t.Helper()

	u := user.User{ID: id, Email: email, DisplayName: strings.Split(email, "@")[0], CreatedAt: time.Now().UTC()}
	require.NoError(t, NewUserStore(db).Create(context.Background(), &u))
	return u
}

func insertProject(t *testing.T, db *DB, id, ownerID string, createdAt time.Time) project.Project {
	t.Helper()

	p := project.Project{ID: id, Name: "Project " + id, OwnerID: ownerID, CreatedAt: createdAt}
	require.NoError(t, NewProjectStore(db).Create(context.Background(), &p))
	return p
}

func insertAsset(t *testing.T, db *DB, id, projectID, uploaderID string) asset.Asset {
	t.Helper()

	a := asset.Asset{
		ID:               id,
		ProjectID:        projectID,
		UploaderID:       uploaderID,
		FilePath:         "uploads/" + projectID + "/" + id,
		OriginalFilename: id + ".png",
		Status:           asset.StatusNeedsFeedback,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, NewAssetStore(db).Create(context.Background(), &a))
	return a
}

func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"users", "auth_tokens", "projects", "project_participants",
		"assets", "comments", "comment_reactions", "invites", "activity_log",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoErrorf(t, err, "table %s missing", table)
	}
}
