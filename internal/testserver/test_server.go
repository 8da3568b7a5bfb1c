// Package testserver spins up a fully wired collaborator service over an
// in-memory database for integration tests.
package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/domain/user"
	"github.com/atelierhq/atelier/internal/sqlite"
	"github.com/atelierhq/atelier/internal/transport"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB

	users *sqlite.UserStore
}

// New starts a collaborator service backed by a per-test in-memory database.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	users := sqlite.NewUserStore(db)
	st := transport.Stores{
		Users:    users,
		Projects: sqlite.NewProjectStore(db),
		Assets:   sqlite.NewAssetStore(db),
		Comments: sqlite.NewCommentStore(db),
		Invites:  sqlite.NewInviteStore(db),
		Activity: sqlite.NewActivityStore(db),
	}

	srv := transport.NewServer(st, nil)
	server := httptest.NewServer(transport.NewRouter(srv, users))

	ts := &TestServer{Server: server, DB: db, users: users}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// AddUser creates an account with a bearer token and returns both.
func (ts *TestServer) AddUser(t *testing.T, email, displayName string) (user.User, string) {
	t.Helper()

	u := &user.User{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(email),
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, ts.users.Create(context.Background(), u))

	token := "tok-" + uuid.NewString()
	require.NoError(t, ts.users.AddToken(context.Background(), transport.HashToken(token), u.ID))

	return *u, token
}
