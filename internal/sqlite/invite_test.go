package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/store"
)

func TestInviteStore_CreateGetHydrates(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())

	st := NewInviteStore(db)
	inv := invite.Invite{
		ID:           "i1",
		ProjectID:    "p1",
		InvitedEmail: "reviewer@studio.test",
		Status:       invite.StatusPending,
		CreatedAt:    time.Now().UTC(),
		InvitedBy:    owner,
	}
	require.NoError(t, st.Create(ctx, &inv))

	got, err := st.Get(ctx, "i1")
	require.NoError(t, err)
	require.Equal(t, "Project p1", got.Project.Name)
	require.Equal(t, owner.Email, got.InvitedBy.Email)
	require.Equal(t, invite.StatusPending, got.Status)
}

func TestInviteStore_ListPendingByEmail(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())

	st := NewInviteStore(db)
	older := invite.Invite{
		ID: "i1", ProjectID: "p1", InvitedEmail: "reviewer@studio.test",
		Status: invite.StatusPending, CreatedAt: time.Now().UTC().Add(-time.Hour), InvitedBy: owner,
	}
	newer := invite.Invite{
		ID: "i2", ProjectID: "p1", InvitedEmail: "reviewer@studio.test",
		Status: invite.StatusPending, CreatedAt: time.Now().UTC(), InvitedBy: owner,
	}
	other := invite.Invite{
		ID: "i3", ProjectID: "p1", InvitedEmail: "someone-else@studio.test",
		Status: invite.StatusPending, CreatedAt: time.Now().UTC(), InvitedBy: owner,
	}
	for _, inv := range []*invite.Invite{&older, &newer, &other} {
		require.NoError(t, st.Create(ctx, inv))
	}

	pending, err := st.ListPendingByEmail(ctx, "reviewer@studio.test")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, "i2", pending[0].ID, "newest first")

	has, err := st.HasPending(ctx, "p1", "reviewer@studio.test")
	require.NoError(t, err)
	require.True(t, has)
	has, err = st.HasPending(ctx, "p1", "nobody@studio.test")
	require.NoError(t, err)
	require.False(t, has)
}

func TestInviteStore_SetStatusRemovesFromPending(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())

	st := NewInviteStore(db)
	inv := invite.Invite{
		ID: "i1", ProjectID: "p1", InvitedEmail: "reviewer@studio.test",
		Status: invite.StatusPending, CreatedAt: time.Now().UTC(), InvitedBy: owner,
	}
	require.NoError(t, st.Create(ctx, &inv))

	require.NoError(t, st.SetStatus(ctx, "i1", invite.StatusAccepted, time.Now().UTC()))

	got, err := st.Get(ctx, "i1")
	require.NoError(t, err)
	require.Equal(t, invite.StatusAccepted, got.Status)

	pending, err := st.ListPendingByEmail(ctx, "reviewer@studio.test")
	require.NoError(t, err)
	require.Empty(t, pending)

	require.ErrorIs(t, st.SetStatus(ctx, "missing", invite.StatusDeclined, time.Now().UTC()), store.ErrNotFound)
}
