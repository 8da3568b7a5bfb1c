package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/store"
)

func TestProjectStore_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")

	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	created := insertProject(t, db, "p1", owner.ID, time.Now().UTC())

	st := NewProjectStore(db)
	got, err := st.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, created.Name, got.Name)
	require.Equal(t, owner.ID, got.OwnerID)
	require.Nil(t, got.Deadline)

	got.Deadline = &deadline
	require.NoError(t, st.Update(ctx, got))

	got, err = st.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.Deadline)
	require.True(t, got.Deadline.Equal(deadline))
}

func TestProjectStore_GetMissing(t *testing.T) {
	db := NewTestDB(t)

	_, err := NewProjectStore(db).Get(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectStore_UpdateMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	p := insertProject(t, db, "p1", owner.ID, time.Now().UTC())

	require.NoError(t, NewProjectStore(db).Delete(ctx, "p1"))
	err := NewProjectStore(db).Update(ctx, &p)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectStore_ListOwnedSplitsByArchiveFlag(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	st := NewProjectStore(db)

	older := insertProject(t, db, "p1", owner.ID, time.Now().UTC().Add(-time.Hour))
	newer := insertProject(t, db, "p2", owner.ID, time.Now().UTC())

	archived := insertProject(t, db, "p3", owner.ID, time.Now().UTC())
	archived.IsArchived = true
	require.NoError(t, st.Update(ctx, &archived))

	active, err := st.ListOwned(ctx, owner.ID, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, newer.ID, active[0].ID, "newest first")
	require.Equal(t, older.ID, active[1].ID)

	archivedList, err := st.ListOwned(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, archivedList, 1)
	require.Equal(t, "p3", archivedList[0].ID)
}

func TestProjectStore_Participants(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	member := insertUser(t, db, "u2", "member@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())

	st := NewProjectStore(db)

	ok, err := st.IsParticipant(ctx, "p1", member.ID)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.AddParticipant(ctx, "p1", member.ID))
	// Idempotent.
	require.NoError(t, st.AddParticipant(ctx, "p1", member.ID))

	ok, err = st.IsParticipant(ctx, "p1", member.ID)
	require.NoError(t, err)
	require.True(t, ok)

	shared, err := st.ListShared(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	require.Equal(t, "p1", shared[0].ID)

	removed, err := st.RemoveParticipant(ctx, "p1", member.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = st.RemoveParticipant(ctx, "p1", member.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestProjectStore_ListParticipants(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	first := insertUser(t, db, "u2", "first@studio.test")
	second := insertUser(t, db, "u3", "second@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertProject(t, db, "p2", owner.ID, time.Now().UTC())

	st := NewProjectStore(db)

	members, err := st.ListParticipants(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, members)

	require.NoError(t, st.AddParticipant(ctx, "p1", first.ID))
	require.NoError(t, st.AddParticipant(ctx, "p1", second.ID))
	require.NoError(t, st.AddParticipant(ctx, "p2", second.ID))

	members, err = st.ListParticipants(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, first.ID, members[0].ID)
	require.Equal(t, "first@studio.test", members[0].Email)
	require.Equal(t, second.ID, members[1].ID)

	// The owner holds no participant row.
	for _, m := range members {
		require.NotEqual(t, owner.ID, m.ID)
	}
}

func TestProjectStore_DeleteCascades(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	a := insertAsset(t, db, "a1", "p1", owner.ID)

	comments := NewCommentStore(db)
	c := commentFixture("c1", a.ID, owner.ID, nil)
	require.NoError(t, comments.Create(ctx, &c))
	require.NoError(t, comments.ToggleReaction(ctx, "c1", owner.ID, "👍"))

	st := NewProjectStore(db)
	require.NoError(t, st.Delete(ctx, "p1"))

	_, err := st.Get(ctx, "p1")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = NewAssetStore(db).Get(ctx, "a1")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = comments.Get(ctx, "c1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Delete(ctx, "p1"), store.ErrNotFound)
}
