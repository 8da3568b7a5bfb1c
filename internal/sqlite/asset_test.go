package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/store"
)

func TestAssetStore_CreateAssignsVersions(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertProject(t, db, "p2", owner.ID, time.Now().UTC())

	a1 := insertAsset(t, db, "a1", "p1", owner.ID)
	a2 := insertAsset(t, db, "a2", "p1", owner.ID)
	other := insertAsset(t, db, "a3", "p2", owner.ID)

	require.Equal(t, 1, a1.Version)
	require.Equal(t, 2, a2.Version)
	require.Equal(t, 1, other.Version, "versions count per project")

	st := NewAssetStore(db)
	got, err := st.Get(ctx, "a2")
	require.NoError(t, err)
	require.Equal(t, 2, got.Version)
	require.Equal(t, asset.StatusNeedsFeedback, got.Status)
}

func TestAssetStore_UpdateStatus(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertAsset(t, db, "a1", "p1", owner.ID)

	st := NewAssetStore(db)
	require.NoError(t, st.UpdateStatus(ctx, "a1", asset.StatusFinal))

	got, err := st.Get(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, asset.StatusFinal, got.Status)

	require.ErrorIs(t, st.UpdateStatus(ctx, "missing", asset.StatusFinal), store.ErrNotFound)
}

func TestAssetStore_DeleteCascadesComments(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertAsset(t, db, "a1", "p1", owner.ID)

	comments := NewCommentStore(db)
	c := commentFixture("c1", "a1", owner.ID, nil)
	require.NoError(t, comments.Create(ctx, &c))
	require.NoError(t, comments.ToggleReaction(ctx, "c1", owner.ID, "👍"))

	st := NewAssetStore(db)
	require.NoError(t, st.Delete(ctx, "a1"))

	_, err := st.Get(ctx, "a1")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = comments.Get(ctx, "c1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Delete(ctx, "a1"), store.ErrNotFound)
}
