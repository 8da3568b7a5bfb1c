package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/store"
)

func commentFixture(id, assetID, userID string, parentID *string) comment.Comment {
	return comment.Comment{
		ID:        id,
		AssetID:   assetID,
		UserID:    userID,
		Content:   "comment " + id,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCommentStore_CreateGetHydratesAuthor(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertAsset(t, db, "a1", "p1", owner.ID)

	st := NewCommentStore(db)
	c := commentFixture("c1", "a1", owner.ID, nil)
	require.NoError(t, st.Create(ctx, &c))

	got, err := st.Get(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, owner.Email, got.Author.Email)
	require.Nil(t, got.ParentID)
	require.NotNil(t, got.Reactions)
	require.Empty(t, got.Reactions)
}

func TestCommentStore_ListByAssetOrderAndReactions(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	other := insertUser(t, db, "u2", "other@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertAsset(t, db, "a1", "p1", owner.ID)

	st := NewCommentStore(db)

	first := commentFixture("c1", "a1", owner.ID, nil)
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, st.Create(ctx, &first))

	parent := "c1"
	reply := commentFixture("c2", "a1", other.ID, &parent)
	require.NoError(t, st.Create(ctx, &reply))

	require.NoError(t, st.ToggleReaction(ctx, "c1", other.ID, "👍"))
	require.NoError(t, st.ToggleReaction(ctx, "c1", owner.ID, "👍"))

	comments, err := st.ListByAsset(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "c1", comments[0].ID, "oldest first")
	require.Len(t, comments[0].Reactions, 2)
	require.Empty(t, comments[1].Reactions)
	require.NotNil(t, comments[1].ParentID)
	require.Equal(t, "c1", *comments[1].ParentID)
}

func TestCommentStore_ToggleReactionRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertAsset(t, db, "a1", "p1", owner.ID)

	st := NewCommentStore(db)
	c := commentFixture("c1", "a1", owner.ID, nil)
	require.NoError(t, st.Create(ctx, &c))

	require.NoError(t, st.ToggleReaction(ctx, "c1", owner.ID, "🔥"))
	got, err := st.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got.Reactions, 1)

	// Second toggle removes it.
	require.NoError(t, st.ToggleReaction(ctx, "c1", owner.ID, "🔥"))
	got, err = st.Get(ctx, "c1")
	require.NoError(t, err)
	require.Empty(t, got.Reactions)
}

func TestCommentStore_DeleteDetachesReplies(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	owner := insertUser(t, db, "u1", "owner@studio.test")
	insertProject(t, db, "p1", owner.ID, time.Now().UTC())
	insertAsset(t, db, "a1", "p1", owner.ID)

	st := NewCommentStore(db)
	parent := commentFixture("c1", "a1", owner.ID, nil)
	require.NoError(t, st.Create(ctx, &parent))
	parentID := "c1"
	reply := commentFixture("c2", "a1", owner.ID, &parentID)
	require.NoError(t, st.Create(ctx, &reply))
	require.NoError(t, st.ToggleReaction(ctx, "c1", owner.ID, "👍"))

	require.NoError(t, st.Delete(ctx, "c1"))

	_, err := st.Get(ctx, "c1")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.Get(ctx, "c2")
	require.NoError(t, err)
	require.Nil(t, got.ParentID, "reply survives with the parent link cleared")

	require.ErrorIs(t, st.Delete(ctx, "c1"), store.ErrNotFound)
}
