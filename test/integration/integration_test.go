package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/api"
	"github.com/atelierhq/atelier/internal/client"
	"github.com/atelierhq/atelier/internal/domain/activity"
	"github.com/atelierhq/atelier/internal/domain/asset"
	"github.com/atelierhq/atelier/internal/domain/comment"
	"github.com/atelierhq/atelier/internal/domain/invite"
	"github.com/atelierhq/atelier/internal/domain/project"
	"github.com/atelierhq/atelier/internal/domain/user"
	"github.com/atelierhq/atelier/internal/testserver"
	"github.com/atelierhq/atelier/internal/workspace"
)

func newWorkspaceFor(ts *testserver.TestServer, u user.User, token string) *workspace.Workspace {
	c := client.New(ts.Server.URL, token, nil)
	return workspace.New(u, workspace.Services{
		Projects:    project.NewService(client.NewProjectClient(c), nil),
		Assets:      asset.NewService(client.NewAssetClient(c), nil),
		Comments:    comment.NewService(client.NewCommentClient(c), nil),
		Invites:     invite.NewService(client.NewInviteClient(c), nil),
		Activity:    activity.NewService(client.NewActivityClient(c), nil),
		Suggestions: client.NewSuggestionClient(c),
	}, nil)
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)
	owner, token := ts.AddUser(t, "owner@studio.test", "Owner")
	w := newWorkspaceFor(ts, owner, token)

	first, err := w.CreateProject(ctx, "Brand refresh", "New identity work", nil)
	require.NoError(t, err)
	second, err := w.CreateProject(ctx, "Packaging", "", nil)
	require.NoError(t, err)

	active, archived, shared := w.Projects()
	require.Len(t, active, 2)
	require.Equal(t, second.ID, active[0].ID, "newest created first")
	require.Empty(t, archived)
	require.Empty(t, shared)

	// Archive moves between partitions, reload agrees.
	_, err = w.SetProjectArchived(ctx, first.ID, true)
	require.NoError(t, err)
	active, archived, _ = w.Projects()
	require.Len(t, active, 1)
	require.Len(t, archived, 1)

	require.NoError(t, w.RefreshProjects(ctx))
	active, archived, _ = w.Projects()
	require.Len(t, active, 1)
	require.Len(t, archived, 1)
	require.Equal(t, first.ID, archived[0].ID)

	// Unarchive brings it back.
	_, err = w.SetProjectArchived(ctx, first.ID, false)
	require.NoError(t, err)
	active, archived, _ = w.Projects()
	require.Len(t, active, 2)
	require.Empty(t, archived)

	renamed, err := w.RenameProject(ctx, first.ID, "Brand refresh 2.0")
	require.NoError(t, err)
	require.Equal(t, "Brand refresh 2.0", renamed.Name)

	// Deadlines round-trip and clear back to unset.
	due := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	withDue, err := w.SetProjectDeadline(ctx, first.ID, &due)
	require.NoError(t, err)
	require.NotNil(t, withDue.Deadline)
	require.True(t, withDue.Deadline.Equal(due))

	cleared, err := w.SetProjectDeadline(ctx, first.ID, nil)
	require.NoError(t, err)
	require.Nil(t, cleared.Deadline)

	require.NoError(t, w.RefreshProjects(ctx))
	active, _, _ = w.Projects()
	for _, p := range active {
		if p.ID == first.ID {
			require.Nil(t, p.Deadline)
		}
	}

	require.NoError(t, w.DeleteProject(ctx, first.ID))
	active, _, _ = w.Projects()
	require.Len(t, active, 1)

	// Deleting again converges without error.
	require.NoError(t, w.DeleteProject(ctx, first.ID))
}

func TestAssetAndFeedbackFlow(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)
	owner, token := ts.AddUser(t, "owner@studio.test", "Owner")
	w := newWorkspaceFor(ts, owner, token)

	p, err := w.CreateProject(ctx, "Site redesign", "", nil)
	require.NoError(t, err)

	a1, err := w.UploadAsset(ctx, p.ID, "hero.png")
	require.NoError(t, err)
	a2, err := w.UploadAsset(ctx, p.ID, "hero-v2.png")
	require.NoError(t, err)
	require.Equal(t, 1, a1.Version)
	require.Equal(t, 2, a2.Version)
	require.Equal(t, asset.StatusNeedsFeedback, a1.Status)

	assets := w.Assets(p.ID)
	require.Equal(t, a2.ID, assets[0].ID, "front-inserted")

	updated, err := w.SetAssetStatus(ctx, p.ID, a1.ID, asset.StatusChangesRequested)
	require.NoError(t, err)
	require.Equal(t, asset.StatusChangesRequested, updated.Status)

	// Open the viewer and build a comment thread.
	require.NoError(t, w.OpenAsset(ctx, *a1))

	root, err := w.AddComment(ctx, "The hero feels crowded")
	require.NoError(t, err)

	w.SetReplyTarget(&root.ID)
	reply, err := w.AddComment(ctx, "Agreed, tighten the spacing")
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	require.Equal(t, root.ID, *reply.ParentID)
	require.Nil(t, w.ReplyTarget())

	tree := w.CommentTree()
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	require.Equal(t, reply.ID, tree[0].Children[0].ID)

	// React, then re-aggregate from the authoritative snapshot.
	require.NoError(t, w.ToggleReaction(ctx, root.ID, "👍"))
	summary := w.Reactions(root.ID)
	require.Equal(t, comment.ReactionSummary{Count: 1, ReactedBy: true}, summary["👍"])

	require.NoError(t, w.ToggleReaction(ctx, root.ID, "👍"))
	require.Empty(t, w.Reactions(root.ID))

	// Deleting the root promotes the reply on the next load.
	require.NoError(t, w.DeleteComment(ctx, root.ID))
	require.NoError(t, w.OpenAsset(ctx, *a1))
	tree = w.CommentTree()
	require.Len(t, tree, 1)
	require.Equal(t, reply.ID, tree[0].ID)
	require.Empty(t, tree[0].Children)

	// The feed recorded uploads, comments and reactions.
	entries, err := w.ProjectActivity(ctx, p.ID)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	suggestions, err := w.LoadSuggestions(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	require.True(t, w.SuggestionsVisible())

	// Deleting the open asset clears the viewer.
	require.NoError(t, w.DeleteAsset(ctx, p.ID, a1.ID))
	_, open := w.ActiveAsset()
	require.False(t, open)
	require.Len(t, w.Assets(p.ID), 1)
}

func TestInviteAndSharingFlow(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)
	owner, ownerToken := ts.AddUser(t, "owner@studio.test", "Owner")
	member, memberToken := ts.AddUser(t, "member@studio.test", "Member")

	ownerWS := newWorkspaceFor(ts, owner, ownerToken)
	memberWS := newWorkspaceFor(ts, member, memberToken)

	p, err := ownerWS.CreateProject(ctx, "Campaign art", "", nil)
	require.NoError(t, err)

	// Owner-only, no self-invites, no duplicate pendings.
	_, err = memberWS.InviteCollaborator(ctx, p.ID, "third@studio.test")
	require.ErrorIs(t, err, api.ErrForbidden)
	_, err = ownerWS.InviteCollaborator(ctx, p.ID, owner.Email)
	require.ErrorIs(t, err, api.ErrInvalidInput)

	_, err = ownerWS.InviteCollaborator(ctx, p.ID, member.Email)
	require.NoError(t, err)
	_, err = ownerWS.InviteCollaborator(ctx, p.ID, member.Email)
	require.ErrorIs(t, err, api.ErrInvalidInput)

	require.NoError(t, memberWS.RefreshInvites(ctx))
	pending := memberWS.PendingInvites()
	require.Len(t, pending, 1)
	require.Equal(t, p.ID, pending[0].ProjectID)
	require.Equal(t, owner.Email, pending[0].InvitedBy.Email)

	// Accept: invite leaves the pending set and the project lands in
	// shared-with-me via the refetch.
	require.NoError(t, memberWS.AcceptInvite(ctx, pending[0].ID))
	require.Empty(t, memberWS.PendingInvites())
	_, _, shared := memberWS.Projects()
	require.Len(t, shared, 1)
	require.Equal(t, p.ID, shared[0].ID)

	// Collaborators can upload and comment but not run owner mutations.
	a, err := memberWS.UploadAsset(ctx, p.ID, "draft.png")
	require.NoError(t, err)

	_, err = memberWS.SetAssetStatus(ctx, p.ID, a.ID, asset.StatusFinal)
	require.ErrorIs(t, err, api.ErrForbidden)
	err = memberWS.DeleteAsset(ctx, p.ID, a.ID)
	require.ErrorIs(t, err, api.ErrForbidden)

	// Comment deletion is author-or-owner.
	require.NoError(t, memberWS.OpenAsset(ctx, *a))
	c, err := memberWS.AddComment(ctx, "First pass attached")
	require.NoError(t, err)

	_, err = ownerWS.LoadAssets(ctx, p.ID)
	require.NoError(t, err)
	require.NoError(t, ownerWS.OpenAsset(ctx, *a))
	require.NoError(t, ownerWS.DeleteComment(ctx, c.ID))

	// Leaving removes only the shared entry.
	require.NoError(t, memberWS.LeaveProject(ctx, p.ID))
	_, _, shared = memberWS.Projects()
	require.Empty(t, shared)

	active, _, _ := ownerWS.Projects()
	require.Len(t, active, 1, "owner keeps the project")

	// Gone from the server side too.
	_, err = memberWS.LoadAssets(ctx, p.ID)
	require.ErrorIs(t, err, api.ErrForbidden)
}

func TestParticipantRoster(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)
	owner, ownerToken := ts.AddUser(t, "owner@studio.test", "Owner")
	member, memberToken := ts.AddUser(t, "member@studio.test", "Member")

	ownerWS := newWorkspaceFor(ts, owner, ownerToken)
	memberWS := newWorkspaceFor(ts, member, memberToken)

	p, err := ownerWS.CreateProject(ctx, "Campaign art", "", nil)
	require.NoError(t, err)

	inv, err := ownerWS.InviteCollaborator(ctx, p.ID, member.Email)
	require.NoError(t, err)
	require.NoError(t, memberWS.RefreshInvites(ctx))
	require.NoError(t, memberWS.AcceptInvite(ctx, inv.ID))

	// Only the owner sees the roster; the owner never appears on it.
	roster, err := ownerWS.ProjectParticipants(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, member.ID, roster[0].ID)
	require.Equal(t, member.Email, roster[0].Email)

	_, err = memberWS.ProjectParticipants(ctx, p.ID)
	require.ErrorIs(t, err, api.ErrForbidden)

	// The owner row doesn't exist, so it can't be removed.
	err = ownerWS.RemoveCollaborator(ctx, p.ID, owner.ID)
	require.ErrorIs(t, err, api.ErrInvalidInput)

	require.NoError(t, ownerWS.RemoveCollaborator(ctx, p.ID, member.ID))

	roster, err = ownerWS.ProjectParticipants(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, roster)

	// Access revoked server-side.
	_, err = memberWS.LoadAssets(ctx, p.ID)
	require.ErrorIs(t, err, api.ErrForbidden)

	// Removing an already-removed collaborator converges.
	require.NoError(t, ownerWS.RemoveCollaborator(ctx, p.ID, member.ID))
}

func TestDeclineInviteFlow(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)
	owner, ownerToken := ts.AddUser(t, "owner@studio.test", "Owner")
	member, memberToken := ts.AddUser(t, "member@studio.test", "Member")

	ownerWS := newWorkspaceFor(ts, owner, ownerToken)
	memberWS := newWorkspaceFor(ts, member, memberToken)

	p, err := ownerWS.CreateProject(ctx, "Poster series", "", nil)
	require.NoError(t, err)
	_, err = ownerWS.InviteCollaborator(ctx, p.ID, member.Email)
	require.NoError(t, err)

	require.NoError(t, memberWS.RefreshInvites(ctx))
	pending := memberWS.PendingInvites()
	require.Len(t, pending, 1)

	require.NoError(t, memberWS.DeclineInvite(ctx, pending[0].ID))
	require.Empty(t, memberWS.PendingInvites())
	_, _, shared := memberWS.Projects()
	require.Empty(t, shared)

	// A declined invite cannot be resolved again.
	require.NoError(t, memberWS.RefreshInvites(ctx))
	require.Empty(t, memberWS.PendingInvites())
}

func TestConcurrentDeletionConvergence(t *testing.T) {
	ctx := context.Background()
	ts := testserver.New(t)
	owner, token := ts.AddUser(t, "owner@studio.test", "Owner")

	// Two workspaces acting as the same user model two sessions.
	w1 := newWorkspaceFor(ts, owner, token)
	w2 := newWorkspaceFor(ts, owner, token)

	p, err := w1.CreateProject(ctx, "Doomed", "", nil)
	require.NoError(t, err)
	require.NoError(t, w2.RefreshProjects(ctx))

	require.NoError(t, w1.DeleteProject(ctx, p.ID))

	// The second session's rename hits NotFound; local state drops the
	// project instead of keeping a ghost.
	_, err = w2.RenameProject(ctx, p.ID, "Still here?")
	require.ErrorIs(t, err, api.ErrNotFound)
	active, _, _ := w2.Projects()
	require.Empty(t, active)
}
