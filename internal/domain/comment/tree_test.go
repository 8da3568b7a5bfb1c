package comment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierhq/atelier/internal/domain/comment"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func flat(id string, parentID *string, offset time.Duration) comment.Comment {
	return comment.Comment{ID: id, ParentID: parentID, CreatedAt: base.Add(offset)}
}

func ptr(s string) *string { return &s }

func rootIDs(roots []*comment.Node) []string {
	out := make([]string, len(roots))
	for i, n := range roots {
		out[i] = n.ID
	}
	return out
}

func TestBuildTree_RepliesNestUnderParents(t *testing.T) {
	// Out-of-order input: the reply to c1 arrives between two roots; c3 is
	// the oldest root.
	comments := []comment.Comment{
		flat("c1", nil, 10*time.Minute),
		flat("c2", ptr("c1"), 20*time.Minute),
		flat("c3", nil, 0),
	}

	roots := comment.BuildTree(comments)

	require.Equal(t, []string{"c3", "c1"}, rootIDs(roots))
	require.Len(t, roots[1].Children, 1)
	require.Equal(t, "c2", roots[1].Children[0].ID)
	require.Empty(t, roots[0].Children)
	require.Equal(t, len(comments), comment.CountNodes(roots))
}

func TestBuildTree_DeepNesting(t *testing.T) {
	comments := []comment.Comment{
		flat("a", nil, 0),
		flat("b", ptr("a"), time.Minute),
		flat("c", ptr("b"), 2*time.Minute),
		flat("d", ptr("b"), 3*time.Minute),
	}

	roots := comment.BuildTree(comments)

	require.Len(t, roots, 1)
	b := roots[0].Children[0]
	require.Equal(t, "b", b.ID)
	require.Equal(t, []string{"c", "d"}, []string{b.Children[0].ID, b.Children[1].ID})
}

func TestBuildTree_OrphanPromotedToRoot(t *testing.T) {
	comments := []comment.Comment{
		flat("a", nil, 0),
		flat("orphan", ptr("deleted-parent"), time.Minute),
	}

	roots := comment.BuildTree(comments)

	require.Equal(t, []string{"a", "orphan"}, rootIDs(roots))
	require.Equal(t, 2, comment.CountNodes(roots))
}

func TestBuildTree_SelfReferencePromotedToRoot(t *testing.T) {
	comments := []comment.Comment{
		flat("loop", ptr("loop"), 0),
	}

	roots := comment.BuildTree(comments)

	require.Equal(t, []string{"loop"}, rootIDs(roots))
	require.Empty(t, roots[0].Children)
}

func TestBuildTree_EqualTimestampsTieBreakOnID(t *testing.T) {
	comments := []comment.Comment{
		flat("b", nil, 0),
		flat("a", nil, 0),
		flat("z", ptr("a"), time.Minute),
		flat("y", ptr("a"), time.Minute),
	}

	roots := comment.BuildTree(comments)

	require.Equal(t, []string{"a", "b"}, rootIDs(roots))
	a := roots[0]
	require.Equal(t, []string{"y", "z"}, []string{a.Children[0].ID, a.Children[1].ID})
}

func TestBuildTree_Empty(t *testing.T) {
	require.Empty(t, comment.BuildTree(nil))
	require.Equal(t, 0, comment.CountNodes(nil))
}

func TestBuildTree_EveryCommentAppearsOnce(t *testing.T) {
	comments := []comment.Comment{
		flat("r1", nil, 0),
		flat("r2", nil, time.Minute),
		flat("c1", ptr("r1"), 2*time.Minute),
		flat("c2", ptr("r2"), 3*time.Minute),
		flat("c3", ptr("c1"), 4*time.Minute),
		flat("lost", ptr("nowhere"), 5*time.Minute),
	}

	roots := comment.BuildTree(comments)

	seen := make(map[string]int)
	var walk func(nodes []*comment.Node)
	walk = func(nodes []*comment.Node) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Children)
		}
	}
	walk(roots)

	require.Len(t, seen, len(comments))
	for id, count := range seen {
		require.Equalf(t, 1, count, "comment %s appeared %d times", id, count)
	}
}
