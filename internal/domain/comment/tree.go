package comment

import "sort"

// Node is one comment in the reply tree, carrying its ordered children.
type Node struct {
	Comment
	Children []*Node
}

// BuildTree converts a flat comment list, in any order, into a forest of
// root comments with chronologically ordered replies. Every input comment
// appears in the output exactly once.
//
// A comment whose ParentID doesn't resolve within the set (deleted parent,
// partial load, or a self-reference) is promoted to a root rather than
// dropped. Each level is sorted ascending by CreatedAt; equal timestamps
// tie-break on ascending ID so the order is stable across reloads.
//
// The tree is a read projection over the flat list. It is rebuilt in full on
// every mutation and holds no parent back-references: linkage lives in an
// id-indexed arena and per-parent child-ID lists until the nodes are wired.
func BuildTree(comments []Comment) []*Node {
	nodes := make(map[string]*Node, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &Node{Comment: c}
	}

	childIDs := make(map[string][]string)
	var rootIDs []string
	for _, c := range comments {
		if c.ParentID != nil && *c.ParentID != c.ID {
			if _, ok := nodes[*c.ParentID]; ok {
				childIDs[*c.ParentID] = append(childIDs[*c.ParentID], c.ID)
				continue
			}
		}
		rootIDs = append(rootIDs, c.ID)
	}

	order := func(ids []string) {
		sort.Slice(ids, func(i, j int) bool {
			a, b := nodes[ids[i]], nodes[ids[j]]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		})
	}

	order(rootIDs)
	for _, ids := range childIDs {
		order(ids)
	}

	for parentID, ids := range childIDs {
		parent := nodes[parentID]
		for _, id := range ids {
			parent.Children = append(parent.Children, nodes[id])
		}
	}

	roots := make([]*Node, 0, len(rootIDs))
	for _, id := range rootIDs {
		roots = append(roots, nodes[id])
	}
	return roots
}

// CountNodes returns the total number of comments in the forest.
func CountNodes(roots []*Node) int {
	total := 0
	for _, n := range roots {
		total += 1 + CountNodes(n.Children)
	}
	return total
}
