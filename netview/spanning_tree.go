package netview

import "github.com/compactroute/engine/bfs"

// SpanningTree is a rooted BFS tree over the surviving node set, with
// parent pointers kept as ids (not object references) so it stays
// serializable and cycle-free.
type SpanningTree struct {
	Root   string
	Parent map[string]string
	Depth  map[string]int
	Order  []string
}

// SpanningTree builds a BFS spanning tree rooted at root. Returns
// ErrUnknownNode if root is not present.
//
// Complexity: O(|V|+|E|).
func (v *View) SpanningTree(root string) (*SpanningTree, error) {
	g := v.graph()
	if !g.HasVertex(root) {
		return nil, ErrUnknownNode
	}
	res, err := bfs.BFS(g, root)
	if err != nil {
		return nil, err
	}
	return &SpanningTree{
		Root:   root,
		Parent: res.Parent,
		Depth:  res.Depth,
		Order:  res.Order,
	}, nil
}
