package netview

import "github.com/compactroute/engine/bfs"

// BFSFrom runs a breadth-first search from source, returning per-node
// distance and parent maps plus visit order. Returns ErrUnknownNode if
// source is not present in the view.
//
// Complexity: O(|V|+|E|).
func (v *View) BFSFrom(source string) (dist map[string]int, parent map[string]string, order []string, err error) {
	g := v.graph()
	if !g.HasVertex(source) {
		return nil, nil, nil, ErrUnknownNode
	}
	res, err := bfs.BFS(g, source)
	if err != nil {
		return nil, nil, nil, err
	}
	return res.Depth, res.Parent, res.Order, nil
}
