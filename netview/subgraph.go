package netview

import "github.com/compactroute/engine/core"

// Subgraph returns a new View induced by excluding the given node ids: the
// result contains every node not in exclude, and every edge whose
// endpoints both survive. The excluded nodes and their incident edges are
// dropped; the child view starts at generation 0 (it is a fresh topology
// snapshot, not a mutation of v). The receiver is not modified.
//
// Complexity: O(|V|+|E|).
func (v *View) Subgraph(exclude map[string]struct{}) *View {
	g := v.graph()
	ids := g.Vertices()

	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, excluded := exclude[id]; !excluded {
			keep[id] = true
		}
	}

	return FromGraph(core.InducedSubgraph(g, keep))
}
