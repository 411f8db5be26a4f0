package netview

import "github.com/compactroute/engine/bfs"

// Components partitions the view's nodes into connected components, each
// returned as a node-id slice in BFS visit order. Component order follows
// the lexicographic order of each component's first-visited (smallest-id)
// node, since Nodes() is itself lexicographically sorted and components
// are discovered by scanning it in order.
//
// Complexity: O(|V|+|E|).
func (v *View) Components() [][]string {
	g := v.graph()
	nodes := g.Vertices()

	visited := make(map[string]bool, len(nodes))
	var comps [][]string
	for _, n := range nodes {
		if visited[n] {
			continue
		}
		res, err := bfs.BFS(g, n)
		if err != nil {
			// Vertex came straight from g.Vertices(); this can only fail if g
			// is weighted, which a netview-constructed graph never is.
			comps = append(comps, []string{n})
			visited[n] = true
			continue
		}
		comps = append(comps, res.Order)
		for _, id := range res.Order {
			visited[id] = true
		}
	}
	return comps
}
