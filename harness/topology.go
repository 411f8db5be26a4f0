package harness

import (
	"github.com/compactroute/engine/core"
	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/topology"
)

// buildView runs topology.BuildGraph over an unweighted, undirected
// graph seeded deterministically, and wraps the result as a netview.View.
func buildView(seed int64, cons ...topology.Constructor) (*netview.View, error) {
	g, err := topology.BuildGraph(
		[]core.GraphOption{core.WithDirected(false)},
		[]topology.BuilderOption{topology.WithSeed(seed)},
		cons...,
	)
	if err != nil {
		return nil, err
	}
	return netview.FromGraph(g), nil
}

// BarabasiAlbertView builds a scale-free BA(n,m) topology.
func BarabasiAlbertView(n, m int, seed int64) (*netview.View, error) {
	return buildView(seed, topology.BarabasiAlbert(n, m))
}

// WattsStrogatzView builds a small-world WS(n,k,beta) topology.
func WattsStrogatzView(n, k int, beta float64, seed int64) (*netview.View, error) {
	return buildView(seed, topology.WattsStrogatz(n, k, beta))
}

// GridView builds an R×C 4-neighborhood grid.
func GridView(rows, cols int, seed int64) (*netview.View, error) {
	return buildView(seed, topology.Grid(rows, cols))
}

// RandomSparseView builds an Erdős–Rényi-style sparse graph.
func RandomSparseView(n int, p float64, seed int64) (*netview.View, error) {
	return buildView(seed, topology.RandomSparse(n, p))
}

// TreeView builds a single spanning tree with no cross edges: a BA(n,1)
// topology, since preferential attachment with one edge per new vertex
// never closes a cycle.
func TreeView(n int, seed int64) (*netview.View, error) {
	return buildView(seed, topology.BarabasiAlbert(n, 1))
}
