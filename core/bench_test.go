package core_test

import (
	"fmt"
	"testing"

	"github.com/compactroute/engine/core"
)

var (
	benchSinkString string
	benchSinkEdges  []*core.Edge
	benchSinkGraph  *core.Graph
)

// BenchmarkAddEdge measures AddEdge throughput on a directed, unweighted
// graph: the construction shape every netview.View uses.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, _ := g.AddEdge("root", fmt.Sprintf("n%d", i), 0)
		benchSinkString = id
	}
}

// BenchmarkNeighbors measures Neighbors on a star topology, the shape
// forward.Decide's per-hop neighbor scan walks.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("center", fmt.Sprintf("n%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		edges, _ := g.Neighbors("center")
		benchSinkEdges = edges
	}
}

// BenchmarkInducedSubgraph measures the cost netview.View.Subgraph pays on
// every churn-driven rebuild.
func BenchmarkInducedSubgraph(b *testing.B) {
	g := core.NewGraph(core.WithDirected(true))
	keep := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("n%d", i)
		keep[id] = i%2 == 0
		_, _ = g.AddEdge("root", id, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkGraph = core.InducedSubgraph(g, keep)
	}
}
