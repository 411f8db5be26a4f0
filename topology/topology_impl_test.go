// File: topology_impl_test.go
// Package topology_test contains functional tests for all GraphConstructor
// implementations in the topology package, verifying correct topology, counts,
// idempotence, and default weights.
package topology_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/compactroute/engine/core"
	"github.com/compactroute/engine/topology"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// sortedVertices returns the sorted slice of vertex IDs in g.
func sortedVertices(g *core.Graph) []string {
	vs := g.Vertices()
	sort.Strings(vs)
	return vs
}

// sortedEdgeWeights returns a map from edgeKey to weight for all edges in g.
func sortedEdgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}
	return m
}

// TestBuilders_Functional runs table-driven functional tests for each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        topology.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "RandomSparse_p0(5)",
			ctor:  topology.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if len(g.Edges()) != 0 {
					t.Errorf("RandomSparse(p=0): expected 0 edges, got %d", len(g.Edges()))
				}
			},
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  topology.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if len(g.Edges()) != 10 {
					t.Errorf("RandomSparse(p=1): expected 10 edges, got %d", len(g.Edges()))
				}
			},
		},
		{
			name:  "Grid(2x3)",
			ctor:  topology.Grid(2, 3),
			wantV: 6, wantE: 7, // (2*(3-1)) + ((2-1)*3) = 4+3 = 7
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := sortedEdgeWeights(g)
				if _, ok := edges[edgeKey{"0,0", "0,1"}]; !ok {
					t.Error("Grid: missing horizontal edge 0,0→0,1")
				}
				if _, ok := edges[edgeKey{"0,0", "1,0"}]; !ok {
					t.Error("Grid: missing vertical edge 0,0→1,0")
				}
			},
		},
		{
			name:  "BarabasiAlbert(10,2)",
			ctor:  topology.BarabasiAlbert(10, 2),
			wantV: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if len(g.Edges()) == 0 {
					t.Error("BarabasiAlbert: expected a nonzero number of edges")
				}
				// Vertex 0 must have accumulated degree via preferential attachment.
				neighbors, err := g.NeighborIDs("0")
				if err != nil {
					t.Fatalf("BarabasiAlbert: NeighborIDs(0): %v", err)
				}
				if len(neighbors) == 0 {
					t.Error("BarabasiAlbert: vertex 0 expected to have neighbors")
				}
			},
		},
		{
			name:  "WattsStrogatz(10,4,0)",
			ctor:  topology.WattsStrogatz(10, 4, 0.0),
			wantV: 10, wantE: 20, // beta=0: pure ring lattice, n*k/2*2 directed-pair count in undirected AddEdge entries = n*(k/2)
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := sortedEdgeWeights(g)
				if _, ok := edges[edgeKey{"0", "1"}]; !ok {
					t.Error("WattsStrogatz(beta=0): missing ring edge 0→1")
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			graphOpts := []core.GraphOption{core.WithWeighted()}
			bopts := []topology.BuilderOption{topology.WithSeed(7)}
			g, err := topology.BuildGraph(graphOpts, bopts, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph(%s) returned error: %v", tc.name, err)
			}

			if got := len(sortedVertices(g)); got != tc.wantV {
				t.Errorf("vertices: got %d, want %d", got, tc.wantV)
			}
			if tc.wantE > 0 || tc.name == "RandomSparse_p0(5)" {
				if got := len(g.Edges()); got != tc.wantE {
					t.Errorf("edges: got %d, want %d", got, tc.wantE)
				}
			}

			tc.sampleCheck(t, g)

			// idempotence: rerun on a fresh graph with the same seed reproduces the same counts.
			g2, err2 := topology.BuildGraph(graphOpts, bopts, tc.ctor)
			if err2 != nil {
				t.Fatalf("second BuildGraph(%s) returned error: %v", tc.name, err2)
			}
			if len(g2.Vertices()) != len(g.Vertices()) || len(g2.Edges()) != len(g.Edges()) {
				t.Errorf("determinism: counts changed across reruns of %s", tc.name)
			}
		})
	}
}

// TestRandomSparse_Validation verifies sentinel errors for invalid parameters.
func TestRandomSparse_Validation(t *testing.T) {
	t.Parallel()

	_, err := topology.BuildGraph(nil, nil, topology.RandomSparse(0, 0.5))
	assertErrorIs(t, err, topology.ErrTooFewVertices, "RandomSparse(n=0)")

	_, err = topology.BuildGraph(nil, nil, topology.RandomSparse(5, 1.5))
	assertErrorIs(t, err, topology.ErrInvalidProbability, "RandomSparse(p=1.5)")

	_, err = topology.BuildGraph(nil, nil, topology.RandomSparse(5, 0.5))
	assertErrorIs(t, err, topology.ErrNeedRandSource, "RandomSparse(p=0.5, no rng)")
}

// TestGrid_Validation verifies sentinel errors for invalid grid dimensions.
func TestGrid_Validation(t *testing.T) {
	t.Parallel()

	_, err := topology.BuildGraph(nil, nil, topology.Grid(0, 3))
	assertErrorIs(t, err, topology.ErrTooFewVertices, "Grid(0,3)")
}

// TestWattsStrogatz_Validation verifies sentinel errors for invalid parameters.
func TestWattsStrogatz_Validation(t *testing.T) {
	t.Parallel()

	_, err := topology.BuildGraph(nil, nil, topology.WattsStrogatz(10, 3, 0.1))
	assertErrorIs(t, err, topology.ErrTooFewVertices, "WattsStrogatz(k odd)")

	_, err = topology.BuildGraph(nil, nil, topology.WattsStrogatz(10, 4, 1.5))
	assertErrorIs(t, err, topology.ErrInvalidProbability, "WattsStrogatz(beta=1.5)")

	_, err = topology.BuildGraph(nil, nil, topology.WattsStrogatz(10, 4, 0.3))
	assertErrorIs(t, err, topology.ErrNeedRandSource, "WattsStrogatz(beta=0.3, no rng)")
}

// TestBarabasiAlbert_Validation verifies sentinel errors for invalid parameters.
func TestBarabasiAlbert_Validation(t *testing.T) {
	t.Parallel()

	_, err := topology.BuildGraph(nil, nil, topology.BarabasiAlbert(5, 10))
	assertErrorIs(t, err, topology.ErrTooFewVertices, "BarabasiAlbert(m>n)")

	_, err = topology.BuildGraph(nil, nil, topology.BarabasiAlbert(10, 2))
	assertErrorIs(t, err, topology.ErrNeedRandSource, "BarabasiAlbert(no rng)")

	g, err := topology.BuildGraph(nil, []topology.BuilderOption{topology.WithSeed(1)}, topology.BarabasiAlbert(10, 2))
	if err != nil {
		t.Fatalf("BarabasiAlbert(10,2) with seed: %v", err)
	}
	if len(g.Vertices()) != 10 {
		t.Errorf("BarabasiAlbert: expected 10 vertices, got %d", len(g.Vertices()))
	}
}

// assertErrorIs fails the test if err does not wrap want.
func assertErrorIs(t *testing.T, err, want error, ctx string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s: expected error wrapping %v, got %v", ctx, want, err)
	}
}
