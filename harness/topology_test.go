package harness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compactroute/engine/harness"
)

func TestBarabasiAlbertView_NodeCount(t *testing.T) {
	v, err := harness.BarabasiAlbertView(20, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 20, v.NodeCount())
	require.Len(t, v.Components(), 1, "BA graphs are connected by construction")
}

func TestWattsStrogatzView_NodeCount(t *testing.T) {
	v, err := harness.WattsStrogatzView(30, 4, 0.1, 2)
	require.NoError(t, err)
	require.Equal(t, 30, v.NodeCount())
}

func TestGridView_NodeCount(t *testing.T) {
	v, err := harness.GridView(4, 5, 3)
	require.NoError(t, err)
	require.Equal(t, 20, v.NodeCount())
}

func TestRandomSparseView_NodeCount(t *testing.T) {
	v, err := harness.RandomSparseView(25, 0.2, 4)
	require.NoError(t, err)
	require.Equal(t, 25, v.NodeCount())
}

// A BA(n,1) topology attaches every new vertex with exactly one edge, so
// it can never close a cycle: edge count must be exactly n-1.
func TestTreeView_IsActuallyATree(t *testing.T) {
	v, err := harness.TreeView(15, 5)
	require.NoError(t, err)
	require.Equal(t, 15, v.NodeCount())

	edges := 0
	for _, id := range v.Nodes() {
		nbs, err := v.NeighborIDs(id)
		require.NoError(t, err)
		edges += len(nbs)
	}
	edges /= 2
	require.Equal(t, 14, edges, "a tree over 15 nodes has exactly 14 edges")
	require.Len(t, v.Components(), 1)
}

func TestSeededViews_AreDeterministic(t *testing.T) {
	a, err := harness.BarabasiAlbertView(10, 2, 42)
	require.NoError(t, err)
	b, err := harness.BarabasiAlbertView(10, 2, 42)
	require.NoError(t, err)

	for _, id := range a.Nodes() {
		require.True(t, b.HasNode(id))
		na, err := a.NeighborIDs(id)
		require.NoError(t, err)
		nb, err := b.NeighborIDs(id)
		require.NoError(t, err)
		require.ElementsMatch(t, na, nb)
	}
}
