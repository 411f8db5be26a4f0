// Package netview wraps a core.Graph with the generation-tagged, directed,
// unweighted adjacency view routing operations are built on: stable neighbor
// iteration, BFS, spanning-tree construction, subgraph-by-exclusion, and
// connected-component partitioning.
//
// Edges are added in both directions: the physical neighbor relation
// routing reasons about is symmetric, even though the underlying core.Graph
// is constructed in directed mode to keep the two AddEdge entries explicit
// and independently removable (a dead link in one direction does not
// silently remove the other).
package netview
