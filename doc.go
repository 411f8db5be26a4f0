// Package engine is a compact-routing engine for large dynamic graphs.
//
// It combines a hyperbolic greedy embedding (PIE) with a Thorup–Zwick (TZ)
// distance oracle and a multi-mode forwarding state machine, and rebuilds
// the oracle under node churn.
//
// Subpackages, leaves first:
//
//	hyperbolic/ — Poincaré-disk distance, geodesics, clamping
//	core/       — thread-safe Graph/Vertex/Edge substrate
//	bfs/        — breadth-first search over core.Graph
//	netview/    — generation-tagged graph view: BFS, spanning tree, subgraph
//	pie/        — PIE embedder: tree-guided Poincaré-disk coordinates
//	tzoracle/   — Thorup–Zwick landmark/bunch oracle, build + query
//	forward/    — Gravity/Pressure/TZ/Tree forwarding state machine
//	churn/      — heartbeat liveness, full rebuild of the surviving subgraph, atomic oracle swap
//	checkpoint/ — versioned persisted-state records for coord registries
//	topology/   — seeded topology generators (BA, WS, grid, Erdős–Rényi)
//	harness/    — trial runner and churn-round simulator
//	config/     — YAML experiment configuration for cmd/routesim
//	cmd/routesim/ — CLI driver for the experiment harness
//
// The routing core exposes three operations to its collaborators:
// embed(graph) -> coords, build_oracle(graph, seed) -> oracle, and
// route(packet, view) -> decision. Transport, authentication, discovery,
// and visualization are external collaborators, not part of this module.
package engine
