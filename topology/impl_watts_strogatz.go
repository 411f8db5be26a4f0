// SPDX-License-Identifier: MIT
//
// impl_watts_strogatz.go — implementation of WattsStrogatz(n, k, beta) constructor.
//
// Canonical model:
//   - Start from a ring lattice: n vertices 0..n-1 arranged on a circle, each
//     connected to its k/2 nearest neighbors on each side (k even).
//   - For each lattice edge (i, i+offset) with offset in [1, k/2], visited in
//     ring order, rewire its far endpoint to a uniformly random vertex with
//     probability beta, avoiding self-loops and existing duplicate edges.
//
// Contract:
//   - n ≥ k+1 and k ≥ MinWSNeighbors, k even (else ErrTooFewVertices).
//   - 0 ≤ beta ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil whenever beta > 0 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(cfg.rng)) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n*k) lattice construction + rewiring passes.
//   - Space: O(n*k) extra for the per-vertex duplicate-tracking sets.
//
// Determinism:
//   - Stable lattice order: i asc, then offset asc in [1, k/2].
//   - Deterministic rewiring decisions for a fixed cfg.rng stream.

package topology

import (
	"fmt"

	"github.com/compactroute/engine/core"
)

// WattsStrogatz returns a Constructor that builds an n-vertex small-world
// graph: a k-regular ring lattice with each edge rewired with probability beta.
func WattsStrogatz(n, k int, beta float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < MinWSNeighbors || k%2 != 0 {
			return fmt.Errorf("%s: k=%d must be even and ≥ %d: %w",
				MethodWattsStrogatz, k, MinWSNeighbors, ErrTooFewVertices)
		}
		if err := validateMin(MethodWattsStrogatz, n, k+1); err != nil {
			return err
		}
		if err := validateProbability(MethodWattsStrogatz, beta); err != nil {
			return err
		}
		if cfg.rng == nil && beta > 0.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodWattsStrogatz, ErrNeedRandSource)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
		}

		// existing tracks endpoints already connected to i to avoid duplicate
		// edges when rewiring (core may or may not permit multigraphs).
		existing := make([]map[int]struct{}, n)
		for i := range existing {
			existing[i] = make(map[int]struct{}, k)
		}
		connect := func(i, j int) {
			existing[i][j] = struct{}{}
			existing[j][i] = struct{}{}
		}

		addEdge := func(i, j int) error {
			u, v := cfg.idFn(i), cfg.idFn(j)
			w := edgeWeight(g, &cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", MethodWattsStrogatz, u, v, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", MethodWattsStrogatz, v, u, w, err)
				}
			}
			connect(i, j)
			return nil
		}

		half := k / 2
		for i := 0; i < n; i++ {
			for offset := 1; offset <= half; offset++ {
				j := (i + offset) % n

				rewireTo := j
				if cfg.rng != nil && cfg.rng.Float64() < beta {
					candidate := rewireCandidate(cfg, n, i, existing[i])
					if candidate >= 0 {
						rewireTo = candidate
					}
				}

				if _, dup := existing[i][rewireTo]; dup {
					// Fall back to the original lattice neighbor rather than
					// skip the edge outright, preserving the target degree.
					rewireTo = j
					if _, stillDup := existing[i][rewireTo]; stillDup {
						continue
					}
				}

				if err := addEdge(i, rewireTo); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// rewireCandidate draws a uniformly random vertex distinct from i and not
// already connected to i, returning -1 if none is found within a bounded
// number of attempts (leaves the caller to keep the original lattice edge).
func rewireCandidate(cfg builderConfig, n, i int, taken map[int]struct{}) int {
	for attempt := 0; attempt < 8*n; attempt++ {
		cand := cfg.rng.Intn(n)
		if cand == i {
			continue
		}
		if _, dup := taken[cand]; dup {
			continue
		}
		return cand
	}
	return -1
}
