// SPDX-License-Identifier: MIT
//
// impl_barabasi_albert.go — implementation of BarabasiAlbert(n, m) constructor.
//
// Canonical model:
//   - Start from an m-vertex clique (vertices 0..m-1, all pairs connected).
//   - For each new vertex i = m..n-1, attach m distinct edges to existing
//     vertices, chosen with probability proportional to current degree
//     (preferential attachment), then add i to the degree-weighted pool.
//
// Contract:
//   - n ≥ 1 and 1 ≤ m ≤ n (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(cfg.rng)) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n*m) expected (one degree-weighted draw per new attachment).
//   - Space: O(n*m) for the attachment pool (one slot per edge endpoint).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Deterministic for a fixed seed: the attachment pool is built by
//     appending both endpoints of each accepted edge in a fixed order, so
//     repeated draws against the same cfg.rng stream always pick the same
//     sequence of targets.

package topology

import (
	"fmt"

	"github.com/compactroute/engine/core"
)

// BarabasiAlbert returns a Constructor that grows an n-vertex scale-free
// graph via preferential attachment, each new vertex bringing m edges.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodBarabasiAlbert, n, MinBAAttachment); err != nil {
			return err
		}
		if m < MinBAAttachment || m > n {
			return fmt.Errorf("%s: m=%d must satisfy 1 ≤ m ≤ n=%d: %w",
				MethodBarabasiAlbert, m, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodBarabasiAlbert, ErrNeedRandSource)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodBarabasiAlbert, err)
		}

		addEdge := func(u, v string) error {
			w := edgeWeight(g, &cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", MethodBarabasiAlbert, u, v, w, err)
			}
			if g.Directed() {
				if _, err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", MethodBarabasiAlbert, v, u, w, err)
				}
			}
			return nil
		}

		// Seed clique over the first m vertices so every vertex starts with
		// positive degree (required for the attachment draw to be well-defined).
		pool := make([]int, 0, 2*n*m)
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				if err := addEdge(cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
				pool = append(pool, i, j)
			}
		}

		// Grow the graph one vertex at a time, attaching m edges chosen by
		// sampling uniformly from pool (degree-weighted by construction).
		for i := m; i < n; i++ {
			// Degenerate case (m==1, no seed-clique edges): bootstrap by
			// attaching to the immediately preceding vertex.
			if len(pool) == 0 {
				if err := addEdge(cfg.idFn(i), cfg.idFn(i-1)); err != nil {
					return err
				}
				pool = append(pool, i, i-1)
				continue
			}

			targets := make(map[int]struct{}, m)
			order := make([]int, 0, m) // targets in draw order, for deterministic emission
			attached := 0
			attempts := 0
			// Bounded retries: duplicate draws are discarded until m distinct
			// targets are found; pool always has enough mass once i > 0.
			for attached < m && attempts < maxBAAttempts(m) {
				attempts++
				idx := pool[cfg.rng.Intn(len(pool))]
				if idx == i {
					continue
				}
				if _, dup := targets[idx]; dup {
					continue
				}
				targets[idx] = struct{}{}
				order = append(order, idx)
				attached++
			}
			for _, t := range order {
				if err := addEdge(cfg.idFn(i), cfg.idFn(t)); err != nil {
					return err
				}
				pool = append(pool, i, t)
			}
		}

		return nil
	}
}

// maxBAAttempts bounds the retry budget for a single vertex's attachment
// draw so a pathological pool never spins forever.
func maxBAAttempts(m int) int {
	return 64 * (m + 1)
}
