// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil whenever 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: if g.Weighted() then round(cfg.weightFn(cfg.rng)) else 0.
//   - Honors core flags (Directed/Weighted/Loops/Multigraph) without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials / edge checks.
//   - Space: O(1) extra (no global buffers).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable edge-trial order: for each i asc, j asc (undirected uses j>i).
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package topology

import (
	"fmt"

	"github.com/compactroute/engine/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}

		directed := g.Directed()
		loops := g.Looped()

		// include reports whether the trial for a candidate pair succeeds,
		// handling the RNG-less p∈{0,1} edge cases deterministically.
		include := func() bool {
			if cfg.rng == nil {
				return p == 1.0
			}
			return cfg.rng.Float64() <= p
		}

		addIfIncluded := func(u, v string) error {
			if !include() {
				return nil
			}
			w := edgeWeight(g, &cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", MethodRandomSparse, u, v, w, err)
			}
			return nil
		}

		// 3) Sample edges per graph directedness with a stable, documented order.
		if directed {
			for i := 0; i < n; i++ {
				u := cfg.idFn(i)
				for j := 0; j < n; j++ {
					if i == j && !loops {
						continue
					}
					if err := addIfIncluded(u, cfg.idFn(j)); err != nil {
						return err
					}
				}
			}
		} else {
			for i := 0; i < n; i++ {
				u := cfg.idFn(i)
				for j := i + 1; j < n; j++ {
					if err := addIfIncluded(u, cfg.idFn(j)); err != nil {
						return err
					}
				}
			}
		}

		// 4) Success: random sparse graph sampled deterministically for a fixed seed.
		return nil
	}
}
