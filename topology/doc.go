// Package topology provides reusable "functional-options"-style building
// blocks for deterministic, seeded generation of routing-core test graphs:
// grids, Erdős–Rényi, Barabási–Albert, and Watts–Strogatz topologies.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, etc.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Topology constructors (Constructor implementations):
//     – Grid:            rows×cols orthogonal grid, 4-neighborhood.
//     – RandomSparse:     Erdős–Rényi-like, independent edge probability p.
//     – BarabasiAlbert:   preferential-attachment scale-free growth.
//     – WattsStrogatz:    ring lattice with probabilistic rewiring.
//   - Shared constants: DefaultEdgeWeight, MinProbability, MaxProbability,
//     MethodGrid, MethodRandomSparse, MethodBarabasiAlbert, MethodWattsStrogatz.
//
// Guarantees:
//
//   - Idempotent configuration: re-running a constructor on g will not
//     duplicate vertices or edges.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (fmt.Errorf with %w) for invalid build parameters,
//     wrapping sentinel errors for errors.Is.
//   - Documented algorithmic complexity per constructor.
//   - Deterministic for a fixed seed: identical (n, params, seed) produce
//     byte-identical topologies, which is what the routing core's
//     determinism properties (spec §8) are tested against.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package topology
