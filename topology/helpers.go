// Package topology provides internal helper functions and constants
// used by GraphConstructor implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with fmt.Errorf("%w", ...) for uniform reporting.
//   - Performance: avoid unnecessary allocations; reuse loop variables.
//   - Readability: explicit naming, minimal nesting, consistent style.
package topology

import (
	"fmt"
	"strconv"

	"github.com/compactroute/engine/core"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1). Idempotent: re-adding an
// existing vertex is a no-op in core.Graph.
func addVerticesWithIDFn(g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		vid := idFn(i)
		if err := g.AddVertex(vid); err != nil {
			return fmt.Errorf("addVerticesWithIDFn: AddVertex(%s): %w", vid, err)
		}
	}
	return nil
}

// edgeWeight resolves the weight to pass to AddEdge: if the graph observes
// weights, sample cfg.weightFn(cfg.rng) and round to the nearest integer;
// otherwise 0. core.Edge.Weight is int64, while WeightFn deals in float64 to
// support continuous distributions (uniform/normal/exponential).
func edgeWeight(g *core.Graph, cfg *builderConfig) int64 {
	if !g.Weighted() {
		return 0
	}
	return int64(roundHalfAwayFromZero(cfg.weightFn(cfg.rng)))
}

// roundHalfAwayFromZero rounds f to the nearest integer value.
func roundHalfAwayFromZero(f float64) float64 {
	if f >= 0 {
		return float64(int64(f + 0.5))
	}
	return float64(int64(f - 0.5))
}

// gridVertexID formats a 2D grid coordinate as "r,c".
// Example: gridVertexID(0,1) → "0,1".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
