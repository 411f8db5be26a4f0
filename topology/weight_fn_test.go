// Package topology_test contains unit tests for the WeightFn implementations
// in the topology package, covering both correct behavior and panic conditions.
package topology_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/compactroute/engine/topology"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel() // allow parallel execution of this test

	// table-driven tests for constructor panic conditions
	tests := []struct {
		name        string
		constructor func() topology.WeightFn
	}{
		{"ConstantWeightFn_negative", func() topology.WeightFn { return topology.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() topology.WeightFn { return topology.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() topology.WeightFn { return topology.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() topology.WeightFn { return topology.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() topology.WeightFn { return topology.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() topology.WeightFn { return topology.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		tc := tc // capture range variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // parallel subtest
			// The panic message names the constructor (the part of tc.name before "_").
			topology.AssertPanics(t, func() {
				tc.constructor()
			}, strings.SplitN(tc.name, "_", 2)[0])
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - DefaultWeightFn always returns DefaultEdgeWeight.
//   - ConstantWeightFn returns the fixed value.
//   - UniformWeightFn returns DefaultEdgeWeight on nil RNG, and uniform in [min,max].
//   - From1To100WeightFn returns values in [1,100].
//   - NormalWeightFn returns DefaultEdgeWeight on nil RNG and non-negative samples.
//   - ExponentialWeightFn returns DefaultEdgeWeight on nil RNG and non-negative samples.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel() // allow parallel execution

	const seed = 42
	rng := rand.New(rand.NewSource(seed)) // reproducible RNG

	// DefaultWeightFn: always DefaultEdgeWeight
	if w := topology.DefaultWeightFn(nil); w != topology.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn(nil): expected %g, got %g", topology.DefaultEdgeWeight, w)
	}
	if w := topology.DefaultWeightFn(rng); w != topology.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn(rng): expected %g, got %g", topology.DefaultEdgeWeight, w)
	}

	// ConstantWeightFn: always fixed value
	const constVal = 7.0
	wfnConst := topology.ConstantWeightFn(constVal)
	if w := wfnConst(nil); w != constVal {
		t.Errorf("ConstantWeightFn(nil): expected %g, got %g", constVal, w)
	}
	if w := wfnConst(rng); w != constVal {
		t.Errorf("ConstantWeightFn(rng): expected %g, got %g", constVal, w)
	}

	// UniformWeightFn: nil RNG -> default; equal min==max yields that value when RNG present
	min, max := 3.0, 3.0
	wfnUni := topology.UniformWeightFn(min, max)
	if w := wfnUni(nil); w != topology.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn(nil RNG): expected default %g, got %g", topology.DefaultEdgeWeight, w)
	}
	// with RNG and min==max, always min
	if w := wfnUni(rng); w != min {
		t.Errorf("UniformWeightFn(3,3): expected %g, got %g", min, w)
	}

	// From1To100WeightFn: always in [1,100]
	rng = rand.New(rand.NewSource(seed))
	w := topology.From1To100WeightFn(rng)
	if w < 1 || w > 100 {
		t.Errorf("From1To100WeightFn: expected in [1,100], got %g", w)
	}

	// NormalWeightFn: nil RNG -> default; RNG -> non-negative, clipped
	wfnNorm := topology.NormalWeightFn(10, 2)
	if w := wfnNorm(nil); w != topology.DefaultEdgeWeight {
		t.Errorf("NormalWeightFn(nil RNG): expected default %g, got %g", topology.DefaultEdgeWeight, w)
	}
	rng = rand.New(rand.NewSource(seed))
	w = wfnNorm(rng)
	if w < 0 {
		t.Errorf("NormalWeightFn: expected non-negative, got %g", w)
	}

	// ExponentialWeightFn: nil RNG -> default; RNG -> non-negative
	wfnExp := topology.ExponentialWeightFn(1.5)
	if w := wfnExp(nil); w != topology.DefaultEdgeWeight {
		t.Errorf("ExponentialWeightFn(nil RNG): expected default %g, got %g", topology.DefaultEdgeWeight, w)
	}
	rng = rand.New(rand.NewSource(seed))
	w = wfnExp(rng)
	if w < 0 {
		t.Errorf("ExponentialWeightFn: expected non-negative, got %g", w)
	}
}
