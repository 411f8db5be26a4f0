// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the topology package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package topology

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, m, k)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("topology: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. Covers RandomSparse's p and WattsStrogatz's beta.
var ErrInvalidProbability = errors.New("topology: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("topology: rng is required")

// ErrConstructFailed indicates that BuildGraph could not assemble a
// topology, e.g. because a nil Constructor was supplied.
var ErrConstructFailed = errors.New("topology: construction failed")
