package hyperbolic

import "math"

// Dist returns the Poincaré-disk hyperbolic distance between p and q:
//
//	acosh(1 + 2‖p-q‖² / ((1-‖p‖²)(1-‖q‖²)))
//
// Dist is symmetric and non-negative, and Dist(p,p) == 0 for any p in the
// disk. Near-boundary points are guarded against a zero or negative
// denominator rather than producing +Inf.
//
// Complexity: O(1).
func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	numerator := 2 * (dx*dx + dy*dy)

	denom := (1 - NormSq(p)) * (1 - NormSq(q))
	if denom <= 0 {
		denom = boundaryEpsilon
	}

	arg := 1 + numerator/denom
	if arg < 1 {
		// Rounding can push arg fractionally below 1 when p == q;
		// acosh is undefined there, and the true value is 0.
		arg = 1
	}
	return math.Acosh(arg)
}

// MobiusAdd computes the Möbius addition p⊕q, the hyperbolic analogue of
// Euclidean vector addition on the Poincaré disk. The result is clamped to
// the open disk.
//
// Complexity: O(1).
func MobiusAdd(p, q Point) Point {
	dot := p.X*q.X + p.Y*q.Y
	np, nq := NormSq(p), NormSq(q)

	denom := 1 + 2*dot + np*nq
	if denom == 0 {
		denom = boundaryEpsilon
	}

	cx := (1+2*dot+nq)*p.X + (1-np)*q.X
	cy := (1+2*dot+nq)*p.Y + (1-np)*q.Y

	return Clamp(Point{X: cx / denom, Y: cy / denom})
}
