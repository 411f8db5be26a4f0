package hyperbolic

import (
	"math"
	"math/cmplx"
)

// mobiusAutomorphism applies the disk automorphism sending a to the origin
// to z: f_a(z) = (z-a) / (1 - conj(a)·z). Its inverse is f_{-a}.
func mobiusAutomorphism(a, z complex128) complex128 {
	denom := 1 - cmplx.Conj(a)*z
	if cmplx.Abs(denom) < boundaryEpsilon {
		denom = complex(boundaryEpsilon, 0)
	}
	return (z - a) / denom
}

// Geodesic returns n points sampled at equal hyperbolic-arc-length intervals
// along the geodesic segment from p to q, inclusive of both endpoints when
// n≥2. The geodesic is, in general, the circular arc through p and q
// orthogonal to the unit circle; the degenerate case where p, q, and the
// origin are collinear (a Euclidean diameter) falls out of the same
// computation without a special branch, since translating p to the origin
// always reduces the segment to a straight radius.
//
// n≤0 returns nil; n==1 returns []Point{p}.
//
// Complexity: O(n).
func Geodesic(p, q Point, n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{p}
	}

	pz := p.complex()
	qShifted := mobiusAutomorphism(pz, q.complex())
	r := cmplx.Abs(qShifted)

	points := make([]Point, n)
	if r < boundaryEpsilon {
		for i := range points {
			points[i] = p
		}
		return points
	}

	maxHyp := math.Atanh(math.Min(r, 1-boundaryEpsilon))
	dir := qShifted / complex(r, 0)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		hypR := math.Tanh(t * maxHyp)
		shifted := dir * complex(hypR, 0)
		back := mobiusAutomorphism(-pz, shifted)
		points[i] = Clamp(fromComplex(back))
	}
	return points
}
