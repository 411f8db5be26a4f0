package hyperbolic

import "math"

// boundaryEpsilon is the safety margin kept away from the unit circle.
// A point with ‖p‖ ≥ 1-boundaryEpsilon is considered numerically on the
// boundary and is pulled inward by Clamp.
const boundaryEpsilon = 1e-6

// Point is a coordinate in the open Poincaré disk: a pair of reals with the
// invariant x²+y² < 1-ε. The zero value is the origin.
type Point struct {
	X, Y float64
}

func (p Point) complex() complex128 { return complex(p.X, p.Y) }

func fromComplex(z complex128) Point { return Point{X: real(z), Y: imag(z)} }

// NormSq returns ‖p‖², the squared Euclidean norm.
//
// Complexity: O(1).
func NormSq(p Point) float64 { return p.X*p.X + p.Y*p.Y }

// Norm returns ‖p‖, the Euclidean norm.
//
// Complexity: O(1).
func Norm(p Point) float64 { return math.Sqrt(NormSq(p)) }

// InDisk reports whether p satisfies the open-disk invariant ‖p‖ < 1-ε.
func InDisk(p Point) bool { return NormSq(p) < (1-boundaryEpsilon)*(1-boundaryEpsilon) }

// Clamp pulls p radially inward to radius 1-2ε when ‖p‖ ≥ 1-ε, so the
// result satisfies the strict invariant ‖p‖ < 1-ε; points already strictly
// inside that radius are returned unchanged. This is the only defined
// behavior for points produced by upstream arithmetic that drift onto or
// past the boundary; it never produces an infinite or NaN coordinate.
//
// Complexity: O(1).
func Clamp(p Point) Point {
	n := Norm(p)
	limit := 1 - boundaryEpsilon
	if n < limit {
		return p
	}
	scale := (limit - boundaryEpsilon) / n
	return Point{X: p.X * scale, Y: p.Y * scale}
}
