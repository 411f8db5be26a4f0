// Package hyperbolic implements the Poincaré-disk metric kernel used to
// assign and compare routing coordinates: distance, geodesic interpolation,
// Möbius addition, and boundary clamping.
//
// All operations are pure functions over (x, y) pairs; there is no shared
// state and nothing here allocates beyond its return value.
package hyperbolic
