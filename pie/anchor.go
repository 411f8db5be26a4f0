package pie

import (
	"hash/fnv"
	"math"

	"github.com/compactroute/engine/hyperbolic"
)

// anchorMaxRadius keeps hashed anchors comfortably inside the open disk,
// clear of the boundary-clamping threshold.
const anchorMaxRadius = 0.9

var angleSalt = []byte{0x41}

// AnchorFor recomputes the deterministic, topology-independent anchor
// point for id. It is exported so a checkpoint restore can regenerate
// anchors without having to persist them (see checkpoint.Restore).
func AnchorFor(id string) hyperbolic.Point {
	return anchorFor(id)
}

// anchorFor derives a deterministic, topology-independent point for id:
// one FNV-1a hash picks a radius, a second (salted) hash picks an angle,
// folding the id into the disk. The same id always maps to the same
// anchor, regardless of graph structure or embedding order.
func anchorFor(id string) hyperbolic.Point {
	rHash := fnv.New64a()
	rHash.Write([]byte(id))
	r := fraction(rHash.Sum64()) * anchorMaxRadius

	aHash := fnv.New64a()
	aHash.Write([]byte(id))
	aHash.Write(angleSalt)
	theta := fraction(aHash.Sum64()) * 2 * math.Pi

	return hyperbolic.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// fraction maps a uint64 hash onto [0,1).
func fraction(h uint64) float64 {
	return float64(h) / (float64(math.MaxUint64) + 1)
}
