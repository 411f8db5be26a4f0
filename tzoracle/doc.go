// Package tzoracle builds and queries a Thorup–Zwick style compact
// distance/routing oracle over a netview.View: a sampled landmark set, a
// per-node bunch of nearby nodes, and per-landmark routing info, together
// giving a stretch-≤3 next-hop query without storing all-pairs distances.
//
// An Oracle is immutable once built. A fresh topology (after a node
// removal or repair) produces a fresh Oracle; there is no in-place update.
package tzoracle
