package oracle

import (
	"sync/atomic"

	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/pie"
	"github.com/compactroute/engine/tzoracle"
)

// Snapshot is the immutable (coords, TZ tables, spanning tree) triple a
// forwarding decision reads. A rebuild produces a new Snapshot; existing
// ones are never mutated in place.
type Snapshot struct {
	Routing    *pie.Registry
	Tree       *netview.SpanningTree
	TZ         *tzoracle.Oracle
	View       *netview.View
	Generation uint64
}

// Handle is a generation-tagged, atomically swappable reference to the
// current Snapshot. Readers observe it via an acquire-load; the single
// writer (the churn controller) publishes via a release-store, so every
// decision sees a consistent triple, never a mix of old and new fields.
type Handle struct {
	ptr atomic.Pointer[Snapshot]
}

// NewHandle returns a Handle initialized to snap.
func NewHandle(snap *Snapshot) *Handle {
	h := &Handle{}
	h.ptr.Store(snap)
	return h
}

// Load returns the currently installed Snapshot.
func (h *Handle) Load() *Snapshot {
	return h.ptr.Load()
}

// Store publishes a new Snapshot. Only the churn controller calls this.
func (h *Handle) Store(snap *Snapshot) {
	h.ptr.Store(snap)
}

// Generation returns the generation of the currently installed Snapshot.
func (h *Handle) Generation() uint64 {
	snap := h.ptr.Load()
	if snap == nil {
		return 0
	}
	return snap.Generation
}
