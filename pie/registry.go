package pie

import (
	"sort"
	"sync"

	"github.com/compactroute/engine/hyperbolic"
)

// Coordinate is a routing coordinate: a disk point plus a version. Embed
// assigns Version 1 to every coordinate, and a rebuild produces a fresh
// Registry whose coordinates again carry Version 1, so the version is not
// incremented across re-embeds; NewRegistryFromRoutes keeps whatever
// version was persisted.
type Coordinate struct {
	hyperbolic.Point
	Version uint64
}

// Registry is the coordinate registry of spec.md §3: per node, a
// topology-independent anchor and a PIE-assigned routing coordinate.
// Safe for concurrent reads; callers must not mutate it after Embed
// returns (a rebuild produces a fresh Registry rather than mutating one
// in place).
type Registry struct {
	mu      sync.RWMutex
	routing map[string]Coordinate
	anchors map[string]hyperbolic.Point
}

func newRegistry() *Registry {
	return &Registry{
		routing: make(map[string]Coordinate),
		anchors: make(map[string]hyperbolic.Point),
	}
}

// NewRegistryFromRoutes rebuilds a Registry directly from previously
// persisted routing coordinates, for checkpoint restore. Anchors are
// recomputed rather than persisted, since AnchorFor is a pure function
// of id.
func NewRegistryFromRoutes(routes map[string]Coordinate) *Registry {
	r := newRegistry()
	for id, c := range routes {
		r.routing[id] = c
		r.anchors[id] = AnchorFor(id)
	}
	return r
}

// Routing returns the routing coordinate for id, if assigned.
func (r *Registry) Routing(id string) (Coordinate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.routing[id]
	return c, ok
}

// Anchor returns the stable, topology-independent anchor point for id.
func (r *Registry) Anchor(id string) (hyperbolic.Point, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.anchors[id]
	return p, ok
}

// Nodes returns the ids with an assigned routing coordinate, sorted.
func (r *Registry) Nodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.routing))
	for id := range r.routing {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) setRouting(id string, p hyperbolic.Point, version uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routing[id] = Coordinate{Point: p, Version: version}
}

func (r *Registry) setAnchor(id string, p hyperbolic.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.anchors[id] = p
}
