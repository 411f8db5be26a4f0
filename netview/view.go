package netview

import (
	"errors"
	"sync"

	"github.com/compactroute/engine/core"
)

// ErrUnknownNode indicates an operation referenced a node id not present
// in the view. Per the graph-view contract, lookups of an unknown id are
// a *not-present* result, not a fault; callers that want an error (BFS,
// spanning tree) get ErrUnknownNode, while plain membership queries
// (HasNode) simply return false.
var ErrUnknownNode = errors.New("netview: unknown node")

// View is a generation-tagged adjacency view over a core.Graph: every
// structural mutation (AddNode, RemoveNode, AddEdge, RemoveEdge) bumps the
// generation counter so callers can detect that the topology underneath an
// oracle handle has changed.
type View struct {
	mu  sync.RWMutex
	g   *core.Graph
	gen uint64
}

// New returns an empty, directed, unweighted View.
func New() *View {
	return &View{g: core.NewGraph(core.WithDirected(true))}
}

// FromGraph wraps an existing core.Graph as a View at generation 0. The
// graph is taken as-is; callers constructing one for this purpose should
// use core.WithDirected(true) and leave it unweighted, matching New.
func FromGraph(g *core.Graph) *View {
	return &View{g: g}
}

// Generation returns the current generation counter.
//
// Complexity: O(1).
func (v *View) Generation() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.gen
}

// AddNode inserts a node if missing. Re-adding an existing node is a no-op
// and does not bump the generation counter.
func (v *View) AddNode(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.g.HasVertex(id) {
		return nil
	}
	if err := v.g.AddVertex(id); err != nil {
		return err
	}
	v.gen++
	return nil
}

// RemoveNode deletes a node and its incident edges, bumping the generation
// counter. Returns ErrUnknownNode if the node is not present.
func (v *View) RemoveNode(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.g.HasVertex(id) {
		return ErrUnknownNode
	}
	if err := v.g.RemoveVertex(id); err != nil {
		return err
	}
	v.gen++
	return nil
}

// AddEdge adds the neighbor relation u↔w in both directions, bumping the
// generation counter once both directions are in place; if either
// insertion fails, the error is returned and the counter is not bumped.
func (v *View) AddEdge(u, w string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, err := v.g.AddEdge(u, w, 0); err != nil {
		return err
	}
	if u != w {
		if _, err := v.g.AddEdge(w, u, 0); err != nil {
			return err
		}
	}
	v.gen++
	return nil
}

// RemoveEdge removes the neighbor relation u↔v in both directions. It is
// tolerant of one direction already being absent (a prior asymmetric
// removal), but reports ErrUnknownNode if neither direction exists.
func (v *View) RemoveEdge(u, w string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	removedAny := false
	if eid, ok := v.firstEdgeID(u, w); ok {
		if err := v.g.RemoveEdge(eid); err != nil {
			return err
		}
		removedAny = true
	}
	if u != w {
		if eid, ok := v.firstEdgeID(w, u); ok {
			if err := v.g.RemoveEdge(eid); err != nil {
				return err
			}
			removedAny = true
		}
	}
	if !removedAny {
		return ErrUnknownNode
	}
	v.gen++
	return nil
}

// firstEdgeID returns the id of an edge from→to, if one exists. Must be
// called with v.mu held.
func (v *View) firstEdgeID(from, to string) (string, bool) {
	edges, err := v.g.Neighbors(from)
	if err != nil {
		return "", false
	}
	for _, e := range edges {
		if e.To == to {
			return e.ID, true
		}
	}
	return "", false
}

// HasNode reports whether id is present in the view.
func (v *View) HasNode(id string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.g.HasVertex(id)
}

// Nodes returns all node ids in stable lexicographic order.
func (v *View) Nodes() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.g.Vertices()
}

// NodeCount returns the number of nodes currently in the view.
func (v *View) NodeCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.g.VertexCount()
}

// NeighborIDs returns the neighbor ids of id in stable order, or
// ErrUnknownNode if id is not present.
func (v *View) NeighborIDs(id string) ([]string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.g.HasVertex(id) {
		return nil, ErrUnknownNode
	}
	return v.g.NeighborIDs(id)
}

// HasEdgeBetween reports whether u and w are directly connected (either
// direction).
func (v *View) HasEdgeBetween(u, w string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.g.HasEdge(u, w) || v.g.HasEdge(w, u)
}

// graph returns the underlying core.Graph for read-only use by other
// methods in this package. Must be called without v.mu held by the caller
// (it acquires its own read lock internally via the returned snapshot
// semantics: core.Graph is itself safe for concurrent reads).
func (v *View) graph() *core.Graph {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.g
}
