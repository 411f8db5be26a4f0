package forward

import "github.com/compactroute/engine/hyperbolic"

// Packet is created at the source and mutated at each forwarder, and is
// destroyed at delivery or TTL expiry. DestCoord is a routing-coordinate
// hint captured at creation time; the FSM never re-resolves it from a
// (possibly rebuilt) registry mid-route.
type Packet struct {
	ID        string
	Source    string
	Dest      string
	DestCoord hyperbolic.Point
	TTL       int

	Mode Mode

	Visited  map[string]struct{}
	Pressure map[string]float64

	RecoveryThreshold float64
	PressureBudget    int

	TreeStack []string

	// TreeVisited tracks nodes Tree mode's own DFS has pushed, kept
	// separate from Visited: a node ruled out by Gravity/Pressure
	// before the packet ever fell into Tree mode must not block a tree
	// path that only Tree mode itself can see.
	TreeVisited map[string]struct{}

	// ModeHistory records every mode switch, in order, for diagnostics
	// and stretch accounting. Each entry is the mode switched into; the
	// initial Gravity mode is never recorded.
	ModeHistory []Mode
}

// NewPacket creates a packet at source routed toward dest with the given
// destination-coordinate hint and hop budget.
func NewPacket(id, source, dest string, destCoord hyperbolic.Point, ttl int) *Packet {
	return &Packet{
		ID:          id,
		Source:      source,
		Dest:        dest,
		DestCoord:   destCoord,
		TTL:         ttl,
		Mode:        ModeGravity,
		Visited:     make(map[string]struct{}),
		Pressure:    make(map[string]float64),
		TreeVisited: make(map[string]struct{}),
	}
}

func (p *Packet) markVisited(id string) {
	p.Visited[id] = struct{}{}
}

func (p *Packet) hasVisited(id string) bool {
	_, ok := p.Visited[id]
	return ok
}

func (p *Packet) markTreeVisited(id string) {
	p.TreeVisited[id] = struct{}{}
}

func (p *Packet) hasTreeVisited(id string) bool {
	_, ok := p.TreeVisited[id]
	return ok
}

func (p *Packet) switchMode(m Mode) {
	p.ModeHistory = append(p.ModeHistory, m)
	p.Mode = m
}
