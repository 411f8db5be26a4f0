package forward

import (
	"sort"

	"github.com/compactroute/engine/hyperbolic"
	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/oracle"
)

// Forwarder holds the sticky-recovery hysteresis constants used by
// Decide. The zero-argument package-level Decide function routes
// through a package-default Forwarder; construct one with NewForwarder
// to override the defaults.
type Forwarder struct {
	pressureDecay     float64
	pressureIncrement float64
	recoveryMargin    float64
}

// NewForwarder builds a Forwarder with the tuned defaults, overridden by
// any supplied Option.
func NewForwarder(opts ...Option) *Forwarder {
	f := &Forwarder{
		pressureDecay:     defaultPressureDecay,
		pressureIncrement: defaultPressureIncrement,
		recoveryMargin:    defaultRecoveryMargin,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultForwarder = NewForwarder()

// Decide runs the package-default Forwarder. See Forwarder.Decide.
func Decide(u string, pkt *Packet, handle *oracle.Handle, local *netview.View) Decision {
	return defaultForwarder.Decide(u, pkt, handle, local)
}

// Decide computes the next forwarding action for pkt currently at node
// u. It loads the oracle snapshot exactly once (an acquire-load), so the
// whole decision — possibly cascading through several mode transitions
// within this single hop — observes one consistent (coords, TZ tables,
// spanning tree) triple.
//
// Complexity: O(deg(u)) for Gravity/Pressure, O(log|B(u)|) for TZ,
// O(|V|) for Tree (treeNeighbors scans the whole spanning-tree parent map).
func (f *Forwarder) Decide(u string, pkt *Packet, handle *oracle.Handle, local *netview.View) Decision {
	if u == pkt.Dest {
		return deliverDecision()
	}

	pkt.TTL--
	if pkt.TTL < 0 {
		return failDecision(TTLExhausted)
	}
	pkt.markVisited(u)

	snap := handle.Load()
	if snap == nil {
		return failDecision(OracleStale)
	}
	if _, ok := snap.Routing.Routing(pkt.Dest); !ok {
		// The destination was never assigned a coordinate by the
		// current oracle build, meaning it sits in a different
		// connected component than u (pie.Embed/tzoracle.Build only
		// cover the root's component; every other component is
		// reported, not routed to). This is provably unreachable
		// from here, not a fallback exhaustion.
		return failDecision(Disconnected)
	}

	// A hop may cascade through several modes (e.g. Gravity falling
	// through to Pressure, or TZ falling through to Tree) without
	// consuming additional TTL, bounded by the number of modes so a
	// misconfigured cascade can never spin.
	for i := 0; i < len(modeOrder); i++ {
		var (
			decision    Decision
			transitions bool
		)
		switch pkt.Mode {
		case ModeGravity:
			decision, transitions = f.gravityStep(u, pkt, snap, local)
		case ModePressure:
			decision, transitions = f.pressureStep(u, pkt, snap, local)
		case ModeTZ:
			decision, transitions = f.tzStep(u, pkt, snap, local)
		case ModeTree:
			decision, transitions = f.treeStep(u, pkt, snap, local)
		default:
			return failDecision(Unreachable)
		}
		if !transitions {
			return decision
		}
	}
	return failDecision(Unreachable)
}

var modeOrder = [...]Mode{ModeGravity, ModePressure, ModeTZ, ModeTree}

// gravityStep picks the unvisited neighbor minimizing hyperbolic
// distance to the destination coordinate. If none improves on u's own
// distance, it records the recovery threshold, opens a pressure budget,
// and transitions to Pressure.
func (f *Forwarder) gravityStep(u string, pkt *Packet, snap *oracle.Snapshot, local *netview.View) (Decision, bool) {
	neighbors, err := local.NeighborIDs(u)
	if err != nil {
		return failDecision(Unreachable), false
	}

	uCoord, ok := snap.Routing.Routing(u)
	if !ok {
		return failDecision(OracleStale), false
	}
	curDist := hyperbolic.Dist(uCoord.Point, pkt.DestCoord)

	best := ""
	bestDist := curDist
	for _, nb := range neighbors {
		if pkt.hasVisited(nb) {
			continue
		}
		nbCoord, ok := snap.Routing.Routing(nb)
		if !ok {
			continue
		}
		d := hyperbolic.Dist(nbCoord.Point, pkt.DestCoord)
		if d < bestDist {
			bestDist = d
			best = nb
		}
	}

	if best != "" {
		return forwardDecision(best, ModeGravity), false
	}

	pkt.RecoveryThreshold = curDist
	pkt.PressureBudget = len(neighbors) / 2
	pkt.switchMode(ModePressure)
	return Decision{}, true
}

// pressureStep escapes local minima: it picks the unvisited neighbor
// with the lowest pressure (ties by hyperbolic distance, then by id via
// stable neighbor order), penalizes the choice, decays the whole map,
// and spends one unit of budget. Sticky recovery returns to Gravity only
// once u's distance to the destination strictly beats the recorded
// threshold by more than the recovery margin.
func (f *Forwarder) pressureStep(u string, pkt *Packet, snap *oracle.Snapshot, local *netview.View) (Decision, bool) {
	if uCoord, ok := snap.Routing.Routing(u); ok {
		curDist := hyperbolic.Dist(uCoord.Point, pkt.DestCoord)
		if curDist < pkt.RecoveryThreshold-f.recoveryMargin {
			pkt.RecoveryThreshold = 0
			pkt.Pressure = make(map[string]float64)
			pkt.switchMode(ModeGravity)
			return Decision{}, true
		}
	}

	neighbors, err := local.NeighborIDs(u)
	if err != nil {
		return failDecision(Unreachable), false
	}
	var unvisited []string
	for _, nb := range neighbors {
		if !pkt.hasVisited(nb) {
			unvisited = append(unvisited, nb)
		}
	}

	if len(unvisited) == 0 || pkt.PressureBudget <= 0 {
		pkt.switchMode(ModeTZ)
		return Decision{}, true
	}

	best := unvisited[0]
	bestPressure := pkt.Pressure[best]
	bestDist := neighborDist(snap, pkt, best)
	for _, nb := range unvisited[1:] {
		p := pkt.Pressure[nb]
		if p > bestPressure {
			continue
		}
		if p < bestPressure {
			bestPressure, best, bestDist = p, nb, neighborDist(snap, pkt, nb)
			continue
		}
		d := neighborDist(snap, pkt, nb)
		if d < bestDist {
			bestPressure, best, bestDist = p, nb, d
		}
	}

	pkt.Pressure[best] += f.pressureIncrement
	for k, v := range pkt.Pressure {
		pkt.Pressure[k] = v * f.pressureDecay
	}
	pkt.PressureBudget--

	return forwardDecision(best, ModePressure), false
}

// neighborDist returns nb's hyperbolic distance to the destination
// coordinate, or 0 if nb has no routing coordinate (pruned or not yet
// embedded); such a neighbor will simply never win a tie on distance.
func neighborDist(snap *oracle.Snapshot, pkt *Packet, nb string) float64 {
	nbCoord, ok := snap.Routing.Routing(nb)
	if !ok {
		return 0
	}
	return hyperbolic.Dist(nbCoord.Point, pkt.DestCoord)
}

// tzStep consults the oracle at u. A missing route or a next hop no
// longer present in the local view (a dead neighbor) falls through to
// Tree instead of failing outright.
func (f *Forwarder) tzStep(u string, pkt *Packet, snap *oracle.Snapshot, local *netview.View) (Decision, bool) {
	if snap.TZ == nil {
		pkt.switchMode(ModeTree)
		return Decision{}, true
	}
	next, ok := snap.TZ.NextHop(u, pkt.Dest)
	if !ok || !local.HasNode(next) || pkt.hasVisited(next) {
		pkt.switchMode(ModeTree)
		return Decision{}, true
	}
	return forwardDecision(next, ModeTZ), false
}

// treeStep performs an undirected DFS over the installed spanning tree,
// treating both tree children and the tree parent as traversable
// neighbors (the destination may sit anywhere in the tree, not only
// inside u's subtree). It descends into the smallest-id unvisited
// tree-neighbor, or backtracks along the packet's own DFS stack once
// every tree-neighbor of u has been visited. A node is never pushed onto
// the stack twice consecutively, since every push moves to a strictly
// different node and a backtrack only ever revisits the stack's
// existing top. It tracks "visited" for this DFS in TreeVisited rather
// than the packet's global Visited set, so a node Gravity or Pressure
// crossed before falling into Tree mode can still be traversed here.
func (f *Forwarder) treeStep(u string, pkt *Packet, snap *oracle.Snapshot, local *netview.View) (Decision, bool) {
	if snap.Tree == nil {
		return failDecision(Unreachable), false
	}
	if len(pkt.TreeStack) == 0 || pkt.TreeStack[len(pkt.TreeStack)-1] != u {
		pkt.TreeStack = append(pkt.TreeStack, u)
	}
	pkt.markTreeVisited(u)

	for _, n := range treeNeighbors(snap.Tree, u) {
		// The installed tree may be stale relative to local: a tree
		// neighbor that has since died is never a usable next hop.
		if !local.HasNode(n) || pkt.hasTreeVisited(n) {
			continue
		}
		pkt.TreeStack = append(pkt.TreeStack, n)
		pkt.markTreeVisited(n)
		return forwardDecision(n, ModeTree), false
	}

	if len(pkt.TreeStack) < 2 {
		return failDecision(Unreachable), false
	}
	pkt.TreeStack = pkt.TreeStack[:len(pkt.TreeStack)-1]
	prev := pkt.TreeStack[len(pkt.TreeStack)-1]
	return forwardDecision(prev, ModeTree), false
}

// treeNeighbors returns u's tree-adjacent nodes (children and, if
// present, its own parent), sorted ascending for deterministic tie
// breaks.
func treeNeighbors(tree *netview.SpanningTree, u string) []string {
	var neighbors []string
	if parent, ok := tree.Parent[u]; ok {
		neighbors = append(neighbors, parent)
	}
	for id, parent := range tree.Parent {
		if parent == u {
			neighbors = append(neighbors, id)
		}
	}
	sort.Strings(neighbors)
	return neighbors
}
