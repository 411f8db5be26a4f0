package harness

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/compactroute/engine/forward"
	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/oracle"
	"github.com/compactroute/engine/pie"
	"github.com/compactroute/engine/tzoracle"
)

// TrialOutcome is the recorded result of routing a single packet.
type TrialOutcome struct {
	Source      string
	Dest        string
	Delivered   bool
	FailureKind forward.FailureKind
	Hops        int
	Stretch     float64 // actual hops / BFS-shortest distance; 0 if not delivered
	ModeCounts  map[forward.Mode]int
}

// TrialReport aggregates a batch of TrialOutcomes.
type TrialReport struct {
	Trials        int
	Delivered     int
	MeanHops      float64
	StdDevHops    float64
	MeanStretch   float64
	StdDevStretch float64
	FailureCounts map[forward.FailureKind]int
	Outcomes      []TrialOutcome
}

// defaultTTL bounds a trial's hop budget comfortably above any plausible
// route length so TTL exhaustion never masks a real routing failure.
func defaultTTL(n int) int {
	if n < 16 {
		return 16
	}
	return 4 * n
}

// BuildSnapshot embeds view and builds its TZ oracle, returning a
// ready-to-route oracle.Snapshot.
func BuildSnapshot(view *netview.View, seed int64) (*oracle.Snapshot, error) {
	reg, tree, _, err := pie.Embed(view, seed)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	tz, _, err := tzoracle.Build(view, seed)
	if err != nil {
		return nil, fmt.Errorf("tz build: %w", err)
	}
	return &oracle.Snapshot{Routing: reg, Tree: tree, TZ: tz, View: view, Generation: 0}, nil
}

// RunTrials routes numTrials seeded random source-destination pairs
// through the forwarding FSM over handle's current snapshot, and
// aggregates hop counts, mode distribution, and stretch relative to the
// BFS-shortest distance in view.
func RunTrials(view *netview.View, handle *oracle.Handle, seed int64, numTrials int) (*TrialReport, error) {
	nodes := view.Nodes()
	if len(nodes) < 2 {
		return nil, fmt.Errorf("harness: need at least 2 nodes, got %d", len(nodes))
	}
	rng := rand.New(rand.NewSource(seed))

	report := &TrialReport{
		Trials:        numTrials,
		FailureCounts: make(map[forward.FailureKind]int),
		Outcomes:      make([]TrialOutcome, 0, numTrials),
	}
	var hops, stretches []float64

	for i := 0; i < numTrials; i++ {
		src := nodes[rng.Intn(len(nodes))]
		dest := nodes[rng.Intn(len(nodes))]
		for dest == src {
			dest = nodes[rng.Intn(len(nodes))]
		}

		outcome, err := routeOne(view, handle, fmt.Sprintf("trial-%d", i), src, dest)
		if err != nil {
			return nil, err
		}
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Delivered {
			report.Delivered++
			hops = append(hops, float64(outcome.Hops))
			stretches = append(stretches, outcome.Stretch)
		} else {
			report.FailureCounts[outcome.FailureKind]++
		}
	}

	if len(hops) > 0 {
		report.MeanHops, report.StdDevHops = stat.MeanStdDev(hops, nil)
		report.MeanStretch, report.StdDevStretch = stat.MeanStdDev(stretches, nil)
	}
	return report, nil
}

func routeOne(view *netview.View, handle *oracle.Handle, id, src, dest string) (TrialOutcome, error) {
	snap := handle.Load()
	destCoord, ok := snap.Routing.Routing(dest)
	if !ok {
		// dest was never embedded by the current oracle build (a
		// different component than the build's root); mirror the same
		// classification Decide itself would reach, without needing a
		// coordinate to construct the packet.
		return TrialOutcome{Source: src, Dest: dest, FailureKind: forward.Disconnected}, nil
	}

	shortest, _, _, err := view.BFSFrom(src)
	if err != nil {
		return TrialOutcome{}, err
	}
	shortestDist, reachable := shortest[dest]

	pkt := forward.NewPacket(id, src, dest, destCoord.Point, defaultTTL(view.NodeCount()))
	outcome := TrialOutcome{Source: src, Dest: dest, ModeCounts: make(map[forward.Mode]int)}

	cur := src
	for {
		decision := forward.Decide(cur, pkt, handle, view)
		switch decision.Kind {
		case forward.Deliver:
			outcome.Delivered = true
			if reachable && shortestDist > 0 {
				outcome.Stretch = float64(outcome.Hops) / float64(shortestDist)
			}
			return outcome, nil
		case forward.Fail:
			outcome.FailureKind = decision.Reason
			return outcome, nil
		case forward.Forward:
			outcome.ModeCounts[decision.NewMode]++
			outcome.Hops++
			cur = decision.NextHop
		}
	}
}
