package harness

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/compactroute/engine/churn"
	"github.com/compactroute/engine/forward"
	"github.com/compactroute/engine/netview"
	"github.com/compactroute/engine/oracle"
)

// ChurnReport compares routing before and after a churn event: the
// "stale" snapshot is the pre-churn oracle read against the post-churn
// (pruned) local adjacency, modeling what happens if the rebuild never
// ran; the "rebuilt" snapshot is the controller's post-rebuild oracle
// over the same pruned adjacency.
type ChurnReport struct {
	DeadNodes      []string
	Stale          *TrialReport
	Rebuilt        *TrialReport
	RebuildLatency time.Duration
}

func pickRandom(nodes []string, rng *rand.Rand, count int) []string {
	idx := rng.Perm(len(nodes))[:count]
	picked := make([]string, count)
	for i, j := range idx {
		picked[i] = nodes[j]
	}
	return picked
}

func pickHighestDegree(view *netview.View, count int) ([]string, error) {
	type nd struct {
		id     string
		degree int
	}
	nodes := view.Nodes()
	ranked := make([]nd, 0, len(nodes))
	for _, id := range nodes {
		nbs, err := view.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, nd{id: id, degree: len(nbs)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].degree != ranked[j].degree {
			return ranked[i].degree > ranked[j].degree
		}
		return ranked[i].id < ranked[j].id
	})
	if count > len(ranked) {
		count = len(ranked)
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = ranked[i].id
	}
	return out, nil
}

// runChurnEvent builds a controller over view, kills deadNodes, and
// compares routing quality before/after the resulting rebuild. Trials
// run over the pruned view so a dead node never appears as a packet
// source or destination.
func runChurnEvent(view *netview.View, seed int64, deadNodes []string, trialsPerRound int) (*ChurnReport, error) {
	controller, err := churn.NewController(view, seed, 1)
	if err != nil {
		return nil, err
	}

	staleSnapshot := controller.Handle().Load()
	staleHandle := oracle.NewHandle(staleSnapshot)

	exclude := make(map[string]struct{}, len(deadNodes))
	for _, id := range deadNodes {
		exclude[id] = struct{}{}
	}
	prunedView := view.Subgraph(exclude)

	start := time.Now()
	for _, id := range deadNodes {
		controller.OnDeath(id)
	}
	latency := time.Since(start)

	staleReport, err := RunTrials(prunedView, staleHandle, seed+1, trialsPerRound)
	if err != nil {
		return nil, err
	}
	rebuiltReport, err := RunTrials(prunedView, controller.Handle(), seed+1, trialsPerRound)
	if err != nil {
		return nil, err
	}

	return &ChurnReport{
		DeadNodes:      deadNodes,
		Stale:          staleReport,
		Rebuilt:        rebuiltReport,
		RebuildLatency: latency,
	}, nil
}

// RandomRemoval removes a seeded-random fraction of view's nodes and
// compares stale vs. rebuilt routing quality, matching the "random X%
// removal" family of scenarios.
func RandomRemoval(view *netview.View, seed int64, fraction float64, trialsPerRound int) (*ChurnReport, error) {
	nodes := view.Nodes()
	count := int(fraction * float64(len(nodes)))
	if count < 1 {
		return nil, fmt.Errorf("harness: removal fraction %.3f too small for %d nodes", fraction, len(nodes))
	}
	rng := rand.New(rand.NewSource(seed))
	dead := pickRandom(nodes, rng, count)
	return runChurnEvent(view, seed, dead, trialsPerRound)
}

// TargetedRemoval removes the fraction*N highest-degree nodes, matching
// the "targeted removal" scenario: without a rebuild, knocking out hubs
// of a scale-free topology collapses delivery almost entirely.
func TargetedRemoval(view *netview.View, seed int64, fraction float64, trialsPerRound int) (*ChurnReport, error) {
	nodes := view.Nodes()
	count := int(fraction * float64(len(nodes)))
	if count < 1 {
		return nil, fmt.Errorf("harness: removal fraction %.3f too small for %d nodes", fraction, len(nodes))
	}
	dead, err := pickHighestDegree(view, count)
	if err != nil {
		return nil, err
	}
	return runChurnEvent(view, seed, dead, trialsPerRound)
}

// DynamicRoundReport is one round of a remove/add churn experiment.
type DynamicRoundReport struct {
	Round   int
	Removed []string
	Added   []string
	Report  *TrialReport
}

// DynamicExperiment runs a fixed number of remove-then-add rounds over
// view, each round removing removeFraction of the currently-live nodes
// and then reviving addFraction × (total node count) of the currently-dead
// ones, capped at the number dead (the §8 "N=500 dynamic experiment"
// shape). A revived node keeps its original edges, since it is the same
// id reappearing in the same graph rather than a fresh join;
// churn.Controller's dead-set only ever grows by design, so each round
// builds a fresh snapshot (BuildSnapshot) over that round's live subgraph
// instead of using a controller at all.
func DynamicExperiment(view *netview.View, seed int64, rounds int, removeFraction, addFraction float64, trialsPerRound int) ([]DynamicRoundReport, error) {
	rng := rand.New(rand.NewSource(seed))
	live := append([]string(nil), view.Nodes()...)
	var dead []string
	reports := make([]DynamicRoundReport, 0, rounds)

	for round := 0; round < rounds; round++ {
		removeCount := int(removeFraction * float64(len(live)))
		var removed []string
		if removeCount > 0 && len(live) > 0 {
			if removeCount > len(live) {
				removeCount = len(live)
			}
			removed = pickRandom(live, rng, removeCount)
			removedSet := make(map[string]struct{}, len(removed))
			for _, id := range removed {
				removedSet[id] = struct{}{}
			}
			var survivors []string
			for _, id := range live {
				if _, gone := removedSet[id]; !gone {
					survivors = append(survivors, id)
				}
			}
			live = survivors
			dead = append(dead, removed...)
		}

		addCount := int(addFraction * float64(len(view.Nodes())))
		var added []string
		if addCount > len(dead) {
			addCount = len(dead)
		}
		if addCount > 0 {
			added = dead[:addCount]
			dead = dead[addCount:]
			live = append(live, added...)
		}

		exclude := make(map[string]struct{}, len(dead))
		for _, id := range dead {
			exclude[id] = struct{}{}
		}
		prunedView := view.Subgraph(exclude)

		var report *TrialReport
		if len(live) >= 2 {
			snap, err := BuildSnapshot(prunedView, seed+int64(round))
			if err != nil {
				return nil, err
			}
			handle := oracle.NewHandle(snap)
			report, err = RunTrials(prunedView, handle, seed+int64(round)+1, trialsPerRound)
			if err != nil {
				return nil, err
			}
		}

		reports = append(reports, DynamicRoundReport{
			Round:   round,
			Removed: removed,
			Added:   added,
			Report:  report,
		})
	}
	return reports, nil
}

// DisconnectionScenario removes a cut set of nodes that splits view into
// multiple components, then verifies that every intra-component trial
// delivers and every cross-component trial fails with Disconnected.
type DisconnectionScenario struct {
	CutSet              []string
	Components          [][]string
	IntraComponentOK    bool
	CrossComponentFails bool
}

// RunDisconnection removes cutSet from view, rebuilds the oracle over
// the surviving subgraph, and checks the two failure-taxonomy
// predictions from spec.md §8 scenario 6.
func RunDisconnection(view *netview.View, seed int64, cutSet []string) (*DisconnectionScenario, error) {
	controller, err := churn.NewController(view, seed, 1)
	if err != nil {
		return nil, err
	}
	for _, id := range cutSet {
		controller.OnDeath(id)
	}

	exclude := make(map[string]struct{}, len(cutSet))
	for _, id := range cutSet {
		exclude[id] = struct{}{}
	}
	prunedView := view.Subgraph(exclude)
	components := prunedView.Components()

	result := &DisconnectionScenario{CutSet: cutSet, Components: components}
	if len(components) < 2 {
		return result, nil
	}

	handle := controller.Handle()
	result.IntraComponentOK = true
	for _, comp := range components {
		if len(comp) < 2 {
			continue
		}
		for i := 0; i+1 < len(comp); i++ {
			outcome, err := routeOne(prunedView, handle, "disc-intra", comp[i], comp[i+1])
			if err != nil {
				return nil, err
			}
			if !outcome.Delivered {
				result.IntraComponentOK = false
			}
		}
	}

	result.CrossComponentFails = true
	for i := 0; i+1 < len(components); i++ {
		if len(components[i]) == 0 || len(components[i+1]) == 0 {
			continue
		}
		outcome, err := routeOne(prunedView, handle, "disc-cross", components[i][0], components[i+1][0])
		if err != nil {
			return nil, err
		}
		if outcome.Delivered || outcome.FailureKind != forward.Disconnected {
			result.CrossComponentFails = false
		}
	}

	return result, nil
}
