package tzoracle

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/compactroute/engine/netview"
)

// Build samples a landmark set, computes per-landmark BFS trees and
// per-node bunches, and freezes the result into an Oracle. Landmark
// sampling and bunch/landmark-tree computation only ever touch the
// largest component of view (ties broken by smallest node id); every
// other component is reported back as Disconnected rather than silently
// dropped. pie.Embed scopes differently (to its max-degree root's
// component), so the two builders can cover different components of the
// same view.
//
// Complexity: O((|V|+|E|)·(|L|+|V|)) for the parallel BFS passes (one per
// landmark and one per node for its bunch), plus the cost of sorting the
// bunches.
func Build(view *netview.View, seed int64, opts ...Option) (*Oracle, []Disconnected, error) {
	cfg := newConfig(opts...)

	if view.NodeCount() == 0 {
		return nil, nil, ErrEmptyView
	}

	comps := view.Components()
	primaryIdx := 0
	for i := 1; i < len(comps); i++ {
		if len(comps[i]) > len(comps[primaryIdx]) {
			primaryIdx = i
		}
	}

	var disconnected []Disconnected
	for i, comp := range comps {
		if i != primaryIdx {
			disconnected = append(disconnected, Disconnected{Nodes: append([]string(nil), comp...)})
		}
	}

	primary := view
	if len(comps) > 1 {
		exclude := make(map[string]struct{})
		for i, comp := range comps {
			if i == primaryIdx {
				continue
			}
			for _, id := range comp {
				exclude[id] = struct{}{}
			}
		}
		primary = view.Subgraph(exclude)
	}

	nodes := append([]string(nil), comps[primaryIdx]...)
	sort.Strings(nodes)

	lmCount := landmarkCount(len(nodes), cfg.landmarkConstant)
	landmarks := sampleLandmarks(nodes, seed, lmCount)

	landmarkResults := make([]map[string]HopInfo, len(landmarks))
	{
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, l := range landmarks {
			i, l := i, l
			g.Go(func() error {
				dist, parent, _, err := primary.BFSFrom(l)
				if err != nil {
					return err
				}
				info := make(map[string]HopInfo, len(dist))
				for v, d := range dist {
					if v == l {
						info[v] = HopInfo{Dist: 0}
						continue
					}
					info[v] = HopInfo{Dist: d, NextHop: parent[v]}
				}
				landmarkResults[i] = info
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	landmarkInfo := make(map[string]map[string]HopInfo, len(nodes))
	for _, v := range nodes {
		landmarkInfo[v] = make(map[string]HopInfo, len(landmarks))
	}
	for i, l := range landmarks {
		for v, info := range landmarkResults[i] {
			landmarkInfo[v][l] = info
		}
	}

	landmarkOf := make(map[string]string, len(nodes))
	mu := make(map[string]int, len(nodes))
	for _, v := range nodes {
		best := ""
		bestDist := -1
		for _, l := range landmarks {
			info := landmarkInfo[v][l]
			if bestDist == -1 || info.Dist < bestDist {
				bestDist = info.Dist
				best = l
			}
		}
		landmarkOf[v] = best
		mu[v] = bestDist
	}

	bunchResults := make([]Bunch, len(nodes))
	{
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, v := range nodes {
			i, v := i, v
			g.Go(func() error {
				dist, parent, _, err := primary.BFSFrom(v)
				if err != nil {
					return err
				}
				var entries Bunch
				for w, d := range dist {
					if w == v || d >= mu[v] {
						continue
					}
					entries = append(entries, BunchEntry{
						Node:    w,
						Dist:    d,
						NextHop: firstHopFromRoot(v, w, parent),
					})
				}
				sort.Slice(entries, func(a, b int) bool { return entries[a].Node < entries[b].Node })
				bunchResults[i] = entries
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	bunches := make(map[string]Bunch, len(nodes))
	for i, v := range nodes {
		bunches[v] = bunchResults[i]
	}

	return &Oracle{
		Bunches:      bunches,
		LandmarkInfo: landmarkInfo,
		Landmarks:    landmarks,
		LandmarkOf:   landmarkOf,
	}, disconnected, nil
}

// firstHopFromRoot walks the parent chain of w (in a BFS tree rooted at
// root) back toward root, returning the child of root on that path: the
// first hop root must take to reach w.
func firstHopFromRoot(root, w string, parent map[string]string) string {
	cur := w
	for parent[cur] != root {
		cur = parent[cur]
	}
	return cur
}
