package pie

import (
	"math"
	"math/rand"
	"sort"

	"github.com/compactroute/engine/hyperbolic"
	"github.com/compactroute/engine/netview"
)

// Disconnected reports a component of the view other than the one
// containing the selected root. It is not embedded by this call, and the
// churn controller does not embed it separately: it logs it and leaves it
// without routing coordinates.
type Disconnected struct {
	Nodes []string
}

// window is a node's inherited angular slice, subdivided among its
// children.
type window struct{ start, end float64 }

// Embed assigns a routing coordinate to every node in the root's
// component of view: a max-degree node (ties broken by id, or chosen by
// WithRootSelector) is placed at the origin, its BFS spanning tree is
// built, and each non-root node receives a polar coordinate whose radius
// grows with depth and whose angle subdivides its parent's inherited
// window among siblings. Anchors are computed for every node in the view,
// embedded or not, since they depend only on id.
//
// seed matches tzoracle.Build's signature so a harness can build both
// from one shared value. Embed itself has no random draws unless the
// caller opts into WithRandomRoot, in which case seed breaks max-degree
// ties instead of always picking the smallest id.
//
// Complexity: O(|V|+|E|).
func Embed(view *netview.View, seed int64, opts ...Option) (*Registry, *netview.SpanningTree, []Disconnected, error) {
	cfg := newConfig(opts...)

	nodes := view.Nodes()
	if len(nodes) == 0 {
		return nil, nil, nil, ErrEmptyView
	}

	root, err := selectRoot(view, nodes, seed, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	comps := view.Components()
	var disconnected []Disconnected
	for _, comp := range comps {
		if !containsID(comp, root) {
			disconnected = append(disconnected, Disconnected{Nodes: append([]string(nil), comp...)})
		}
	}

	tree, err := view.SpanningTree(root)
	if err != nil {
		return nil, nil, nil, err
	}

	reg := newRegistry()
	for _, id := range nodes {
		reg.setAnchor(id, anchorFor(id))
	}
	assignCoordinates(reg, view, tree, cfg)

	return reg, tree, disconnected, nil
}

// selectRoot picks the embedding root: cfg.rootSelector if set, otherwise
// the max-degree node among nodes (sorted ascending). Ties go to the
// smallest id by default, or are broken by a seed-driven draw among the
// tied nodes when cfg.randomRoot is set.
func selectRoot(view *netview.View, nodes []string, seed int64, cfg *config) (string, error) {
	if cfg.rootSelector != nil {
		root := cfg.rootSelector(nodes)
		if root == "" || !view.HasNode(root) {
			return "", ErrInvalidRoot
		}
		return root, nil
	}

	bestDegree := -1
	var tied []string
	for _, id := range nodes {
		nbrs, err := view.NeighborIDs(id)
		if err != nil {
			continue
		}
		switch {
		case len(nbrs) > bestDegree:
			bestDegree = len(nbrs)
			tied = tied[:0]
			tied = append(tied, id)
		case len(nbrs) == bestDegree:
			tied = append(tied, id)
		}
	}
	if len(tied) == 0 {
		return nodes[0], nil
	}
	if !cfg.randomRoot || len(tied) == 1 {
		return tied[0], nil
	}
	rng := rand.New(rand.NewSource(seed))
	return tied[rng.Intn(len(tied))], nil
}

// assignCoordinates walks tree.Order (BFS order, parent always preceding
// its children) assigning each node's polar coordinate and propagating a
// subdivided angular window to its children.
func assignCoordinates(reg *Registry, view *netview.View, tree *netview.SpanningTree, cfg *config) {
	windows := map[string]window{tree.Root: {start: 0, end: 2 * math.Pi}}
	reg.setRouting(tree.Root, hyperbolic.Point{}, 1)

	children := make(map[string][]string, len(tree.Order))
	for _, id := range tree.Order {
		if id == tree.Root {
			continue
		}
		parent := tree.Parent[id]
		children[parent] = append(children[parent], id)
	}
	for parent := range children {
		sort.Strings(children[parent])
	}

	for _, u := range tree.Order {
		kids := children[u]
		if len(kids) == 0 {
			continue
		}
		win := windows[u]
		total := win.end - win.start
		n := float64(len(kids))
		slice := total / n

		for i, child := range kids {
			sliceStart := win.start + float64(i)*slice
			sliceEnd := sliceStart + slice
			gap := angularSafetyGap
			if slice <= 2*gap {
				gap = 0
			}
			childWin := window{start: sliceStart + gap, end: sliceEnd - gap}
			windows[child] = childWin

			theta := (childWin.start + childWin.end) / 2
			depth := tree.Depth[child]
			radius := math.Tanh(cfg.depthConstant * float64(depth) / 2)
			p := hyperbolic.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
			reg.setRouting(child, hyperbolic.Clamp(p), 1)
		}
	}
}

func containsID(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
