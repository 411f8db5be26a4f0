package tzoracle

import "github.com/compactroute/engine/netview"

// NextHop implements the §4.E query: a bunch hit is returned directly;
// otherwise the query routes toward v's designated landmark, trusting the
// Thorup–Zwick guarantee that v sits in that landmark's own bunch (a
// caller re-queries NextHop from the landmark once it arrives there).
// ok is false if u or v is unknown to the oracle, or no route is stored.
//
// Complexity: O(log|B(u)|).
func (o *Oracle) NextHop(u, v string) (nextHop string, ok bool) {
	if u == v {
		return u, true
	}
	if bunch, present := o.Bunches[u]; present {
		if entry, found := bunch.find(v); found {
			return entry.NextHop, true
		}
	}
	landmark, present := o.LandmarkOf[v]
	if !present {
		return "", false
	}
	info, present := o.LandmarkInfo[u][landmark]
	if !present || info.NextHop == "" {
		return "", false
	}
	return info.NextHop, true
}

// Stretch walks NextHop from u to v (bounded by the view's node count to
// guard against a malformed oracle looping) and compares the hop count to
// the BFS shortest-path distance. It is a harness/test helper, not on the
// forwarding hot path.
func (o *Oracle) Stretch(view *netview.View, u, v string) (float64, error) {
	dist, _, _, err := view.BFSFrom(u)
	if err != nil {
		return 0, err
	}
	shortest, reached := dist[v]
	if !reached || shortest == 0 {
		return 0, ErrNoRoute
	}

	hops := 0
	cur := u
	limit := view.NodeCount() + 1
	for cur != v {
		next, ok := o.NextHop(cur, v)
		if !ok || hops > limit {
			return 0, ErrNoRoute
		}
		cur = next
		hops++
	}
	return float64(hops) / float64(shortest), nil
}
