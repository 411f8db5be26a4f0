package tzoracle

// HopInfo is the routing info a node keeps about one landmark: the
// distance to it and the first hop on the shortest path toward it (the
// node's own parent in the landmark's BFS tree).
type HopInfo struct {
	Dist    int
	NextHop string
}

// BunchEntry is one member of a node's bunch: a node strictly closer than
// the owner's nearest landmark, its distance, and the first hop from the
// owner toward it.
type BunchEntry struct {
	Node    string
	Dist    int
	NextHop string
}

// Bunch is a node's bunch, frozen sorted by Node for deterministic
// emission and binary-searchable lookup.
type Bunch []BunchEntry

func (b Bunch) find(node string) (BunchEntry, bool) {
	lo, hi := 0, len(b)
	for lo < hi {
		mid := (lo + hi) / 2
		if b[mid].Node < node {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(b) && b[lo].Node == node {
		return b[lo], true
	}
	return BunchEntry{}, false
}

// Disconnected reports a component other than the one the oracle was
// built over. It has the same shape as pie.Disconnected, but the two
// builders choose their component independently.
type Disconnected struct {
	Nodes []string
}

// Oracle is an immutable Thorup–Zwick compact routing structure: a
// sampled landmark set, per-node bunches, per-node landmark routing info,
// and each node's designated (nearest) landmark.
type Oracle struct {
	Bunches      map[string]Bunch
	LandmarkInfo map[string]map[string]HopInfo
	Landmarks    []string
	LandmarkOf   map[string]string
	Generation   uint64
}
