package tzoracle

import (
	"math"
	"math/rand"
	"sort"
)

// landmarkCount returns ⌈k·√n⌉, clamped to [1, n].
func landmarkCount(n int, k float64) int {
	count := int(math.Ceil(k * math.Sqrt(float64(n))))
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}
	return count
}

// sampleLandmarks draws count distinct ids from nodes (already
// lexicographically sorted) using a PRNG seeded exactly once per build,
// then refreezes the draw in sorted order so Landmarks is independent of
// permutation order and only depends on (nodes, seed, count).
func sampleLandmarks(nodes []string, seed int64, count int) []string {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(nodes))

	chosen := make([]string, count)
	for i := 0; i < count; i++ {
		chosen[i] = nodes[perm[i]]
	}
	sort.Strings(chosen)
	return chosen
}
