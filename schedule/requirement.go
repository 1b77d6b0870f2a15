package schedule

import (
	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/grid"
)

// Requirement returns how many unlock items past the initial allotment a
// player needs before every block of c has been delivered:
//
//	max(0, 1 + max index of c's blocks in blocks − initial)
//
// blocks is the sentinel-free order. A cluster with no block in the order
// needs nothing.
func Requirement(c *cluster.Cluster, blocks []grid.Coord, initial int) int {
	last := -1
	for i, b := range blocks {
		if c.Contains(b) {
			last = i
		}
	}
	if last < 0 {
		return 0
	}
	return max(0, last+1-initial)
}

// Requirements computes Requirement for every cluster, keyed by id.
// Complexity: O(B + Σ|cluster blocks|).
func Requirements(clusters []*cluster.Cluster, blocks []grid.Coord, initial int) map[int]int {
	index := make(map[grid.Coord]int, len(blocks))
	for i, b := range blocks {
		index[b] = i
	}
	reqs := make(map[int]int, len(clusters))
	for _, c := range clusters {
		last := -1
		c.Blocks.Each(func(b grid.Coord) {
			if i, ok := index[b]; ok && i > last {
				last = i
			}
		})
		if last < 0 {
			reqs[c.ID] = 0
			continue
		}
		reqs[c.ID] = max(0, last+1-initial)
	}
	return reqs
}

// MaxRequirement returns the largest requirement, 0 for an empty map.
func MaxRequirement(reqs map[int]int) int {
	m := 0
	for _, r := range reqs {
		m = max(m, r)
	}
	return m
}
