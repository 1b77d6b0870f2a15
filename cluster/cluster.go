package cluster

import (
	"errors"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/galdiuz/archipeladoku/grid"
)

var (
	// ErrNoAnchors indicates an empty anchor list.
	ErrNoAnchors = errors.New("cluster: no board anchors to group")

	// ErrBadTargetSize indicates a target cluster size below one board.
	ErrBadTargetSize = errors.New("cluster: target size must be at least 1")
)

// Cluster is a group of boards and the blocks they cover.
type Cluster struct {
	// ID is stable and 1-based.
	ID int
	// Boards holds the member board anchors in scan order.
	Boards []grid.Coord
	// Blocks is the union of the members' blocks.
	Blocks mapset.Set[grid.Coord]
}

// Contains reports whether the cluster covers block b.
func (c *Cluster) Contains(b grid.Coord) bool {
	return c.Blocks.Has(b)
}

// HasOrigin reports whether the cluster covers the origin block.
func (c *Cluster) HasOrigin() bool {
	return c.Blocks.Has(grid.Origin)
}

// SortedBlocks returns the cluster's blocks in row/column order.
func (c *Cluster) SortedBlocks() []grid.Coord {
	return grid.SortedSet(c.Blocks)
}

// Union returns every block covered by any cluster.
func Union(clusters []*Cluster) mapset.Set[grid.Coord] {
	all := mapset.New[grid.Coord]()
	for _, c := range clusters {
		c.Blocks.Each(func(b grid.Coord) { all.Put(b) })
	}
	return all
}

// Owners maps each block to the ids of the clusters covering it, ascending.
func Owners(clusters []*Cluster) map[grid.Coord][]int {
	owners := make(map[grid.Coord][]int)
	for _, c := range clusters {
		c.Blocks.Each(func(b grid.Coord) { owners[b] = append(owners[b], c.ID) })
	}
	for _, ids := range owners {
		sort.Ints(ids)
	}
	return owners
}

// FindOrigin returns the first cluster covering the origin block, or nil.
func FindOrigin(clusters []*Cluster) *Cluster {
	for _, c := range clusters {
		if c.HasOrigin() {
			return c
		}
	}
	return nil
}
