package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/galdiuz/archipeladoku/bfs"
	"github.com/galdiuz/archipeladoku/core"
	"github.com/galdiuz/archipeladoku/grid"
)

const (
	methodGroup = "Group"
	metaIndex   = "index"
)

// boardID names the overlap-graph vertex of the i-th anchor. Zero padding
// keeps lexical neighbour order equal to scan order.
func boardID(i int) string {
	return fmt.Sprintf("board-%04d", i)
}

// Quotas returns the cluster sizes for n boards. The first cluster holds one
// board. Each later cluster holds at most one board more than all earlier
// clusters together, so sizes ramp 1, 2, 4, ... until they reach targetSize.
// The boards left after the ramp are split into ceil(rest/targetSize)
// balanced clusters.
//
// Sorted, no size is more than twice its predecessor. A cluster of q boards
// pays back q·(1+2·blockSize) credits and holds at most q·blockSize blocks,
// so after any cash-in the next smallest cluster stays affordable.
func Quotas(n, targetSize int) []int {
	if n <= 0 || targetSize <= 0 {
		return nil
	}
	quotas := []int{1}
	placed := 1
	for placed < n && placed+1 < targetSize {
		q := min(placed+1, n-placed)
		quotas = append(quotas, q)
		placed += q
	}
	rest := n - placed
	if rest == 0 {
		return quotas
	}
	k := (rest + targetSize - 1) / targetSize
	base, extra := rest/k, rest%k
	for i := 0; i < k; i++ {
		q := base
		if i < extra {
			q++
		}
		quotas = append(quotas, q)
	}
	return quotas
}

// Group partitions anchors into clusters of at most targetSize boards. The
// board covering the origin block forms cluster 1 on its own.
// Complexity: O(n²·blockSize) to build the overlap graph, O(n²) to grow clusters.
func Group(ctx context.Context, blockSize int, anchors []grid.Coord, targetSize int) ([]*Cluster, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("%s: %w", methodGroup, ErrNoAnchors)
	}
	if targetSize < 1 {
		return nil, fmt.Errorf("%s: targetSize=%d: %w", methodGroup, targetSize, ErrBadTargetSize)
	}

	blocks := make([]mapset.Set[grid.Coord], len(anchors))
	for i, a := range anchors {
		b, err := grid.BuildBlocks(blockSize, a)
		if err != nil {
			return nil, fmt.Errorf("%s: anchor %v: %w", methodGroup, a, err)
		}
		blocks[i] = b
	}

	g, err := overlapGraph(blocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGroup, err)
	}

	claimed := make([]bool, len(anchors))
	next := 0 // lowest possibly unclaimed index
	origin := originBoard(blocks)
	quotas := Quotas(len(anchors), targetSize)
	clusters := make([]*Cluster, 0, len(quotas))

	for ci, quota := range quotas {
		members := make([]int, 0, quota)
		for len(members) < quota {
			for claimed[next] {
				next++
			}
			seed := next
			if ci == 0 && origin >= 0 {
				seed = origin
			}
			grown, err := grow(ctx, g, seed, quota-len(members), claimed)
			if err != nil {
				return nil, fmt.Errorf("%s: cluster %d: %w", methodGroup, ci+1, err)
			}
			members = append(members, grown...)
		}
		clusters = append(clusters, assemble(ci+1, members, anchors, blocks))
	}

	return clusters, nil
}

// overlapGraph joins every pair of boards that share a block.
func overlapGraph(blocks []mapset.Set[grid.Coord]) (*core.Graph, error) {
	g := core.NewGraph()
	for i := range blocks {
		id := boardID(i)
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		v.Metadata[metaIndex] = i
	}
	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			if !intersects(blocks[i], blocks[j]) {
				continue
			}
			if _, err := g.AddEdge(boardID(i), boardID(j)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// originBoard returns the index of the first board covering the origin block,
// or -1.
func originBoard(blocks []mapset.Set[grid.Coord]) int {
	for i, b := range blocks {
		if b.Has(grid.Origin) {
			return i
		}
	}
	return -1
}

func intersects(a, b mapset.Set[grid.Coord]) bool {
	if a.Size() > b.Size() {
		a, b = b, a
	}
	hit := false
	a.Each(func(c grid.Coord) {
		if !hit && b.Has(c) {
			hit = true
		}
	})
	return hit
}

// grow claims up to limit unclaimed boards breadth-first from seed.
func grow(ctx context.Context, g *core.Graph, seed, limit int, claimed []bool) ([]int, error) {
	var members []int
	indexOf := func(id string) int {
		v, err := g.Vertex(id)
		if err != nil {
			return -1
		}
		return v.Metadata[metaIndex].(int)
	}

	_, err := bfs.BFS(g, boardID(seed),
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(func(_, nbr string) bool {
			i := indexOf(nbr)
			return i >= 0 && !claimed[i]
		}),
		bfs.WithOnVisit(func(id string, _ int) error {
			i := indexOf(id)
			claimed[i] = true
			members = append(members, i)
			if len(members) == limit {
				return bfs.ErrStop
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func assemble(id int, members []int, anchors []grid.Coord, blocks []mapset.Set[grid.Coord]) *Cluster {
	sort.Ints(members)
	c := &Cluster{
		ID:     id,
		Boards: make([]grid.Coord, 0, len(members)),
		Blocks: mapset.New[grid.Coord](),
	}
	for _, i := range members {
		c.Boards = append(c.Boards, anchors[i])
		blocks[i].Each(func(b grid.Coord) { c.Blocks.Put(b) })
	}
	return c
}
