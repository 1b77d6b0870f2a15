package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/galdiuz/archipeladoku/core"
)

// Vertex states during the walk.
const (
	White = iota // not visited
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirected is returned for an undirected graph.
	ErrUndirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	order []string // post-order
}

// TopologicalSort computes a topological ordering of all vertices in g.
// On a cycle the offending edge is named in the error.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	t.state[id] = Gray

	next, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, to := range next {
		switch t.state[to] {
		case Gray:
			return fmt.Errorf("%s→%s: %w", id, to, ErrCycleDetected)
		case White:
			if err = t.visit(to); err != nil {
				return err
			}
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
