package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galdiuz/archipeladoku/core"
	"github.com/galdiuz/archipeladoku/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func directed(edges ...[2]string) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1])
	}
	return g
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_UndirectedGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}

func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(directed())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_NoEdges(t *testing.T) {
	g := directed()
	_ = g.AddVertex("C")
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
}

func TestTopo_SimpleChain(t *testing.T) {
	order, err := dfs.TopologicalSort(directed([2]string{"A", "B"}, [2]string{"B", "C"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_Regions mirrors a world: Menu fans out to boards, two boards share
// an overlap region.
func TestTopo_Regions(t *testing.T) {
	g := directed(
		[2]string{"Menu", "Board 1"},
		[2]string{"Menu", "Board 2"},
		[2]string{"Board 1", "Block 7,7 Overlap"},
		[2]string{"Board 2", "Block 7,7 Overlap"},
	)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)
	assert.Equal(t, "Menu", order[0])
	for _, board := range []string{"Board 1", "Board 2"} {
		assert.Less(t, position(order, board), position(order, "Block 7,7 Overlap"))
	}
}

func TestTopo_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		return directed([2]string{"r", "x"}, [2]string{"r", "y"}, [2]string{"r", "z"}, [2]string{"y", "w"})
	}
	first, err := dfs.TopologicalSort(build())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := dfs.TopologicalSort(build())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTopo_Cycles(t *testing.T) {
	_, err := dfs.TopologicalSort(directed([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(directed([2]string{"A", "B"}, [2]string{"B", "A"}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(directed([2]string{"A", "B"}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
