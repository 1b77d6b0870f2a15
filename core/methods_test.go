package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galdiuz/archipeladoku/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("Menu"))
	require.NoError(t, g.AddVertex("Menu"), "re-adding is a no-op")
	assert.True(t, g.HasVertex("Menu"))
	assert.False(t, g.HasVertex("Board 1"))
	assert.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex("Menu")
	require.NoError(t, err)
	v.Metadata["kind"] = "root"
	again, _ := g.Vertex("Menu")
	assert.Equal(t, "root", again.Metadata["kind"])

	_, err = g.Vertex("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	id, err := g.AddEdge("Menu", "Board 1")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	assert.True(t, g.HasEdge("Menu", "Board 1"))
	assert.False(t, g.HasEdge("Board 1", "Menu"))

	again, err := g.AddEdge("Menu", "Board 1")
	require.NoError(t, err)
	assert.Equal(t, id, again, "one edge per ordered pair")
	assert.Equal(t, 1, g.EdgeCount())

	ids, err := g.NeighborIDs("Board 1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.True(t, g.HasEdge("B", "A"))

	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)

	again, err := g.AddEdge("B", "A")
	require.NoError(t, err)
	assert.Equal(t, "e1", again)
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, g.HasVertex("A"), "rejected loop adds no vertex")
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 12; i >= 1; i-- {
		_, err := g.AddEdge("hub", fmt.Sprintf("n%02d", i))
		require.NoError(t, err)
	}
	edges, err := g.Neighbors("hub")
	require.NoError(t, err)
	require.Len(t, edges, 12)
	assert.Equal(t, "n12", edges[0].To)
	assert.Equal(t, "n01", edges[11].To)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	all := g.Edges()
	require.Len(t, all, 12)
	assert.Equal(t, "e1", all[0].ID)
	assert.Equal(t, "e12", all[11].ID)
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

// TestConcurrentReads ensures a finished graph can be queried from many goroutines.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge("Menu", fmt.Sprintf("Board %d", i))
		require.NoError(t, err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids, err := g.NeighborIDs("Menu")
			assert.NoError(t, err)
			assert.Len(t, ids, 50)
		}()
	}
	wg.Wait()
}
