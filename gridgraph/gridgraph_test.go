package gridgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/gridgraph"
	"github.com/galdiuz/archipeladoku/placement"
)

func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.values, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGridGraph_Copies(t *testing.T) {
	values := [][]int{{0, 1, 0}, {1, 0, 1}}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	values[0][1] = 9

	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, 1, gg.Value(grid.C(1, 2)))
	assert.True(t, gg.InBounds(2, 1))
	assert.False(t, gg.InBounds(3, 0))
	assert.False(t, gg.InBounds(0, -1))
	assert.Zero(t, gg.Value(grid.C(5, 5)))
	assert.Len(t, gg.NeighborOffsets(), 4)
}

func TestFromClusters_Nines(t *testing.T) {
	overlap, err := grid.DefaultOverlap(9)
	require.NoError(t, err)
	anchors, err := placement.PositionBoards(9, overlap, 5)
	require.NoError(t, err)
	clusters, err := cluster.Group(context.Background(), 9, anchors, 1)
	require.NoError(t, err)

	gg, err := gridgraph.FromClusters(9, clusters, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 21, gg.Width)
	assert.Equal(t, 21, gg.Height)
	require.NoError(t, gg.Connected())

	assert.Equal(t, 1, gg.Owner(grid.C(1, 1)))
	assert.Equal(t, 1, gg.Value(grid.C(1, 1)))
	// the corner block under the centre board is shared
	assert.Equal(t, 2, gg.Value(grid.C(8, 8)))
	assert.Zero(t, gg.Value(grid.C(1, 11)))
	assert.Zero(t, gg.Owner(grid.C(1, 11)))

	rendered := gg.Render()
	assert.Len(t, rendered, 22*21)
	assert.Equal(t, "111111111...222222222\n", rendered[:22])

	// corner boards lose one shared block, the centre loses four
	assert.Equal(t, map[int]int{1: 72, 2: 72, 3: 45, 4: 72, 5: 72}, gg.OwnedCells())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, byte('1'), gridgraph.Glyph(1))
	assert.Equal(t, byte('a'), gridgraph.Glyph(10))
	assert.Equal(t, byte('z'), gridgraph.Glyph(35))
	assert.Equal(t, byte('#'), gridgraph.Glyph(36))
	assert.Equal(t, byte('#'), gridgraph.Glyph(0))
}

func TestFromClusters_PartialOverlap(t *testing.T) {
	// 4-boards overlap by one cell; blocks never coincide
	overlap, err := grid.DefaultOverlap(4)
	require.NoError(t, err)
	anchors, err := placement.PositionBoards(4, overlap, 3)
	require.NoError(t, err)
	clusters, err := cluster.Group(context.Background(), 4, anchors, 1)
	require.NoError(t, err)

	gg, err := gridgraph.FromClusters(4, clusters, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.NoError(t, gg.Connected())
	assert.Equal(t, 2, gg.Value(grid.C(4, 4)))
}

func TestFromClusters_Errors(t *testing.T) {
	_, err := gridgraph.FromClusters(7, nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, grid.ErrUnsupportedBlockSize)

	_, err = gridgraph.FromClusters(9, nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
