package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galdiuz/archipeladoku/gridgraph"
)

// TestConnectedComponents_Simple4 uses orthogonal connectivity on
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.ErrorIs(t, gg.Connected(), gridgraph.ErrDisconnected)
}

// TestConnectedComponents_DiagonalApart keeps corner-touching cells apart:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_DiagonalApart(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 9)
	assert.ErrorIs(t, gg.Connected(), gridgraph.ErrDisconnected)
}

func TestConnectedComponents_Threshold(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{2, 1, 2},
	}, gridgraph.GridOptions{LandThreshold: 2})
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 2)
	assert.Equal(t, "+.+\n", gg.Render())
}

func TestConnected_AllWater(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{0, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.ErrorIs(t, gg.Connected(), gridgraph.ErrDisconnected)
}
