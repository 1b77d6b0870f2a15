package core_test

import (
	"fmt"

	"github.com/galdiuz/archipeladoku/core"
)

// ExampleGraph_NeighborIDs builds a tiny region graph and lists Menu's exits.
func ExampleGraph_NeighborIDs() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("Menu", "Board 2")
	_, _ = g.AddEdge("Menu", "Board 1")
	_, _ = g.AddEdge("Board 1", "Block 4,4 Overlap")

	ids, _ := g.NeighborIDs("Menu")
	fmt.Println(ids)

	// Output:
	// [Board 1 Board 2]
}
