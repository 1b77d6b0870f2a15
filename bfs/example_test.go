package bfs_test

import (
	"fmt"

	"github.com/galdiuz/archipeladoku/bfs"
	"github.com/galdiuz/archipeladoku/core"
)

// ExampleBFS walks an undirected square A–B–D–C–A from A.
//
//	A───B
//	│   │
//	C───D
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("B", "D")
	_, _ = g.AddEdge("C", "D")

	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order)
	fmt.Println(res.Depth["D"])

	// Output:
	// [A B C D]
	// 2
}
