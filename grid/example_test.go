package grid_test

import (
	"fmt"

	"github.com/galdiuz/archipeladoku/grid"
)

// ExampleBuildBlocks lists the four 2×2 blocks of a 4-board at the origin.
func ExampleBuildBlocks() {
	blocks, _ := grid.BuildBlocks(4, grid.Origin)
	for _, b := range grid.SortedSet(blocks) {
		fmt.Println(b, grid.BlockName(b))
	}

	// Output:
	// 1,1 Solve Block A1
	// 1,3 Solve Block A3
	// 3,1 Solve Block C1
	// 3,3 Solve Block C3
}
