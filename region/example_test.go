package region_test

import (
	"context"
	"fmt"

	"github.com/galdiuz/archipeladoku/access"
	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/options"
	"github.com/galdiuz/archipeladoku/region"
)

// ExampleBuild wires a single 4-block board whose blocks are all granted up front.
func ExampleBuild() {
	clusters, _ := cluster.Group(context.Background(), 4, []grid.Coord{grid.Origin}, 1)
	w, err := region.Build(context.Background(), region.Input{
		BlockSize:          4,
		Progression:        options.ProgressionFixed,
		Clusters:           clusters,
		Order:              clusters[0].SortedBlocks(),
		InitialUnlockCount: 4,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(w.Regions())
	fmt.Println(w.LocationCount())
	fmt.Println(w.VictoryRule)
	fmt.Println(w.CanComplete(access.NewBag()))
	// Output:
	// [Board 1 Menu]
	// 14
	// Always
	// true
}
