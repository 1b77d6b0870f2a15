package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/galdiuz/archipeladoku/access"
	"github.com/galdiuz/archipeladoku/generate"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/gridgraph"
	"github.com/galdiuz/archipeladoku/options"
	"github.com/galdiuz/archipeladoku/region"
)

var (
	steps   int
	showMap bool
)

func init() {
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show regions, cluster requirements and reachability",
		Long: `Run the generation pass and describe the access graph of every player.

The reachability sweep grants unlock items in schedule order and reports how
many locations are open after each step.`,
		Args: cobra.NoArgs,
		RunE: runInspect,
	}
	inspectCmd.Flags().IntVar(&steps, "steps", 8, "Number of sweep steps to report")
	inspectCmd.Flags().BoolVar(&showMap, "map", false, "Draw the cell map of every layout")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	ctxs, err := contexts()
	if err != nil {
		return err
	}
	results, err := generate.RunAll(cmd.Context(), ctxs)
	if err != nil {
		return err
	}
	for _, r := range results {
		describe(cmd.OutOrStdout(), r, ctxs[r.Player-1].Options.Progression)
	}
	return nil
}

func describe(w io.Writer, r *generate.Result, mode options.Progression) {
	fmt.Fprintf(w, "player %d: %d clusters, %d blocks, %d free, %d locations, %d entrances\n",
		r.Player, len(r.Clusters), len(r.Order.Blocks()), r.Initial, r.World.LocationCount(), r.World.ConnectionCount())

	ids := make([]int, 0, len(r.Requirements))
	for id := range r.Requirements {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		conn, _ := r.World.Connection(region.MenuName, region.ClusterRegionName(id))
		fmt.Fprintf(w, "  %-10s requirement %-4d %s\n", region.ClusterRegionName(id), r.Requirements[id], conn.Rule)
	}
	fmt.Fprintf(w, "  victory: %s\n", r.World.VictoryRule)
	if showMap {
		fmt.Fprint(w, r.Layout.Render())
		owned := r.Layout.OwnedCells()
		for _, c := range r.Clusters {
			fmt.Fprintf(w, "  %c  %-10s %2d boards, %4d cells alone\n",
				gridgraph.Glyph(c.ID), region.ClusterRegionName(c.ID), len(c.Boards), owned[c.ID])
		}
		fmt.Fprintln(w, "  +  shared by several clusters")
	}

	unlocks := r.Order.Blocks()[r.Initial:]
	bag := access.NewBag()
	report := func(n int) {
		fmt.Fprintf(w, "  after %4d unlocks: %4d locations, %3d regions\n",
			n, len(r.World.ReachableLocations(bag)), len(r.World.Reachable(bag)))
	}
	report(0)
	stride := max(1, len(unlocks)/max(1, steps))
	for i, b := range unlocks {
		if mode == options.ProgressionFixed {
			bag.Add(region.ProgressiveBlock, 1)
		} else {
			bag.Add(grid.BlockItemName(b), 1)
		}
		if (i+1)%stride == 0 || i == len(unlocks)-1 {
			report(i + 1)
		}
	}
}
