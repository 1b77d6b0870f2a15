package region

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/galdiuz/archipeladoku/access"
	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/core"
	"github.com/galdiuz/archipeladoku/dfs"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/options"
	"github.com/galdiuz/archipeladoku/schedule"
)

const methodBuild = "Build"

// ClusterRegionName names the region of cluster id.
func ClusterRegionName(id int) string {
	return fmt.Sprintf("Board %d", id)
}

// OverlapRegionName names the sub-region of a shared block.
func OverlapRegionName(b grid.Coord) string {
	return fmt.Sprintf("Block %s Overlap", b)
}

// Build assembles the world for in. ctx cancels the final acyclicity check.
func Build(ctx context.Context, in Input) (*World, error) {
	if len(in.Clusters) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoClusters)
	}
	if in.Progression != options.ProgressionFixed && in.Progression != options.ProgressionShuffled {
		return nil, fmt.Errorf("%s: %q: %w", methodBuild, in.Progression, options.ErrUnknownProgression)
	}

	w := &World{
		graph:       core.NewGraph(core.WithDirected(true)),
		regions:     make(map[string]*Region),
		connections: make(map[string]Connection),
		byName:      make(map[string]*Location),
		byID:        make(map[int]*Location),
		Completion:  access.HasAtLeast(VictoryItem, 1),
	}
	if err := w.addRegion(MenuName); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	initialCount := min(max(in.InitialUnlockCount, 0), len(in.Order))
	initial := grid.SetOf(in.Order[:initialCount]...)
	reqs := schedule.Requirements(in.Clusters, in.Order, in.InitialUnlockCount)
	owners := cluster.Owners(in.Clusters)

	for _, c := range in.Clusters {
		if err := w.addCluster(in, c, initial, reqs[c.ID], owners); err != nil {
			return nil, fmt.Errorf("%s: cluster %d: %w", methodBuild, c.ID, err)
		}
	}

	switch in.Progression {
	case options.ProgressionFixed:
		w.VictoryRule = access.HasAtLeast(ProgressiveBlock, schedule.MaxRequirement(reqs))
	case options.ProgressionShuffled:
		names := make([]string, 0, len(in.Order)-initialCount)
		for _, b := range in.Order[initialCount:] {
			names = append(names, grid.BlockItemName(b))
		}
		w.VictoryRule = access.HasAll(names...)
	}
	victory := &Location{
		Name:       VictoryLocation,
		Region:     MenuName,
		Rule:       w.VictoryRule,
		LockedItem: VictoryItem,
	}
	if err := w.addLocation(victory); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	topo, err := dfs.TopologicalSort(w.graph, dfs.WithCancelContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	w.topology = topo

	return w, nil
}

func (w *World) addCluster(in Input, c *cluster.Cluster, initial mapset.Set[grid.Coord], req int, owners map[grid.Coord][]int) error {
	name := ClusterRegionName(c.ID)
	if err := w.addRegion(name); err != nil {
		return err
	}

	var rule access.Rule
	switch in.Progression {
	case options.ProgressionFixed:
		rule = access.HasAtLeast(ProgressiveBlock, req)
	case options.ProgressionShuffled:
		var items []string
		for _, b := range c.SortedBlocks() {
			if !initial.Has(b) {
				items = append(items, grid.BlockItemName(b))
			}
		}
		rule = access.HasAll(items...)
	}
	if err := w.connect(MenuName, name, rule); err != nil {
		return err
	}

	for _, anchor := range c.Boards {
		if err := w.addLocation(&Location{Name: grid.BoardName(anchor), ID: grid.BoardID(anchor), Region: name}); err != nil {
			return err
		}
		for off := 0; off < in.BlockSize; off++ {
			row := grid.C(anchor.Row+off, anchor.Col)
			if err := w.addLocation(&Location{Name: grid.RowName(row), ID: grid.RowID(row), Region: name}); err != nil {
				return err
			}
			col := grid.C(anchor.Row, anchor.Col+off)
			if err := w.addLocation(&Location{Name: grid.ColumnName(col), ID: grid.ColumnID(col), Region: name}); err != nil {
				return err
			}
		}
	}

	for _, b := range c.SortedBlocks() {
		if len(owners[b]) < 2 {
			if err := w.addLocation(&Location{Name: grid.BlockName(b), ID: grid.BlockID(b), Region: name}); err != nil {
				return err
			}
			continue
		}
		sub := OverlapRegionName(b)
		if _, ok := w.regions[sub]; !ok {
			if err := w.addRegion(sub); err != nil {
				return err
			}
			if err := w.addLocation(&Location{Name: grid.BlockName(b), ID: grid.BlockID(b), Region: sub}); err != nil {
				return err
			}
		}
		if err := w.connect(name, sub, access.Always()); err != nil {
			return err
		}
	}

	return nil
}

func (w *World) addRegion(name string) error {
	if err := w.graph.AddVertex(name); err != nil {
		return err
	}
	w.regions[name] = &Region{Name: name}
	return nil
}

func (w *World) connect(from, to string, rule access.Rule) error {
	id, err := w.graph.AddEdge(from, to)
	if err != nil {
		return err
	}
	w.connections[id] = Connection{From: from, To: to, Rule: rule}
	return nil
}

func (w *World) addLocation(l *Location) error {
	if _, ok := w.byName[l.Name]; ok {
		return fmt.Errorf("%q: %w", l.Name, ErrDuplicateLocation)
	}
	if l.ID != 0 {
		if _, ok := w.byID[l.ID]; ok {
			return fmt.Errorf("id %d: %w", l.ID, ErrDuplicateLocation)
		}
		w.byID[l.ID] = l
	}
	w.byName[l.Name] = l
	r := w.regions[l.Region]
	r.Locations = append(r.Locations, l)
	return nil
}
