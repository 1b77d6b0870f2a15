package region

import (
	"fmt"

	"github.com/galdiuz/archipeladoku/access"
	"github.com/galdiuz/archipeladoku/bfs"
)

// walk explores the regions inv can enter from Menu.
func (w *World) walk(inv access.Inventory) *bfs.Result {
	res, err := bfs.BFS(w.graph, MenuName, bfs.WithFilterNeighbor(func(curr, next string) bool {
		c, ok := w.Connection(curr, next)
		return ok && c.Rule.Eval(inv)
	}))
	if err != nil {
		// Menu always exists and no hook can fail.
		return &bfs.Result{}
	}
	return res
}

// Reachable returns the regions inv can enter from Menu, in visit order.
func (w *World) Reachable(inv access.Inventory) []string {
	return w.walk(inv).Order
}

// Route returns the entrances inv takes from Menu to name, Menu first.
// Regions with several entrances report the one found first.
func (w *World) Route(inv access.Inventory, name string) ([]string, error) {
	if _, ok := w.regions[name]; !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrRegionNotFound)
	}
	path, err := w.walk(inv).PathTo(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnreachable)
	}
	return path, nil
}

// ReachableLocations returns the locations inv can check, sorted by id.
func (w *World) ReachableLocations(inv access.Inventory) []*Location {
	res := w.walk(inv)
	var out []*Location
	for _, l := range w.Locations() {
		if res.Visited(l.Region) && l.Rule.Eval(inv) {
			out = append(out, l)
		}
	}
	return out
}

// CanComplete reports whether inv reaches the victory location.
func (w *World) CanComplete(inv access.Inventory) bool {
	l, ok := w.byName[VictoryLocation]
	if !ok {
		return false
	}
	return w.walk(inv).Visited(l.Region) && l.Rule.Eval(inv)
}
