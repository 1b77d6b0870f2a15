package region

import (
	"errors"
	"sort"

	"github.com/galdiuz/archipeladoku/access"
	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/core"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/options"
)

var (
	// ErrDuplicateLocation indicates two locations with the same name or id.
	ErrDuplicateLocation = errors.New("region: duplicate location")

	// ErrNoClusters indicates an input without clusters.
	ErrNoClusters = errors.New("region: no clusters")

	// ErrRegionNotFound indicates a lookup of an unknown region.
	ErrRegionNotFound = errors.New("region: region not found")

	// ErrUnreachable indicates a region the inventory cannot enter.
	ErrUnreachable = errors.New("region: region not reachable")
)

// Well-known names.
const (
	MenuName         = "Menu"
	VictoryLocation  = "Solve Everything"
	VictoryItem      = "Victory"
	ProgressiveBlock = "Progressive Block"
)

// Input carries everything Build needs.
type Input struct {
	BlockSize   int
	Progression options.Progression
	Clusters    []*cluster.Cluster
	// Order is the sentinel-free unlock order.
	Order []grid.Coord
	// InitialUnlockCount is the number of leading Order blocks granted for free.
	InitialUnlockCount int
}

// Location is a check the player can complete.
type Location struct {
	Name string
	// ID is 0 for the victory event location.
	ID     int
	Region string
	Rule   access.Rule
	// LockedItem is set on event locations.
	LockedItem string
}

// Region is a named area holding locations.
type Region struct {
	Name      string
	Locations []*Location
}

// Connection is a one-way entrance between regions.
type Connection struct {
	From, To string
	Rule     access.Rule
}

// World is the finished access graph. It is read-only after Build and safe
// for concurrent queries.
type World struct {
	graph       *core.Graph
	regions     map[string]*Region
	connections map[string]Connection // keyed by edge id
	byName      map[string]*Location
	byID        map[int]*Location
	topology    []string

	// VictoryRule guards the victory location.
	VictoryRule access.Rule
	// Completion is the goal: holding the victory item.
	Completion access.Rule
}

// Region returns the region with the given name.
func (w *World) Region(name string) (*Region, error) {
	r, ok := w.regions[name]
	if !ok {
		return nil, ErrRegionNotFound
	}
	return r, nil
}

// Regions returns every region name, sorted.
func (w *World) Regions() []string {
	return w.graph.Vertices()
}

// Topology returns the region names ordered so that every region follows
// all regions with an entrance into it.
func (w *World) Topology() []string {
	return append([]string(nil), w.topology...)
}

// Connections returns every connection ordered by source then target.
func (w *World) Connections() []Connection {
	out := make([]Connection, 0, len(w.connections))
	for _, c := range w.connections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Connection returns the rule on from→to.
func (w *World) Connection(from, to string) (Connection, bool) {
	e, ok := w.graph.Edge(from, to)
	if !ok {
		return Connection{}, false
	}
	c, ok := w.connections[e.ID]
	return c, ok
}

// Location looks a location up by name.
func (w *World) Location(name string) (*Location, bool) {
	l, ok := w.byName[name]
	return l, ok
}

// Locations returns every location sorted by id, then name.
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.byName))
	for _, l := range w.byName {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ConnectionCount returns the number of region entrances.
func (w *World) ConnectionCount() int {
	return w.graph.EdgeCount()
}

// LocationCount returns the number of locations, victory included.
func (w *World) LocationCount() int {
	return len(w.byName)
}
