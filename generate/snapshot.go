package generate

import (
	"encoding/json"

	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/options"
)

// Pair is a coordinate serialised as [row, col].
type Pair [2]int

func pairOf(c grid.Coord) Pair { return Pair{c.Row, c.Col} }

// ClusterData is one cluster in the snapshot.
type ClusterData struct {
	ID        int    `json:"id"`
	Positions []Pair `json:"positions"`
}

// Snapshot is the per-player data handed to the client.
type Snapshot struct {
	BlockSize        int                      `json:"blockSize"`
	NumberOfBoards   int                      `json:"numberOfBoards"`
	Progression      options.Progression      `json:"progression"`
	Clusters         []ClusterData            `json:"clusters"`
	BlockUnlockOrder []Pair                   `json:"blockUnlockOrder"`
	Difficulty       options.Difficulty       `json:"difficulty"`
	LocationScouting options.LocationScouting `json:"locationScouting"`
	Seed             uint32                   `json:"seed"`
}

// NewSnapshot builds the snapshot; blocks must be sentinel-free.
func NewSnapshot(opts options.Options, clusters []*cluster.Cluster, blocks []grid.Coord, seed uint32) Snapshot {
	s := Snapshot{
		BlockSize:        opts.BlockSize,
		NumberOfBoards:   opts.NumberOfBoards,
		Progression:      opts.Progression,
		Clusters:         make([]ClusterData, 0, len(clusters)),
		BlockUnlockOrder: make([]Pair, 0, len(blocks)),
		Difficulty:       opts.Difficulty,
		LocationScouting: opts.LocationScouting,
		Seed:             seed,
	}
	for _, c := range clusters {
		cd := ClusterData{ID: c.ID, Positions: make([]Pair, 0, len(c.Boards))}
		for _, b := range c.Boards {
			cd.Positions = append(cd.Positions, pairOf(b))
		}
		s.Clusters = append(s.Clusters, cd)
	}
	for _, b := range blocks {
		s.BlockUnlockOrder = append(s.BlockUnlockOrder, pairOf(b))
	}
	return s
}

// JSON encodes the snapshot, indented when indent is set.
func (s Snapshot) JSON(indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
