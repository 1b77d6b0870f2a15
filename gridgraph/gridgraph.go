package gridgraph

import (
	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/grid"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: conn4,
	}, nil
}

// FromClusters rasterises the cells covered by clusters. A block anchored at
// (r,c) covers rows r..r+rows-1 and columns c..c+cols-1.
func FromClusters(blockSize int, clusters []*cluster.Cluster, opts GridOptions) (*GridGraph, error) {
	rows, cols, err := grid.Dimensions(blockSize)
	if err != nil {
		return nil, err
	}
	h, w := 0, 0
	for _, c := range clusters {
		c.Blocks.Each(func(b grid.Coord) {
			h = max(h, b.Row+rows-1)
			w = max(w, b.Col+cols-1)
		})
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	values := make([][]int, h)
	owner := make([][]int, h)
	seen := make([][]int, h) // last cluster id counted at the cell
	for y := range values {
		values[y] = make([]int, w)
		owner[y] = make([]int, w)
		seen[y] = make([]int, w)
	}
	for _, c := range clusters {
		c.Blocks.Each(func(b grid.Coord) {
			for y := b.Row - 1; y < b.Row-1+rows; y++ {
				for x := b.Col - 1; x < b.Col-1+cols; x++ {
					if seen[y][x] == c.ID {
						continue
					}
					seen[y][x] = c.ID
					values[y][x]++
					if owner[y][x] == 0 || c.ID < owner[y][x] {
						owner[y][x] = c.ID
					}
				}
			}
		})
	}

	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}
	gg.owner = owner
	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Owner returns the lowest cluster id covering the cell at (row, col), 0 if
// none or if the grid was not built from clusters.
func (gg *GridGraph) Owner(c grid.Coord) int {
	x, y := c.Col-1, c.Row-1
	if gg.owner == nil || !gg.InBounds(x, y) {
		return 0
	}
	return gg.owner[y][x]
}

// Value returns the value of the cell at (row, col), 0 outside the grid.
func (gg *GridGraph) Value(c grid.Coord) int {
	x, y := c.Col-1, c.Row-1
	if !gg.InBounds(x, y) {
		return 0
	}
	return gg.CellValues[y][x]
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
