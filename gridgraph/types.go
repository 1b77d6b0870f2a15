package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDisconnected indicates a layout made of more than one island.
	ErrDisconnected = errors.New("gridgraph: layout is not connected")
)

// conn4 lists the orthogonal neighbor offsets N, E, S, W. Boards always
// share whole blocks, so diagonal contact never joins two islands.
var conn4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
}

// DefaultGridOptions returns LandThreshold=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the value of the cell at row y+1, column x+1.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	LandThreshold   int
	neighborOffsets [][2]int

	// owner[y][x] is the lowest cluster id covering the cell, 0 if none.
	owner [][]int
}
