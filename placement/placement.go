// Package placement computes board anchors on an implicit square grid.
//
// Boards sit on the cells (r,c) of an L×L grid where r+c is even, so every
// pair of diagonal neighbours overlaps at a corner. Grid cells map to real
// anchors by stepping blockSize minus the overlap:
//
//	anchor = (r·(blockSize−overlap.Rows)+1, c·(blockSize−overlap.Cols)+1)
//
// Anchors are returned in row-major scan order of the grid cells.
package placement

import (
	"errors"
	"fmt"

	"github.com/galdiuz/archipeladoku/grid"
)

var (
	// ErrTooFewBoards indicates a non-positive board count.
	ErrTooFewBoards = errors.New("placement: number of boards must be at least 1")

	// ErrBadOverlap indicates an overlap that leaves no stride between boards.
	ErrBadOverlap = errors.New("placement: overlap must be smaller than the block size")
)

const methodPositionBoards = "PositionBoards"

// cornerCells is the number of (r+c)-even cells on a side×side grid.
func cornerCells(side int) int {
	return (side*side + 1) / 2
}

// SideLength returns the smallest grid side whose corner cells hold n boards.
// The search is iterative; side never exceeds n because cornerCells(n) ≥ n.
func SideLength(n int) int {
	side := 1
	for side < n && cornerCells(side) < n {
		side++
	}
	return side
}

// PositionBoards returns n distinct board anchors for boards of blockSize
// cells per side that overlap by overlap at their corners.
// Complexity: O(L²) time with L = SideLength(n), O(n) memory.
func PositionBoards(blockSize int, overlap grid.Overlap, n int) ([]grid.Coord, error) {
	if _, _, err := grid.Dimensions(blockSize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPositionBoards, err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPositionBoards, n, ErrTooFewBoards)
	}
	if overlap.Rows < 0 || overlap.Cols < 0 || overlap.Rows >= blockSize || overlap.Cols >= blockSize {
		return nil, fmt.Errorf("%s: overlap=%dx%d, blockSize=%d: %w",
			methodPositionBoards, overlap.Rows, overlap.Cols, blockSize, ErrBadOverlap)
	}

	side := SideLength(n)
	strideRows := blockSize - overlap.Rows
	strideCols := blockSize - overlap.Cols

	anchors := make([]grid.Coord, 0, n)
	for r := 0; r < side && len(anchors) < n; r++ {
		for c := 0; c < side && len(anchors) < n; c++ {
			if (r+c)%2 != 0 {
				continue
			}
			anchors = append(anchors, grid.Coord{Row: r*strideRows + 1, Col: c*strideCols + 1})
		}
	}

	return anchors, nil
}
