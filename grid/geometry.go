package grid

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrUnsupportedBlockSize indicates a block size outside {4,6,8,9,12,16}.
var ErrUnsupportedBlockSize = errors.New("grid: unsupported block size")

// Overlap is the number of cell rows and columns shared by two boards that
// touch at a corner.
type Overlap struct {
	Rows, Cols int
}

// SupportedBlockSizes lists every block size the layout engine accepts.
var SupportedBlockSizes = []int{4, 6, 8, 9, 12, 16}

// Dimensions returns the block factorization of a board: rows×cols == blockSize.
func Dimensions(blockSize int) (rows, cols int, err error) {
	switch blockSize {
	case 4:
		return 2, 2, nil
	case 6:
		return 2, 3, nil
	case 8:
		return 2, 4, nil
	case 9:
		return 3, 3, nil
	case 12:
		return 3, 4, nil
	case 16:
		return 4, 4, nil
	default:
		return 0, 0, fmt.Errorf("Dimensions: block size %d: %w", blockSize, ErrUnsupportedBlockSize)
	}
}

// DefaultOverlap returns the default corner overlap for blockSize.
func DefaultOverlap(blockSize int) (Overlap, error) {
	switch blockSize {
	case 4:
		return Overlap{Rows: 1, Cols: 1}, nil
	case 6, 8:
		return Overlap{Rows: 2, Cols: 2}, nil
	case 9:
		return Overlap{Rows: 3, Cols: 3}, nil
	case 12:
		return Overlap{Rows: 3, Cols: 4}, nil
	case 16:
		return Overlap{Rows: 4, Cols: 4}, nil
	default:
		return Overlap{}, fmt.Errorf("DefaultOverlap: block size %d: %w", blockSize, ErrUnsupportedBlockSize)
	}
}

// BuildBlocks returns the anchors of the blockSize blocks tiling the board
// anchored at anchor. A block is rows cells tall and cols cells wide, so the
// board holds cols block-rows and rows block-columns.
// Complexity: O(blockSize).
func BuildBlocks(blockSize int, anchor Coord) (mapset.Set[Coord], error) {
	rows, cols, err := Dimensions(blockSize)
	if err != nil {
		return mapset.Set[Coord]{}, err
	}
	blocks := mapset.New[Coord]()
	for r := 0; r < cols; r++ {
		for c := 0; c < rows; c++ {
			blocks.Put(Coord{Row: anchor.Row + r*rows, Col: anchor.Col + c*cols})
		}
	}

	return blocks, nil
}
