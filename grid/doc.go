// Package grid holds the coordinate math behind overlapping boards: how a
// board of a given block size factors into blocks, the default overlap
// between neighbouring boards, and the block set tiling one board.
//
// What:
//
//   - Coord is a (row, col) cell on an unbounded logical grid; rows and
//     columns are 1-based for real content.
//   - Non-positive coordinates are filler sentinels, never real blocks.
//   - Origin (1,1) is the block unlocked first in every generation.
//   - Names and numeric ids for blocks, rows, columns and boards.
//
// Supported block sizes:
//
//	4 → 2×2   6 → 2×3   8 → 2×4   9 → 3×3   12 → 3×4   16 → 4×4
//
// Errors:
//
//   - ErrUnsupportedBlockSize: block size outside the supported set.
//
// Complexity:
//
//   - Dimensions, DefaultOverlap: O(1).
//   - BuildBlocks: O(blockSize) time and memory.
package grid
