package grid

import "fmt"

// Numeric id bases; the row and column are packed below them as row*1000+col.
const (
	blockIDBase  = 1_000_000
	rowIDBase    = 2_000_000
	columnIDBase = 3_000_000
	boardIDBase  = 4_000_000
	idRowStride  = 1000
)

// rowAlphabet skips letters that read like digits (I, O, Q).
var rowAlphabet = []byte("ABCDEFGHJKLMNPRSTUVWXYZ")

// RowLabel renders a 1-based row as a bijective base-23 label: 1→A, 23→Z, 24→AA.
// Rows below 1 yield "".
func RowLabel(row int) string {
	base := len(rowAlphabet)
	var label []byte
	for row > 0 {
		rem := (row - 1) % base
		row = (row - 1) / base
		label = append([]byte{rowAlphabet[rem]}, label...)
	}
	return string(label)
}

func cellLabel(c Coord) string {
	return fmt.Sprintf("%s%d", RowLabel(c.Row), c.Col)
}

func packID(base int, c Coord) int {
	return base + c.Row*idRowStride + c.Col
}

// BlockName is the location name for solving the block at c.
func BlockName(c Coord) string { return "Solve Block " + cellLabel(c) }

// BlockItemName is the item that unlocks the block at c in shuffled progression.
func BlockItemName(c Coord) string { return "Block " + cellLabel(c) }

// BlockID is shared by the block's location and its unlock item.
func BlockID(c Coord) int { return packID(blockIDBase, c) }

// RowName is the location name for solving the row starting at c.
func RowName(c Coord) string { return "Solve Row " + cellLabel(c) }

// RowID identifies the row location starting at c.
func RowID(c Coord) int { return packID(rowIDBase, c) }

// ColumnName is the location name for solving the column starting at c.
func ColumnName(c Coord) string { return "Solve Column " + cellLabel(c) }

// ColumnID identifies the column location starting at c.
func ColumnID(c Coord) int { return packID(columnIDBase, c) }

// BoardName is the location name for solving the board anchored at c.
func BoardName(c Coord) string { return "Solve Board " + cellLabel(c) }

// BoardID identifies the board location anchored at c.
func BoardID(c Coord) int { return packID(boardIDBase, c) }
