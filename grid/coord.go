package grid

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Coord identifies a cell on the logical grid.
type Coord struct {
	Row, Col int
}

// Origin is the block that is always unlocked first.
var Origin = Coord{Row: 1, Col: 1}

// C is a convenience constructor for Coord.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// IsSentinel reports whether c is a filler placeholder rather than a block.
func (c Coord) IsSentinel() bool {
	return c.Row <= 0 || c.Col <= 0
}

// Less orders coordinates by row, then column.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// String renders c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Sentinels returns n filler placeholders (-1,-1) … (-n,-n).
func Sentinels(n int) []Coord {
	out := make([]Coord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Coord{Row: -i, Col: -i})
	}
	return out
}

// SortCoords sorts cs in place by row, then column.
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

// SortedSet returns the members of s in row/column order.
// Set iteration order is random; every caller that feeds a seeded
// random source must go through this.
func SortedSet(s mapset.Set[Coord]) []Coord {
	out := make([]Coord, 0, s.Size())
	s.Each(func(c Coord) { out = append(out, c) })
	SortCoords(out)
	return out
}

// SetOf builds a set from cs.
func SetOf(cs ...Coord) mapset.Set[Coord] {
	s := mapset.New[Coord]()
	for _, c := range cs {
		s.Put(c)
	}
	return s
}
