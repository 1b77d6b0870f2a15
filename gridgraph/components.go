package gridgraph

import (
	"fmt"
	"strings"

	"github.com/galdiuz/archipeladoku/grid"
)

// ConnectedComponents finds all contiguous islands of land cells
// (CellValues[y][x] ≥ LandThreshold) under orthogonal connectivity.
// Each component is a slice of row-major cell indices in discovery order;
// components are ordered by their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	offsets := gg.NeighborOffsets()
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.land(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || !gg.land(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

func (gg *GridGraph) land(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// Connected returns ErrDisconnected unless the land forms exactly one island.
func (gg *GridGraph) Connected() error {
	if n := len(gg.ConnectedComponents()); n != 1 {
		return fmt.Errorf("%d islands: %w", n, ErrDisconnected)
	}
	return nil
}

// ownerGlyphs labels clusters 1..35; later ids render as '#'.
const ownerGlyphs = "123456789abcdefghijklmnopqrstuvwxyz"

// Glyph returns the map character of cluster id.
func Glyph(id int) byte {
	if id >= 1 && id <= len(ownerGlyphs) {
		return ownerGlyphs[id-1]
	}
	return '#'
}

// OwnedCells counts, per cluster id, the cells covered by that cluster
// alone. Shared cells are not counted.
func (gg *GridGraph) OwnedCells() map[int]int {
	owned := make(map[int]int)
	for row := 1; row <= gg.Height; row++ {
		for col := 1; col <= gg.Width; col++ {
			c := grid.C(row, col)
			if gg.Value(c) != 1 {
				continue
			}
			if id := gg.Owner(c); id > 0 {
				owned[id]++
			}
		}
	}
	return owned
}

// Render draws one line per row: '.' for water, '+' for cells shared by
// several clusters, otherwise the owning cluster's glyph. Grids not built
// from clusters render land as '#'.
func (gg *GridGraph) Render() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			sb.WriteByte(gg.glyph(grid.C(y+1, x+1)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (gg *GridGraph) glyph(c grid.Coord) byte {
	switch v := gg.Value(c); {
	case v < gg.LandThreshold:
		return '.'
	case v > 1:
		return '+'
	}
	return Glyph(gg.Owner(c))
}
