package generator

import (
	"dungeongen/pkg/engine/world"
)

// CarveMaze opens every interior wall cell whose 3x3 neighborhood,
// itself and diagonals included, is entirely wall. Every cell is judged
// against the input grid, so cells opened in this pass do not affect their
// neighbors. The outer ring is copied through unchanged.
//
// The predicate deliberately uses the full 3x3 block rather than only the
// four cardinal neighbors.
func CarveMaze(area *world.Grid) *world.Grid {
	return area.Map(func(x, y int, c world.Cell) world.Cell {
		if !area.IsInteriorPosition(x, y) {
			return c
		}
		if allWalls(area, world.Neighborhood(world.Coord{X: x, Y: y})) {
			return world.Space
		}
		return c
	})
}

func allWalls(area *world.Grid, coords []world.Coord) bool {
	for _, c := range coords {
		if !area.AtCoord(c).IsWall() {
			return false
		}
	}
	return true
}
