package generator

import (
	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
)

// DoorChance is the percent chance that a qualifying cell is opened
const DoorChance = 20

// AddDoors opens interior cells that sit between two open cells on one
// axis, each with a DoorChance percent chance.
func AddDoors(area *world.Grid, rng random.Source) *world.Grid {
	return AddDoorsWithChance(area, rng, DoorChance)
}

// AddDoorsWithChance is AddDoors with a caller-chosen percent chance.
// A cell qualifies when both its west and east neighbors, or both its north
// and south neighbors, are open in the input grid. Qualifying cells roll
// once each; other cells, and the outer ring, are copied through without a
// roll.
func AddDoorsWithChance(area *world.Grid, rng random.Source, percent float64) *world.Grid {
	return area.Map(func(x, y int, c world.Cell) world.Cell {
		if !area.IsInteriorPosition(x, y) {
			return c
		}

		at := world.Coord{X: x, Y: y}
		horizontal := bridges(area, at, world.West)
		vertical := bridges(area, at, world.North)
		if !horizontal && !vertical {
			return c
		}

		if rng.PercentChance(percent) {
			return world.Space
		}
		return c
	})
}

// bridges reports whether the cells on both sides of at, along dir's axis, are open
func bridges(area *world.Grid, at world.Coord, dir world.Direction) bool {
	return area.AtCoord(at.Neighbor(dir)).IsSpace() &&
		area.AtCoord(at.Neighbor(dir.Opposite())).IsSpace()
}
