package generator

import (
	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
)

// Room size bounds; the upper bound is exclusive
const (
	minRoomSize = 2
	maxRoomSize = 7
)

// Placement records a room that was transposed onto an area
type Placement struct {
	Origin world.Coord
	Width  int
	Height int
}

// Contains reports whether the coordinate lies in the room's footprint
func (p Placement) Contains(c world.Coord) bool {
	return c.X >= p.Origin.X && c.X < p.Origin.X+p.Width &&
		c.Y >= p.Origin.Y && c.Y < p.Origin.Y+p.Height
}

// TryPlaceRoom transposes room onto area with its top-left corner at the given
// coordinate. The room is rejected, and area returned unchanged, when it
// would touch the outer ring of the area or when its footprint plus a one
// cell margin already contains open space. The second result reports whether
// the room was placed. Neither argument is modified.
func TryPlaceRoom(room *world.Grid, at world.Coord, area *world.Grid) (*world.Grid, bool) {
	// Do not overlap area edges
	if at.Y == 0 || at.X == 0 ||
		at.Y+room.Height() >= area.Height() ||
		at.X+room.Width() >= area.Width() {
		return area, false
	}

	// Do not put room beside other open space
	for _, c := range world.BoundaryCoords(room, at) {
		if area.AtCoord(c).IsSpace() {
			return area, false
		}
	}

	placed, err := area.Stamp(room, at)
	if err != nil {
		// The edge check above keeps the footprint inside the area.
		panic(err)
	}
	return placed, true
}

// RandomRoom creates a room with width and height each in [2, 6]
func RandomRoom(rng random.Source) *world.Grid {
	width := rng.UniformInt(minRoomSize, maxRoomSize)
	height := rng.UniformInt(minRoomSize, maxRoomSize)
	return world.MustNewGrid(width, height, world.Space)
}

// RandomCoord picks a coordinate off the outer ring of area.
// The row is drawn before the column.
func RandomCoord(rng random.Source, area *world.Grid) world.Coord {
	y := rng.UniformInt(1, area.Height()-1)
	x := rng.UniformInt(1, area.Width()-1)
	return world.Coord{X: x, Y: y}
}

// AddRooms makes the given number of attempts to place a random room at a
// random coordinate. Rejected attempts are simply skipped.
func AddRooms(area *world.Grid, attempts int, rng random.Source) *world.Grid {
	area, _ = AddRoomsTraced(area, attempts, rng)
	return area
}

// AddRoomsTraced is AddRooms, also returning the rooms that were placed in order
func AddRoomsTraced(area *world.Grid, attempts int, rng random.Source) (*world.Grid, []Placement) {
	var placed []Placement
	for i := 0; i < attempts; i++ {
		room := RandomRoom(rng)
		at := RandomCoord(rng, area)

		var ok bool
		area, ok = TryPlaceRoom(room, at, area)
		if ok {
			placed = append(placed, Placement{Origin: at, Width: room.Width(), Height: room.Height()})
		}
	}
	return area, placed
}
