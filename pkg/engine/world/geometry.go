package world

import "fmt"

// Coord addresses a cell: X is the column, Y is the row, origin top-left
type Coord struct {
	X int
	Y int
}

// String returns the coordinate as "x,y"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Add returns the coordinate offset by dx/dy
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbor returns the adjacent coordinate in the given direction
func (c Coord) Neighbor(dir Direction) Coord {
	return c.Add(dir.Delta())
}

// BoundaryCoords returns the footprint of shape placed with its top-left
// corner at origin, plus a one cell margin on every side. Coordinates are
// produced row-major over the (w+2)x(h+2) block and may fall outside any
// particular grid; callers must bounds check or guarantee the margin.
//
// A 1x1 shape yields the 3x3 block centered on origin.
func BoundaryCoords(shape *Grid, origin Coord) []Coord {
	w, h := shape.Width()+2, shape.Height()+2
	coords := make([]Coord, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coords = append(coords, Coord{X: origin.X + x - 1, Y: origin.Y + y - 1})
		}
	}
	return coords
}

// unitShape is the 1x1 shape used for neighborhood queries. Grids are
// never modified, so sharing one instance is safe.
var unitShape = MustNewGrid(1, 1, Space)

// Neighborhood returns the 3x3 block of coordinates centered on c, including c
func Neighborhood(c Coord) []Coord {
	return BoundaryCoords(unitShape, c)
}
