package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"
)

func TestBoundaryCoords_CoversFootprintAndMargin(t *testing.T) {
	room := MustNewGrid(3, 2, Space)
	origin := Coord{X: 4, Y: 7}

	coords := BoundaryCoords(room, origin)
	if len(coords) != 5*4 {
		t.Fatalf("len(coords) = %d, want 20", len(coords))
	}

	seen := mapset.New[Coord]()
	for _, c := range coords {
		if seen.Has(c) {
			t.Errorf("coordinate %v produced twice", c)
		}
		seen.Put(c)
	}
	for y := origin.Y - 1; y <= origin.Y+room.Height(); y++ {
		for x := origin.X - 1; x <= origin.X+room.Width(); x++ {
			if !seen.Has(Coord{X: x, Y: y}) {
				t.Errorf("coordinate (%d,%d) missing", x, y)
			}
		}
	}
}

func TestBoundaryCoords_RowMajor(t *testing.T) {
	coords := BoundaryCoords(MustNewGrid(1, 1, Wall), Coord{X: 1, Y: 1})
	want := []Coord{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	assert.Equal(t, want, coords)
}

func TestNeighborhood(t *testing.T) {
	n := Neighborhood(Coord{X: 5, Y: 5})
	assert.Len(t, n, 9)
	assert.Contains(t, n, Coord{X: 5, Y: 5})
	assert.Contains(t, n, Coord{X: 4, Y: 4})
	assert.Contains(t, n, Coord{X: 6, Y: 6})
}

func TestCoord_Neighbor(t *testing.T) {
	c := Coord{X: 3, Y: 3}
	for _, dir := range AllDirections() {
		n := c.Neighbor(dir)
		back := n.Neighbor(dir.Opposite())
		if back != c {
			t.Errorf("%v then %v from %v = %v, want %v", dir, dir.Opposite(), c, back, c)
		}
	}
	assert.Equal(t, Coord{X: 3, Y: 2}, c.Neighbor(North))
	assert.Equal(t, Coord{X: 2, Y: 3}, c.Neighbor(West))
	assert.Equal(t, "3,3", c.String())
}

func TestCell_Rune(t *testing.T) {
	for _, c := range []Cell{Wall, Space} {
		back, ok := CellFromRune(c.Rune())
		if !ok || back != c {
			t.Errorf("CellFromRune(%q) = %v, %v, want %v", c.Rune(), back, ok, c)
		}
	}
	if _, ok := CellFromRune('x'); ok {
		t.Error("CellFromRune('x') ok = true, want false")
	}
	assert.Equal(t, "Wall", Wall.String())
	assert.Equal(t, "Space", Space.String())
}
