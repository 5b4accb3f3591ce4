package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_DimensionsAndFill(t *testing.T) {
	g, err := NewGrid(3, 2, Wall)
	require.NoError(t, err)

	dims := g.Dimensions()
	want := Dimensions{Width: 3, Height: 2, Area: 6}
	if dims != want {
		t.Errorf("Dimensions() = %+v, want %+v", dims, want)
	}
	if len(g.cells) != 2 {
		t.Fatalf("rows = %d, want 2", len(g.cells))
	}
	for y, row := range g.cells {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", y, len(row))
		}
		for x, c := range row {
			if c != Wall {
				t.Errorf("cell (%d,%d) = %v, want Wall", x, y, c)
			}
		}
	}
}

func TestNewGrid_InvalidDimension(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 1}, {1, 0}, {-1, 5}, {5, -3}, {0, 0}} {
		g, err := NewGrid(tc.w, tc.h, Wall)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", tc.w, tc.h, err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d) returned a grid alongside an error", tc.w, tc.h)
		}
	}

	assert.Panics(t, func() { MustNewGrid(0, 3, Space) })
}

func TestNewRoomAndArea(t *testing.T) {
	room, err := NewRoom(4, 3)
	require.NoError(t, err)
	area, err := NewArea(4, 3)
	require.NoError(t, err)

	if n := room.CountCells(Space); n != 12 {
		t.Errorf("room open cells = %d, want 12", n)
	}
	if n := area.CountCells(Wall); n != 12 {
		t.Errorf("area wall cells = %d, want 12", n)
	}
}

func TestGrid_RowsDoNotAlias(t *testing.T) {
	g := MustNewGrid(4, 4, Wall)
	g.cells[0][1] = Space
	for y := 1; y < 4; y++ {
		if g.cells[y][1] != Wall {
			t.Errorf("writing row 0 changed row %d", y)
		}
	}

	c := g.Clone()
	c.cells[2][2] = Space
	if g.cells[2][2] != Wall {
		t.Error("writing a clone changed the original")
	}
	if c.cells[0][1] != Space {
		t.Error("clone lost a cell of the original")
	}
}

func TestGrid_AtOutOfBounds(t *testing.T) {
	g := MustNewGrid(2, 2, Wall)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("At(2, 0) panicked with %v, want ErrIndexOutOfBounds", r)
		}
	}()
	g.At(2, 0)
}

func TestGrid_Lookup(t *testing.T) {
	g := MustNewGrid(2, 3, Space)

	c, err := g.Lookup(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Space, c)

	_, err = g.Lookup(-1, 0)
	var idx *IndexError
	require.ErrorAs(t, err, &idx)
	assert.Equal(t, IndexError{X: -1, Y: 0, Width: 2, Height: 3}, *idx)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestGrid_PerimeterAndInterior(t *testing.T) {
	g := MustNewGrid(4, 3, Wall)
	interior := 0
	g.ForEachCell(func(x, y int, _ Cell) {
		if g.IsInteriorPosition(x, y) {
			interior++
			if g.IsOnPerimeter(x, y) {
				t.Errorf("(%d,%d) is both interior and perimeter", x, y)
			}
		} else if !g.IsOnPerimeter(x, y) {
			t.Errorf("(%d,%d) is neither interior nor perimeter", x, y)
		}
	})
	if interior != 2 {
		t.Errorf("interior cells = %d, want 2", interior)
	}
	if g.IsOnPerimeter(4, 0) {
		t.Error("IsOnPerimeter(4, 0) = true for a position outside the grid")
	}
}

func TestGrid_MapReadsSnapshot(t *testing.T) {
	g := MustNewGrid(5, 1, Wall)
	g = g.Map(func(x, _ int, c Cell) Cell {
		if x == 0 {
			return Space
		}
		return c
	})

	// Each cell copies its west neighbor; with a snapshot only x=1 changes.
	shifted := g.Map(func(x, y int, c Cell) Cell {
		if x == 0 {
			return c
		}
		return g.At(x-1, y)
	})
	assert.Equal(t, "..###", shifted.String())
	assert.Equal(t, ".####", g.String())
}

func TestGrid_Stamp(t *testing.T) {
	area := MustNewGrid(5, 4, Wall)
	room := MustNewGrid(2, 2, Space)

	out, err := area.Stamp(room, Coord{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, "#####\n#..##\n#..##\n#####", out.String())
	assert.Equal(t, 20, area.CountCells(Wall), "Stamp modified its receiver")

	_, err = area.Stamp(room, Coord{X: 4, Y: 1})
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = area.Stamp(room, Coord{X: -1, Y: 0})
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestParseGrid(t *testing.T) {
	const src = `
#####
#.#.#
#####
`
	g, err := ParseGrid(src)
	require.NoError(t, err)
	assert.Equal(t, Dimensions{Width: 5, Height: 3, Area: 15}, g.Dimensions())
	assert.Equal(t, Space, g.At(1, 1))
	assert.Equal(t, Wall, g.At(2, 1))
	assert.Equal(t, "#####\n#.#.#\n#####", g.String())

	_, err = ParseGrid("##\n#")
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = ParseGrid("")
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = ParseGrid("#x")
	assert.Error(t, err)
}

func TestGrid_Equal(t *testing.T) {
	a := MustNewGrid(3, 3, Wall)
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(MustNewGrid(3, 2, Wall)))
	assert.False(t, a.Equal(MustNewGrid(3, 3, Space)))
	assert.False(t, a.Equal(nil))
}

func TestDiff(t *testing.T) {
	a := MustNewGrid(4, 4, Wall)
	b, err := a.Stamp(MustNewGrid(2, 1, Space), Coord{X: 1, Y: 2})
	require.NoError(t, err)

	changed, err := Diff(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, changed.Size())
	assert.True(t, changed.Has(Coord{X: 1, Y: 2}))
	assert.True(t, changed.Has(Coord{X: 2, Y: 2}))

	_, err = Diff(a, MustNewGrid(4, 5, Wall))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestGrid_Validate(t *testing.T) {
	assert.Empty(t, MustNewGrid(3, 3, Wall).Validate())

	broken := MustNewGrid(3, 3, Wall)
	broken.cells[1] = broken.cells[1][:2]
	assert.Equal(t, "Grid row 1 has 2 cells, want 3", broken.Validate())
}
