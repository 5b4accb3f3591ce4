package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a width or height below 1.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrIndexOutOfBounds is returned (or carried by a panic) when a coordinate falls outside a grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrDimensionMismatch is returned when two grids of different sizes are compared.
	ErrDimensionMismatch = errors.New("grid dimensions differ")
)

// IndexError describes an out-of-range lookup. It matches ErrIndexOutOfBounds with errors.Is.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) outside %dx%d grid", ErrIndexOutOfBounds, e.X, e.Y, e.Width, e.Height)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// Dimensions reports the size of a grid
type Dimensions struct {
	Width  int
	Height int
	Area   int
}

// Grid is a rectangular 2D array of cells.
// A Grid is never modified after construction: every transform returns a new Grid,
// so a grid handed to a caller stays valid as a snapshot.
type Grid struct {
	cells  [][]Cell
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, every cell set to fill
func NewGrid(width, height int, fill Cell) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	g := allocGrid(width, height)
	for y := range g.cells {
		row := g.cells[y]
		for x := range row {
			row[x] = fill
		}
	}
	return g, nil
}

// MustNewGrid is like NewGrid but panics if the dimensions are invalid
func MustNewGrid(width, height int, fill Cell) *Grid {
	g, err := NewGrid(width, height, fill)
	if err != nil {
		panic(err)
	}
	return g
}

// NewRoom creates an open rectangle with no internal walls
func NewRoom(width, height int) (*Grid, error) {
	return NewGrid(width, height, Space)
}

// NewArea creates a solid block of wall
func NewArea(width, height int) (*Grid, error) {
	return NewGrid(width, height, Wall)
}

// ParseGrid builds a grid from rows of '#' and '.' separated by newlines.
// Leading and trailing blank lines are ignored; all rows must have the same length.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	height := len(lines)
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrInvalidDimension)
	}

	g := allocGrid(width, height)
	for y, line := range lines {
		runes := []rune(strings.TrimRight(line, "\r"))
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, y, len(runes), width)
		}
		for x, r := range runes {
			c, ok := CellFromRune(r)
			if !ok {
				return nil, fmt.Errorf("unknown cell %q at (%d,%d)", r, x, y)
			}
			g.cells[y][x] = c
		}
	}
	return g, nil
}

// allocGrid gives every row its own backing array so rows never alias.
func allocGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Dimensions returns the width, height and cell count of the grid
func (g *Grid) Dimensions() Dimensions {
	return Dimensions{Width: g.width, Height: g.height, Area: g.width * g.height}
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsInteriorPosition checks if a position is inside the outermost ring of cells
func (g *Grid) IsInteriorPosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsInteriorPosition(x, y)
}

// At returns the cell at x/y. It panics with an *IndexError if the position is outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.IsValidPosition(x, y) {
		panic(&IndexError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	return g.cells[y][x]
}

// AtCoord is At for a Coord
func (g *Grid) AtCoord(c Coord) Cell {
	return g.At(c.X, c.Y)
}

// Lookup returns the cell at x/y, or an *IndexError if the position is outside the grid
func (g *Grid) Lookup(x, y int) (Cell, error) {
	if !g.IsValidPosition(x, y) {
		return Wall, &IndexError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.cells[y][x], nil
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := allocGrid(g.width, g.height)
	for y, row := range g.cells {
		copy(c.cells[y], row)
	}
	return c
}

// Map builds a new grid of the same size by calling fn for every cell.
// fn always sees the cells of g, never values already produced for the new grid.
func (g *Grid) Map(fn func(x, y int, c Cell) Cell) *Grid {
	out := allocGrid(g.width, g.height)
	for y, row := range g.cells {
		for x, c := range row {
			out.cells[y][x] = fn(x, y, c)
		}
	}
	return out
}

// Stamp returns a copy of g with the cells of shape written over the
// footprint whose top-left corner sits at origin.
func (g *Grid) Stamp(shape *Grid, origin Coord) (*Grid, error) {
	last := Coord{X: origin.X + shape.width - 1, Y: origin.Y + shape.height - 1}
	for _, c := range []Coord{origin, last} {
		if !g.IsValidPosition(c.X, c.Y) {
			return nil, &IndexError{X: c.X, Y: c.Y, Width: g.width, Height: g.height}
		}
	}

	out := g.Clone()
	for y, row := range shape.cells {
		copy(out.cells[origin.Y+y][origin.X:], row)
	}
	return out, nil
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, c Cell)) {
	for y, row := range g.cells {
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// CountCells returns how many cells equal want
func (g *Grid) CountCells(want Cell) int {
	n := 0
	g.ForEachCell(func(_, _ int, c Cell) {
		if c == want {
			n++
		}
	})
	return n
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y, row := range g.cells {
		for x, c := range row {
			if other.cells[y][x] != c {
				return false
			}
		}
	}
	return true
}

// String renders the grid as rows of display runes separated by newlines
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune())
		}
	}
	return b.String()
}

// Diff returns the coordinates at which a and b hold different cells
func Diff(a, b *Grid) (mapset.Set[Coord], error) {
	if a.width != b.width || a.height != b.height {
		return mapset.New[Coord](), fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.width, a.height, b.width, b.height)
	}

	changed := mapset.New[Coord]()
	a.ForEachCell(func(x, y int, c Cell) {
		if b.cells[y][x] != c {
			changed.Put(Coord{X: x, Y: y})
		}
	})
	return changed, nil
}

// Validate checks the grid for structural issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}
	if len(g.cells) != g.height {
		return fmt.Sprintf("Grid has %d rows, want %d", len(g.cells), g.height)
	}
	for y, row := range g.cells {
		if len(row) != g.width {
			return fmt.Sprintf("Grid row %d has %d cells, want %d", y, len(row), g.width)
		}
	}
	return ""
}
