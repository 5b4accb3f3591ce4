// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

import "fmt"

// Cell represents a single cell/tile in the grid.
// A cell is either solid wall or open space; there are no other states.
type Cell uint8

// Cell values
const (
	Wall Cell = iota
	Space
)

// Display runes used by String and ParseGrid
const (
	WallRune  = '#'
	SpaceRune = '.'
)

// IsWall returns true if the cell is solid wall
func (c Cell) IsWall() bool {
	return c == Wall
}

// IsSpace returns true if the cell is open space
func (c Cell) IsSpace() bool {
	return c == Space
}

// Rune returns the display character for the cell
func (c Cell) Rune() rune {
	if c == Space {
		return SpaceRune
	}
	return WallRune
}

// String returns the string representation of a cell
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Space:
		return "Space"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// CellFromRune maps a display character back to a cell.
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case WallRune:
		return Wall, true
	case SpaceRune:
		return Space, true
	default:
		return Wall, false
	}
}
