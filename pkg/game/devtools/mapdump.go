// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// DefaultDumpFilename is used by DumpToFile when no path is given
const DefaultDumpFilename = "map.txt"

// HighlightRune marks highlighted open cells in plain output
const HighlightRune = '+'

var (
	colorWall      = color.Style{color.FgGray}
	colorSpace     = color.Style{color.FgWhite}
	colorHighlight = color.Style{color.FgYellow, color.OpBold}
)

// Options control how a map is written
type Options struct {
	// Color styles cells with ANSI colors
	Color bool
	// Highlight marks open cells, e.g. the doors opened by the last pass
	Highlight mapset.Set[world.Coord]
}

func (o Options) highlighted(c world.Coord) bool {
	return o.Highlight.Size() > 0 && o.Highlight.Has(c)
}

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(cell world.Cell, highlight bool) rune {
	if highlight && cell.IsSpace() {
		return HighlightRune
	}
	return cell.Rune()
}

// styleFor returns the color style for a cell
func styleFor(cell world.Cell, highlight bool) color.Style {
	switch {
	case highlight && cell.IsSpace():
		return colorHighlight
	case cell.IsSpace():
		return colorSpace
	default:
		return colorWall
	}
}

// WriteMap writes the grid to w, one line per row
func WriteMap(w io.Writer, grid *world.Grid, opts Options) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			cell := grid.At(x, y)
			hl := opts.highlighted(world.Coord{X: x, Y: y})
			sym := string(cellSymbol(cell, hl))
			if opts.Color {
				sym = styleFor(cell, hl).Sprint(sym)
			}
			if _, err := bw.WriteString(sym); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Metadata describes how a dumped map was generated
type Metadata struct {
	Generator string
	Seed      int64
	Trace     *generator.Trace
}

// WriteDump writes a full debug dump: metadata, legend, map, and placed rooms.
// Format is human-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, grid *world.Grid, meta Metadata) error {
	dims := grid.Dimensions()
	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "generator: %s\n", meta.Generator)
	fmt.Fprintf(bw, "seed: %d\n", meta.Seed)
	fmt.Fprintf(bw, "width: %d\n", dims.Width)
	fmt.Fprintf(bw, "height: %d\n", dims.Height)
	fmt.Fprintf(bw, "cells: %d\n", dims.Area)
	fmt.Fprintf(bw, "open_cells: %d\n", grid.CountCells(world.Space))
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	if meta.Trace != nil {
		fmt.Fprintf(bw, "rooms_placed: %d\n", len(meta.Trace.Rooms))
		fmt.Fprintf(bw, "cells_carved: %d\n", meta.Trace.Carved)
		fmt.Fprintf(bw, "doors_opened: %d\n", meta.Trace.Doors)
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintf(bw, "%c = wall  %c = open space\n", world.WallRune, world.SpaceRune)
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	if err := WriteMap(bw, grid, Options{}); err != nil {
		return err
	}
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	if meta.Trace != nil {
		fmt.Fprintln(bw, "--- Rooms (placement order) ---")
		for i, r := range meta.Trace.Rooms {
			fmt.Fprintf(bw, "  %d: x: %d y: %d width: %d height: %d\n", i, r.Origin.X, r.Origin.Y, r.Width, r.Height)
		}
	}

	return bw.Flush()
}

// DumpToFile writes WriteDump output to path (DefaultDumpFilename if empty)
// and returns the absolute path written.
func DumpToFile(path string, grid *world.Grid, meta Metadata) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, grid, meta); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
