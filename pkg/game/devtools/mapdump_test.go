package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

func testGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.ParseGrid(`
#####
#...#
#####
`)
	require.NoError(t, err)
	return g
}

func TestWriteMap_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, testGrid(t), Options{}))
	assert.Equal(t, "#####\n#...#\n#####\n", buf.String())
}

func TestWriteMap_Highlight(t *testing.T) {
	hl := mapset.New[world.Coord]()
	hl.Put(world.Coord{X: 2, Y: 1})
	hl.Put(world.Coord{X: 0, Y: 0}) // a wall is never highlighted

	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, testGrid(t), Options{Highlight: hl}))
	assert.Equal(t, "#####\n#.+.#\n#####\n", buf.String())
}

func TestWriteMap_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, testGrid(t), Options{Color: true}))

	// Whether escape codes are emitted depends on the environment; the
	// visible characters must be the same either way.
	plain := color.ClearCode(buf.String())
	assert.Equal(t, "#####\n#...#\n#####\n", plain)
}

func TestWriteDump_Sections(t *testing.T) {
	trace := &generator.Trace{
		Rooms:  []generator.Placement{{Origin: world.Coord{X: 1, Y: 1}, Width: 3, Height: 1}},
		Carved: 0,
		Doors:  0,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, testGrid(t), Metadata{Generator: "Rooms and Maze", Seed: 99, Trace: trace}))
	out := buf.String()

	for _, want := range []string{
		"generator: Rooms and Maze",
		"seed: 99",
		"width: 5",
		"height: 3",
		"open_cells: 3",
		"rooms_placed: 1",
		"--- Map ---\n#####\n#...#\n#####\n",
		"0: x: 1 y: 1 width: 3 height: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")

	written, err := DumpToFile(path, testGrid(t), Metadata{Generator: "Line Walker", Seed: 1})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(written))

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generator: Line Walker")
	assert.NotContains(t, string(data), "rooms_placed")

	_, err = DumpToFile(path, nil, Metadata{})
	assert.Error(t, err)
}
