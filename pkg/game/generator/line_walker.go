package generator

import (
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
)

// LineWalkerGenerator generates maps by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct {
	cfg Config
}

// NewLineWalkerGenerator creates a generator using cfg. RoomAttempts is used
// as the number of extra corridors walked from near the center.
func NewLineWalkerGenerator(cfg Config) *LineWalkerGenerator {
	return &LineWalkerGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// walk holds the state of one generation
type walk struct {
	rng   random.Source
	open  mapset.Set[world.Coord]
	order []world.Coord // open cells in the order they were opened
	// bounds of the area, for the playable-position check
	width, height int

	minDist, maxDist int
}

// Generate creates a new grid of open corridors inside a solid perimeter
func (g *LineWalkerGenerator) Generate(rng random.Source) (*world.Grid, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	log := g.cfg.logger().With("generator", g.Name())

	area, err := world.NewArea(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return nil, err
	}

	w := &walk{
		rng:    rng,
		open:   mapset.New[world.Coord](),
		width:  g.cfg.Width,
		height: g.cfg.Height,
	}

	// Corridor length scales with the shorter side
	// Shorter side 40: 4-12 cells, shorter side 10: 2-6 cells
	short := min(g.cfg.Width, g.cfg.Height)
	w.minDist = 2 + short/20
	w.maxDist = 4 + short/5

	// Start in the center
	start := world.Coord{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}

	// Branch chance as a percentage
	const branchChance = 30.0

	// Build main corridors in all four directions
	if w.playable(start) {
		for _, dir := range world.AllDirections() {
			w.line(start, dir, branchChance)
		}

		// Extra corridors branch from cells already opened
		extra := g.cfg.RoomAttempts / 20
		for i := 0; i < extra; i++ {
			from := w.order[rng.UniformInt(0, len(w.order))]
			w.line(from, w.randomDirection(), branchChance)
		}
	}

	grid := area.Map(func(x, y int, c world.Cell) world.Cell {
		if w.open.Has(world.Coord{X: x, Y: y}) {
			return world.Space
		}
		return c
	})
	log.Debug("corridors walked", "cells", w.open.Size())

	if err := validateOutput(grid, g.cfg); err != nil {
		return nil, err
	}
	return grid, nil
}

// playable reports whether c is off the perimeter
func (w *walk) playable(c world.Coord) bool {
	return c.X >= 1 && c.X < w.width-1 && c.Y >= 1 && c.Y < w.height-1
}

// randomDirection returns a random cardinal direction
func (w *walk) randomDirection() world.Direction {
	return world.Direction(w.rng.UniformInt(0, 4))
}

// line opens a line of cells starting at from in the given direction,
// occasionally branching in a random direction. Only playable cells are opened.
// It returns the last cell reached.
func (w *walk) line(from world.Coord, dir world.Direction, branchChance float64) world.Coord {
	if !dir.IsValid() {
		dir = w.randomDirection()
	}

	at := from
	distance := w.rng.UniformInt(w.minDist, w.maxDist+1)

	for segment := 0; segment < distance; segment++ {
		w.mark(at)

		// If the next cell would be outside playable area, stop here
		next := at.Neighbor(dir)
		if !w.playable(next) {
			return at
		}

		if branchChance > 0 && w.rng.PercentChance(branchChance) {
			w.line(at, w.randomDirection(), branchChance-10)
		}

		at = next
	}

	w.mark(at)
	return at
}

// mark opens c if it is playable and not already open
func (w *walk) mark(c world.Coord) {
	if !w.playable(c) || w.open.Has(c) {
		return
	}
	w.open.Put(c)
	w.order = append(w.order, c)
}

var _ GridGenerator = (*LineWalkerGenerator)(nil)
