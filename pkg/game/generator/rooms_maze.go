package generator

import (
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
)

// RoomsAndMazeGenerator places random rooms, fills the remaining solid wall
// with maze passages, then opens doors between neighboring open regions.
type RoomsAndMazeGenerator struct {
	cfg Config
}

// Trace summarizes what each stage of a generation changed
type Trace struct {
	Rooms     []Placement
	Carved    int                     // Cells opened by maze carving
	Doors     int                     // Cells opened by door insertion
	DoorCells mapset.Set[world.Coord] // Where those doors are
}

// NewRoomsAndMazeGenerator creates a generator using cfg
func NewRoomsAndMazeGenerator(cfg Config) *RoomsAndMazeGenerator {
	return &RoomsAndMazeGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *RoomsAndMazeGenerator) Name() string {
	return "Rooms and Maze"
}

// Config returns the generator's configuration
func (g *RoomsAndMazeGenerator) Config() Config {
	return g.cfg
}

// Generate creates a new grid: rooms, then maze carving, then doors
func (g *RoomsAndMazeGenerator) Generate(rng random.Source) (*world.Grid, error) {
	grid, _, err := g.GenerateTraced(rng)
	return grid, err
}

// GenerateTraced is Generate, also reporting what each stage did
func (g *RoomsAndMazeGenerator) GenerateTraced(rng random.Source) (*world.Grid, Trace, error) {
	var trace Trace

	if err := g.cfg.Validate(); err != nil {
		return nil, trace, err
	}
	log := g.cfg.logger().With("generator", g.Name())

	area, err := world.NewArea(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return nil, trace, err
	}

	area, trace.Rooms = AddRoomsTraced(area, g.cfg.RoomAttempts, rng)
	log.Debug("rooms placed", "attempts", g.cfg.RoomAttempts, "placed", len(trace.Rooms))

	before := area.CountCells(world.Space)
	area = CarveMaze(area)
	trace.Carved = area.CountCells(world.Space) - before
	log.Debug("maze carved", "cells", trace.Carved)

	carved := area
	area = AddDoorsWithChance(area, rng, g.cfg.DoorChance)
	trace.DoorCells, err = world.Diff(carved, area)
	if err != nil {
		return nil, trace, err
	}
	trace.Doors = trace.DoorCells.Size()
	log.Debug("doors opened", "cells", trace.Doors, "chance", g.cfg.DoorChance)

	if err := validateOutput(area, g.cfg); err != nil {
		return nil, trace, err
	}
	return area, trace, nil
}

var _ GridGenerator = (*RoomsAndMazeGenerator)(nil)
