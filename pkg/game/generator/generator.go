package generator

import (
	"errors"
	"fmt"
	"log/slog"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
)

// ErrInvalidConfig is returned when a Config cannot produce a map
var ErrInvalidConfig = errors.New("invalid generator config")

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(rng random.Source) (*world.Grid, error)
	Name() string
}

// Config holds the parameters shared by the generators
type Config struct {
	Width        int
	Height       int
	RoomAttempts int     // Number of random room placements to try
	DoorChance   float64 // Percent chance of opening each door candidate

	// Logger receives per-stage debug summaries. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by DefaultGenerator
func DefaultConfig() Config {
	return Config{
		Width:        80,
		Height:       40,
		RoomAttempts: 200,
		DoorChance:   DoorChance,
	}
}

// Validate checks that the config describes a map that can be generated
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", world.ErrInvalidDimension, c.Width, c.Height)
	}
	if c.RoomAttempts < 0 {
		return fmt.Errorf("%w: room attempts %d is negative", ErrInvalidConfig, c.RoomAttempts)
	}
	if c.DoorChance < 0 || c.DoorChance > 100 {
		return fmt.Errorf("%w: door chance %v outside [0,100]", ErrInvalidConfig, c.DoorChance)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Available generators
var (
	RoomsAndMaze = NewRoomsAndMazeGenerator(DefaultConfig())
	LineWalker   = NewLineWalkerGenerator(DefaultConfig())
	BSP          = NewBSPGenerator(DefaultConfig())
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = RoomsAndMaze

// ByName returns the generator built from cfg whose short name matches, or false
func ByName(name string, cfg Config) (GridGenerator, bool) {
	switch name {
	case "rooms":
		return NewRoomsAndMazeGenerator(cfg), true
	case "walker":
		return NewLineWalkerGenerator(cfg), true
	case "bsp":
		return NewBSPGenerator(cfg), true
	default:
		return nil, false
	}
}

// validateOutput is the last step of every generator
func validateOutput(grid *world.Grid, cfg Config) error {
	if msg := grid.Validate(); msg != "" {
		return fmt.Errorf("generated invalid grid: %s", msg)
	}
	if grid.Width() != cfg.Width || grid.Height() != cfg.Height {
		return fmt.Errorf("generated invalid grid: %dx%d, want %dx%d", grid.Width(), grid.Height(), cfg.Width, cfg.Height)
	}
	return nil
}
