package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
)

// options holds the parsed command line
type options struct {
	width, height int
	attempts      int
	doors         float64
	seed          int64
	generator     string
	color         bool
	fit           bool
	out           string
	dump          string
	highlight     bool
	locale        string
	verbose       bool
}

func parseFlags(args []string) (options, error) {
	defaults := generator.DefaultConfig()
	var o options

	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fs.IntVar(&o.width, "width", defaults.Width, "map width in cells")
	fs.IntVar(&o.height, "height", defaults.Height, "map height in cells")
	fs.IntVar(&o.attempts, "attempts", defaults.RoomAttempts, "number of room placement attempts")
	fs.Float64Var(&o.doors, "doors", defaults.DoorChance, "percent chance of opening each door candidate")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVar(&o.generator, "generator", "rooms", "generator to use: rooms, walker or bsp")
	fs.BoolVar(&o.color, "color", false, "color the map output")
	fs.BoolVar(&o.fit, "fit", false, "size the map to the terminal (overrides -width and -height)")
	fs.StringVar(&o.out, "out", "", "write the map to this file instead of stdout")
	fs.StringVar(&o.dump, "dump", "", "also write a debug dump with metadata to this file")
	fs.BoolVar(&o.highlight, "highlight", false, "mark the cells opened by door insertion")
	fs.StringVar(&o.locale, "locale", "", "directory holding translated messages (e.g. locales/)")
	fs.BoolVar(&o.verbose, "v", false, "log generation stages to stderr")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// initLocale loads translations for CLI messages when a locale directory is given.
// Without one, gotext returns the message ids, which are the English text.
func initLocale(dir string) {
	if dir == "" {
		return
	}
	lang := os.Getenv("LANG")
	if lang == "" {
		lang = "en_GB"
	}
	gotext.Configure(dir, lang, "default")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(o options, log *slog.Logger) error {
	cfg := generator.Config{
		Width:        o.width,
		Height:       o.height,
		RoomAttempts: o.attempts,
		DoorChance:   o.doors,
		Logger:       log,
	}
	if o.fit {
		cfg.Width, cfg.Height = terminal.MapSize()
	}

	var rng *random.Rand
	if o.seed == 0 {
		rng = random.NewTimeSeeded()
	} else {
		rng = random.New(o.seed)
	}
	log.Debug("seeded", "seed", rng.Seed())

	gen, ok := generator.ByName(o.generator, cfg)
	if !ok {
		return errors.New(gotext.Get("unknown generator %q", o.generator))
	}

	var (
		grid  *world.Grid
		trace *generator.Trace
		err   error
	)
	if rm, isRooms := gen.(*generator.RoomsAndMazeGenerator); isRooms {
		var t generator.Trace
		grid, t, err = rm.GenerateTraced(rng)
		trace = &t
	} else {
		grid, err = gen.Generate(rng)
	}
	if err != nil {
		return err
	}

	opts := devtools.Options{Color: o.color}
	if o.highlight && trace != nil {
		opts.Highlight = trace.DoorCells
	}

	w := os.Stdout
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := devtools.WriteMap(w, grid, opts); err != nil {
		return err
	}

	if o.dump != "" {
		path, err := devtools.DumpToFile(o.dump, grid, devtools.Metadata{
			Generator: gen.Name(),
			Seed:      rng.Seed(),
			Trace:     trace,
		})
		if err != nil {
			return err
		}
		log.Info(gotext.Get("wrote map dump"), "path", path)
	}

	fmt.Fprintln(os.Stderr, gotext.Get("%s map %dx%d, seed %d, %d open cells",
		gen.Name(), grid.Width(), grid.Height(), rng.Seed(), grid.CountCells(world.Space)))
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	initLocale(o.locale)
	log := newLogger(o.verbose)

	if err := run(o, log); err != nil {
		log.Error(gotext.Get("generation failed"), "err", err)
		os.Exit(1)
	}
}
