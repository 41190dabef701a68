// Command mazenav loads or generates a maze, solves a route across it and
// runs randomized connectivity trials the way enemy agents query a level.
//
// Usage:
//
//	mazenav [-config mazenav.yaml] [-maze level.txt] [-from 0,0] [-to 9,9]
//	        [-trials 1000] [-workers 4] [-seed 1] [-color auto]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/katalvlaran/mazenav/config"
	"github.com/katalvlaran/mazenav/internal/mazegen"
	"github.com/katalvlaran/mazenav/maze"
	"github.com/katalvlaran/mazenav/spatial"
)

const defaultConfigPath = "mazenav.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// flags are command-line overrides; zero values leave the config alone.
type flags struct {
	configPath string
	mazeFile   string
	from, to   string
	trials     int
	workers    int
	seed       int64
	color      string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("mazenav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", defaultConfigPath, "YAML config `path`")
	fs.StringVar(&f.mazeFile, "maze", "", "text maze layout `file` (overrides generation)")
	fs.StringVar(&f.from, "from", "", "start cell as `x,y` (default top-left)")
	fs.StringVar(&f.to, "to", "", "goal cell as `x,y` (default bottom-right)")
	fs.IntVar(&f.trials, "trials", -1, "random start/goal pairs to check (-1 keeps config)")
	fs.IntVar(&f.workers, "workers", 0, "goroutines running trials (0 keeps config)")
	fs.Int64Var(&f.seed, "seed", 0, "maze and trial seed (0 keeps config)")
	fs.StringVar(&f.color, "color", "", "auto, always or never")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	return f, nil
}

func (f flags) apply(cfg *config.Config) {
	if f.mazeFile != "" {
		cfg.Maze.File = f.mazeFile
	}
	if f.trials >= 0 {
		cfg.Trials.Count = f.trials
	}
	if f.workers > 0 {
		cfg.Trials.Workers = f.workers
	}
	if f.seed != 0 {
		cfg.Maze.Seed = f.seed
		cfg.Trials.Seed = f.seed
	}
	if f.color != "" {
		cfg.Color = f.color
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	tg, err := loadMaze(cfg.Maze)
	if err != nil {
		return fmt.Errorf("loading maze: %w", err)
	}
	logger.Info("maze ready",
		"width", tg.CellDimensionsX(), "height", tg.CellDimensionsY(),
		"cell_size", tg.CellSize(), "source", mazeSource(cfg.Maze))

	opts, err := cfg.Solver.Options()
	if err != nil {
		return err
	}
	solver, err := maze.NewSolver(tg, append(opts, maze.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("building solver: %w", err)
	}
	stats := solver.Graph().Stats()
	logger.Info("graph built",
		"nodes", stats.Nodes, "edges", stats.Edges,
		"components", len(solver.Components()), "connected", solver.Connected())

	from, err := pickCell(tg, f.from, 0, 0)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	to, err := pickCell(tg, f.to, tg.CellDimensionsX()-1, tg.CellDimensionsY()-1)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	path := solver.SolvePathAsCells(from, to)
	if len(path) == 0 {
		logger.Warn("no path", "from", cellString(from), "to", cellString(to))
	} else {
		logger.Info("path found", "from", cellString(from), "to", cellString(to), "steps", len(path)-1)
	}
	fmt.Fprint(stdout, render(tg, path, useColor(cfg.Color, stdout)))

	if cfg.Trials.Count == 0 {
		return nil
	}

	return runTrials(ctx, logger, solver, tg, cfg.Trials)
}

func loadMaze(m config.MazeConfig) (*maze.TileGrid, error) {
	if m.File != "" {
		data, err := os.ReadFile(m.File)
		if err != nil {
			return nil, err
		}
		return maze.ParseString(string(data), m.CellSize)
	}

	return mazegen.Generate(m.Width, m.Height,
		mazegen.WithSeed(m.Seed),
		mazegen.WithLoops(m.Loops),
		mazegen.WithDoors(m.Doors),
		mazegen.WithCellSize(m.CellSize),
	)
}

func mazeSource(m config.MazeConfig) string {
	if m.File != "" {
		return m.File
	}

	return "generated seed=" + strconv.FormatInt(m.Seed, 10)
}

// pickCell parses "x,y", falling back to (dx,dy) when s is empty.
func pickCell(tg *maze.TileGrid, s string, dx, dy int) (maze.Cell, error) {
	x, y := dx, dy
	if s != "" {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("want x,y, got %q", s)
		}
		var err error
		if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return nil, fmt.Errorf("bad x in %q: %w", s, err)
		}
		if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return nil, fmt.Errorf("bad y in %q: %w", s, err)
		}
	}
	c := tg.CellAt(x, y)
	if c == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", maze.ErrOutOfBounds, x, y)
	}

	return c, nil
}

func cellString(c maze.Cell) string {
	return fmt.Sprintf("%d,%d", c.GridX(), c.GridY())
}

func useColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// runTrials drops agents at random pixel positions, snaps each to its
// nearest navigation node and asks the shared solver for a route. Every
// worker has its own random source; the solver is shared read-only.
func runTrials(ctx context.Context, logger *slog.Logger, solver *maze.Solver, tg *maze.TileGrid, tc config.TrialsConfig) error {
	index := spatial.NewIndex(solver.Graph(), float64(solver.CellSize()))
	widthPx := float64(tg.CellDimensionsX() * solver.CellSize())
	heightPx := float64(tg.CellDimensionsY() * solver.CellSize())

	var failed, done atomic.Int64
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < tc.Workers; w++ {
		share := tc.Count / tc.Workers
		if w < tc.Count%tc.Workers {
			share++
		}
		rng := rand.New(rand.NewSource(tc.Seed + int64(w)))
		g.Go(func() error {
			for i := 0; i < share; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				a, _ := index.Nearest(orb.Point{rng.Float64() * widthPx, rng.Float64() * heightPx})
				b, _ := index.Nearest(orb.Point{rng.Float64() * widthPx, rng.Float64() * heightPx})
				from, to := solver.CellFor(a), solver.CellFor(b)
				if len(solver.SolvePathAsCells(from, to)) == 0 {
					failed.Add(1)
					logger.Debug("trial failed", "from", cellString(from), "to", cellString(to))
				}
				done.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("trials interrupted after %d: %w", done.Load(), err)
	}

	logger.Info("trials complete",
		"trials", done.Load(), "failed", failed.Load(),
		"workers", tc.Workers, "elapsed", time.Since(started).Round(time.Millisecond))
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d trials found no path", n, done.Load())
	}

	return nil
}
