// Package config loads the mazenav command configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazenav/astar"
	"github.com/katalvlaran/mazenav/maze"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all configuration for the mazenav command.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	Maze   MazeConfig   `yaml:"maze"`
	Solver SolverConfig `yaml:"solver"`
	Trials TrialsConfig `yaml:"trials"`

	// Rendering: auto, always, never
	Color string `yaml:"color"`
}

// MazeConfig selects the maze: a layout file, or a generated one.
type MazeConfig struct {
	File     string  `yaml:"file"` // text layout; overrides generation when set
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Seed     int64   `yaml:"seed"`
	Loops    float64 `yaml:"loops"` // fraction of extra walls removed, [0,1]
	Doors    int     `yaml:"doors"` // coloured doors placed on passages
	CellSize int     `yaml:"cell_size"`
}

// SolverConfig controls graph construction and search.
type SolverConfig struct {
	DoorPolicy string   `yaml:"door_policy"` // open, locked
	Keys       []string `yaml:"keys"`        // door colours held under locked policy
	DoorCost   float64  `yaml:"door_cost"`
	Heuristic  string   `yaml:"heuristic"` // auto, zero, manhattan, euclidean
	MaxCost    float64  `yaml:"max_cost"`  // 0 means unlimited
}

// TrialsConfig drives the randomized connectivity check.
type TrialsConfig struct {
	Count   int   `yaml:"count"`
	Workers int   `yaml:"workers"`
	Seed    int64 `yaml:"seed"`
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Maze: MazeConfig{
			Width:    24,
			Height:   16,
			Seed:     1,
			Loops:    0.05,
			CellSize: 16,
		},
		Solver: SolverConfig{
			DoorPolicy: "open",
			DoorCost:   1,
			Heuristic:  "auto",
		},
		Trials: TrialsConfig{
			Count:   1000,
			Workers: 4,
			Seed:    1,
		},
		Color: "auto",
	}
}

// Load reads config from a YAML file on top of Default and validates it.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	m := c.Maze
	if m.File == "" && (m.Width <= 0 || m.Height <= 0) {
		return fmt.Errorf("%w: maze width and height must be positive, got %dx%d", ErrInvalid, m.Width, m.Height)
	}
	if m.Loops < 0 || m.Loops > 1 {
		return fmt.Errorf("%w: maze.loops must be within [0,1], got %g", ErrInvalid, m.Loops)
	}
	if m.Doors < 0 {
		return fmt.Errorf("%w: maze.doors must be non-negative", ErrInvalid)
	}
	if m.CellSize <= 0 {
		return fmt.Errorf("%w: maze.cell_size must be positive", ErrInvalid)
	}
	if _, err := c.Solver.Options(); err != nil {
		return err
	}
	if c.Trials.Count < 0 {
		return fmt.Errorf("%w: trials.count must be non-negative", ErrInvalid)
	}
	if c.Trials.Workers <= 0 {
		return fmt.Errorf("%w: trials.workers must be positive", ErrInvalid)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

// Options translates the solver section into maze solver options.
func (s SolverConfig) Options() ([]maze.SolverOption, error) {
	var opts []maze.SolverOption

	switch strings.ToLower(s.DoorPolicy) {
	case "", "open":
		opts = append(opts, maze.WithDoorPolicy(maze.DoorsOpen))
	case "locked":
		opts = append(opts, maze.WithDoorPolicy(maze.DoorsLocked))
	default:
		return nil, fmt.Errorf("%w: solver.door_policy must be open or locked, got %q", ErrInvalid, s.DoorPolicy)
	}

	for _, k := range s.Keys {
		c, err := maze.ParseDoorColor(k)
		if err != nil {
			return nil, fmt.Errorf("%w: solver.keys: %w", ErrInvalid, err)
		}
		opts = append(opts, maze.WithKeys(c))
	}

	if s.DoorCost < 0 {
		return nil, fmt.Errorf("%w: solver.door_cost must be non-negative", ErrInvalid)
	}
	opts = append(opts, maze.WithDoorCost(s.DoorCost))

	heuristic, err := astar.ParseHeuristic(s.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: solver.heuristic: %w", ErrInvalid, err)
	}
	search := []astar.Option{heuristic}
	switch {
	case s.MaxCost < 0:
		return nil, fmt.Errorf("%w: solver.max_cost must be non-negative", ErrInvalid)
	case s.MaxCost > 0:
		search = append(search, astar.WithMaxCost(s.MaxCost))
	}
	opts = append(opts, maze.WithSearch(search...))

	return opts, nil
}
