// Package mazegen carves random mazes into maze.TileGrid values.
//
// Generate runs an iterative depth-first carve from (0,0), which yields a
// perfect maze: exactly one route between any two cells. WithLoops then
// knocks out a fraction of the remaining interior walls, and WithDoors turns
// some open passages into coloured doors. Neither step can disconnect the
// grid while doors are treated as open.
package mazegen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazenav/maze"
)

// ErrBadLoops indicates a loop fraction outside [0,1].
var ErrBadLoops = errors.New("mazegen: loops must be within [0,1]")

// Options configures Generate.
type Options struct {
	CellSize int        // pixel edge length; default 16
	Rand     *rand.Rand // randomness source; default seeded with Seed
	Seed     int64      // used when Rand is nil; default 1
	Loops    float64    // fraction of interior walls removed after carving
	Doors    int        // open passages turned into coloured doors
}

// Option configures Generate.
type Option func(*Options)

// WithCellSize sets the pixel edge length of generated cells.
func WithCellSize(px int) Option { return func(o *Options) { o.CellSize = px } }

// WithSeed seeds the default randomness source.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand supplies the randomness source directly.
func WithRand(rng *rand.Rand) Option { return func(o *Options) { o.Rand = rng } }

// WithLoops removes the given fraction of interior walls after carving.
func WithLoops(fraction float64) Option { return func(o *Options) { o.Loops = fraction } }

// WithDoors turns n open passages into coloured doors.
func WithDoors(n int) Option { return func(o *Options) { o.Doors = n } }

// DefaultOptions returns 16px cells, seed 1, no loops and no doors.
func DefaultOptions() Options {
	return Options{CellSize: 16, Seed: 1}
}

var doorColors = []maze.DoorColor{maze.Red, maze.Green, maze.Blue, maze.Yellow}

// Generate returns a connected width×height maze.
func Generate(width, height int, opts ...Option) (*maze.TileGrid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Loops < 0 || cfg.Loops > 1 {
		return nil, ErrBadLoops
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	tg, err := maze.NewTileGrid(width, height, cfg.CellSize)
	if err != nil {
		return nil, err
	}

	if err := carve(tg, rng); err != nil {
		return nil, err
	}
	if cfg.Loops > 0 {
		if err := loops(tg, rng, cfg.Loops); err != nil {
			return nil, err
		}
	}
	if cfg.Doors > 0 {
		if err := doors(tg, rng, cfg.Doors); err != nil {
			return nil, err
		}
	}

	return tg, nil
}

// carve is depth-first backtracking with an explicit stack.
func carve(tg *maze.TileGrid, rng *rand.Rand) error {
	w, h := tg.CellDimensionsX(), tg.CellDimensionsY()
	visited := make([]bool, w*h)
	type pos struct{ x, y int }
	stack := []pos{{0, 0}}
	visited[0] = true
	dirs := maze.AllDirections()

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		moved := false
		for _, d := range dirs {
			dx, dy := d.Delta()
			nx, ny := cur.x+dx, cur.y+dy
			if !tg.InBounds(nx, ny) || visited[ny*w+nx] {
				continue
			}
			if err := tg.Carve(cur.x, cur.y, d); err != nil {
				return err
			}
			visited[ny*w+nx] = true
			stack = append(stack, pos{nx, ny})
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

// interior lists every East and South divider of kind d, row-major.
func interior(tg *maze.TileGrid, d maze.Divider) [][3]int {
	var out [][3]int
	w, h := tg.CellDimensionsX(), tg.CellDimensionsY()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := tg.Tile(x, y)
			if x+1 < w && t.DividerTowards(maze.East) == d {
				out = append(out, [3]int{x, y, int(maze.East)})
			}
			if y+1 < h && t.DividerTowards(maze.South) == d {
				out = append(out, [3]int{x, y, int(maze.South)})
			}
		}
	}

	return out
}

func loops(tg *maze.TileGrid, rng *rand.Rand, fraction float64) error {
	for _, wall := range interior(tg, maze.Wall) {
		if rng.Float64() >= fraction {
			continue
		}
		if err := tg.Carve(wall[0], wall[1], maze.Direction(wall[2])); err != nil {
			return err
		}
	}

	return nil
}

func doors(tg *maze.TileGrid, rng *rand.Rand, n int) error {
	open := interior(tg, maze.Empty)
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })
	if n > len(open) {
		n = len(open)
	}
	for _, p := range open[:n] {
		color := doorColors[rng.Intn(len(doorColors))]
		if err := tg.SetDoor(p[0], p[1], maze.Direction(p[2]), color); err != nil {
			return err
		}
	}

	return nil
}
