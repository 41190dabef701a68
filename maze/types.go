// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: collaborator contracts (Cell, Grid), divider model, solver options
// and sentinel errors for the maze adapter.

package maze

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mazenav/astar"
)

// Sentinel errors for maze construction and solving.
var (
	// ErrNilGrid indicates a nil Grid was passed to NewSolver.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("maze: grid must have at least one column and one row")
	// ErrNilCell indicates Grid.CellAt returned nil inside the grid bounds.
	ErrNilCell = errors.New("maze: grid returned a nil cell")
	// ErrCellPosition indicates a cell reports coordinates different from its slot.
	ErrCellPosition = errors.New("maze: cell coordinates do not match its grid slot")
	// ErrOutOfBounds indicates a coordinate or neighbour outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrBadDirection indicates a Direction outside North..West.
	ErrBadDirection = errors.New("maze: invalid direction")
	// ErrBadCellSize indicates a non-positive cell pixel size.
	ErrBadCellSize = errors.New("maze: cell size must be positive")
	// ErrBadLayout indicates malformed ASCII maze input.
	ErrBadLayout = errors.New("maze: malformed layout")
	// ErrBadColor indicates an unknown door colour name.
	ErrBadColor = errors.New("maze: unknown door colour")

	// ErrNoPath is astar.ErrNoPath, re-exported for grid-level callers.
	ErrNoPath = astar.ErrNoPath
)

// Divider is the state of the boundary between two adjacent cells.
// The zero value is Wall.
type Divider int

const (
	Wall Divider = iota
	Empty
	ColoredDoor
)

func (d Divider) String() string {
	switch d {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case ColoredDoor:
		return "door"
	default:
		return "unknown"
	}
}

// DoorColor identifies which key opens a ColoredDoor.
type DoorColor int

const (
	NoColor DoorColor = iota
	Red
	Green
	Blue
	Yellow
)

func (c DoorColor) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "none"
	}
}

// ParseDoorColor maps a colour name ("red", "green", "blue", "yellow") to
// its DoorColor. Matching ignores case and surrounding space.
func ParseDoorColor(name string) (DoorColor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "yellow":
		return Yellow, nil
	default:
		return NoColor, fmt.Errorf("%w: %q", ErrBadColor, name)
	}
}

// Cell is one maze grid unit as seen by the solver.
type Cell interface {
	GridX() int
	GridY() int
	DividerTowards(d Direction) Divider
}

// DoorCell is implemented by cells that know the colour of their doors.
type DoorCell interface {
	Cell
	DoorColorTowards(d Direction) DoorColor
}

// Grid is a rectangular arrangement of cells. CellAt returns nil outside
// the grid.
type Grid interface {
	CellAt(x, y int) Cell
	CellDimensionsX() int
	CellDimensionsY() int
}

// cellSizer is implemented by grids that know their cell pixel size.
type cellSizer interface {
	CellSize() int
}

// Point is a cell position in grid coordinates.
type Point struct {
	X, Y int
}

// PixelPoint is a position in pixel space.
type PixelPoint struct {
	X, Y float64
}

// DoorPolicy decides whether coloured doors connect cells.
type DoorPolicy int

const (
	// DoorsOpen treats every coloured door as passable.
	DoorsOpen DoorPolicy = iota
	// DoorsLocked treats coloured doors as walls unless their key is held.
	DoorsLocked
)

// CostFunc prices the move between two adjacent cells across divider d.
// Returning +Inf leaves the pair unconnected.
type CostFunc func(from, to Cell, d Divider) float64

// SolverOptions configures how NewSolver turns a grid into a graph.
//
// DoorPolicy – whether coloured doors are passable. Default DoorsOpen.
// Keys       – door colours passable under DoorsLocked.
// DoorCost   – connection cost across an open door. Default 1.
// CostFunc   – overrides the cost of every connection when non-nil.
// Search     – options forwarded to astar.New.
// Logger     – graph build and search logging. Default discards.
type SolverOptions struct {
	DoorPolicy DoorPolicy
	Keys       []DoorColor
	DoorCost   float64
	CostFunc   CostFunc
	Search     []astar.Option
	Logger     *slog.Logger
}

// SolverOption configures a Solver.
type SolverOption func(*SolverOptions)

// WithDoorPolicy selects how coloured doors are treated.
func WithDoorPolicy(p DoorPolicy) SolverOption {
	return func(o *SolverOptions) {
		o.DoorPolicy = p
	}
}

// WithKeys adds held key colours; matching doors open under DoorsLocked.
func WithKeys(colors ...DoorColor) SolverOption {
	return func(o *SolverOptions) {
		o.Keys = append(o.Keys, colors...)
	}
}

// WithDoorCost sets the cost of crossing an open door.
func WithDoorCost(c float64) SolverOption {
	return func(o *SolverOptions) {
		o.DoorCost = c
	}
}

// WithCostFunc sets a per-connection pricing function.
func WithCostFunc(fn CostFunc) SolverOption {
	return func(o *SolverOptions) {
		o.CostFunc = fn
	}
}

// WithSearch forwards options to the underlying astar.Search.
func WithSearch(opts ...astar.Option) SolverOption {
	return func(o *SolverOptions) {
		o.Search = append(o.Search, opts...)
	}
}

// WithLogger sets the logger. nil keeps the default.
func WithLogger(l *slog.Logger) SolverOption {
	return func(o *SolverOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultSolverOptions returns open doors at unit cost and a discarding logger.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		DoorPolicy: DoorsOpen,
		DoorCost:   1,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

func (o SolverOptions) clone() SolverOptions {
	out := o
	out.Keys = append([]DoorColor(nil), o.Keys...)
	out.Search = append([]astar.Option(nil), o.Search...)

	return out
}

func (o SolverOptions) hasKey(c DoorColor) bool {
	for _, k := range o.Keys {
		if k == c {
			return true
		}
	}

	return false
}
