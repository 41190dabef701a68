// File: solver.go
// Role: builds a core.Graph from a Grid and answers path queries in grid
// terms.
//
// Determinism:
//   - Nodes are added row-major, so node (x,y) has index y*width+x.
//   - Connections are created per cell East then South, row-major.
//
// Concurrency:
//   - A Solver never mutates its graph after NewSolver returns; any number of
//     goroutines may call SolvePath and friends concurrently.
//   - Maze changes go through Rebuild, which returns a new Solver.

package maze

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazenav/astar"
	"github.com/katalvlaran/mazenav/core"
)

// Solver bridges a cell grid to core.Graph and astar.
type Solver struct {
	grid          Grid
	opts          SolverOptions
	width, height int
	cellSize      int

	graph  *core.Graph
	nodes  []*core.Node // row-major
	cells  []Cell       // row-major
	search *astar.Search
}

// NewSolver builds one node per cell and connects adjacent cells whose
// shared divider permits movement under opts.
//
// Errors: ErrNilGrid, ErrEmptyGrid, ErrNilCell, ErrCellPosition, and
// core.ErrBadCost when a cost policy yields a negative or NaN cost.
// Complexity: O(W×H) time and memory.
func NewSolver(grid Grid, opts ...SolverOption) (*Solver, error) {
	cfg := DefaultSolverOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newSolver(grid, cfg)
}

func newSolver(grid Grid, cfg SolverOptions) (*Solver, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	w, h := grid.CellDimensionsX(), grid.CellDimensionsY()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	size := 1
	if cs, ok := grid.(cellSizer); ok && cs.CellSize() > 0 {
		size = cs.CellSize()
	}

	searchOpts := append([]astar.Option{astar.WithLogger(cfg.Logger)}, cfg.Search...)
	s := &Solver{
		grid:     grid,
		opts:     cfg,
		width:    w,
		height:   h,
		cellSize: size,
		graph:    core.NewGraph(),
		nodes:    make([]*core.Node, w*h),
		cells:    make([]Cell, w*h),
		search:   astar.New(searchOpts...),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.CellAt(x, y)
			if c == nil {
				return nil, fmt.Errorf("%w: at (%d,%d)", ErrNilCell, x, y)
			}
			if c.GridX() != x || c.GridY() != y {
				return nil, fmt.Errorf("%w: slot (%d,%d) holds (%d,%d)",
					ErrCellPosition, x, y, c.GridX(), c.GridY())
			}
			n := core.NewNodeAt(fmt.Sprintf("%d,%d", x, y), x, y)
			if err := s.graph.AddNode(n); err != nil {
				return nil, err
			}
			s.cells[y*w+x] = c
			s.nodes[y*w+x] = n
		}
	}

	doors := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, dir := range []Direction{East, South} {
				linked, door, err := s.link(x, y, dir)
				if err != nil {
					return nil, err
				}
				if linked && door {
					doors++
				}
			}
		}
	}

	cfg.Logger.Debug("maze: graph built",
		"width", w, "height", h, "nodes", s.graph.NodeCount(),
		"edges", s.graph.NumberOfEdges(), "doors", doors)

	return s, nil
}

// link connects (x,y) with its neighbour towards dir when both sides allow it.
func (s *Solver) link(x, y int, dir Direction) (linked, door bool, err error) {
	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy
	if !s.inBounds(nx, ny) {
		return false, false, nil
	}
	from, to := s.cells[y*s.width+x], s.cells[ny*s.width+nx]

	d, color := boundary(from, to, dir)
	if !s.passable(d, color) {
		return false, false, nil
	}

	cost := 1.0
	if d == ColoredDoor {
		cost = s.opts.DoorCost
	}
	if s.opts.CostFunc != nil {
		cost = s.opts.CostFunc(from, to, d)
	}
	if math.IsInf(cost, 1) {
		return false, false, nil
	}

	a, b := s.nodes[y*s.width+x], s.nodes[ny*s.width+nx]
	if err := s.graph.AddBiDirection(a, b, core.WithCost(cost)); err != nil {
		return false, false, fmt.Errorf("maze: linking %s and %s: %w", a, b, err)
	}

	return true, d == ColoredDoor, nil
}

// boundary merges the two sides of a shared divider. A wall on either side
// wins, then a door on either side; the colour comes from whichever side
// reports one.
func boundary(from, to Cell, dir Direction) (Divider, DoorColor) {
	d1, d2 := from.DividerTowards(dir), to.DividerTowards(dir.Opposite())
	switch {
	case d1 == Wall || d2 == Wall:
		return Wall, NoColor
	case d1 == Empty && d2 == Empty:
		return Empty, NoColor
	}

	color := NoColor
	if dc, ok := from.(DoorCell); ok {
		color = dc.DoorColorTowards(dir)
	}
	if dc, ok := to.(DoorCell); ok && color == NoColor {
		color = dc.DoorColorTowards(dir.Opposite())
	}

	return ColoredDoor, color
}

func (s *Solver) passable(d Divider, color DoorColor) bool {
	switch d {
	case Empty:
		return true
	case ColoredDoor:
		return s.opts.DoorPolicy == DoorsOpen || s.opts.hasKey(color)
	default:
		return false
	}
}

func (s *Solver) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Graph returns the underlying graph. It must be treated as read-only.
func (s *Solver) Graph() *core.Graph { return s.graph }

// Grid returns the grid the solver was built from.
func (s *Solver) Grid() Grid { return s.grid }

// Options returns a copy of the effective options.
func (s *Solver) Options() SolverOptions { return s.opts.clone() }

// NodeAt returns the node of cell (x,y), or nil outside the grid.
func (s *Solver) NodeAt(x, y int) *core.Node {
	if !s.inBounds(x, y) {
		return nil
	}

	return s.nodes[y*s.width+x]
}

// NodeFor returns the node at cell's grid position, or nil for a nil cell or
// a position outside the grid.
func (s *Solver) NodeFor(cell Cell) *core.Node {
	if cell == nil {
		return nil
	}

	return s.NodeAt(cell.GridX(), cell.GridY())
}

// CellFor returns the cell behind n, or nil if n does not belong to s.
func (s *Solver) CellFor(n *core.Node) Cell {
	if n == nil {
		return nil
	}
	x, y, ok := n.Coordinates()
	if !ok || s.NodeAt(x, y) != n {
		return nil
	}

	return s.cells[y*s.width+x]
}

// CellAtPixel returns the cell containing pixel (px,py), or nil outside.
func (s *Solver) CellAtPixel(px, py float64) Cell {
	if px < 0 || py < 0 {
		return nil
	}
	x, y := int(px)/s.cellSize, int(py)/s.cellSize
	if !s.inBounds(x, y) {
		return nil
	}

	return s.cells[y*s.width+x]
}

// SolvePath returns the cheapest node route from start to end, inclusive.
// ErrNoPath covers a nil or out-of-grid cell as well as unreachability.
func (s *Solver) SolvePath(start, end Cell) ([]*core.Node, error) {
	a, b := s.NodeFor(start), s.NodeFor(end)
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: cell outside the maze", ErrNoPath)
	}

	return s.search.PerformAStar(s.graph, a, b)
}

// SolvePathAsCells is SolvePath in grid coordinates. It returns an empty
// slice when there is no path.
func (s *Solver) SolvePathAsCells(start, end Cell) []Point {
	path, err := s.SolvePath(start, end)
	if err != nil {
		return []Point{}
	}
	out := make([]Point, len(path))
	for i, n := range path {
		x, y, _ := n.Coordinates()
		out[i] = Point{X: x, Y: y}
	}

	return out
}

// SolvePathAsPixels is SolvePath as cell centres in pixel space. It returns
// an empty slice when there is no path.
func (s *Solver) SolvePathAsPixels(start, end Cell) []PixelPoint {
	cells := s.SolvePathAsCells(start, end)
	out := make([]PixelPoint, len(cells))
	for i, p := range cells {
		out[i] = s.PixelCentre(p)
	}

	return out
}

// PixelCentre returns the pixel centre of grid point p.
func (s *Solver) PixelCentre(p Point) PixelPoint {
	half := float64(s.cellSize) / 2

	return PixelPoint{
		X: float64(p.X*s.cellSize) + half,
		Y: float64(p.Y*s.cellSize) + half,
	}
}

// CellSize returns the pixel edge length used for pixel conversions.
func (s *Solver) CellSize() int { return s.cellSize }

// Rebuild constructs a new Solver over the same grid, with the current
// options overridden by opts. The receiver is left untouched and stays
// usable by in-flight searches.
func (s *Solver) Rebuild(opts ...SolverOption) (*Solver, error) {
	cfg := s.opts.clone()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newSolver(s.grid, cfg)
}
