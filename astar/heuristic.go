package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mazenav/core"
)

// Heuristic estimates the remaining cost from n to goal.
// It must never overestimate (admissible) and should satisfy
// h(u) ≤ cost(u→v) + h(v) for every connection (consistent).
type Heuristic func(n, goal *core.Node) float64

// Zero is the constant-zero heuristic; A* with Zero is Dijkstra's algorithm.
func Zero(_, _ *core.Node) float64 { return 0 }

// Manhattan returns scale·(|dx|+|dy|). Nodes without coordinates estimate 0.
func Manhattan(scale float64) Heuristic {
	return func(n, goal *core.Node) float64 {
		nx, ny, ok1 := n.Coordinates()
		gx, gy, ok2 := goal.Coordinates()
		if !ok1 || !ok2 {
			return 0
		}

		return scale * float64(absInt(nx-gx)+absInt(ny-gy))
	}
}

// Euclidean returns scale·√(dx²+dy²). Nodes without coordinates estimate 0.
// It never exceeds Manhattan with the same scale, so any scale that keeps
// Manhattan admissible keeps Euclidean admissible too.
func Euclidean(scale float64) Heuristic {
	return func(n, goal *core.Node) float64 {
		nx, ny, ok1 := n.Coordinates()
		gx, gy, ok2 := goal.Coordinates()
		if !ok1 || !ok2 {
			return 0
		}

		return scale * math.Hypot(float64(nx-gx), float64(ny-gy))
	}
}

// Shape builds a distance heuristic for a given scale. Manhattan and
// Euclidean are shapes; the search supplies the scale from the graph.
type Shape func(scale float64) Heuristic

// ParseHeuristic maps a configuration name to a search option.
//
//	"auto" or ""   – automatic selection per graph
//	"zero"         – Zero (pure cost-ordered search)
//	"manhattan"    – Manhattan scaled by core.Graph.HeuristicScale
//	"euclidean"    – Euclidean scaled by core.Graph.HeuristicScale
//
// Named distances never use a fixed scale: a graph whose cheapest step
// costs less than one cell would make Manhattan(1) overestimate.
func ParseHeuristic(name string) (Option, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return WithHeuristic(nil), nil
	case "zero", "dijkstra":
		return WithHeuristic(Zero), nil
	case "manhattan":
		return WithShape(Manhattan), nil
	case "euclidean":
		return WithShape(Euclidean), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// resolve returns the explicit heuristic if one is set, else shape scaled
// by g. Zero stands in whenever g cannot provide an admissible scale.
func resolve(g *core.Graph, goal *core.Node, h Heuristic, shape Shape) Heuristic {
	if h != nil {
		return h
	}
	if !goal.HasCoordinates() {
		return Zero
	}
	scale, ok := g.HeuristicScale()
	if !ok {
		return Zero
	}
	if shape == nil {
		shape = Manhattan
	}

	return shape(scale)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
