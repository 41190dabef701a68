package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazenav/core"
)

// Components returns the connected regions of the solver's graph. Regions
// are ordered by their first cell in row-major order; cells inside a region
// are in breadth-first order from that cell.
//
// Time:   O(W·H + E).
// Memory: O(W·H).
func (s *Solver) Components() [][]Point {
	seen := mapset.New[*core.Node]()
	var comps [][]Point
	for _, n := range s.nodes {
		if seen.Has(n) {
			continue
		}
		comps = append(comps, s.flood(n, &seen))
	}

	return comps
}

// Reachable returns every cell reachable from cell, cell included, in
// breadth-first order. nil for a cell outside the grid.
func (s *Solver) Reachable(cell Cell) []Point {
	n := s.NodeFor(cell)
	if n == nil {
		return nil
	}
	seen := mapset.New[*core.Node]()

	return s.flood(n, &seen)
}

// Connected reports whether every cell can reach every other cell.
func (s *Solver) Connected() bool {
	seen := mapset.New[*core.Node]()

	return len(s.flood(s.nodes[0], &seen)) == len(s.nodes)
}

// flood runs a BFS from start over graph connections, marking seen.
func (s *Solver) flood(start *core.Node, seen *mapset.Set[*core.Node]) []Point {
	queue := []*core.Node{start}
	seen.Put(start)
	var out []Point

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		x, y, _ := u.Coordinates()
		out = append(out, Point{X: x, Y: y})
		for _, c := range u.Connections() {
			if !seen.Has(c.Target) {
				seen.Put(c.Target)
				queue = append(queue, c.Target)
			}
		}
	}

	return out
}
