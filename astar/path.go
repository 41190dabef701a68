package astar

import "github.com/katalvlaran/mazenav/core"

// PathCost sums the cheapest connection cost between each consecutive pair
// of path. ok is false if some pair has no connection, i.e. the path invents
// an edge. Empty and single-node paths cost 0.
//
// Complexity: O(Σ deg(path[i])).
func PathCost(path []*core.Node) (cost float64, ok bool) {
	for i := 0; i+1 < len(path); i++ {
		best, found := 0.0, false
		for _, c := range path[i].Connections() {
			if c.Target != path[i+1] {
				continue
			}
			if !found || c.Cost < best {
				best, found = c.Cost, true
			}
		}
		if !found {
			return 0, false
		}
		cost += best
	}

	return cost, true
}

// Labels returns the labels of path, handy for logging and tests.
func Labels(path []*core.Node) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = n.Label()
	}

	return out
}
