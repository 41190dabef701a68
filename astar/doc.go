// Package astar finds minimum-cost routes through a core.Graph with the A*
// algorithm, degenerating to Dijkstra's algorithm when no admissible
// heuristic is available.
//
// Overview:
//
//   - PerformAStar returns the ordered node list from start to goal, both
//     inclusive. start == goal yields the single-element path [start].
//   - Every negative outcome is the single sentinel ErrNoPath: start missing
//     from the graph, goal missing from the graph, or genuine unreachability.
//     Only a nil graph (a programming mistake) yields ErrNilGraph.
//   - The search is a pure function of the graph: no state survives a call
//     and the graph is never mutated.
//
// Tie-breaking:
//
//   - The frontier is a min-heap keyed on (f, seq) where seq counts pushes.
//     Among equal f the entry discovered first is expanded first.
//   - A node's connections are relaxed in creation order, and a node's parent
//     only changes on a strictly cheaper route. Together these make the
//     route that hugs the earliest-added connections win every tie, and make
//     repeated calls on the same graph return the same path.
//
// Heuristics:
//
//   - nil (the default) selects a Manhattan estimate scaled by
//     core.Graph.HeuristicScale when every node carries coordinates, and the
//     zero heuristic otherwise. The scaled estimate is admissible and
//     consistent for any non-negative costs.
//   - WithShape(Euclidean) keeps the automatic scale but swaps the distance.
//     ParseHeuristic resolves "manhattan" and "euclidean" this way, so a
//     named heuristic is always scaled to the graph's cheapest step.
//   - Zero, Manhattan(scale) and Euclidean(scale) are available explicitly;
//     custom heuristics must be consistent for the closed set to be exact.
//
// Options:
//
//   - WithHeuristic(h):        replace the automatic heuristic.
//   - WithShape(shape):        distance used by the automatic heuristic.
//   - WithMaxCost(c):          routes costing more than c are not explored (c ≥ 0).
//   - WithImpassableCost(t):   connections with cost ≥ t are walls (t > 0).
//   - WithLogger(l):           debug trace of each search; silent by default.
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key, each node expanded once.
//   - Space: O(V + E), per-search slices indexed by core.Graph.IndexOf,
//     plus up to E heap entries.
//
// Example:
//
//	path, err := astar.FindPath(g, a, goal)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // wander instead
//	}
package astar
