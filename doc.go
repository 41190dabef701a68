// Package mazenav is the navigation layer for enemies in a tile-maze game:
// a small, dependency-light graph core, an A* search with reproducible
// tie-breaking, and an adapter that turns a walled cell grid into a graph
// and routes back into grid coordinates.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     Node, Connection and the append-only Graph
//	astar/    A* search (Dijkstra when no heuristic applies)
//	maze/     Cell/Grid model, TileGrid, and the Solver adapter
//	spatial/  R-tree locator snapping pixel positions to nodes
//	config/   YAML configuration for the command
//	cmd/      mazenav, a command that solves, renders and stress-tests mazes
//
// Quick ASCII example:
//
//	A───B───D───G
//	│           │
//	C───E───F───┘
//
// With unit costs, FindPath(g, A, G) returns [A B D G]: both A-B-D-G and
// the lower corridor were reachable, and the shorter one wins. Among routes
// of equal cost the one discovered first, following connection creation
// order, always wins.
//
//	go get github.com/katalvlaran/mazenav
package mazenav
