// Package maze adapts a rectangular cell grid to core.Graph so callers can
// ask for routes in grid terms and never touch nodes or connections.
//
// What:
//
//   - Cell and Grid describe the maze as the solver consumes it: grid
//     coordinates plus a Divider (Wall, Empty, ColoredDoor) on each side.
//   - TileGrid is a ready-made Grid with a text layout codec (Parse, String)
//     and RandomCell for picking endpoints.
//   - Solver builds one node per cell and connects neighbours whose shared
//     divider permits movement, then answers SolvePath, SolvePathAsCells and
//     SolvePathAsPixels through astar.
//   - Components, Reachable and Connected report connectivity.
//
// Doors:
//
//   - DoorsOpen (default) connects cells across any coloured door.
//   - DoorsLocked connects them only for colours passed to WithKeys.
//   - Rebuild returns a fresh Solver when doors or keys change; an existing
//     graph is never edited.
//
// Errors:
//
//   - ErrNilGrid, ErrEmptyGrid, ErrNilCell, ErrCellPosition: bad grids
//     handed to NewSolver.
//   - ErrNoPath (astar.ErrNoPath): a cell outside the grid, or no route.
//   - ErrOutOfBounds, ErrBadDirection, ErrBadCellSize, ErrBadLayout:
//     TileGrid editing and parsing.
//
// Complexity:
//
//   - NewSolver: O(W×H) time and memory.
//   - SolvePath: O((V+E) log V) per query, V = W×H.
//   - Components: O(V+E).
package maze
