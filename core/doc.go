// Package core provides the navigation graph used by the path searches:
// Node, Connection and Graph.
//
// The Graph G = (V, E) is deliberately small:
//
//   - Nodes are compared by identity (pointer), never by label or coordinates.
//     Two nodes labelled "A", or two nodes sitting on the same grid square,
//     are two different vertices.
//   - Every Node receives a process-unique numeric ID at construction.
//   - Nodes may carry 2D grid coordinates. Coordinates only feed heuristics and
//     the mapping back to maze cells; they never take part in equality.
//   - Connections are directed and weighted (non-negative cost, default 1).
//     A bidirectional link A↔B is exactly two Connections, A→B and B→A.
//   - Insertion order is observable: Nodes() returns nodes in the order they
//     were added, and each node's connections are kept in creation order.
//     Searches rely on both orders for deterministic tie-breaking.
//   - The graph is append-only. Live maze changes are modelled as building a
//     new graph, never as in-place mutation under an in-flight search.
//
// Core Methods:
//
//	// Nodes
//	NewNode(label string) *Node               // O(1)
//	NewNodeAt(label string, x, y int) *Node   // O(1)
//	AddNode(n *Node) error                    // O(1) amortized
//	HasNode(n *Node) bool                     // O(1)
//	IndexOf(n *Node) (int, bool)              // O(1), dense arena index
//	Nodes() []*Node                           // O(V), insertion order
//
//	// Connections
//	AddBiDirection(a, b *Node, opts ...ConnectionOption) error // O(1) amortized
//	AddConnection(from, to *Node, opts ...ConnectionOption) error
//	NumberOfEdges() int                       // O(1), directed connections
//
//	// Heuristic support
//	HeuristicScale() (float64, bool)          // O(1), maintained on insert
//
//	// Searches
//	Snapshot() Snapshot                       // O(V), frozen nodes + adjacency
//
// Errors:
//
//	ErrNilNode        – nil node passed to a graph operation
//	ErrDuplicateNode  – the same node added twice to one graph
//	ErrForeignNode    – node already owned by another graph
//	ErrNodeNotFound   – connection endpoint is not a member of the graph
//	ErrBadCost        – negative, NaN or infinite connection cost
//
// Concurrency: a sync.RWMutex guards the catalog. Once construction is done the
// graph is read-only and may be shared by any number of concurrent searches.
// A search reads a Snapshot taken under the read lock and then runs lock-free.
package core
