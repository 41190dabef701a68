// File: graph.go
// Role: Graph lifecycle (append-only) and aggregate queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Connections are appended to their source node in call order.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.
//   - Lock order: a single mutex, so no ordering hazards.
package core

import (
	"fmt"
	"math"
)

// AddNode inserts n at the end of the node list.
//
// Ownership is claimed with a compare-and-swap on the node, so a node can
// never end up in two graphs even when graphs are built concurrently.
//
// Errors:
//   - ErrNilNode if n is nil.
//   - ErrDuplicateNode if n was already added to g.
//   - ErrForeignNode if n belongs to another graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !n.owner.CompareAndSwap(nil, g) {
		if n.owner.Load() == g {
			return fmt.Errorf("%w: %s", ErrDuplicateNode, n)
		}
		return fmt.Errorf("%w: %s", ErrForeignNode, n)
	}
	n.index = len(g.nodes)
	g.nodes = append(g.nodes, n)
	if n.positioned {
		g.positioned++
	}

	return nil
}

// AddNodes adds every node in order and stops at the first error.
func (g *Graph) AddNodes(nodes ...*Node) error {
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return err
		}
	}

	return nil
}

// AddBiDirection creates the two connections a→b and b→a, both with the
// same cost (DefaultCost unless WithCost is given). a's list grows first.
//
// Errors:
//   - ErrNilNode, ErrNodeNotFound if either endpoint is missing from g.
//   - ErrBadCost if the cost is negative, NaN or infinite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddBiDirection(a, b *Node, opts ...ConnectionOption) error {
	cost, err := g.validate(a, b, opts)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.link(a, b, cost)
	g.link(b, a, cost)

	return nil
}

// AddConnection creates the single directed connection from→to.
// Same errors as AddBiDirection.
func (g *Graph) AddConnection(from, to *Node, opts ...ConnectionOption) error {
	cost, err := g.validate(from, to, opts)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.link(from, to, cost)

	return nil
}

// validate resolves the options and checks membership and cost.
func (g *Graph) validate(from, to *Node, opts []ConnectionOption) (float64, error) {
	if from == nil || to == nil {
		return 0, ErrNilNode
	}
	if !g.HasNode(from) {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, to)
	}

	c := Connection{Target: to, Cost: DefaultCost}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Cost < 0 || math.IsNaN(c.Cost) || math.IsInf(c.Cost, 0) {
		return 0, fmt.Errorf("%w: %s→%s cost=%v", ErrBadCost, from, to, c.Cost)
	}

	return c.Cost, nil
}

// link appends from→to and updates counters. Caller holds mu.
func (g *Graph) link(from, to *Node, cost float64) {
	from.connections = append(from.connections, Connection{Target: to, Cost: cost})

	if g.edges == 0 || cost < g.minCost {
		g.minCost = cost
	}
	if g.edges == 0 || cost > g.maxCost {
		g.maxCost = cost
	}
	g.edges++

	if !from.positioned || !to.positioned {
		return
	}
	d := manhattan(from, to)
	if d == 0 {
		return
	}
	if cost == 0 {
		g.scaleBroken = true
		return
	}
	if s := cost / float64(d); !g.scaleSeen || s < g.scale {
		g.scale = s
	}
	g.scaleSeen = true
}

// HasNode reports whether n is a member of g. Lock-free.
// Complexity: O(1).
func (g *Graph) HasNode(n *Node) bool {
	return n != nil && n.owner.Load() == g
}

// IndexOf returns the dense insertion index of n in g, suitable for
// indexing per-search state slices sized NodeCount().
// Complexity: O(1).
func (g *Graph) IndexOf(n *Node) (int, bool) {
	if !g.HasNode(n) {
		return -1, false
	}

	return n.index, true
}

// Nodes returns the member nodes in insertion order (copy).
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of member nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NumberOfEdges returns the number of directed connections; a bidirectional
// link counts twice.
func (g *Graph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// HeuristicScale returns the largest s such that s·Manhattan(u, v) never
// exceeds cost(u→v) over every connection. A Manhattan heuristic scaled by
// s is then admissible and consistent.
//
// ok is false when some node lacks coordinates, when no connection spans
// any distance, or when a zero-cost connection spans distance; callers
// should fall back to a zero heuristic.
//
// Complexity: O(1).
func (g *Graph) HeuristicScale() (scale float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 || g.positioned != len(g.nodes) {
		return 0, false
	}
	if !g.scaleSeen || g.scaleBroken || g.scale <= 0 {
		return 0, false
	}

	return g.scale, true
}

// Stats returns a snapshot of sizes and the cost range.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		Nodes:      len(g.nodes),
		Edges:      g.edges,
		Positioned: g.positioned,
		MinCost:    g.minCost,
		MaxCost:    g.maxCost,
	}
}

// Snapshot is a frozen view of a graph taken under its read lock.
// Nodes are in insertion order and Adjacency[i] holds the outgoing
// connections of Nodes[i] in creation order. Nodes and connections added
// after the snapshot was taken are not visible. The slices share storage
// with the graph and must not be modified.
type Snapshot struct {
	Nodes     []*Node
	Adjacency [][]Connection
}

// Snapshot captures the current nodes and connections. Only slice headers
// are copied: the graph is append-only, so the captured prefixes never change.
// Complexity: O(V).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make([][]Connection, len(g.nodes))
	for i, n := range g.nodes {
		adj[i] = n.connections[:len(n.connections):len(n.connections)]
	}

	return Snapshot{Nodes: g.nodes[:len(g.nodes):len(g.nodes)], Adjacency: adj}
}

// manhattan is the grid distance between two positioned nodes.
func manhattan(a, b *Node) int {
	return abs(a.x-b.x) + abs(a.y-b.y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
