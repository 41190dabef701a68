// File: node.go
// Role: Node construction and read accessors.
//
// Concurrency:
//   - Accessors that read connections take the owner's read lock.
//   - Searches read a Graph.Snapshot instead and run without any lock.
package core

import "fmt"

// NewNode creates an abstract node without coordinates.
// The node is not part of any graph until Graph.AddNode is called.
// Complexity: O(1).
func NewNode(label string) *Node {
	return &Node{
		id:    nextNodeID.Add(1),
		label: label,
		index: -1,
	}
}

// NewNodeAt creates a node carrying grid coordinates (x, y).
// Coordinates feed coordinate-aware heuristics and the cell mapping of maze solvers.
// Complexity: O(1).
func NewNodeAt(label string, x, y int) *Node {
	n := NewNode(label)
	n.x, n.y = x, y
	n.positioned = true

	return n
}

// ID returns the process-unique numeric identifier assigned at construction.
func (n *Node) ID() uint64 { return n.id }

// Label returns the human-readable label. Labels are not unique.
func (n *Node) Label() string { return n.label }

// Coordinates returns the grid coordinates and whether the node carries any.
func (n *Node) Coordinates() (x, y int, ok bool) {
	return n.x, n.y, n.positioned
}

// HasCoordinates reports whether the node was created with NewNodeAt.
func (n *Node) HasCoordinates() bool { return n.positioned }

// Degree returns the number of outgoing connections.
func (n *Node) Degree() int {
	if g := n.owner.Load(); g != nil {
		g.mu.RLock()
		defer g.mu.RUnlock()
	}

	return len(n.connections)
}

// Connections returns a copy of the outgoing connections in creation order.
// Complexity: O(deg(n)).
func (n *Node) Connections() []Connection {
	if g := n.owner.Load(); g != nil {
		g.mu.RLock()
		defer g.mu.RUnlock()
	}
	out := make([]Connection, len(n.connections))
	copy(out, n.connections)

	return out
}

// ConnectionTo returns the first connection from n to target, by identity.
// Complexity: O(deg(n)).
func (n *Node) ConnectionTo(target *Node) (Connection, bool) {
	if g := n.owner.Load(); g != nil {
		g.mu.RLock()
		defer g.mu.RUnlock()
	}
	for _, c := range n.connections {
		if c.Target == target {
			return c, true
		}
	}

	return Connection{}, false
}

// String renders the label, followed by coordinates when present.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.positioned {
		return fmt.Sprintf("%s(%d,%d)", n.label, n.x, n.y)
	}

	return n.label
}
