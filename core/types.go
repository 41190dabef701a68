// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Connection and Graph declarations, sentinel errors and options.

package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil *Node was passed to a graph operation.
	ErrNilNode = errors.New("core: node is nil")

	// ErrDuplicateNode indicates the same node reference was added twice.
	ErrDuplicateNode = errors.New("core: node already added to this graph")

	// ErrForeignNode indicates the node is already owned by another graph.
	ErrForeignNode = errors.New("core: node belongs to another graph")

	// ErrNodeNotFound indicates a connection endpoint is not a member of the graph.
	ErrNodeNotFound = errors.New("core: node not found in graph")

	// ErrBadCost indicates a negative, NaN or infinite connection cost.
	ErrBadCost = errors.New("core: connection cost must be finite and non-negative")
)

// DefaultCost is the cost of a connection created without WithCost.
const DefaultCost = 1.0

// nextNodeID hands out process-unique node IDs ("1", "2", …).
var nextNodeID atomic.Uint64

// Node is a vertex of the navigation graph.
//
// Identity is the pointer: labels and coordinates may repeat freely.
// A node is owned by at most one Graph; its outgoing connections are kept
// in creation order.
type Node struct {
	id         uint64
	label      string
	x, y       int
	positioned bool

	owner atomic.Pointer[Graph] // set once by Graph.AddNode
	index int                   // position in owner.nodes

	connections []Connection
}

// Connection is a directed, weighted edge owned by its source node.
//
// Target is borrowed: it belongs to the same Graph as the source.
type Connection struct {
	// Target is the node this connection leads to.
	Target *Node

	// Cost is the non-negative price of moving along the connection.
	Cost float64
}

// ConnectionOption configures a connection at creation time.
type ConnectionOption func(*Connection)

// WithCost overrides DefaultCost for the connection(s) being created.
func WithCost(cost float64) ConnectionOption {
	return func(c *Connection) { c.Cost = cost }
}

// Graph is an insertion-ordered, append-only collection of Nodes.
//
// mu guards nodes, the counters and every owned node's connection slice.
// The heuristic bookkeeping (scale*) is updated on each insert so that
// HeuristicScale stays O(1).
type Graph struct {
	mu sync.RWMutex

	nodes      []*Node
	edges      int // directed connections
	positioned int // nodes carrying coordinates

	minCost, maxCost float64
	scale            float64 // min cost/manhattan over spanning connections
	scaleSeen        bool    // at least one connection spans distance
	scaleBroken      bool    // a zero-cost connection spans distance
}

// Stats is a read-only snapshot of graph sizes and cost range.
type Stats struct {
	Nodes      int     // number of member nodes
	Edges      int     // number of directed connections
	Positioned int     // nodes carrying grid coordinates
	MinCost    float64 // cheapest connection (0 when Edges == 0)
	MaxCost    float64 // dearest connection (0 when Edges == 0)
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}
