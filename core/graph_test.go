// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph contracts: append-only membership,
// connection creation order, edge counting and heuristic bookkeeping.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazenav/core"
)

// newLabelled builds one node per label without adding them anywhere.
func newLabelled(labels ...string) []*core.Node {
	out := make([]*core.Node, len(labels))
	for i, l := range labels {
		out[i] = core.NewNode(l)
	}

	return out
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("A")

	require.ErrorIs(t, g.AddNode(nil), core.ErrNilNode)
	require.NoError(t, g.AddNode(a))
	require.ErrorIs(t, g.AddNode(a), core.ErrDuplicateNode)
	assert.Equal(t, 1, g.NodeCount(), "duplicate insert must not grow the graph")

	other := core.NewGraph()
	require.ErrorIs(t, other.AddNode(a), core.ErrForeignNode)
	assert.False(t, other.HasNode(a))
	assert.True(t, g.HasNode(a))
}

func TestGraph_NodesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	nodes := newLabelled("C", "A", "B", "A")
	require.NoError(t, g.AddNodes(nodes...))

	got := g.Nodes()
	require.Len(t, got, 4)
	for i := range nodes {
		assert.Same(t, nodes[i], got[i], "index %d", i)
		idx, ok := g.IndexOf(nodes[i])
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	// Nodes() hands out a copy.
	got[0] = nil
	assert.Same(t, nodes[0], g.Nodes()[0])
}

func TestGraph_IdentityNotLabel(t *testing.T) {
	g := core.NewGraph()
	a1 := core.NewNodeAt("A", 1, 1)
	a2 := core.NewNodeAt("A", 1, 1)
	require.NoError(t, g.AddNodes(a1, a2))

	assert.NotSame(t, a1, a2)
	assert.NotEqual(t, a1.ID(), a2.ID())
	assert.Equal(t, 2, g.NodeCount())

	require.NoError(t, g.AddBiDirection(a1, a2))
	c, ok := a1.ConnectionTo(a2)
	require.True(t, ok)
	assert.Same(t, a2, c.Target)
	_, ok = a1.ConnectionTo(a1)
	assert.False(t, ok, "a1 has no self connection even though a2 looks identical")
}

func TestGraph_AddBiDirection(t *testing.T) {
	g := core.NewGraph()
	n := newLabelled("A", "B", "C")
	require.NoError(t, g.AddNodes(n...))

	require.NoError(t, g.AddBiDirection(n[0], n[1]))
	require.NoError(t, g.AddBiDirection(n[0], n[2], core.WithCost(2.5)))

	assert.Equal(t, 4, g.NumberOfEdges())
	require.Equal(t, 2, n[0].Degree())

	// Connections keep creation order.
	conns := n[0].Connections()
	assert.Same(t, n[1], conns[0].Target)
	assert.Equal(t, core.DefaultCost, conns[0].Cost)
	assert.Same(t, n[2], conns[1].Target)
	assert.Equal(t, 2.5, conns[1].Cost)

	back, ok := n[2].ConnectionTo(n[0])
	require.True(t, ok)
	assert.Equal(t, 2.5, back.Cost)
}

func TestGraph_AddBiDirectionErrors(t *testing.T) {
	g := core.NewGraph()
	a, b := core.NewNode("A"), core.NewNode("B")
	require.NoError(t, g.AddNode(a))

	cases := []struct {
		name string
		from *core.Node
		to   *core.Node
		opts []core.ConnectionOption
		err  error
	}{
		{"NilFrom", nil, a, nil, core.ErrNilNode},
		{"NilTo", a, nil, nil, core.ErrNilNode},
		{"MissingTarget", a, b, nil, core.ErrNodeNotFound},
		{"MissingSource", b, a, nil, core.ErrNodeNotFound},
		{"Negative", a, a, []core.ConnectionOption{core.WithCost(-1)}, core.ErrBadCost},
		{"NaN", a, a, []core.ConnectionOption{core.WithCost(math.NaN())}, core.ErrBadCost},
		{"Inf", a, a, []core.ConnectionOption{core.WithCost(math.Inf(1))}, core.ErrBadCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddBiDirection(tc.from, tc.to, tc.opts...), tc.err)
			require.ErrorIs(t, g.AddConnection(tc.from, tc.to, tc.opts...), tc.err)
		})
	}
	assert.Zero(t, g.NumberOfEdges(), "failed inserts must not leave connections behind")
}

func TestGraph_ZeroCostAllowed(t *testing.T) {
	g := core.NewGraph()
	n := newLabelled("A", "B")
	require.NoError(t, g.AddNodes(n...))
	require.NoError(t, g.AddBiDirection(n[0], n[1], core.WithCost(0)))

	st := g.Stats()
	assert.Equal(t, 2, st.Edges)
	assert.Zero(t, st.MinCost)
	assert.Zero(t, st.MaxCost)
}

func TestGraph_AddConnectionIsOneWay(t *testing.T) {
	g := core.NewGraph()
	n := newLabelled("A", "B")
	require.NoError(t, g.AddNodes(n...))
	require.NoError(t, g.AddConnection(n[0], n[1], core.WithCost(3)))

	assert.Equal(t, 1, g.NumberOfEdges())
	assert.Equal(t, 1, n[0].Degree())
	assert.Equal(t, 0, n[1].Degree())
}

// The seven-node topology used throughout the search tests: 14 directed edges,
// 16 once the C-F shortcut is added.
func TestGraph_NumberOfEdges(t *testing.T) {
	g := core.NewGraph()
	n := newLabelled("A", "B", "C", "D", "E", "F", "G")
	require.NoError(t, g.AddNodes(n...))
	A, B, C, D, E, F, G := n[0], n[1], n[2], n[3], n[4], n[5], n[6]

	for _, p := range [][2]*core.Node{{A, B}, {B, D}, {D, G}, {A, C}, {C, E}, {E, F}, {F, G}} {
		require.NoError(t, g.AddBiDirection(p[0], p[1]))
	}
	assert.Equal(t, 14, g.NumberOfEdges())

	require.NoError(t, g.AddBiDirection(C, F))
	assert.Equal(t, 16, g.NumberOfEdges())
	assert.Equal(t, 7, g.NodeCount())
}

func TestGraph_HeuristicScale(t *testing.T) {
	t.Run("UnitGrid", func(t *testing.T) {
		g := core.NewGraph()
		a, b, c := core.NewNodeAt("a", 0, 0), core.NewNodeAt("b", 1, 0), core.NewNodeAt("c", 1, 1)
		require.NoError(t, g.AddNodes(a, b, c))
		require.NoError(t, g.AddBiDirection(a, b))
		require.NoError(t, g.AddBiDirection(b, c, core.WithCost(4)))

		s, ok := g.HeuristicScale()
		require.True(t, ok)
		assert.Equal(t, 1.0, s)
	})

	t.Run("LongCheapHop", func(t *testing.T) {
		g := core.NewGraph()
		a, b := core.NewNodeAt("a", 0, 0), core.NewNodeAt("b", 4, 0)
		require.NoError(t, g.AddNodes(a, b))
		require.NoError(t, g.AddBiDirection(a, b, core.WithCost(2)))

		s, ok := g.HeuristicScale()
		require.True(t, ok)
		assert.Equal(t, 0.5, s)
	})

	t.Run("ZeroCostSpan", func(t *testing.T) {
		g := core.NewGraph()
		a, b := core.NewNodeAt("a", 0, 0), core.NewNodeAt("b", 1, 0)
		require.NoError(t, g.AddNodes(a, b))
		require.NoError(t, g.AddBiDirection(a, b, core.WithCost(0)))

		_, ok := g.HeuristicScale()
		assert.False(t, ok)
	})

	t.Run("UnpositionedNode", func(t *testing.T) {
		g := core.NewGraph()
		a, b := core.NewNodeAt("a", 0, 0), core.NewNode("b")
		require.NoError(t, g.AddNodes(a, b))
		require.NoError(t, g.AddBiDirection(a, b))

		_, ok := g.HeuristicScale()
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := core.NewGraph().HeuristicScale()
		assert.False(t, ok)
	})
}

func TestGraph_Snapshot(t *testing.T) {
	g := core.NewGraph()
	n := newLabelled("A", "B", "C")
	require.NoError(t, g.AddNodes(n[0], n[1]))
	require.NoError(t, g.AddBiDirection(n[0], n[1], core.WithCost(2)))

	snap := g.Snapshot()
	require.Len(t, snap.Nodes, 2)
	require.Len(t, snap.Adjacency, 2)
	assert.Same(t, n[0], snap.Nodes[0])
	require.Len(t, snap.Adjacency[0], 1)
	assert.Same(t, n[1], snap.Adjacency[0][0].Target)
	assert.Equal(t, 2.0, snap.Adjacency[0][0].Cost)

	// Later additions stay out of an existing snapshot.
	require.NoError(t, g.AddNode(n[2]))
	require.NoError(t, g.AddBiDirection(n[0], n[2]))
	assert.Len(t, snap.Nodes, 2)
	assert.Len(t, snap.Adjacency[0], 1)
	assert.Len(t, g.Snapshot().Adjacency[0], 2)

	// Locking accessors are safe while a snapshot is in use.
	for _, c := range snap.Adjacency[0] {
		_, ok := c.Target.ConnectionTo(n[0])
		assert.True(t, ok)
	}
}
