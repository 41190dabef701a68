package spatial_test

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazenav/core"
	"github.com/katalvlaran/mazenav/spatial"
)

// grid returns a w×h graph of positioned nodes, row-major, no connections.
func grid(t *testing.T, w, h int) (*core.Graph, [][]*core.Node) {
	t.Helper()
	g := core.NewGraph()
	rows := make([][]*core.Node, h)
	for y := range rows {
		rows[y] = make([]*core.Node, w)
		for x := range rows[y] {
			rows[y][x] = core.NewNodeAt(fmt.Sprintf("%d,%d", x, y), x, y)
			require.NoError(t, g.AddNode(rows[y][x]))
		}
	}

	return g, rows
}

func TestIndex_Nearest(t *testing.T) {
	g, cells := grid(t, 4, 3)
	ix := spatial.NewIndex(g, 16)
	require.Equal(t, 12, ix.Len())

	n, ok := ix.Nearest(orb.Point{20, 5})
	require.True(t, ok)
	assert.Same(t, cells[0][1], n)

	n, ok = ix.Nearest(orb.Point{1000, 1000})
	require.True(t, ok)
	assert.Same(t, cells[2][3], n, "far points snap to the closest corner")

	// (16,16) is equidistant from four centres; the first added wins.
	n, ok = ix.Nearest(orb.Point{16, 16})
	require.True(t, ok)
	assert.Same(t, cells[0][0], n)
}

func TestIndex_NearestK(t *testing.T) {
	g, cells := grid(t, 3, 3)
	ix := spatial.NewIndex(g, 10)

	got := ix.NearestK(orb.Point{15, 15}, 5)
	require.Len(t, got, 5)
	assert.Same(t, cells[1][1], got[0])
	// The four edge neighbours tie at distance 10, in insertion order.
	assert.Equal(t, []*core.Node{cells[0][1], cells[1][0], cells[1][2], cells[2][1]}, got[1:])

	assert.Len(t, ix.NearestK(orb.Point{0, 0}, 100), 9)
	assert.Nil(t, ix.NearestK(orb.Point{0, 0}, 0))
}

func TestIndex_Within(t *testing.T) {
	g, cells := grid(t, 4, 4)
	ix := spatial.NewIndex(g, 2)

	got := ix.Within(orb.Bound{Min: orb.Point{2, 2}, Max: orb.Point{5, 3}})
	assert.Equal(t, []*core.Node{cells[1][1], cells[1][2]}, got)

	assert.Empty(t, ix.Within(orb.Bound{Min: orb.Point{100, 100}, Max: orb.Point{200, 200}}))
	assert.Len(t, ix.Within(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{8, 8}}), 16)
}

func TestIndex_SkipsUnpositioned(t *testing.T) {
	g := core.NewGraph()
	a, b := core.NewNode("abstract"), core.NewNodeAt("cell", 2, 1)
	require.NoError(t, g.AddNodes(a, b))

	ix := spatial.NewIndex(g, 0)
	assert.Equal(t, 1, ix.Len())
	_, ok := ix.Point(a)
	assert.False(t, ok)
	p, ok := ix.Point(b)
	require.True(t, ok)
	assert.Equal(t, orb.Point{2.5, 1.5}, p, "cell size defaults to 1")

	_, ok = ix.Distance(a, b)
	assert.False(t, ok)
}

func TestIndex_Empty(t *testing.T) {
	ix := spatial.NewIndex(nil, 8)
	assert.Zero(t, ix.Len())
	_, ok := ix.Nearest(orb.Point{1, 1})
	assert.False(t, ok)
	assert.Nil(t, ix.NearestK(orb.Point{1, 1}, 3))
	assert.Empty(t, ix.Within(orb.Bound{Max: orb.Point{10, 10}}))
}

func TestIndex_Distance(t *testing.T) {
	g, cells := grid(t, 4, 5)
	ix := spatial.NewIndex(g, 1)
	d, ok := ix.Distance(cells[0][0], cells[4][3])
	require.True(t, ok)
	assert.InDelta(t, 5.0, d, 1e-12)
}
