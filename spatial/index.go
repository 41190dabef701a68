// Package spatial snaps pixel positions to navigation nodes.
//
// An Index stores the pixel centre of every positioned node of a
// core.Graph in an R-tree (github.com/dhconnelly/rtreego) and answers
// nearest-node and window queries with github.com/paulmach/orb geometry.
// Ties are always broken by graph insertion order, so repeated queries on
// the same graph give the same answer.
//
// An Index is immutable after NewIndex and safe for concurrent use.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/mazenav/core"
)

const (
	minBranch = 25
	maxBranch = 50
	// tolerance is the half-width of each stored point's bounding box.
	tolerance = 1e-6
)

// entry is one node in the R-tree.
type entry struct {
	node *core.Node
	idx  int // graph insertion index
	pt   orb.Point
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return rtreego.Point{e.pt.X(), e.pt.Y()}.ToRect(tolerance)
}

// Index is an R-tree of node pixel centres.
type Index struct {
	tree     *rtreego.Rtree
	byNode   map[*core.Node]*entry
	cellSize float64
}

// NewIndex indexes every node of g that carries coordinates. Node (x,y) is
// placed at the centre of its cell, cellSize pixels wide; a non-positive
// cellSize means 1.
func NewIndex(g *core.Graph, cellSize float64) *Index {
	if cellSize <= 0 {
		cellSize = 1
	}
	idx := &Index{
		tree:     rtreego.NewTree(2, minBranch, maxBranch),
		byNode:   make(map[*core.Node]*entry),
		cellSize: cellSize,
	}
	if g == nil {
		return idx
	}
	for i, n := range g.Nodes() {
		x, y, ok := n.Coordinates()
		if !ok {
			continue
		}
		e := &entry{node: n, idx: i, pt: idx.centre(x, y)}
		idx.tree.Insert(e)
		idx.byNode[n] = e
	}

	return idx
}

func (ix *Index) centre(x, y int) orb.Point {
	half := ix.cellSize / 2

	return orb.Point{float64(x)*ix.cellSize + half, float64(y)*ix.cellSize + half}
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.tree.Size() }

// Point returns the pixel centre of n, false if n is not indexed.
func (ix *Index) Point(n *core.Node) (orb.Point, bool) {
	e, ok := ix.byNode[n]
	if !ok {
		return orb.Point{}, false
	}

	return e.pt, true
}

// Nearest returns the node closest to p. Among equidistant nodes the one
// added to the graph first wins. ok is false for an empty index.
func (ix *Index) Nearest(p orb.Point) (*core.Node, bool) {
	if ix.Len() == 0 {
		return nil, false
	}
	first, ok := ix.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()}).(*entry)
	if !ok || first == nil {
		return nil, false
	}

	// Gather everything at the same distance to settle ties by index.
	d := planar.Distance(p, first.pt)
	window := orb.Bound{Min: p, Max: p}.Pad(d + 2*tolerance)
	best, bestD := first, d
	for _, e := range ix.search(window) {
		ed := planar.Distance(p, e.pt)
		if ed < bestD || (ed == bestD && e.idx < best.idx) {
			best, bestD = e, ed
		}
	}

	return best.node, true
}

// NearestK returns up to k nodes ordered by distance to p, then by graph
// insertion order.
func (ix *Index) NearestK(p orb.Point, k int) []*core.Node {
	if k <= 0 || ix.Len() == 0 {
		return nil
	}
	if k > ix.Len() {
		k = ix.Len()
	}

	found := ix.tree.NearestNeighbors(k, rtreego.Point{p.X(), p.Y()})
	entries := make([]*entry, 0, len(found))
	for _, s := range found {
		if e, ok := s.(*entry); ok && e != nil {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := planar.Distance(p, entries[i].pt), planar.Distance(p, entries[j].pt)
		if di != dj {
			return di < dj
		}
		return entries[i].idx < entries[j].idx
	})

	out := make([]*core.Node, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}

	return out
}

// Within returns the nodes whose centre lies inside b, in graph insertion
// order.
func (ix *Index) Within(b orb.Bound) []*core.Node {
	var out []*core.Node
	for _, e := range ix.search(b) {
		out = append(out, e.node)
	}

	return out
}

// search returns entries whose point lies in b, sorted by graph index.
func (ix *Index) search(b orb.Bound) []*entry {
	w, h := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	if w < 0 || h < 0 {
		return nil
	}
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.X() - tolerance, b.Min.Y() - tolerance},
		[]float64{w + 2*tolerance, h + 2*tolerance},
	)
	if err != nil {
		return nil
	}

	var out []*entry
	for _, s := range ix.tree.SearchIntersect(rect) {
		if e, ok := s.(*entry); ok && b.Contains(e.pt) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].idx < out[j].idx })

	return out
}

// Distance returns the pixel distance between the centres of a and b.
// ok is false if either node is not indexed.
func (ix *Index) Distance(a, b *core.Node) (float64, bool) {
	pa, ok1 := ix.Point(a)
	pb, ok2 := ix.Point(b)
	if !ok1 || !ok2 {
		return 0, false
	}

	return planar.Distance(pa, pb), true
}
