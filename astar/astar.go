// File: astar.go
// Role: A* search loop over core.Graph.
//
// Notes on implementation choices:
//
//   - Per-search state lives in slices indexed by core.Graph.IndexOf
//     (arena pattern), so node identity never goes through a hash of labels
//     or coordinates.
//   - The frontier is a github.com/zyedidia/generic/heap min-heap ordered by
//     (f, seq); seq gives FIFO order among equal f.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries for nodes that are already closed.
//   - The run reads a core.Graph.Snapshot, so it holds no lock and never
//     sees nodes or connections added after it started.

package astar

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/mazenav/core"
)

// Search is a reusable, stateless A* configuration. A single *Search may be
// shared by any number of goroutines.
type Search struct {
	opts Options
}

// New builds a Search from DefaultOptions overridden by opts.
func New(opts ...Option) *Search {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{opts: cfg}
}

// Options returns a copy of the effective configuration.
func (s *Search) Options() Options { return s.opts }

// FindPath is a one-shot convenience for New(opts...).PerformAStar(g, start, goal).
func FindPath(g *core.Graph, start, goal *core.Node, opts ...Option) ([]*core.Node, error) {
	return New(opts...).PerformAStar(g, start, goal)
}

// PerformAStar returns the lowest-cost ordered path from start to goal,
// inclusive of both endpoints.
//
// Returns:
//   - [start] when start == goal (by identity) and start is in g.
//   - ErrNoPath when start or goal is not a member of g, or when no route
//     exists within the configured caps.
//   - ErrNilGraph when g is nil.
func (s *Search) PerformAStar(g *core.Graph, start, goal *core.Node) ([]*core.Node, error) {
	res, err := s.Search(g, start, goal)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search is PerformAStar with cost and expansion statistics.
func (s *Search) Search(g *core.Graph, start, goal *core.Node) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		s.opts.Logger.Debug("astar: start not in graph", "start", start)
		return nil, fmt.Errorf("%w: start %s not in graph", ErrNoPath, start)
	}
	if !g.HasNode(goal) {
		s.opts.Logger.Debug("astar: goal not in graph", "goal", goal)
		return nil, fmt.Errorf("%w: goal %s not in graph", ErrNoPath, goal)
	}
	if start == goal {
		return &Result{Path: []*core.Node{start}}, nil
	}

	// Snapshot before reading the scale: the scale only shrinks as
	// connections are added, so it stays admissible for the snapshot.
	snap := g.Snapshot()
	r := &runner{
		g:    g,
		opts: s.opts,
		h:    resolve(g, goal, s.opts.Heuristic, s.opts.Shape),
		goal: goal,
	}
	res := r.run(snap, start)

	if res == nil {
		s.opts.Logger.Debug("astar: no path",
			"start", start, "goal", goal, "expanded", r.expanded)
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, start, goal)
	}
	s.opts.Logger.Debug("astar: path found",
		"start", start, "goal", goal, "cost", res.Cost, "length", len(res.Path), "expanded", res.Expanded)

	return res, nil
}

// frontierItem is one lazy heap entry.
type frontierItem struct {
	idx int     // node index in the graph arena
	g   float64 // cost from start when pushed
	f   float64 // g + h
	seq uint64  // push order, breaks f ties FIFO
}

// less orders by f, then by discovery order.
func less(a, b frontierItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// runner holds the mutable state for a single search.
type runner struct {
	g    *core.Graph
	opts Options
	h    Heuristic
	goal *core.Node

	adj      [][]core.Connection
	cost     []float64 // best known g per node
	parent   []int     // came-from index, -1 for none
	closed   []bool    // expanded, cost final
	seq      uint64
	expanded int
}

// run executes the main loop over snap; nil means no path.
func (r *runner) run(snap core.Snapshot, start *core.Node) *Result {
	nodes := snap.Nodes
	r.adj = snap.Adjacency
	n := len(nodes)
	r.cost = make([]float64, n)
	r.parent = make([]int, n)
	r.closed = make([]bool, n)
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.parent[i] = -1
	}

	si, _ := r.g.IndexOf(start)
	gi, _ := r.g.IndexOf(r.goal)

	pq := heap.New(less)
	r.cost[si] = 0
	pq.Push(frontierItem{idx: si, g: 0, f: r.h(start, r.goal), seq: r.next()})

	for pq.Size() > 0 {
		item, _ := pq.Pop()
		u := item.idx
		if r.closed[u] {
			continue // stale entry
		}
		r.closed[u] = true
		r.expanded++

		if u == gi {
			return r.result(nodes, gi)
		}
		r.relax(pq, u)
	}

	return nil
}

// relax pushes every strictly improved neighbour of u, in connection order.
func (r *runner) relax(pq *heap.Heap[frontierItem], u int) {
	for _, c := range r.adj[u] {
		if c.Cost >= r.opts.ImpassableCost {
			continue
		}
		v, ok := r.g.IndexOf(c.Target)
		if !ok || r.closed[v] {
			continue
		}
		next := r.cost[u] + c.Cost
		if next > r.opts.MaxCost {
			continue
		}
		// Strictly better only: the first route found keeps equal-cost ties.
		if next >= r.cost[v] {
			continue
		}
		r.cost[v] = next
		r.parent[v] = u
		pq.Push(frontierItem{idx: v, g: next, f: next + r.h(c.Target, r.goal), seq: r.next()})
	}
}

func (r *runner) next() uint64 {
	r.seq++
	return r.seq
}

// result follows came-from links back to start and reverses them.
func (r *runner) result(nodes []*core.Node, gi int) *Result {
	path := make([]*core.Node, 0, 16)
	for v := gi; v != -1; v = r.parent[v] {
		path = append(path, nodes[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: r.cost[gi], Expanded: r.expanded}
}
