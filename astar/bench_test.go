package astar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mazenav/astar"
	"github.com/katalvlaran/mazenav/core"
)

// gridGraph builds an n×n four-connected unit grid.
func gridGraph(b *testing.B, n int) (*core.Graph, [][]*core.Node) {
	b.Helper()
	g := core.NewGraph()
	cells := make([][]*core.Node, n)
	for y := range cells {
		cells[y] = make([]*core.Node, n)
		for x := range cells[y] {
			cells[y][x] = core.NewNodeAt(fmt.Sprintf("%d,%d", x, y), x, y)
			if err := g.AddNode(cells[y][x]); err != nil {
				b.Fatal(err)
			}
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				_ = g.AddBiDirection(cells[y][x], cells[y][x+1])
			}
			if y+1 < n {
				_ = g.AddBiDirection(cells[y][x], cells[y+1][x])
			}
		}
	}

	return g, cells
}

func benchmarkGrid(b *testing.B, n int, opts ...astar.Option) {
	g, cells := gridGraph(b, n)
	s := astar.New(opts...)
	start, goal := cells[0][0], cells[n-1][n/2]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.PerformAStar(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAStar_Grid64_Auto(b *testing.B) { benchmarkGrid(b, 64) }
func BenchmarkAStar_Grid64_Zero(b *testing.B) {
	benchmarkGrid(b, 64, astar.WithHeuristic(astar.Zero))
}
func BenchmarkAStar_Grid256_Auto(b *testing.B) { benchmarkGrid(b, 256) }
