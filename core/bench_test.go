package core_test

import (
	"testing"

	"github.com/katalvlaran/mazenav/core"
)

// BenchmarkAddBiDirection measures building a 100×100 four-connected lattice.
// Complexity: O(V + E).
func BenchmarkAddBiDirection(b *testing.B) {
	const n = 100
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		nodes := make([]*core.Node, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				nodes[y*n+x] = core.NewNodeAt("", x, y)
				_ = g.AddNode(nodes[y*n+x])
			}
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if x+1 < n {
					_ = g.AddBiDirection(nodes[y*n+x], nodes[y*n+x+1])
				}
				if y+1 < n {
					_ = g.AddBiDirection(nodes[y*n+x], nodes[(y+1)*n+x])
				}
			}
		}
	}
}
