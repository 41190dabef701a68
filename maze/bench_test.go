package maze_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazenav/internal/mazegen"
	"github.com/katalvlaran/mazenav/maze"
)

func BenchmarkNewSolver_100x100(b *testing.B) {
	tg, err := mazegen.Generate(100, 100, mazegen.WithSeed(1), mazegen.WithLoops(0.05))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.NewSolver(tg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolvePath_100x100(b *testing.B) {
	tg, err := mazegen.Generate(100, 100, mazegen.WithSeed(1), mazegen.WithLoops(0.05))
	if err != nil {
		b.Fatal(err)
	}
	s, err := maze.NewSolver(tg)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SolvePath(tg.RandomCell(rng), tg.RandomCell(rng)); err != nil {
			b.Fatal(err)
		}
	}
}
