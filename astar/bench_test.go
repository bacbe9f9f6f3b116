package astar_test

import (
	"math/rand"
	"testing"

	"github.com/terrainnav/gridpath/astar"
	"github.com/terrainnav/gridpath/gridgraph"
)

func benchmarkCorners(b *testing.B, n int, opts ...astar.Option) {
	r := rand.New(rand.NewSource(42))
	g := mustGrid(b, randomCosts(r, n, n, 0.48, 0.57))
	start, goal := gridgraph.Cell{}, gridgraph.Cell{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(g, start, goal, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_10x10 mirrors the interactive board size.
func BenchmarkFindPath_10x10(b *testing.B) { benchmarkCorners(b, 10) }

// BenchmarkFindPath_256x256 exercises larger terrain maps.
func BenchmarkFindPath_256x256(b *testing.B) { benchmarkCorners(b, 256) }

// BenchmarkFindPath_256x256_Dijkstra is the zero-heuristic baseline.
func BenchmarkFindPath_256x256_Dijkstra(b *testing.B) {
	benchmarkCorners(b, 256, astar.WithHeuristic(zero))
}
