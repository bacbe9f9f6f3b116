package gridgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/terrainnav/gridpath/gridgraph"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid where ~20% of cells are walls.
// Complexity: O(R×C×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for y := 0; y < n; y++ {
		row := make([]float64, n)
		for x := 0; x < n; x++ {
			if r.Intn(5) == 0 {
				row[x] = math.Inf(1)
			} else {
				row[x] = r.Float64()
			}
		}
		grid[y] = row
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkNewCostGrid measures validation plus deep copy of a 500×500 grid.
func BenchmarkNewCostGrid(b *testing.B) {
	const n = 500
	grid := make([][]float64, n)
	for y := range grid {
		grid[y] = make([]float64, n)
		for x := range grid[y] {
			grid[y][x] = 0.5
		}
	}
	opts := gridgraph.DefaultGridOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewCostGrid(grid, opts); err != nil {
			b.Fatal(err)
		}
	}
}
