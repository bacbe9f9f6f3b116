package terrain

import (
	"fmt"
	"math/rand"

	"github.com/terrainnav/gridpath/gridgraph"
)

// Generate fills a rows×cols grid with labels drawn uniformly from table.
// Labels are drawn from table.Labels() so a seeded rng always yields the same grid.
func Generate(rows, cols int, table CostTable, rng *rand.Rand) ([][]Label, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, rows, cols)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	labels := table.Labels()
	out := make([][]Label, rows)
	for r := range out {
		out[r] = make([]Label, cols)
		for c := range out[r] {
			out[r][c] = labels[rng.Intn(len(labels))]
		}
	}

	return out, nil
}

// Assign maps every label to its cost in table.
// Returns gridgraph.ErrEmptyGrid or gridgraph.ErrNonRectangular for a
// malformed label grid and ErrUnknownLabel for a label missing from table.
func Assign(labels [][]Label, table CostTable) ([][]float64, error) {
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	w := len(labels[0])
	costs := make([][]float64, len(labels))
	for r, row := range labels {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", gridgraph.ErrNonRectangular, r, len(row), w)
		}
		costs[r] = make([]float64, w)
		for c, l := range row {
			cost, ok := table[l]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownLabel, l, gridgraph.Cell{Row: r, Col: c})
			}
			costs[r][c] = cost
		}
	}

	return costs, nil
}

// BuildGrid assigns costs to labels and wraps the result in a CostGrid.
func BuildGrid(labels [][]Label, table CostTable, opts gridgraph.GridOptions) (*gridgraph.CostGrid, error) {
	costs, err := Assign(labels, table)
	if err != nil {
		return nil, err
	}

	return gridgraph.NewCostGrid(costs, opts)
}
