// Package gridgraph provides a 2D grid of traversal costs viewed as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Walls via an impassable cost threshold
//   - Identification of connected components of passable cells
//   - Validation and costing of externally produced paths
//
// Cells with cost >= ImpassableThreshold are walls; all other cells are passable.
package gridgraph

import (
	"fmt"
	"math"
)

// Neighbor offsets as (dRow, dCol). The orthogonal order E, S, W, N is part of
// the package contract: searches that enumerate Neighbors are deterministic.
var (
	offsets4 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	offsets8 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
)

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost or ErrNaNCost
// for a bad cell, and ErrBadThreshold for a non-positive threshold.
// Every returned error also matches ErrInvalidGrid.
// Algorithmic complexity: O(rows×cols) time and memory.
func NewCostGrid(costs [][]float64, opts GridOptions) (*CostGrid, error) {
	if math.IsNaN(opts.ImpassableThreshold) || opts.ImpassableThreshold <= 0 {
		return nil, invalid{fmt.Errorf("%w: got %v", ErrBadThreshold, opts.ImpassableThreshold)}
	}
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, invalid{ErrEmptyGrid}
	}
	h, w := len(costs), len(costs[0])
	for r, row := range costs {
		if len(row) != w {
			return nil, invalid{fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)}
		}
	}

	cells := make([][]float64, h)
	minCost := math.Inf(1)
	for r := 0; r < h; r++ {
		cells[r] = make([]float64, w)
		for c, v := range costs[r] {
			switch {
			case math.IsNaN(v):
				return nil, invalid{fmt.Errorf("%w at %v", ErrNaNCost, Cell{r, c})}
			case v < 0:
				return nil, invalid{fmt.Errorf("%w at %v: %v", ErrNegativeCost, Cell{r, c}, v)}
			}
			cells[r][c] = v
			if v < opts.ImpassableThreshold && v < minCost {
				minCost = v
			}
		}
	}
	if math.IsInf(minCost, 1) {
		minCost = 0 // no passable cell
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &CostGrid{
		rows:      h,
		cols:      w,
		costs:     cells,
		conn:      opts.Conn,
		threshold: opts.ImpassableThreshold,
		offsets:   offsets,
		minCost:   minCost,
	}, nil
}

// From2D is shorthand for NewCostGrid with default options and the given connectivity.
func From2D(costs [][]float64, conn Connectivity) (*CostGrid, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewCostGrid(costs, opts)
}

// Uniform builds a rows×cols Conn4 grid where every cell costs cost.
func Uniform(rows, cols int, cost float64) (*CostGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalid{fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)}
	}
	costs := make([][]float64, rows)
	for r := range costs {
		costs[r] = make([]float64, cols)
		for c := range costs[r] {
			costs[r][c] = cost
		}
	}

	return NewCostGrid(costs, DefaultGridOptions())
}

// Rows returns the number of rows.
func (g *CostGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *CostGrid) Cols() int { return g.cols }

// Connectivity returns the neighbor mode the grid was built with.
func (g *CostGrid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cost returns the cost of entering c. c must be in bounds.
func (g *CostGrid) Cost(c Cell) float64 {
	return g.costs[c.Row][c.Col]
}

// Passable reports whether c is in bounds and not a wall.
func (g *CostGrid) Passable(c Cell) bool {
	return g.InBounds(c) && g.costs[c.Row][c.Col] < g.threshold
}

// MinCost returns the smallest passable cell cost, or 0 if every cell is a wall.
func (g *CostGrid) MinCost() float64 { return g.minCost }

// Neighbors returns the passable in-bounds neighbors of c in the fixed order
// E, S, W, N (followed by NE, SE, SW, NW under Conn8). There is no wraparound.
// Complexity: O(d), d = 4 or 8.
func (g *CostGrid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{c.Row + d[0], c.Col + d[1]}
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *CostGrid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *CostGrid) CellAt(idx int) Cell {
	return Cell{idx / g.cols, idx % g.cols}
}

// Costs returns a deep copy of the underlying cost matrix.
func (g *CostGrid) Costs() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = append([]float64(nil), g.costs[r]...)
	}

	return out
}

// PathCost sums the entry cost of every cell after the first.
// Returns ErrOutOfBounds for a cell outside the grid and ErrNotAdjacent when
// two consecutive cells are not orthogonal neighbors. An empty or single-cell
// path costs 0.
func (g *CostGrid) PathCost(path []Cell) (float64, error) {
	var total float64
	for i, c := range path {
		if !g.InBounds(c) {
			return 0, fmt.Errorf("%w: %v at position %d", ErrOutOfBounds, c, i)
		}
		if i == 0 {
			continue
		}
		if !path[i-1].Adjacent(c) {
			return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, path[i-1], c)
		}
		total += g.costs[c.Row][c.Col]
	}

	return total, nil
}
