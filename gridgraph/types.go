package gridgraph

import (
	"fmt"
	"math"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, S, W, N.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after the orthogonal moves: NE, SE, SW, NW.
	Conn8
)

// Cell is a 0-indexed (row, col) coordinate within a grid.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether o is one orthogonal step away from c.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// GridOptions contains tunable parameters for a CostGrid.
type GridOptions struct {
	// ImpassableThreshold marks cells with cost >= threshold as walls.
	ImpassableThreshold float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with default settings:
// ImpassableThreshold=+Inf (only infinite-cost cells are walls), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		ImpassableThreshold: math.Inf(1),
		Conn:                Conn4,
	}
}

// CostGrid is an immutable rows×cols matrix of non-negative traversal costs.
// costs[r][c] is the cost of entering cell (r,c).
// It is safe for concurrent readers once built.
type CostGrid struct {
	rows, cols int
	costs      [][]float64
	conn       Connectivity
	threshold  float64
	offsets    [][2]int
	minCost    float64
}
