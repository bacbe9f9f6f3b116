package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrainnav/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewCostGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewCostGrid_Errors verifies that NewCostGrid rejects empty, ragged or badly valued inputs.
func TestNewCostGrid_Errors(t *testing.T) {
	bad := gridgraph.DefaultGridOptions()
	bad.ImpassableThreshold = 0

	cases := []struct {
		name string
		grid [][]float64
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]float64{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeCost", [][]float64{{1, -0.5}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNegativeCost},
		{"NaNCost", [][]float64{{math.NaN()}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNaNCost},
		{"ZeroThreshold", [][]float64{{1}}, bad, gridgraph.ErrBadThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewCostGrid(tc.grid, tc.opts)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, gridgraph.ErrInvalidGrid)
		})
	}
}

// TestNewCostGrid_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewCostGrid_DeepCopy(t *testing.T) {
	in := [][]float64{{1, 2}, {3, 4}}
	g, err := gridgraph.From2D(in, gridgraph.Conn4)
	require.NoError(t, err)

	in[0][0] = 99
	assert.Equal(t, 1.0, g.Cost(gridgraph.Cell{Row: 0, Col: 0}))

	out := g.Costs()
	out[1][1] = 99
	assert.Equal(t, 4.0, g.Cost(gridgraph.Cell{Row: 1, Col: 1}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.Uniform(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

func TestUniform_BadDimensions(t *testing.T) {
	_, err := gridgraph.Uniform(0, 3, 1)
	assert.True(t, errors.Is(err, gridgraph.ErrEmptyGrid))
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed E, S, W, N enumeration and bound clipping.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.Uniform(3, 3, 1)
	require.NoError(t, err)

	center := g.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	assert.Equal(t, []gridgraph.Cell{{1, 2}, {2, 1}, {1, 0}, {0, 1}}, center)

	corner := g.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	assert.Equal(t, []gridgraph.Cell{{0, 1}, {1, 0}}, corner)

	far := g.Neighbors(gridgraph.Cell{Row: 2, Col: 2})
	assert.Equal(t, []gridgraph.Cell{{2, 1}, {1, 2}}, far)
}

// TestNeighbors_Walls verifies that cells at or above the threshold are skipped.
func TestNeighbors_Walls(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.ImpassableThreshold = 10
	g, err := gridgraph.NewCostGrid([][]float64{
		{1, 10},
		{math.Inf(1), 1},
	}, opts)
	require.NoError(t, err)

	assert.Empty(t, g.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))
	assert.False(t, g.Passable(gridgraph.Cell{Row: 0, Col: 1}))
	assert.True(t, g.Passable(gridgraph.Cell{Row: 1, Col: 1}))
	assert.Equal(t, 1.0, g.MinCost())
}

// TestNeighbors_Conn8 verifies diagonals follow the orthogonal moves.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := gridgraph.From2D([][]float64{{1, 1}, {1, 1}}, gridgraph.Conn8)
	require.NoError(t, err)

	got := g.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	assert.Equal(t, []gridgraph.Cell{{0, 1}, {1, 0}, {1, 1}}, got)
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := gridgraph.Uniform(3, 4, 1)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		assert.Equal(t, i, g.Index(g.CellAt(i)))
	}
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 1}, g.CellAt(9))
}

func TestMinCost(t *testing.T) {
	g, err := gridgraph.From2D([][]float64{{0.5425, 0.4804}, {0.5683, 0.4868}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 0.4804, g.MinCost())

	walls, err := gridgraph.From2D([][]float64{{math.Inf(1)}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, walls.MinCost())
}

//----------------------------------------------------------------------------//
// PathCost Tests
//----------------------------------------------------------------------------//

func TestPathCost(t *testing.T) {
	g, err := gridgraph.From2D([][]float64{
		{5, 2},
		{1, 3},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	cost, err := g.PathCost([]gridgraph.Cell{{0, 0}, {1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost, "start cell must not be charged")

	cost, err = g.PathCost([]gridgraph.Cell{{1, 1}})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = g.PathCost([]gridgraph.Cell{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, gridgraph.ErrNotAdjacent)

	_, err = g.PathCost([]gridgraph.Cell{{0, 0}, {0, 2}})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestCellAdjacent(t *testing.T) {
	c := gridgraph.Cell{Row: 1, Col: 1}
	assert.True(t, c.Adjacent(gridgraph.Cell{Row: 0, Col: 1}))
	assert.True(t, c.Adjacent(gridgraph.Cell{Row: 1, Col: 2}))
	assert.False(t, c.Adjacent(c))
	assert.False(t, c.Adjacent(gridgraph.Cell{Row: 2, Col: 2}))
	assert.Equal(t, "(1,1)", c.String())
}
