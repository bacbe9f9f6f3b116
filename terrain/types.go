// Package terrain maps terrain labels to traversal costs and builds cost grids
// for the pathfinder.
package terrain

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for terrain tables and label grids.
var (
	// ErrEmptyTable indicates a cost table with no labels.
	ErrEmptyTable = errors.New("terrain: cost table is empty")
	// ErrBadCost indicates a negative or NaN label cost.
	ErrBadCost = errors.New("terrain: label cost must be a non-negative number")
	// ErrUnknownLabel indicates a grid label missing from the cost table.
	ErrUnknownLabel = errors.New("terrain: label not in cost table")
	// ErrBadDimensions indicates a non-positive rows or cols for Generate.
	ErrBadDimensions = errors.New("terrain: rows and cols must be positive")
)

// Label names a terrain type, e.g. "grass".
type Label string

// Built-in terrain labels.
const (
	Grass Label = "grass"
	Mud   Label = "mud"
	Water Label = "water"
	Sand  Label = "sand"
	Rock  Label = "rock"
)

// CostTable maps each terrain label to the cost of entering a cell of that terrain.
// A table is a plain value: pass it explicitly wherever costs are assigned.
type CostTable map[Label]float64

// DefaultCostTable returns a fresh copy of the built-in difficulty table.
// All values lie in [0.48, 0.57].
func DefaultCostTable() CostTable {
	return CostTable{
		Grass: 0.5425,
		Mud:   0.4804,
		Water: 0.5683,
		Sand:  0.4868,
		Rock:  0.4942,
	}
}

// Validate reports ErrEmptyTable for an empty table and ErrBadCost for the
// first (in label order) negative or NaN cost.
func (t CostTable) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	for _, l := range t.Labels() {
		if c := t[l]; math.IsNaN(c) || c < 0 {
			return fmt.Errorf("%w: %q=%v", ErrBadCost, l, c)
		}
	}

	return nil
}

// Labels returns the table's labels sorted lexically.
func (t CostTable) Labels() []Label {
	out := make([]Label, 0, len(t))
	for l := range t {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Range returns the smallest and largest cost in the table, or (0, 0) if empty.
func (t CostTable) Range() (lo, hi float64) {
	if len(t) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range t {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}

	return lo, hi
}

// Clone returns an independent copy of t.
func (t CostTable) Clone() CostTable {
	out := make(CostTable, len(t))
	for l, c := range t {
		out[l] = c
	}

	return out
}
