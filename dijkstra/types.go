// Package dijkstra defines core types and configuration options
// for Dijkstra's single-source cost field over a gridgraph.CostGrid.
//
// Options:
//
//	– Source:      starting cell (must lie inside the grid).
//	– MaxDistance: optional cap on distances to explore; cells beyond it stay unreached.
//	– Ctx:         cancellation, checked once per settled cell.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if the source cell lies outside the grid.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/terrainnav/gridpath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source cell is outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell.
// MaxDistance – cells whose distance would exceed this value are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Ctx         – cancellation and deadlines. Default context.Background().
type Options struct {
	Source      gridgraph.Cell
	MaxDistance float64
	Ctx         context.Context

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative or NaN value is recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:      (0,0).
//   - MaxDistance: +Inf (explore all reachable cells).
//   - Ctx:         context.Background().
func DefaultOptions() Options {
	return Options{
		Source:      gridgraph.Cell{},
		MaxDistance: math.Inf(1),
		Ctx:         context.Background(),
	}
}

// Field is the result of a Dijkstra run: the minimum entry-cost distance from
// Source to every cell, with predecessors for path reconstruction.
type Field struct {
	grid   *gridgraph.CostGrid
	source gridgraph.Cell
	dist   []float64 // +Inf when unreached
	prev   []int     // -1 for the source and unreached cells
}

// Source returns the cell the field was computed from.
func (f *Field) Source() gridgraph.Cell { return f.source }

// Distance returns the minimum cost from Source to c, or +Inf if c was not
// reached (or lies outside the grid).
func (f *Field) Distance(c gridgraph.Cell) float64 {
	if !f.grid.InBounds(c) {
		return math.Inf(1)
	}

	return f.dist[f.grid.Index(c)]
}

// Reached reports whether c has a finite distance.
func (f *Field) Reached(c gridgraph.Cell) bool {
	return !math.IsInf(f.Distance(c), 1)
}

// PathTo rebuilds the Source → c path. ok is false when c was not reached.
func (f *Field) PathTo(c gridgraph.Cell) (path []gridgraph.Cell, ok bool) {
	if !f.Reached(c) {
		return nil, false
	}
	for at := f.grid.Index(c); at >= 0; at = f.prev[at] {
		path = append(path, f.grid.CellAt(at))
	}
	// reverse to get source → c
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
