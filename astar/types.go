// Package astar provides tunable options, heuristics and error definitions
// for A* search over a gridgraph.CostGrid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/terrainnav/gridpath/gridgraph"
)

// Sentinel errors for A* execution.
//
// Every input error also matches ErrInvalidInput via errors.Is. An unreachable
// goal is NOT an error: FindPath returns a Result with Found == false.
var (
	// ErrInvalidInput is the umbrella for malformed grids, cells and options.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start cell out of bounds")

	// ErrGoalOutOfBounds is returned when the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal cell out of bounds")

	// ErrConnectivity is returned for grids not built with gridgraph.Conn4.
	ErrConnectivity = errors.New("astar: grid must use 4-directional connectivity")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded is returned when the search expands more cells than
	// WithMaxExpansions allows. It is not an input error.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// inputError wraps err so that it matches both itself and ErrInvalidInput.
func inputError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// Heuristic estimates the remaining cost from one cell to another.
// It must never overestimate the true cost for FindPath to stay optimal.
type Heuristic func(from, to gridgraph.Cell) float64

// Manhattan is the unit-scale grid distance |Δrow| + |Δcol|.
// It is admissible only when every enterable cell costs at least 1.
func Manhattan(from, to gridgraph.Cell) float64 {
	dr, dc := from.Row-to.Row, from.Col-to.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

// ScaledManhattan returns k × Manhattan. With k no larger than the cheapest
// enterable cell, the heuristic is admissible and consistent.
func ScaledManhattan(k float64) Heuristic {
	return func(from, to gridgraph.Cell) float64 {
		return k * Manhattan(from, to)
	}
}

// Option configures A* behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// Heuristic overrides the default. nil selects ScaledManhattan(grid.MinCost()).
	Heuristic Heuristic

	// MaxExpansions, if > 0, aborts with ErrBudgetExceeded once that many
	// cells have been expanded. 0 disables the limit.
	MaxExpansions int

	// OnPush is called whenever a cell enters the frontier with a new best g.
	OnPush func(c gridgraph.Cell, g, f float64)

	// OnExpand is called when a cell is finalized, before its neighbors are
	// relaxed. If it returns an error, the search aborts and propagates it.
	OnExpand func(c gridgraph.Cell, g float64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - grid-derived heuristic
//   - no expansion limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     nil,
		MaxExpansions: 0,
		OnPush:        func(gridgraph.Cell, float64, float64) {},
		OnExpand:      func(gridgraph.Cell, float64) error { return nil },
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

// WithHeuristic replaces the default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnPush registers a callback to run when a cell is pushed to the frontier.
func WithOnPush(fn func(c gridgraph.Cell, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback to run when a cell is finalized;
// returning an error from this callback stops the search.
func WithOnExpand(fn func(c gridgraph.Cell, g float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: cells from start to goal inclusive; nil when Found is false.
//   - Cost: sum of entry costs of every cell after the start.
//   - Expanded: number of cells finalized, goal included.
//   - Found: false means the goal is unreachable.
type Result struct {
	Path     []gridgraph.Cell
	Cost     float64
	Expanded int
	Found    bool
}

// Steps returns the number of moves in the path, or -1 if no path was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
