// Package astar finds minimum-cost paths on a gridgraph.CostGrid with the A*
// algorithm, using 4-directional movement and cost-on-entry semantics.
package astar

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/terrainnav/gridpath/gridgraph"
)

// search holds the mutable state for a single A* execution.
// Nothing in it outlives the FindPath call.
type search struct {
	grid     *gridgraph.CostGrid // read-only input grid
	goal     gridgraph.Cell
	opts     Options
	ctx      context.Context
	h        Heuristic
	gScore   []float64 // best known cost from start, by row-major index
	seen     []bool    // gScore holds a value
	closed   []bool    // g is final
	prev     []int     // predecessor index, -1 for none
	pq       frontier
	seq      uint64
	expanded int
}

// FindPath runs A* on g from start to goal, applying any number of functional Options.
//
// The cost of a path is the sum of Cost(c) over every cell entered after start.
// If start == goal the result is the single-cell path [start] with cost 0.
//
// Returns:
//
//   - (*Result with Found=true, nil) when a path exists.
//   - (*Result with Found=false, nil) when goal is unreachable.
//   - (nil, err) for ErrNilGrid, ErrConnectivity, ErrStartOutOfBounds, ErrGoalOutOfBounds
//     or ErrOptionViolation (all matching ErrInvalidInput), ErrBudgetExceeded,
//     ctx.Err() on cancellation, or a wrapped OnExpand error.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N)
//   - Space: O(N)
func FindPath(g *gridgraph.CostGrid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1) Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, inputError(o.err)
	}

	// 2) Validate grid and endpoints before any work is done
	if g == nil {
		return nil, inputError(ErrNilGrid)
	}
	if g.Connectivity() != gridgraph.Conn4 {
		return nil, inputError(ErrConnectivity)
	}
	if !g.InBounds(start) {
		return nil, inputError(fmt.Errorf("%w: %v in %d×%d grid", ErrStartOutOfBounds, start, g.Rows(), g.Cols()))
	}
	if !g.InBounds(goal) {
		return nil, inputError(fmt.Errorf("%w: %v in %d×%d grid", ErrGoalOutOfBounds, goal, g.Rows(), g.Cols()))
	}

	h := o.Heuristic
	if h == nil {
		h = ScaledManhattan(g.MinCost())
	}

	// 3) Prepare per-call state
	n := g.Rows() * g.Cols()
	s := &search{
		grid:   g,
		goal:   goal,
		opts:   o,
		ctx:    o.Ctx,
		h:      h,
		gScore: make([]float64, n),
		seen:   make([]bool, n),
		closed: make([]bool, n),
		prev:   make([]int, n),
		pq:     make(frontier, 0, 4*g.Cols()),
	}
	for i := range s.prev {
		s.prev[i] = -1
	}

	// 4) Seed the frontier and run
	s.push(start, 0, -1)

	return s.run()
}

// Find validates a raw cost matrix with default grid options and searches it.
// Grid validation failures match both gridgraph.ErrInvalidGrid and ErrInvalidInput.
func Find(costs [][]float64, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	g, err := gridgraph.NewCostGrid(costs, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, inputError(err)
	}

	return FindPath(g, start, goal, opts...)
}

// push records c with cost g reached from prev and adds it to the frontier.
func (s *search) push(c gridgraph.Cell, g float64, prev int) {
	i := s.grid.Index(c)
	s.gScore[i] = g
	s.seen[i] = true
	s.prev[i] = prev

	h := s.h(c, s.goal)
	f := g + h
	heap.Push(&s.pq, &frontierItem{cell: c, g: g, h: h, f: f, seq: s.seq})
	s.seq++
	s.opts.OnPush(c, g, f)
}

// run pops the lowest-f entry until the goal is finalized or the frontier is empty.
func (s *search) run() (*Result, error) {
	for s.pq.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		item := heap.Pop(&s.pq).(*frontierItem)
		i := s.grid.Index(item.cell)

		// Skip stale entries: already final, or superseded by a cheaper push.
		if s.closed[i] || item.g > s.gScore[i] {
			continue
		}

		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d cells expanded", ErrBudgetExceeded, s.expanded)
		}
		s.closed[i] = true
		s.expanded++
		if err := s.opts.OnExpand(item.cell, item.g); err != nil {
			return nil, fmt.Errorf("astar: OnExpand error at %v: %w", item.cell, err)
		}

		if item.cell == s.goal {
			return &Result{
				Path:     s.reconstruct(i),
				Cost:     item.g,
				Expanded: s.expanded,
				Found:    true,
			}, nil
		}

		s.relax(item.cell, item.g, i)
	}

	return &Result{Expanded: s.expanded}, nil
}

// relax tries to improve every passable neighbor of cur, in E, S, W, N order.
// Only a strictly cheaper g replaces a recorded one.
func (s *search) relax(cur gridgraph.Cell, g float64, ci int) {
	for _, nb := range s.grid.Neighbors(cur) {
		ni := s.grid.Index(nb)
		if s.closed[ni] {
			continue
		}
		tentative := g + s.grid.Cost(nb)
		if s.seen[ni] && tentative >= s.gScore[ni] {
			continue
		}
		s.push(nb, tentative, ci)
	}
}

// reconstruct walks back-pointers from the goal index and returns the
// start→goal sequence.
func (s *search) reconstruct(goal int) []gridgraph.Cell {
	var path []gridgraph.Cell
	for at := goal; at >= 0; at = s.prev[at] {
		path = append(path, s.grid.CellAt(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
