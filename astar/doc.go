// Package astar provides a deterministic A* shortest-path search over a
// gridgraph.CostGrid with terrain-dependent traversal costs.
//
// What
//
//   - Movement is 4-directional (E, S, W, N); no diagonals, no wraparound.
//   - The cost of a cell is paid on entry; the start cell is never charged.
//   - Returns a Result containing:
//   - Path: start → goal inclusive (nil when unreachable)
//   - Cost: total entry cost along Path
//   - Expanded: number of cells finalized
//   - Found: false when the goal cannot be reached
//   - Supports functional hooks at two stages:
//   - OnPush   (a cell enters the frontier with a new best g)
//   - OnExpand (a cell is finalized; may abort with an error)
//
// Determinism
//
//	Neighbors are relaxed in the fixed order E, S, W, N. The frontier pops the
//	smallest f = g + h; equal f is resolved by the smaller h (closer to the
//	goal), and equal h by the earlier push. Repeated calls on identical input
//	therefore return identical paths.
//
// Heuristic and admissibility
//
//	The default heuristic is ScaledManhattan(grid.MinCost()): Manhattan distance
//	multiplied by the cheapest enterable cell cost. Every step costs at least
//	that much, so the estimate is admissible and consistent for any cost table,
//	including tables whose costs are all below 1. Plain Manhattan (unit scale)
//	is available via WithHeuristic(Manhattan); it keeps optimality only when
//	every enterable cell costs at least 1.
//
// Lazy deletion
//
//	A cheaper path to a queued cell pushes a new entry instead of updating the
//	old one. A popped entry is skipped when its cell is already finalized or its
//	g is above the best known g. A finalized cell is never reopened, so zero-cost
//	cells cannot cause loops.
//
// Concurrency
//
//	FindPath keeps all working state in the call. Any number of searches may
//	share one CostGrid, which is immutable once built.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N log N)
//   - Memory: O(N)
//
// Usage
//
//	res, err := astar.FindPath(grid, start, goal,
//	    astar.WithContext(ctx),
//	    astar.WithMaxExpansions(10_000),
//	)
//	switch {
//	case err != nil:
//	    // ErrInvalidInput family, ErrBudgetExceeded, ctx.Err() or a hook error
//	case !res.Found:
//	    // goal unreachable
//	default:
//	    // use res.Path
//	}
//
// Errors
//
//   - ErrInvalidInput      umbrella for every input error below.
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrConnectivity      if the grid was not built with gridgraph.Conn4.
//   - ErrStartOutOfBounds  if start lies outside the grid.
//   - ErrGoalOutOfBounds   if goal lies outside the grid.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative budget).
//   - ErrBudgetExceeded    if WithMaxExpansions is exceeded.
//   - Wrapped user-supplied hook errors from OnExpand.
package astar
