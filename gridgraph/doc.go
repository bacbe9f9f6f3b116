// Package gridgraph treats a 2D grid of traversal costs as a graph, enabling
// bounds-checked neighbor enumeration, component analysis and path costing.
//
// What:
//
//   - CostGrid wraps a rectangular [][]float64 of non-negative costs.
//   - The cost of a cell is the cost of entering it; a path never pays for its first cell.
//   - Cells with cost >= ImpassableThreshold are walls (default: only +Inf).
//   - Neighbors are enumerated in a fixed order (E, S, W, N) for deterministic searches.
//   - Identifies connected components of passable cells.
//
// Why:
//
//   - Game maps: terrain-weighted movement, reachability checks before a search.
//   - Validation: malformed input is rejected once, at construction, instead of mid-search.
//
// Complexity:
//
//   - NewCostGrid:         O(R×C), Memory: O(R×C).
//   - Neighbors:           O(d)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C).
//   - PathCost:            O(len(path)).
//
// Options:
//
//   - GridOptions.ImpassableThreshold: minimum cost considered a wall.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella matched by every validation error below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost, ErrNaNCost: a cell cost is not a non-negative number.
//   - ErrBadThreshold: ImpassableThreshold is zero, negative or NaN.
//   - ErrOutOfBounds, ErrNotAdjacent: returned by PathCost for malformed paths.
package gridgraph
