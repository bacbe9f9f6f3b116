// Package dijkstra implements Dijkstra's shortest-path algorithm on cost grids.
//
// Dijkstra computes the minimum entry-cost distance from a single source cell
// to every reachable cell in a gridgraph.CostGrid. It processes cells in order
// of increasing distance using a min-heap priority queue, relaxing the
// grid's neighbors and updating distances accordingly.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N)
//   - Each cell is settled at most once: N extractions from the heap.
//   - Each relaxation may push a new entry into the heap: up to d·N pushes.
//   - Space: O(N)
//
// Notes on implementation choices:
//
//   - Walls (cells at or above the grid's ImpassableThreshold) are never entered.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal distances pop in row-major order, so predecessor trees are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/terrainnav/gridpath/gridgraph"
)

// Dijkstra computes shortest distances from Options.Source to all cells of g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must be inside g (ErrSourceOutOfBounds).
//
// Returns ctx.Err() if the context is canceled mid-run.
func Dijkstra(g *gridgraph.CostGrid, opts ...Option) (*Field, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and source
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrSourceOutOfBounds, cfg.Source, g.Rows(), g.Cols())
	}

	// 3) Prepare data structures
	n := g.Rows() * g.Cols()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Initialize state and run main loop
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Field{grid: g, source: cfg.Source, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.CostGrid // The input grid; read-only within Dijkstra.
	options Options
	dist    []float64 // row-major index → current best distance from Source.
	prev    []int     // row-major index → predecessor index on the shortest path.
	visited []bool    // Tracks if a cell's distance is finalized.
	pq      nodePQ    // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist to +Inf everywhere, then pushes Source=0 into the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the cell with the minimum distance and relaxes its neighbors.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The context is canceled.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		// Everything left is farther than the cap.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
	r.clip()

	return nil
}

// relax tries to improve each passable neighbor of the cell at index u.
func (r *runner) relax(u int) {
	for _, nb := range r.g.Neighbors(r.g.CellAt(u)) {
		v := r.g.Index(nb)
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + r.g.Cost(nb)
		// Strict “<” so equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// clip resets cells that were only tentatively reached beyond MaxDistance.
func (r *runner) clip() {
	for i, ok := range r.visited {
		if !ok {
			r.dist[i] = math.Inf(1)
			r.prev[i] = -1
		}
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist then idx ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties by row-major index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
