package astar

import "github.com/terrainnav/gridpath/gridgraph"

// frontierItem is one frontier entry. A cell may appear several times with
// different g; stale copies are skipped when popped (lazy decrease-key).
type frontierItem struct {
	cell gridgraph.Cell
	g    float64 // cost from start at push time
	h    float64 // heuristic to goal
	f    float64 // g + h
	seq  uint64  // insertion order, last tie-breaker
}

// frontier is a min-heap of *frontierItem ordered by (f, h, seq) ascending.
// Preferring the smaller h on equal f favors entries closer to the goal;
// seq makes the order total, so equal inputs always pop in the same order.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller f, then smaller h, then earlier push.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
