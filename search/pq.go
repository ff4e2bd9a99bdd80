package search

import "github.com/katalvlaran/gridpath/grid"

// openItem pairs a cell with the priority it was pushed at.
// Stored in the open-set min-heap.
type openItem struct {
	node     grid.Coord
	priority float64
}

// openPQ is a min-heap of openItem ordered by priority ascending.
// It follows the "lazy decrease-key" approach: when a shorter route to an
// already-queued cell is found, a fresh item is pushed and the stale entry
// is skipped on pop (its priority no longer matches the cell's best g).
type openPQ []openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority → popped first.
func (pq openPQ) Less(i, j int) bool { return pq[i].priority < pq[j].priority }

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(openItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
