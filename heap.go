package pathmap

import (
	"container/heap"
	"fmt"
	"math"
)

// blockedEdge is one entry in the min-heap InsertObstacle uses to process
// severed edges in order of their orthogonal coordinate (spec.md §9:
// "the obstacle-insertion algorithm relies on iterating blocked edges
// sorted by the orthogonal coordinate (min-first)").
//
// from/to are the arena indices of the edge's two endpoints (from is the
// node whose North/East neighbour is to: the bottom endpoint of a vertical
// edge, the left endpoint of a horizontal one).
// key is the coordinate edges are ordered by: the blocked node's x for a
// vertical edge, its y for a horizontal edge.
type blockedEdge struct {
	from, to int
	key      float64
}

// edgeHeap is a min-heap of blockedEdge, ordered by key, ascending.
//
// Two entries referencing the same (from, to) pair compare equal
// regardless of key, mirroring MinSortableEdge's Ord implementation in the
// original: this is what lets a caller push a duplicate reference to an
// edge without it silently reordering relative to itself. A NaN key
// panics rather than comparing falsely, per spec.md §9: "Floating-point
// NaN in the sort key must fail loudly."
type edgeHeap []blockedEdge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.from == b.from && a.to == b.to {
		return false
	}
	if math.IsNaN(a.key) || math.IsNaN(b.key) {
		panic(fmt.Errorf("%w: comparing edges (%d,%d) key=%v and (%d,%d) key=%v",
			ErrNaNSortKey, a.from, a.to, a.key, b.from, b.to, b.key))
	}
	return a.key < b.key
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x interface{}) {
	*h = append(*h, x.(blockedEdge))
}

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

var _ heap.Interface = (*edgeHeap)(nil)

// popMin removes and returns the smallest-key entry. It panics with
// ErrCornerCircuitMismatch if the heap is empty, mirroring the original's
// "Something in the graph went wrong" panics: Phase 1 and the corner-circuit
// construction in Phase 4 must agree on how many blocked edges exist.
func popMin(h *edgeHeap) blockedEdge {
	if h.Len() == 0 {
		panic(fmt.Errorf("%w: expected another blocked edge, heap is empty", ErrCornerCircuitMismatch))
	}
	return heap.Pop(h).(blockedEdge)
}
