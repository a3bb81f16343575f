package bheap

import "container/heap"

// Item is a single (vertex, tentative distance) pair stored in the heap.
type Item struct {
	Vertex int32
	Dist   float64
}

// innerHeap is the container/heap.Interface implementation, keyed on Dist
// ascending. Mirrors the lazy-decrease-key nodePQ of the reference
// Dijkstra: duplicates are pushed freely and stale entries are discarded by
// the caller on pop (see Heap.Pop's doc comment).
type innerHeap []Item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].Dist < h[j].Dist }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Heap is an instrumented binary min-heap of Item, keyed on ascending Dist.
// The zero value is not usable; construct with New.
type Heap struct {
	inner   innerHeap
	pushes  uint64
	pops    uint64
	maxSize uint64
}

// Stats is a copy-out snapshot of a Heap's push/pop/max-size counters.
type Stats struct {
	Pushes  uint64
	Pops    uint64
	MaxSize uint64
}

// New returns an empty Heap with the given initial capacity hint.
func New(capacityHint int) *Heap {
	return &Heap{inner: make(innerHeap, 0, capacityHint)}
}

// Len reports the number of items currently queued.
func (h *Heap) Len() int { return h.inner.Len() }

// Push enqueues (vertex, dist) and records a push in the instrumentation.
func (h *Heap) Push(vertex int32, dist float64) {
	heap.Push(&h.inner, Item{Vertex: vertex, Dist: dist})
	h.pushes++
	if sz := uint64(h.inner.Len()); sz > h.maxSize {
		h.maxSize = sz
	}
}

// Pop removes and returns the item with the smallest Dist, recording a pop.
// Pop does not itself check for staleness: callers compare the popped Dist
// against the vertex's recorded distance and discard stale duplicates, per
// the lazy-decrease-key strategy described in §4.2.
func (h *Heap) Pop() (Item, bool) {
	if h.inner.Len() == 0 {
		return Item{}, false
	}
	item := heap.Pop(&h.inner).(Item)
	h.pops++
	return item, true
}

// Stats returns a copy-out of the current push/pop/max-size counters.
func (h *Heap) Stats() Stats {
	return Stats{Pushes: h.pushes, Pops: h.pops, MaxSize: h.maxSize}
}
