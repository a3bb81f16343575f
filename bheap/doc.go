// Package bheap implements the small instrumented binary min-heap shared by
// the reference engine and the basecase: a lazy-decrease-key priority queue
// of (vertex, tentative distance) pairs ordered by ascending distance, with
// push/pop/max-size counters for the §3 snapshot singletons.
package bheap
