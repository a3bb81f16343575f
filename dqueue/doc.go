// Package dqueue implements the batched-prepend queue D (§4.8): a
// concurrency-free frontier structure with three buffers — an active list
// popped LIFO, a pending stack of whole batches (most-recently-prepended
// first), and a spill list individual pushes accumulate into. It is the
// structure bucketd substitutes for per-bucket frontier lists at the fine
// grain, giving O(1) amortized prepend instead of a priority queue.
package dqueue
