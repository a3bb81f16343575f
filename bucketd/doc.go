// Package bucketd implements the bucket engine driven by D (§4.9): an
// alternative relax loop that substitutes the batched-prepend queue (dqueue)
// for per-bucket frontier lists at the fine grain, while an outer distance
// bucket array keyed by ⌊dist/Δ⌋ still orders the sweep.
//
// Grounded on deltastep's outer bucket-array loop, with the inner frontier
// replaced by dqueue.D per the spec's explicit statement that this is "an
// alternative relax loop that substitutes D for per-bucket frontier lists".
package bucketd
