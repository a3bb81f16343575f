// Package chain implements the boundary-chain engine (§4.7): an ordered
// sequence of disjoint segments with strictly increasing bounds, covering
// a prefix of a BFS-like exploration of the graph.
//
// Grounded on refengine's heap loop (lazy deletion, visited bitmap reused
// as the persistent "settled" set across segments) plus the spec's
// segment/monotonicity contract. original_source/spec_future.rs's
// BoundaryChain type (a bare Vec<f32> of bounds) is adapted into
// Result.Bounds.
package chain
