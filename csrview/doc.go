// Package csrview defines the shared graph view and result contract used by
// every shortest-path engine in this module.
//
// A View borrows a compressed-sparse-row (CSR) graph: Offsets has length
// N+1 and is monotone non-decreasing with Offsets[0]==0, Targets and
// Weights both have length Offsets[N], and every Target lies in [0,N).
// Self-loops and parallel edges are permitted and require no special
// handling by callers.
//
// Every engine entry point accepts a View, a source vertex, and writable
// distance/predecessor output slices, and returns one of the fixed Status
// codes below. Engines must not read past the declared lengths and must
// not write to the outputs on any negative status.
package csrview
