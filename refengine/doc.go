// Package refengine implements the reference engine (§4.2): the
// correctness anchor against which every other engine in this module is
// measured for parity.
//
// Refengine is an eager-relaxation loop driven by a binary min-heap keyed
// on tentative distance (bheap), adapted from dijkstra.Dijkstra's
// runner/init/process/relax split but operating directly on a CSR View
// instead of a string-keyed core.Graph.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
//
// All distances and predecessors are finalized when Run returns StatusOK;
// Settled is always reported as n, since the reference engine explores
// every reachable vertex to completion with no truncation.
package refengine
