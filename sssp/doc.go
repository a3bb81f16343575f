// Package sssp is the public facade: nine stable entry points, one per
// engine (§6), each a thin dispatch that validates nothing itself (every
// engine validates its own inputs) and maps an engine-specific result
// into the shared csrview.Result record. Snapshot getters expose the
// per-engine instrumentation recorded by the snapshot package.
//
// Grounded on core/api.go's "thin, deterministic public facade" policy:
// the root package holds no algorithms, only dispatch and result mapping.
package sssp
