// Package snapshot holds the process-wide "last run" instrumentation
// singletons described in §3: one struct per engine, each guarded by its
// own mutex so concurrent runs of *different* engines never tear each
// other's records (§5's "natural mapping is one mutex per snapshot",
// grounded on core/types.go's per-field locking discipline). The library
// itself remains single-threaded per run — callers must not run two
// engines concurrently against the *same* snapshot — but isolating the
// locks lets independent engines be queried safely from another goroutine
// while a run is in flight.
//
// Every setter is a plain value assignment invoked only at an engine's
// termination paths, per §5. A future ABI-compatible redesign (§9) would
// pair each engine with an owned statistics record returned by reference
// and keep these singletons as a thin copy-out layer; that is exactly the
// shape implemented here.
package snapshot
