// Command ssspbench is a manual-run harness for the sssp package's nine
// entry points. It loads one of a small set of named fixture graphs
// (internal/testgraph), runs the selected engine, and prints distances,
// predecessors, and the engine's instrumentation snapshot to stdout.
//
// This command intentionally does not build CSR graphs from files, emit
// JSON, or generate random graphs — the spec places those concerns with
// external collaborators (§1). It exists only so a developer can exercise
// an engine by hand without writing a throwaway test.
package main
