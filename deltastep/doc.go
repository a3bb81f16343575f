// Package deltastep implements the Δ-stepping engine with adaptive Δ
// (§4.3) and its autotuner (§4.4), grounded on original_source's
// sssp_run_stoc / sssp_run_stoc_autotune / sssp_run_stoc_auto_adapt (a
// single-threaded Meyer–Sanders delta-stepping core) but restructured as
// the explicit state machine §4.11 calls for, rather than the Rust
// source's loop-with-break reentry:
//
//	Init → Selecting-Δ → Running → Committed
//
// Running transitions back to Selecting-Δ on an adaptive restart and
// forward to Committed when the bucket cursor exhausts or the restart cap
// is reached.
//
// Light edges (w ≤ Δ) are settled within a bucket via a repeat-until-dry
// inner loop; heavy edges (w > Δ) are relaxed afterward into later
// buckets. Buckets/bitmaps/counters are discarded and rebuilt from scratch
// on every restart — the spec accepts the lost work as the price of
// adapting Δ to the graph's weight distribution.
package deltastep
