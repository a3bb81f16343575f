// Package basecase implements the bounded truncated-prefix engine (§4.5):
// a Dijkstra-style expansion capped at k+1 non-stale pops and an optional
// distance bound B, used by pivot as its inner probe step.
//
// Grounded on refengine's heap loop (lazy deletion via stale-pop discard)
// narrowed to the k+1-pop / bound contract described in the spec; the Rust
// original_source only scaffolds Phase2Attempt/Phase2Result placeholders in
// spec_future.rs, so the procedure itself comes from the spec's prose.
package basecase
