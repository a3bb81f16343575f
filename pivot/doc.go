// Package pivot implements the pivot-growth loop (§4.6): repeated
// basecase attempts with a doubling k, sized by walking the predecessor
// forest's pop order in reverse to accumulate subtree sizes.
//
// Grounded on the spec's own procedural description and
// original_source/spec_future.rs's PivotCandidate/ForestNodeMeta field
// names — unused placeholders in the Rust scaffold, given real behavior
// here. The subtree-sizing pass is a single reverse scan over a plain
// slice; no third-party data structure in the retrieval pack fits a
// one-pass forest-size accumulation better than the standard library.
package pivot
