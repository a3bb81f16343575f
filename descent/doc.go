// Package descent implements the segment-descent driver (§4.10): a
// boundary-chain-like traversal that records one frame per segment, with an
// optional skeletal multi-level mode that synthesizes depth-1 child frames
// per depth-0 frame for exercising the invariant-check machinery.
//
// Grounded on chain (reuses chain.SegmentAttempt for the depth-0 sweep) plus
// original_source/spec_future.rs's RecursionFrameStats/
// RecursionStatsCollector field shapes (richer layout adopted per the
// snapshot package's Frame/RecursionStats types).
package descent
