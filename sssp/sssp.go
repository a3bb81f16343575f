package sssp

import (
	"github.com/katalvlaran/sssp-lab/basecase"
	"github.com/katalvlaran/sssp-lab/bucketd"
	"github.com/katalvlaran/sssp-lab/chain"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/deltastep"
	"github.com/katalvlaran/sssp-lab/descent"
	"github.com/katalvlaran/sssp-lab/pivot"
	"github.com/katalvlaran/sssp-lab/refengine"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// RunReference computes shortest distances with the binary-heap Dijkstra
// correctness anchor (§4.2).
func RunReference(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	return refengine.Run(v, source, outDist, outPred, outInfo)
}

// RunDeltaStepping computes shortest distances with the adaptive
// Δ-stepping engine (§4.3).
func RunDeltaStepping(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	return deltastep.Run(v, source, outDist, outPred, outInfo)
}

// RunDeltaSteppingAutotuned probes the Δ multiplier candidate set and
// commits a non-adaptive run at the best one found (§4.4).
func RunDeltaSteppingAutotuned(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	return deltastep.RunAutotuned(v, source, outDist, outPred, outInfo)
}

// RunDeltaSteppingAutotunedAdaptive autotunes the Δ multiplier and then
// runs the full adaptive-restart loop from that starting point (§4.4),
// collapsing concurrent identical calls via singleflight.
func RunDeltaSteppingAutotunedAdaptive(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	return deltastep.RunAutotunedAdaptive(v, source, outDist, outPred, outInfo)
}

// RunBasecaseProbe exposes the bounded truncated-prefix engine directly,
// with an explicit k and bound B (§4.5).
func RunBasecaseProbe(v csrview.View, source int, k int, bound float64, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	res, status := basecase.Run(v, source, k, bound, outDist, outPred, nil)
	if status != csrview.StatusOK {
		return status
	}
	if outInfo != nil {
		*outInfo = csrview.Result{
			Relaxations: res.Relaxations,
			Settled:     res.Collected,
			ErrorCode:   int32(res.Outcome),
		}
	}
	return csrview.StatusOK
}

// RunPivotGrowth runs the pivot-growth loop (§4.6). outInfo.ErrorCode
// carries the §7 success-style overload: 1 if the loop reached its success
// criterion, 0 otherwise.
func RunPivotGrowth(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	res, status := pivot.Run(v, source, outDist, outPred)
	if status != csrview.StatusOK {
		return status
	}
	if outInfo != nil {
		*outInfo = csrview.Result{
			Relaxations: res.Relaxations,
			Settled:     res.Collected,
			ErrorCode:   int32(res.ErrorCode),
		}
	}
	return csrview.StatusOK
}

// RunBucketWithD runs the bucket engine driven by D (§4.9).
func RunBucketWithD(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	res, status := bucketd.Run(v, source, outDist, outPred)
	if status != csrview.StatusOK {
		return status
	}
	if outInfo != nil {
		*outInfo = csrview.Result{
			Relaxations: res.Relaxations,
			Settled:     uint32(v.N),
			ErrorCode:   0,
		}
	}
	return csrview.StatusOK
}

// RunBoundaryChain runs the boundary-chain engine (§4.7). outInfo.ErrorCode
// carries the §7 success-style overload: 1 if monotonicity held, 0 if
// violated.
func RunBoundaryChain(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	res, status := chain.Run(v, source, outDist, outPred)
	if status != csrview.StatusOK {
		return status
	}
	if outInfo != nil {
		*outInfo = csrview.Result{
			Relaxations: res.Relaxations,
			Settled:     res.TotalCollected,
			ErrorCode:   int32(res.ErrorCode),
		}
	}
	return csrview.StatusOK
}

// RunSegmentDescent runs the segment-descent driver (§4.10), single-level
// or skeletal multi-level depending on configuration.
func RunSegmentDescent(v csrview.View, source int, outDist []float64, outPred []int32, outInfo *csrview.Result) int {
	res, status := descent.Run(v, source, outDist, outPred)
	if status != csrview.StatusOK {
		return status
	}
	if outInfo != nil {
		*outInfo = csrview.Result{
			Relaxations: res.TotalRelaxations + res.BaselineRelaxations,
			Settled:     uint32(v.N),
			ErrorCode:   0,
		}
	}
	return csrview.StatusOK
}

// GetHeapStats returns the reference engine's most recent heap snapshot.
func GetHeapStats() snapshot.HeapStats { return snapshot.HeapSnapshot() }

// GetBucketStats returns the Δ-stepping engine's most recent bucket
// snapshot.
func GetBucketStats() snapshot.BucketStats { return snapshot.BucketSnapshot() }

// GetBasecaseStats returns the most recent basecase snapshot.
func GetBasecaseStats() snapshot.BasecaseStats { return snapshot.BasecaseSnapshot() }

// GetPivotStats returns the most recent pivot-growth snapshot.
func GetPivotStats() snapshot.PivotStats { return snapshot.PivotSnapshot() }

// GetBucketDStats returns the most recent bucket-engine-with-D snapshot.
func GetBucketDStats() snapshot.BucketDStats { return snapshot.BucketDSnapshot() }

// GetChainStats returns the most recent boundary-chain snapshot.
func GetChainStats() snapshot.ChainStats { return snapshot.ChainSnapshot() }

// GetRecursionStats returns the most recent segment-descent snapshot.
func GetRecursionStats() snapshot.RecursionStats { return snapshot.RecursionSnapshot() }

// GetFrameCount returns the number of recorded segment-descent frames.
func GetFrameCount() int { return snapshot.FrameCount() }

// GetFrame returns the recursion frame at index i, and whether it exists.
func GetFrame(i int) (snapshot.Frame, bool) { return snapshot.FrameAt(i) }
