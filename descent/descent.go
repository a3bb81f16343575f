package descent

import (
	"github.com/katalvlaran/sssp-lab/bheap"
	"github.com/katalvlaran/sssp-lab/chain"
	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/refengine"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// Result is the outcome of a segment-descent run.
type Result struct {
	Frames              int
	TotalRelaxations    uint64
	BaselineRelaxations uint64
	SeedK               int
	ChainSegments       int
	ChainCollected      uint32
	InvariantChecks     uint64
	InvariantFailures   uint64
}

// Run performs a chain-like depth-0 sweep, records one frame per segment,
// optionally synthesizes depth-1 children per frame (skeletal multi-level
// mode), and then either overwrites dist/pred with the reference engine's
// output or resets them, depending on configuration (§4.10). Setting
// RECURSION_NO_CHAIN skips the segment sweep entirely (zero frames
// recorded) and falls straight through to the baseline/reset step.
func Run(v csrview.View, source int, outDist []float64, outPred []int32) (Result, int) {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return Result{}, status
	}

	cfg := config.Load(v.N)
	csrview.ResetOutputs(outDist, outPred, source)
	snapshot.ResetFrameTable()

	visited := make([]bool, v.N)
	h := bheap.New(minInt(v.N, 1024))
	h.Push(int32(source), 0)

	var (
		totalRelax        uint64
		chainSegments     int
		chainCollected    uint32
		invariantChecks   uint64
		invariantFailures uint64
		prevBound         = 0.0
	)

	for !cfg.RecursionNoChain && chainSegments < cfg.RecursionMaxFrames {
		scratch, truncated, bound, segRelax := chain.SegmentAttempt(v, h, visited, outDist, outPred, cfg.RecursionK)
		totalRelax += segRelax
		if len(scratch) == 0 {
			break
		}
		if !truncated {
			bound = maxDist(scratch, outDist)
		}

		var collected uint32
		for _, vx := range scratch {
			if !visited[vx] && outDist[vx] < bound {
				visited[vx] = true
				collected++
			}
		}

		frameID := snapshot.AppendFrame(snapshot.Frame{
			ID:           chainSegments,
			Bound:        bound,
			K:            cfg.RecursionK,
			Size:         collected,
			Truncated:    truncated,
			Relaxations:  segRelax,
			Depth:        0,
			ParentID:     -1,
			PruningRatio: pruningRatio(collected, uint32(len(scratch))),
		})

		if cfg.InvariantCheck {
			invariantChecks++
			if bound <= prevBound {
				invariantFailures++
				snapshot.RecordInvariantFailure()
			}
		}
		prevBound = bound

		if cfg.MLDepthMax >= 1 {
			childBound := bound + 1.0
			childSize := collected / 2

			if cfg.InvariantCheck {
				invariantChecks++
				if childBound <= bound || childSize > collected {
					invariantFailures++
					snapshot.RecordInvariantFailure()
				}
			}

			snapshot.AppendFrame(snapshot.Frame{
				ID:           frameID + 1,
				Bound:        childBound,
				K:            cfg.RecursionK,
				Size:         childSize,
				Truncated:    false,
				Relaxations:  0,
				Depth:        1,
				ParentID:     frameID,
				PruningRatio: pruningRatio(childSize, collected),
			})
		}

		chainSegments++
		chainCollected += collected

		if !truncated {
			break
		}
	}

	var baselineRelax uint64
	if cfg.RecursionSkipBaseline {
		csrview.ResetOutputs(outDist, outPred, source)
	} else {
		var baselineResult csrview.Result
		if status := refengine.Run(v, source, outDist, outPred, &baselineResult); status != csrview.StatusOK {
			return Result{}, status
		}
		baselineRelax = baselineResult.Relaxations
	}

	res := Result{
		Frames:              snapshot.FrameCount(),
		TotalRelaxations:    totalRelax,
		BaselineRelaxations: baselineRelax,
		SeedK:               cfg.RecursionK,
		ChainSegments:       chainSegments,
		ChainCollected:      chainCollected,
		InvariantChecks:     invariantChecks,
		InvariantFailures:   invariantFailures,
	}

	snapshot.SetRecursionStats(snapshot.RecursionStats{
		Frames:              res.Frames,
		TotalRelaxations:    totalRelax,
		BaselineRelaxations: baselineRelax,
		SeedK:               cfg.RecursionK,
		ChainSegments:       chainSegments,
		ChainCollected:      chainCollected,
		InvariantChecks:     invariantChecks,
		InvariantFailures:   invariantFailures,
	})

	return res, csrview.StatusOK
}

func pruningRatio(collected, total uint32) float64 {
	if total == 0 {
		return 0
	}
	return float64(collected) / float64(total)
}

func maxDist(scratch []int32, outDist []float64) float64 {
	var m float64
	for _, vx := range scratch {
		if outDist[vx] > m {
			m = outDist[vx]
		}
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
