package chain

import (
	"math"

	"github.com/katalvlaran/sssp-lab/bheap"
	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// Result is the outcome of a boundary-chain run.
type Result struct {
	Segments       int
	Bounds         []float64
	TotalCollected uint32
	MaxSegment     uint32
	Monotonic      bool
	Relaxations    uint64
	ErrorCode      int
}

// Run emits an ordered sequence of disjoint segments with strictly
// increasing bounds, covering a prefix of a BFS-like exploration from
// source (§4.7).
func Run(v csrview.View, source int, outDist []float64, outPred []int32) (Result, int) {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return Result{}, status
	}

	cfg := config.Load(v.N)
	csrview.ResetOutputs(outDist, outPred, source)

	visited := make([]bool, v.N)
	h := bheap.New(minInt(v.N, 1024))
	h.Push(int32(source), 0)

	var (
		bounds         []float64
		totalCollected uint32
		maxSegment     uint32
		relaxations    uint64
		prevBound      = 0.0
		monotone       = true
		segments       int
	)

	for segments < cfg.ChainMaxSeg {
		if cfg.ChainTarget > 0 && totalCollected >= uint32(cfg.ChainTarget) {
			break
		}

		scratch, truncated, bound, segRelax := SegmentAttempt(v, h, visited, outDist, outPred, cfg.ChainK)
		relaxations += segRelax
		if len(scratch) == 0 {
			break // heap exhausted before this attempt began: full coverage already reached
		}

		if !truncated {
			// The heap emptied: nothing further can arrive, so the segment
			// closes unbounded and collects every vertex it popped.
			bound = math.Inf(1)
		}

		var collected uint32
		for _, vx := range scratch {
			if !visited[vx] && outDist[vx] < bound {
				visited[vx] = true
				collected++
			}
		}

		if bound <= prevBound {
			monotone = false
		}
		prevBound = bound
		bounds = append(bounds, bound)
		segments++
		totalCollected += collected
		if collected > maxSegment {
			maxSegment = collected
		}

		if !truncated {
			break
		}
	}

	// §7's external-interface contract is authoritative over §4.7's prose:
	// 1 means monotonicity held, 0 means it was violated.
	errorCode := 0
	if monotone {
		errorCode = 1
	}

	res := Result{
		Segments:       segments,
		Bounds:         bounds,
		TotalCollected: totalCollected,
		MaxSegment:     maxSegment,
		Monotonic:      monotone,
		Relaxations:    relaxations,
		ErrorCode:      errorCode,
	}

	snapshot.SetChainStats(snapshot.ChainStats{
		Segments:       segments,
		Attempts:       segments,
		TotalCollected: totalCollected,
		MaxSegment:     maxSegment,
		Monotonic:      monotone,
		Relaxations:    relaxations,
	})

	return res, csrview.StatusOK
}

// SegmentAttempt pops from the shared heap until the (k+1)st non-stale,
// non-visited pop (truncated) or the heap empties (not truncated), relaxing
// edges into unvisited targets along the way. On truncation the (k+1)st
// vertex is pushed back so the next attempt resumes from it. Exported for
// reuse by the descent package's frame-by-frame traversal.
func SegmentAttempt(v csrview.View, h *bheap.Heap, visited []bool, outDist []float64, outPred []int32, k int) (scratch []int32, truncated bool, bound float64, relaxations uint64) {
	for h.Len() > 0 {
		item, ok := h.Pop()
		if !ok {
			break
		}
		u := item.Vertex
		if visited[u] || item.Dist > outDist[u] {
			continue
		}

		scratch = append(scratch, u)

		if len(scratch) == k+1 {
			truncated = true
			bound = item.Dist
			h.Push(u, item.Dist)
			return scratch, truncated, bound, relaxations
		}

		start, end := v.Neighbors(int(u))
		for e := start; e < end; e++ {
			target := int32(v.Targets[e])
			if visited[target] {
				continue
			}
			newDist := outDist[u] + v.Weights[e]
			if newDist < outDist[target] {
				outDist[target] = newDist
				outPred[target] = u
				relaxations++
				h.Push(target, newDist)
			}
		}
	}
	return scratch, truncated, bound, relaxations
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
