package refengine

import (
	"github.com/katalvlaran/sssp-lab/bheap"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// Run computes shortest distances from source to every reachable vertex in
// v, writing results into outDist/outPred and result, and returns a status
// from csrview's fixed set. On any negative status, outDist/outPred and
// result are left untouched.
func Run(v csrview.View, source int, outDist []float64, outPred []int32, result *csrview.Result) int {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return status
	}

	csrview.ResetOutputs(outDist, outPred, source)

	h := bheap.New(minInt(v.N, 1024))
	h.Push(int32(source), 0)

	var relaxations uint64
	for h.Len() > 0 {
		item, ok := h.Pop()
		if !ok {
			break
		}
		u := item.Vertex
		// Lazy deletion: a popped entry whose key exceeds the vertex's
		// current recorded distance is a stale duplicate left over from an
		// earlier, since-improved push.
		if item.Dist > outDist[u] {
			continue
		}

		start, end := v.Neighbors(int(u))
		for e := start; e < end; e++ {
			target := int32(v.Targets[e])
			newDist := outDist[u] + v.Weights[e]
			if newDist < outDist[target] {
				outDist[target] = newDist
				outPred[target] = u
				h.Push(target, newDist)
				relaxations++
			}
		}
	}

	if result != nil {
		*result = csrview.Result{
			Relaxations: relaxations,
			Settled:     uint32(v.N),
			ErrorCode:   0,
		}
	}

	hs := h.Stats()
	snapshot.SetHeapStats(snapshot.HeapStats{Pushes: hs.Pushes, Pops: hs.Pops, MaxSize: hs.MaxSize})

	return csrview.StatusOK
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
