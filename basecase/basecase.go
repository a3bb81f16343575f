package basecase

import (
	"github.com/katalvlaran/sssp-lab/bheap"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// Result is the outcome of a single basecase run.
type Result struct {
	Outcome     snapshot.BasecaseOutcome
	NewBound    float64
	Collected   uint32
	Relaxations uint64
	PopOrder    []int32
}

// Run expands from source with a binary min-heap, stopping at the (k+1)st
// non-stale pop (Truncated) or when the popped key exceeds bound (Success).
// popOrder is an optional scratch buffer reused for the pop-order trace;
// pass nil to let Run allocate its own.
func Run(v csrview.View, source int, k int, bound float64, outDist []float64, outPred []int32, popOrder []int32) (Result, int) {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return Result{}, status
	}

	csrview.ResetOutputs(outDist, outPred, source)

	h := bheap.New(minInt(v.N, 1024))
	h.Push(int32(source), 0)

	order := popOrder[:0]
	var relaxations uint64
	outcome := snapshot.BasecaseSuccess
	newBound := bound

	for h.Len() > 0 {
		item, ok := h.Pop()
		if !ok {
			break
		}
		u := item.Vertex
		if item.Dist > outDist[u] {
			continue // stale duplicate
		}
		if item.Dist > bound {
			outcome = snapshot.BasecaseSuccess
			newBound = bound
			break
		}

		order = append(order, u)

		if len(order) == k+1 {
			outcome = snapshot.BasecaseTruncated
			newBound = item.Dist
			break
		}

		start, end := v.Neighbors(int(u))
		for e := start; e < end; e++ {
			target := int32(v.Targets[e])
			newDist := outDist[u] + v.Weights[e]
			if newDist < outDist[target] && newDist <= bound {
				outDist[target] = newDist
				outPred[target] = u
				relaxations++
				h.Push(target, newDist)
			}
		}
	}

	if outcome == snapshot.BasecaseTruncated {
		for _, vx := range order {
			if outDist[vx] >= newBound {
				outDist[vx] = csrview.Unreached
				outPred[vx] = csrview.NoPredecessor
			}
		}
	}

	var collected uint32
	for _, vx := range order {
		if outDist[vx] < newBound {
			collected++
		}
	}

	res := Result{
		Outcome:     outcome,
		NewBound:    newBound,
		Collected:   collected,
		Relaxations: relaxations,
		PopOrder:    order,
	}

	snapshot.SetBasecaseStats(snapshot.BasecaseStats{
		Outcome:     outcome,
		NewBound:    newBound,
		Collected:   collected,
		Relaxations: relaxations,
	})

	return res, csrview.StatusOK
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
