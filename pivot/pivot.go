package pivot

import (
	"math"

	"github.com/katalvlaran/sssp-lab/basecase"
	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// Result is the outcome of a pivot-growth loop.
type Result struct {
	Attempts      int
	Success       bool
	FinalK        int
	Collected     uint32
	MaxSubtree    uint32
	RootsExamined uint32
	Relaxations   uint64
	Bound         float64
	// ErrorCode mirrors §7's overloaded success-style status field: 1 if
	// the growth loop reached its success criterion, 0 otherwise.
	ErrorCode int
}

// Run repeats basecase attempts with a doubling k until the largest
// predecessor-forest subtree reaches k, the collected set covers the whole
// graph, the attempt cap is reached, or k saturates at n (§4.6).
func Run(v csrview.View, source int, outDist []float64, outPred []int32) (Result, int) {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return Result{}, status
	}

	cfg := config.Load(v.N)
	k := cfg.BasecaseK
	if k > v.N {
		k = v.N
	}
	maxAttempts := cfg.PivotMaxAttempts

	var (
		bcRes         basecase.Result
		status        int
		attempts      int
		maxSubtree    uint32
		rootsExamined uint32
		success       bool
	)

	for {
		attempts++
		bcRes, status = basecase.Run(v, source, k, math.Inf(1), outDist, outPred, nil)
		if status != csrview.StatusOK {
			return Result{}, status
		}

		maxSubtree, rootsExamined = subtreeSizes(v, bcRes, outDist, outPred)
		success = maxSubtree >= uint32(k) || bcRes.Collected >= uint32(v.N)

		if success || attempts >= maxAttempts || k >= v.N {
			break
		}
		k *= 2
		if k > v.N {
			k = v.N
		}
	}

	if cfg.InvariantCheck {
		checkInvariants(bcRes, maxSubtree)
	}

	errorCode := 0
	if success {
		errorCode = 1
	}

	res := Result{
		Attempts:      attempts,
		Success:       success,
		FinalK:        k,
		Collected:     bcRes.Collected,
		MaxSubtree:    maxSubtree,
		RootsExamined: rootsExamined,
		Relaxations:   bcRes.Relaxations,
		Bound:         bcRes.NewBound,
		ErrorCode:     errorCode,
	}

	snapshot.SetPivotStats(snapshot.PivotStats{
		Attempts:      attempts,
		Success:       success,
		FinalK:        k,
		Collected:     bcRes.Collected,
		MaxSubtree:    maxSubtree,
		RootsExamined: rootsExamined,
		Relaxations:   bcRes.Relaxations,
		Bound:         bcRes.NewBound,
	})

	return res, csrview.StatusOK
}

// subtreeSizes walks the pop order in reverse, accumulating child sizes
// into parents that are also inside U (the collected set), per §4.6.
func subtreeSizes(v csrview.View, bcRes basecase.Result, outDist []float64, outPred []int32) (maxSubtree, rootsExamined uint32) {
	inU := make([]bool, v.N)
	size := make([]uint32, v.N)
	for _, vx := range bcRes.PopOrder {
		if outDist[vx] < bcRes.NewBound {
			inU[vx] = true
			size[vx] = 1
		}
	}

	for i := len(bcRes.PopOrder) - 1; i >= 0; i-- {
		vx := bcRes.PopOrder[i]
		if !inU[vx] {
			continue
		}
		p := outPred[vx]
		if p == csrview.NoPredecessor || !inU[p] {
			rootsExamined++
			continue
		}
		size[p] += size[vx]
	}

	for vx, in := range inU {
		if in && size[vx] > maxSubtree {
			maxSubtree = size[vx]
		}
	}
	return maxSubtree, rootsExamined
}

// checkInvariants records a failure of the optional pivot-loop invariant
// that every subtree size is bounded by |U| (§4.6) into a process-wide
// counter.
func checkInvariants(bcRes basecase.Result, maxSubtree uint32) {
	if maxSubtree > bcRes.Collected {
		snapshot.RecordInvariantFailure()
	}
}
