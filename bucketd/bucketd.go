package bucketd

import (
	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/dqueue"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// Result is the outcome of a bucket-engine-with-D run.
type Result struct {
	Pulls       uint64
	Batches     uint64
	Pushes      uint64
	Relaxations uint64
}

// Run sweeps outer buckets keyed by ⌊dist/Δ⌋, draining each through a
// dqueue.D instance rather than a plain frontier list (§4.9). Δ is fixed
// per run as twice the mean of the first ≤32 edge weights, clamped to
// ≥1e-4.
func Run(v csrview.View, source int, outDist []float64, outPred []int32) (Result, int) {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return Result{}, status
	}

	cfg := config.Load(v.N)
	csrview.ResetOutputs(outDist, outPred, source)

	delta := computeDelta(v.Weights)
	capBucket := 4*v.N + 1024

	buckets := make(map[int][]int32)
	buckets[0] = append(buckets[0], int32(source))

	var res Result
	var bucketsVisited int

	idx := 0
	for idx <= capBucket {
		if len(buckets[idx]) == 0 {
			idx++
			continue
		}
		bucketsVisited++
		if bucketsVisited > capBucket {
			return Result{}, csrview.StatusCapacityExceeded
		}

		lastDist := -1.0
		haveLast := false

		for len(buckets[idx]) > 0 {
			batch := buckets[idx]
			buckets[idx] = nil

			var d dqueue.D
			d.BatchPrepend(batch)
			res.Batches++

			d.Pull(func(u int32) {
				res.Pulls++

				if cfg.InvariantCheck {
					if haveLast && outDist[u] < lastDist {
						snapshot.RecordInvariantFailure()
					}
					lastDist = outDist[u]
					haveLast = true
				}

				start, end := v.Neighbors(int(u))
				for e := start; e < end; e++ {
					target := int32(v.Targets[e])
					w := v.Weights[e]
					newDist := outDist[u] + w
					if newDist < outDist[target] {
						outDist[target] = newDist
						outPred[target] = u
						res.Relaxations++
						destIdx := int(newDist / delta)
						if destIdx == idx {
							d.Push(target)
							res.Pushes++
						} else {
							buckets[destIdx] = append(buckets[destIdx], target)
						}
					}
				}
			})
		}

		idx++
	}

	snapshot.SetBucketDStats(snapshot.BucketDStats{
		Pulls:       res.Pulls,
		Batches:     res.Batches,
		Pushes:      res.Pushes,
		Relaxations: res.Relaxations,
	})

	return res, csrview.StatusOK
}

// computeDelta derives the fixed Δ used by this engine: twice the mean of
// the first ≤32 edge weights, clamped to ≥1e-4.
func computeDelta(weights []float64) float64 {
	take := len(weights)
	if take > 32 {
		take = 32
	}
	if take == 0 {
		return 1e-4
	}
	var sum float64
	for i := 0; i < take; i++ {
		sum += weights[i]
	}
	delta := 2 * (sum / float64(take))
	if delta < 1e-4 {
		delta = 1e-4
	}
	return delta
}
