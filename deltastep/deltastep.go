package deltastep

import (
	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
)

// passResult carries the outcome of a single Δ-stepping pass (one full
// bucket-cursor sweep at a fixed Δ) back to the Run state machine.
type passResult struct {
	bucketsVisited   uint32
	lightPassRepeats uint32
	maxBucketIndex   uint32
	relaxations      uint64
	heavyRelaxations uint64
	lightRelaxations uint64
	settled          uint32
	needsRestart     bool
	newDelta         float64
}

// Run computes single-source shortest distances with the adaptive
// Δ-stepping engine (§4.3). It restarts at most cfg.AdaptMaxRestarts times,
// each restart rebuilding buckets from scratch with a revised Δ.
func Run(v csrview.View, source int, outDist []float64, outPred []int32, result *csrview.Result) int {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return status
	}

	cfg := config.Load(v.N)
	return runWithConfig(v, source, cfg, outDist, outPred, result)
}

// runSinglePass sweeps buckets [0, capBucket] at a fixed Δ, settling light
// edges (w ≤ Δ) within each bucket via a repeat-until-dry inner loop and
// deferring heavy edges (w > Δ) to later buckets. It evaluates the
// adaptive-restart conditions (§4.3) once cfg.AdaptTrigger buckets have
// been visited, mirroring original_source's sssp_run_stoc_auto_adapt.
// settledLimit, when positive, truncates the sweep early (for autotune
// probing) once that many vertices have been settled, matching
// original_source's stoc_run_internal settled_count comparison.
func runSinglePass(v csrview.View, source int, delta float64, cfg config.Config, outDist []float64, outPred []int32, restartsAllowed bool, settledLimit int) (passResult, int) {
	n := v.N
	capBucket := 4*n + 1024

	buckets := make(map[int][]int32)
	inBucket := make([]int32, n)
	for i := range inBucket {
		inBucket[i] = -1
	}

	insert := func(vertex int32, bucketIdx int) {
		if inBucket[vertex] == int32(bucketIdx) {
			return
		}
		if cur := inBucket[vertex]; cur >= 0 {
			b := buckets[int(cur)]
			for i, x := range b {
				if x == vertex {
					b[i] = b[len(b)-1]
					buckets[int(cur)] = b[:len(b)-1]
					break
				}
			}
		}
		buckets[bucketIdx] = append(buckets[bucketIdx], vertex)
		inBucket[vertex] = int32(bucketIdx)
	}

	insert(int32(source), 0)

	var pr passResult
	idx := 0
	for idx <= capBucket {
		bucket, ok := buckets[idx]
		if !ok || len(bucket) == 0 {
			idx++
			continue
		}
		pr.bucketsVisited++
		if pr.bucketsVisited > uint32(capBucket) {
			return pr, csrview.StatusCapacityExceeded
		}
		if uint32(idx) > pr.maxBucketIndex {
			pr.maxBucketIndex = uint32(idx)
		}

		settledThisBucket := make([]int32, 0, len(bucket))
		seenThisBucket := make(map[int32]bool)

		for {
			cur := buckets[idx]
			if len(cur) == 0 {
				break
			}
			pr.lightPassRepeats++
			buckets[idx] = nil
			for _, u := range cur {
				if inBucket[u] != int32(idx) {
					continue
				}
				inBucket[u] = -2 // settled marker, no longer in any bucket
				if !seenThisBucket[u] {
					seenThisBucket[u] = true
					settledThisBucket = append(settledThisBucket, u)
				}
				start, end := v.Neighbors(int(u))
				for e := start; e < end; e++ {
					w := v.Weights[e]
					if w > delta {
						continue
					}
					target := int32(v.Targets[e])
					newDist := outDist[u] + w
					if newDist < outDist[target] {
						outDist[target] = newDist
						outPred[target] = u
						pr.relaxations++
						pr.lightRelaxations++
						newIdx := int(newDist / delta)
						if newIdx < idx {
							newIdx = idx
						}
						insert(target, newIdx)
					}
				}
			}
		}

		pr.settled += uint32(len(settledThisBucket))
		if settledLimit > 0 && int(pr.settled) >= settledLimit {
			return pr, csrview.StatusOK
		}

		for _, u := range settledThisBucket {
			start, end := v.Neighbors(int(u))
			for e := start; e < end; e++ {
				w := v.Weights[e]
				if w <= delta {
					continue
				}
				target := int32(v.Targets[e])
				newDist := outDist[u] + w
				if newDist < outDist[target] {
					outDist[target] = newDist
					outPred[target] = u
					pr.relaxations++
					pr.heavyRelaxations++
					newIdx := int(newDist / delta)
					if newIdx < idx {
						newIdx = idx
					}
					insert(target, newIdx)
				}
			}
		}

		if restartsAllowed && pr.bucketsVisited >= uint32(cfg.AdaptTrigger) {
			total := pr.relaxations
			if total > 0 {
				ratio := float64(pr.heavyRelaxations) / float64(total)
				switch {
				case pr.heavyRelaxations == 0:
					pr.needsRestart = true
					pr.newDelta = clampFloat(delta/2, 1e-4, 1e6)
				case ratio < cfg.HeavyMinRatio:
					pr.needsRestart = true
					pr.newDelta = clampFloat(delta*0.7, 1e-4, 1e6)
				case ratio > cfg.HeavyMaxRatio:
					pr.needsRestart = true
					pr.newDelta = clampFloat(delta*1.5, 1e-4, 1e6)
				}
				if pr.needsRestart {
					return pr, csrview.StatusOK
				}
			}
		}

		idx++
	}

	return pr, csrview.StatusOK
}
