package deltastep

import (
	"fmt"
	"hash/fnv"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
	"github.com/katalvlaran/sssp-lab/snapshot"
)

// tuneGroup collapses concurrent RunAutotunedAdaptive calls against the
// same graph+source key into a single autotune-and-run, per §4.4's note
// that the autotuner is "safe to share across concurrent callers probing
// the same instance."
var tuneGroup singleflight.Group

var adaptTraceLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Str("component", "deltastep.autotune").Logger()

// fingerprint derives a cheap, deterministic key for a graph+source pair,
// used only to dedupe concurrent autotune calls — not a content hash.
func fingerprint(v csrview.View, source int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%d", v.N, v.EdgeCount(), source, len(v.Offsets))
	if m := v.EdgeCount(); m > 0 {
		fmt.Fprintf(h, "|%g|%g", v.Weights[0], v.Weights[m-1])
	}
	return fmt.Sprintf("%x", h.Sum64())
}

// RunAutotuned probes cfg.AutotuneSet's candidate multipliers with
// truncated passes (capped at cfg.AutotuneLimit vertices settled, or n if
// smaller) and selects the multiplier yielding the lowest wall time, then
// commits a full run at that multiplier with adaptive restarts disabled
// (§4.4).
func RunAutotuned(v csrview.View, source int, outDist []float64, outPred []int32, result *csrview.Result) int {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return status
	}

	cfg := config.Load(v.N)
	bestMult, status := probeBestMultiplier(v, source, cfg)
	if status != csrview.StatusOK {
		return status
	}
	cfg.DeltaMult = bestMult
	cfg.AdaptMaxRestarts = 0

	return runWithConfig(v, source, cfg, outDist, outPred, result)
}

// RunAutotunedAdaptive runs the same multiplier probe as RunAutotuned
// followed by the full adaptive restart loop, with concurrent calls against
// the same graph+source collapsed via singleflight.
func RunAutotunedAdaptive(v csrview.View, source int, outDist []float64, outPred []int32, result *csrview.Result) int {
	if status := csrview.Validate(v, source, outDist, outPred); status != csrview.StatusOK {
		return status
	}

	key := fingerprint(v, source)
	start := time.Now()

	type outcome struct {
		dist   []float64
		pred   []int32
		result csrview.Result
		status int
	}

	v32, err, shared := tuneGroup.Do(key, func() (interface{}, error) {
		localDist := make([]float64, v.N)
		localPred := make([]int32, v.N)
		var localResult csrview.Result

		cfg := config.Load(v.N)
		bestMult, status := probeBestMultiplier(v, source, cfg)
		if status == csrview.StatusOK {
			cfg.DeltaMult = bestMult
			status = runWithConfig(v, source, cfg, localDist, localPred, &localResult)
		}

		return outcome{dist: localDist, pred: localPred, result: localResult, status: status}, nil
	})
	if err != nil {
		return csrview.StatusMalformedCSR
	}

	o := v32.(outcome)
	copy(outDist, o.dist)
	copy(outPred, o.pred)
	if result != nil {
		*result = o.result
	}

	if config.Load(v.N).AdaptTrace {
		adaptTraceLog.Debug().
			Str("key", key).
			Bool("shared", shared).
			Dur("elapsed", time.Since(start)).
			Int("status", o.status).
			Msg("ADAPT_TRACE")
	}

	return o.status
}

// probeBestMultiplier truncated-probes each candidate in cfg.AutotuneSet
// (capped at cfg.AutotuneLimit vertices settled, or n if smaller) and
// returns the one with the lowest wall time, mirroring original_source's
// Instant::now/elapsed comparison in its multiplier probe loop.
func probeBestMultiplier(v csrview.View, source int, cfg config.Config) (float64, int) {
	candidates := cfg.AutotuneSet
	if len(candidates) == 0 {
		return cfg.DeltaMult, csrview.StatusOK
	}

	limit := cfg.AutotuneLimit
	if limit <= 0 || limit > v.N {
		limit = v.N
	}

	probeDist := make([]float64, v.N)
	probePred := make([]int32, v.N)

	bestMult := candidates[0]
	bestElapsed := time.Duration(-1)

	for _, mult := range candidates {
		probeCfg := cfg
		probeCfg.DeltaMult = mult
		delta := initialDelta(v.Weights, probeCfg)

		csrview.ResetOutputs(probeDist, probePred, source)
		start := time.Now()
		_, status := runTruncatedPass(v, source, delta, limit, probeDist, probePred)
		elapsed := time.Since(start)
		if status != csrview.StatusOK {
			return cfg.DeltaMult, status
		}
		if bestElapsed < 0 || elapsed < bestElapsed {
			bestElapsed = elapsed
			bestMult = mult
		}
	}

	return bestMult, csrview.StatusOK
}

// runTruncatedPass runs runSinglePass but stops early once settledLimit
// vertices have been settled, for cheap probing during autotune.
func runTruncatedPass(v csrview.View, source int, delta float64, settledLimit int, outDist []float64, outPred []int32) (passResult, int) {
	return runSinglePass(v, source, delta, config.Config{AdaptMaxRestarts: 0}, outDist, outPred, false, settledLimit)
}

// runWithConfig runs the full adaptive loop starting from cfg's multiplier,
// skipping the autotune probe (used once the best multiplier is already
// known).
func runWithConfig(v csrview.View, source int, cfg config.Config, outDist []float64, outPred []int32, result *csrview.Result) int {
	delta := initialDelta(v.Weights, cfg)

	var (
		pr       passResult
		status   int
		restarts int
	)
	for {
		csrview.ResetOutputs(outDist, outPred, source)
		pr, status = runSinglePass(v, source, delta, cfg, outDist, outPred, restarts < cfg.AdaptMaxRestarts, 0)
		if status != csrview.StatusOK {
			return status
		}
		if pr.needsRestart {
			if cfg.AdaptTrace {
				adaptTraceLog.Info().
					Int("restart", restarts+1).
					Float64("old_delta", delta).
					Float64("new_delta", pr.newDelta).
					Float64("heavy_ratio", float64(pr.heavyRelaxations)/float64(pr.relaxations)).
					Msg("ADAPT_TRACE")
			}
			delta = pr.newDelta
			restarts++
			continue
		}
		break
	}

	if result != nil {
		*result = csrview.Result{
			Relaxations:      pr.relaxations,
			LightRelaxations: pr.lightRelaxations,
			HeavyRelaxations: pr.heavyRelaxations,
			Settled:          pr.settled,
			ErrorCode:        0,
		}
	}

	heavyRatioX1000 := uint32(0)
	if pr.relaxations > 0 {
		heavyRatioX1000 = uint32(1000 * float64(pr.heavyRelaxations) / float64(pr.relaxations))
	}
	snapshot.SetBucketStats(snapshot.BucketStats{
		BucketsVisited:   pr.bucketsVisited,
		LightPassRepeats: pr.lightPassRepeats,
		MaxBucketIndex:   pr.maxBucketIndex,
		Restarts:         uint32(restarts),
		FinalDeltaX1000:  uint32(delta * 1000),
		HeavyRatioX1000:  heavyRatioX1000,
	})

	return csrview.StatusOK
}
