package deltastep

import (
	"sort"

	"github.com/katalvlaran/sssp-lab/config"
)

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// baseWeight derives the unmultiplied Δ base per §4.3: the mean of the
// first ≤1000 edge weights (average mode), or the q-quantile of a sample
// of ≤5000 edge weights where q = 1 − heavy_target (quantile mode).
func baseWeight(weights []float64, cfg config.Config) float64 {
	m := len(weights)
	if cfg.DeltaMode == config.DeltaModeQuantile {
		take := m
		if take > 5000 {
			take = 5000
		}
		if take == 0 {
			return 1.0
		}
		sample := make([]float64, take)
		copy(sample, weights[:take])
		sort.Float64s(sample)
		qIndex := int(roundHalfAwayFromZero(float64(take-1) * (1.0 - cfg.HeavyTarget)))
		if qIndex < 0 {
			qIndex = 0
		}
		if qIndex >= take {
			qIndex = take - 1
		}
		base := sample[qIndex]
		if base < 1e-4 {
			base = 1e-4
		}
		return base
	}

	take := m
	if take > 1000 {
		take = 1000
	}
	if take == 0 {
		return 1.0
	}
	var sum float64
	for i := 0; i < take; i++ {
		sum += weights[i]
	}
	avg := sum / float64(take)
	if avg <= 0 {
		avg = 1.0
	}
	return avg
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

// initialDelta combines the base weight with the configured multiplier,
// clamped to [1e-4, 1e6].
func initialDelta(weights []float64, cfg config.Config) float64 {
	base := baseWeight(weights, cfg)
	return clampFloat(base*cfg.DeltaMult, 1e-4, 1e6)
}
