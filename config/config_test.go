package config_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp-lab/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load(1000)
	require.Equal(t, config.DeltaModeAverage, cfg.DeltaMode)
	require.Equal(t, 3.0, cfg.DeltaMult)
	require.Equal(t, 0.15, cfg.HeavyTarget)
	require.Equal(t, 4, cfg.AdaptMaxRestarts)
	require.Equal(t, []float64{1.5, 2.0, 3.0, 4.0, 6.0}, cfg.AutotuneSet)
	require.Equal(t, 2048, cfg.AutotuneLimit)
	require.Equal(t, 1024, cfg.BasecaseK)
	require.True(t, math.IsInf(cfg.BasecaseBound, 1))
	require.Equal(t, 8, cfg.PivotMaxAttempts)
	require.False(t, cfg.CapturePopOrder)
	require.False(t, cfg.InvariantCheck)
}

func TestLoad_AdaptTriggerClamped(t *testing.T) {
	cfg := config.Load(4)
	require.GreaterOrEqual(t, cfg.AdaptTrigger, 3)
	require.LessOrEqual(t, cfg.AdaptTrigger, 40)

	cfg = config.Load(1 << 30)
	require.LessOrEqual(t, cfg.AdaptTrigger, 40)
}

func TestLoad_QuantileModeDefaultMult(t *testing.T) {
	t.Setenv("DELTA_MODE", "quantile")
	cfg := config.Load(100)
	require.Equal(t, config.DeltaModeQuantile, cfg.DeltaMode)
	require.Equal(t, 1.0, cfg.DeltaMult)
}

func TestLoad_HeavyRatioBoundsForced(t *testing.T) {
	t.Setenv("HEAVY_MIN_RATIO", "0.5")
	t.Setenv("HEAVY_MAX_RATIO", "0.4")
	cfg := config.Load(100)
	require.InDelta(t, 0.51, cfg.HeavyMaxRatio, 1e-9)
}

func TestLoad_InvalidValueFallsBackToDefault(t *testing.T) {
	t.Setenv("BASECASE_K", "not-a-number")
	cfg := config.Load(100)
	require.Equal(t, 1024, cfg.BasecaseK)
}

func TestLoad_AutotuneSetParsesAndFiltersNonPositive(t *testing.T) {
	t.Setenv("AUTOTUNE_SET", "2, -1, 5, nope, 0, 3.5")
	cfg := config.Load(100)
	require.Equal(t, []float64{2, 5, 3.5}, cfg.AutotuneSet)
}
