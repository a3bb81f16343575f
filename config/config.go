package config

import (
	"math"
	"os"
	"strconv"
	"strings"
)

// DeltaMode selects how deltastep derives its base Δ before applying the
// multiplier.
type DeltaMode int

const (
	// DeltaModeAverage derives Δ from the mean weight of a prefix sample.
	DeltaModeAverage DeltaMode = iota
	// DeltaModeQuantile derives Δ from a weight quantile of a sample.
	DeltaModeQuantile
)

// Config collects every tunable read from the process environment (§6).
// Load reads all of them once; engines never re-read the environment
// mid-run.
type Config struct {
	DeltaMode     DeltaMode
	DeltaMult     float64
	HeavyTarget   float64
	AdaptMaxRestarts int
	AdaptTrigger     int
	HeavyMinRatio    float64
	HeavyMaxRatio    float64
	AutotuneSet      []float64
	AutotuneLimit    int
	BasecaseK        int
	BasecaseBound    float64
	PivotMaxAttempts int
	ChainK           int
	ChainMaxSeg      int
	ChainTarget      int
	CapturePopOrder  bool
	InvariantCheck   bool
	RecursionK            int
	RecursionMaxFrames    int
	RecursionSkipBaseline bool
	RecursionNoChain      bool
	MLDepthMax            int
	AdaptTrace            bool
}

// Load reads the §6 environment and returns a Config appropriate for a
// graph with n vertices (n influences ADAPT_TRIGGER's default).
func Load(n int) Config {
	mode := DeltaModeAverage
	if strings.EqualFold(getenv("DELTA_MODE", "average"), "quantile") {
		mode = DeltaModeQuantile
	}

	defaultMult := 3.0
	if mode == DeltaModeQuantile {
		defaultMult = 1.0
	}

	heavyTarget := clamp(getenvFloat("HEAVY_TARGET", 0.15), 0.01, 0.9)

	heavyMin := getenvFloat("HEAVY_MIN_RATIO", 0.05)
	if heavyMin < 0 {
		heavyMin = 0
	} else if heavyMin > 0.9 {
		heavyMin = 0.9
	}
	heavyMax := getenvFloat("HEAVY_MAX_RATIO", 0.25)
	if heavyMax < heavyMin+0.01 {
		heavyMax = heavyMin + 0.01
	}
	if heavyMax > 0.95 {
		heavyMax = 0.95
	}

	logN := math.Log2(math.Max(float64(n), 2))
	defaultTrigger := clampInt(int(logN/2.0), 3, 40)

	basecaseBound := getenvFloat("BASECASE_BOUND", math.Inf(1))

	return Config{
		DeltaMode:             mode,
		DeltaMult:             getenvFloat("DELTA_MULT", defaultMult),
		HeavyTarget:           heavyTarget,
		AdaptMaxRestarts:      getenvInt("ADAPT_MAX_RESTARTS", 4),
		AdaptTrigger:          getenvInt("ADAPT_TRIGGER", defaultTrigger),
		HeavyMinRatio:         heavyMin,
		HeavyMaxRatio:         heavyMax,
		AutotuneSet:           getenvFloatList("AUTOTUNE_SET", []float64{1.5, 2.0, 3.0, 4.0, 6.0}),
		AutotuneLimit:         getenvInt("AUTOTUNE_LIMIT", 2048),
		BasecaseK:             getenvInt("BASECASE_K", 1024),
		BasecaseBound:         basecaseBound,
		PivotMaxAttempts:      getenvInt("PIVOT_MAX_ATTEMPTS", 8),
		ChainK:                getenvInt("CHAIN_K", 1024),
		ChainMaxSeg:           getenvInt("CHAIN_MAX_SEG", 32),
		ChainTarget:           getenvInt("CHAIN_TARGET", 0),
		CapturePopOrder:       getenvBool("CAPTURE_POP_ORDER", false),
		InvariantCheck:        getenvBool("INVARIANT_CHECK", false),
		RecursionK:            getenvInt("RECURSION_K", 1024),
		RecursionMaxFrames:    getenvInt("RECURSION_MAX_FRAMES", 256),
		RecursionSkipBaseline: getenvBool("RECURSION_SKIP_BASELINE", false),
		RecursionNoChain:      getenvBool("RECURSION_NO_CHAIN", false),
		MLDepthMax:            getenvInt("ML_DEPTH_MAX", 2),
		AdaptTrace:            getenvBool("ADAPT_TRACE", false),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

func getenvFloatList(key string, def []float64) []float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []float64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil || f <= 0 {
			continue
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
