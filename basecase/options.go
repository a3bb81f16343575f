package basecase

import (
	"errors"

	"github.com/katalvlaran/sssp-lab/config"
	"github.com/katalvlaran/sssp-lab/csrview"
)

// Sentinel errors returned (as panics from the Option constructors below,
// mirroring dijkstra.WithMaxDistance) when a functional option receives an
// argument the basecase contract cannot honor.
var (
	// ErrNegativeK indicates WithK received a negative prefix size.
	ErrNegativeK = errors.New("basecase: k must be non-negative")
	// ErrNegativeBound indicates WithBound received a negative distance bound.
	ErrNegativeBound = errors.New("basecase: bound must be non-negative")
)

// Options carries run_basecase_probe's extra tunables (§6 BASECASE_K,
// BASECASE_BOUND) for callers that prefer functional options over passing
// k/bound positionally to Run.
type Options struct {
	K     int
	Bound float64
}

// Option configures Options.
type Option func(*Options)

// WithK overrides the prefix size k. Panics with ErrNegativeK.Error() if k
// is negative.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic(ErrNegativeK.Error())
		}
		o.K = k
	}
}

// WithBound overrides the distance bound B. Panics with
// ErrNegativeBound.Error() if bound is negative.
func WithBound(bound float64) Option {
	return func(o *Options) {
		if bound < 0 {
			panic(ErrNegativeBound.Error())
		}
		o.Bound = bound
	}
}

// DefaultOptions returns k and bound as read from the process environment
// (§6 BASECASE_K, BASECASE_BOUND), the starting point for further
// functional-option overrides.
func DefaultOptions(n int) Options {
	cfg := config.Load(n)
	return Options{
		K:     cfg.BasecaseK,
		Bound: cfg.BasecaseBound,
	}
}

// RunWithOptions applies opts atop DefaultOptions(v.N) and delegates to Run.
// It is an alternative to passing k/bound positionally, grounded on
// dijkstra's Source(...)/WithReturnPath() constructor-option convention.
func RunWithOptions(v csrview.View, source int, outDist []float64, outPred []int32, popOrder []int32, opts ...Option) (Result, int) {
	o := DefaultOptions(v.N)
	for _, opt := range opts {
		opt(&o)
	}
	return Run(v, source, o.K, o.Bound, outDist, outPred, popOrder)
}
