package centrality

import (
	"context"
	"errors"
	"fmt"
)

// Defaults for PageRank, matching the reference contract.
const (
	DefaultDamping       = 0.85
	DefaultMaxIterations = 20

	// convergenceTol stops PageRank early when the L1 change of one
	// iteration drops below it. Exhausting the cap instead is not an error.
	convergenceTol = 1e-6
)

// Sentinel errors for centrality execution.
var (
	// ErrNilView is returned when a nil graph view is passed.
	ErrNilView = errors.New("centrality: graph view is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures centrality behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the computation is invoked.
type Option func(*Options)

// Options holds shared parameters for the centrality algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Normalized rescales Degree by (n-1) and Betweenness by (n-1)(n-2).
	Normalized bool

	// Damping is PageRank's follow-the-links probability.
	Damping float64

	// MaxIterations caps PageRank's power iteration.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no
// normalization, damping 0.85, and a 20-iteration cap.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Damping:       DefaultDamping,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNormalized rescales scores into [0,1] where the algorithm defines a
// normalization (Degree, Betweenness).
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}

// WithDamping overrides PageRank's damping factor. Must lie in (0,1);
// anything else → ErrOptionViolation.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1), got %g", ErrOptionViolation, d)

			return
		}
		o.Damping = d
	}
}

// WithMaxIterations overrides PageRank's iteration cap. Must be positive;
// anything else → ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// ScoreMap maps every node ID in the snapshot to its score.
type ScoreMap map[string]float64
