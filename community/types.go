package community

import (
	"context"
	"errors"
)

var (
	// ErrNilView is returned when a nil graph view is passed.
	ErrNilView = errors.New("community: graph view is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("community: invalid option value")
)

const (
	// DefaultMaxSweeps caps label-propagation sweeps over the node set.
	DefaultMaxSweeps = 100

	// DefaultMaxPasses caps Louvain move-and-aggregate passes.
	DefaultMaxPasses = 10

	// minGain is the modularity improvement below which a Louvain pass is
	// considered converged.
	minGain = 1e-7
)

// Option configures community detection via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for the detectors.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxSweeps bounds label-propagation sweeps. Must be > 0.
	MaxSweeps int

	// MaxPasses bounds Louvain passes. Must be > 0.
	MaxPasses int

	err error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxSweeps: DefaultMaxSweeps,
		MaxPasses: DefaultMaxPasses,
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

// WithMaxSweeps overrides the label-propagation sweep cap.
func WithMaxSweeps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSweeps = n
	}
}

// WithMaxPasses overrides the Louvain pass cap.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxPasses = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// CommunityResult is the outcome of a detection run: a dense integer
// community ID per node, the number of distinct communities, and the
// modularity of the partition on the undirected unweighted view.
type CommunityResult struct {
	Assignment     map[string]int
	NumCommunities int
	Modularity     float64
}
