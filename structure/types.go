package structure

import (
	"context"
	"errors"
)

// ErrNilView is returned when a nil graph view is passed.
var ErrNilView = errors.New("structure: graph view is nil")

// Option configures structure analysis via functional arguments.
type Option func(*Options)

// Options holds shared parameters; currently only cancellation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ComponentAssignment maps every node ID to its component ID. Two nodes
// share a component ID iff they are connected under the algorithm's
// connectivity definition.
type ComponentAssignment map[string]int

// Bridge is an undirected edge whose removal increases the number of
// connected components. U < V lexicographically.
type Bridge struct {
	U, V string
}

// KCoreResult carries the k-core decomposition: the core number of every
// node and the maximum k for which a non-empty core subgraph remains.
type KCoreResult struct {
	CoreNumbers map[string]int
	MaxCore     int
}
