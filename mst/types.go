package mst

import (
	"context"
	"errors"
)

var (
	// ErrNilView is returned when a nil graph view is passed.
	ErrNilView = errors.New("mst: graph view is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("mst: invalid option value")
)

// DefaultWeightProperty is the edge property read when none is configured.
const DefaultWeightProperty = "weight"

// Option configures MST construction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters shared by Kruskal and Prim.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// WeightProp names the edge property holding the weight.
	WeightProp string

	err error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		WeightProp: DefaultWeightProperty,
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

// WithWeightProperty overrides the edge property the weight is read from.
func WithWeightProperty(prop string) Option {
	return func(o *Options) {
		if prop == "" {
			o.err = ErrOptionViolation
			return
		}
		o.WeightProp = prop
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// MSTEdge is one selected edge, oriented as stored in the snapshot.
type MSTEdge struct {
	From   string
	To     string
	Weight float64
}

// MSTResult carries the selected forest edges and their summed weight.
// For a connected snapshot with n nodes, Edges has length n-1.
type MSTResult struct {
	Edges       []MSTEdge
	TotalWeight float64
}
