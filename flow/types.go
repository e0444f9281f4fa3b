package flow

import (
	"context"
	"errors"
)

var (
	// ErrNilView is returned when a nil graph view is passed.
	ErrNilView = errors.New("flow: graph view is nil")

	// ErrNegativeCapacity indicates a capacity property decoded below zero.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("flow: invalid option value")
)

// DefaultCapacityProperty is the edge property read when none is configured.
const DefaultCapacityProperty = "capacity"

// epsilon below which residual capacity is treated as exhausted.
const epsilon = 1e-9

// Option configures max-flow computation via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for MaxFlow.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// CapacityProp names the edge property holding the capacity.
	CapacityProp string

	err error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		CapacityProp: DefaultCapacityProperty,
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

// WithCapacityProperty overrides the edge property capacities are read from.
func WithCapacityProperty(prop string) Option {
	return func(o *Options) {
		if prop == "" {
			o.err = ErrOptionViolation
			return
		}
		o.CapacityProp = prop
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// MaxFlowResult carries the total flow value and the residual capacities
// remaining after the final augmentation, keyed source → target.
type MaxFlowResult struct {
	Value    float64
	Residual map[string]map[string]float64
}
