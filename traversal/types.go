package traversal

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilView is returned when a nil graph view is passed.
	ErrNilView = errors.New("traversal: graph view is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by BFS and DFS.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node with its hop depth from the
	// start. If it returns an error, the traversal aborts with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this hop depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no filtering, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
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

// WithOnVisit registers a callback to run on each visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given hop depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips arcs when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// buildOptions applies opts over the defaults and surfaces the first
// recorded option violation.
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

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its hop distance from the start
//     (for DFSAll, from the root of its DFS tree).
//   - Parent: map from node ID to its predecessor in the traversal tree;
//     roots are absent.
//
// The set of visited nodes is exactly the key set of Depth.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Visited reports whether id was reached by the traversal.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// Len returns the number of visited nodes.
func (r *Result) Len() int { return len(r.Depth) }
