package shortestpath

import (
	"context"
	"errors"
)

// DefaultWeightProperty is the edge property weights are read from unless
// WithWeightProperty overrides it.
const DefaultWeightProperty = "weight"

// Sentinel errors for shortest-path execution.
var (
	// ErrNilView is returned when a nil graph view is passed.
	ErrNilView = errors.New("shortestpath: graph view is nil")

	// ErrNegativeWeight is returned by Dijkstra and AStar when a negative
	// edge weight is encountered during relaxation; their correctness
	// depends on non-negativity. Bellman-Ford and Floyd-Warshall tolerate
	// negative weights instead.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")
)

// Option configures shortest-path behavior via functional arguments.
type Option func(*Options)

// Options holds shared parameters for the shortest-path algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// WeightProp names the edge property weights are decoded from.
	WeightProp string
}

// DefaultOptions returns Options with a background context and the
// "weight" property.
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

// WithWeightProperty overrides the edge property weights are read from.
// An empty name has no effect.
func WithWeightProperty(prop string) Option {
	return func(o *Options) {
		if prop != "" {
			o.WeightProp = prop
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

// DistanceMap maps a node ID to its distance from the source. Only
// reachable nodes are present; the source maps to exactly 0.
type DistanceMap map[string]float64

// PathResult is one shortest path between a source and a target: the total
// distance and the node sequence from source to target inclusive.
type PathResult struct {
	Distance float64
	Path     []string
}

// BellmanFordResult carries single-source distances plus the
// negative-cycle verdict. When HasNegativeCycle is true, nodes whose
// distance is corrupted by a cycle are present with math.Inf(-1).
type BellmanFordResult struct {
	Distances        DistanceMap
	HasNegativeCycle bool
}

// FloydWarshallResult carries all-pairs distances: Distances[u][v] is the
// shortest distance u→v, present only when v is reachable from u.
type FloydWarshallResult struct {
	Distances        map[string]DistanceMap
	HasNegativeCycle bool
}
