package builder

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrTooFewNodes indicates a constructor received a node count below
	// its topological minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability outside [0,1]")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("builder: invalid option value")
)

// DefaultSeed freezes stochastic constructors unless WithSeed overrides it.
const DefaultSeed int64 = 1

// Option adjusts the resolved builder configuration.
type Option func(*config)

// config is resolved once per BuildGraph call and shared by every
// constructor in that call.
type config struct {
	rng        *rand.Rand
	idFn       func(i int) string
	edgeType   string
	weightProp string
	wMin, wMax float64

	err error
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		idFn:     func(i int) string { return fmt.Sprintf("n%03d", i) },
		edgeType: "EDGE",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// WithSeed freezes the random source used for weights and stochastic
// topologies.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDScheme overrides how node indexes map to node IDs.
func WithIDScheme(fn func(i int) string) Option {
	return func(c *config) {
		if fn == nil {
			c.err = ErrOptionViolation
			return
		}
		c.idFn = fn
	}
}

// WithEdgeType sets the type string stamped on every generated edge.
func WithEdgeType(t string) Option {
	return func(c *config) {
		if t == "" {
			c.err = ErrOptionViolation
			return
		}
		c.edgeType = t
	}
}

// WithWeights stores a uniform random weight in [min, max) under prop on
// every generated edge. Without it, edges carry no properties.
func WithWeights(prop string, min, max float64) Option {
	return func(c *config) {
		if prop == "" || max < min {
			c.err = ErrOptionViolation
			return
		}
		c.weightProp = prop
		c.wMin, c.wMax = min, max
	}
}
