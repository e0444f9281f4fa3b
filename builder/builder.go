package builder

import (
	"errors"
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// Constructor applies one deterministic topology to the graph under the
// resolved configuration. Constructors validate early, return sentinel
// errors, and never panic.
type Constructor func(g *lpg.Graph, cfg config) error

// BuildGraph creates a fresh snapshot, resolves opts, and applies every
// constructor in order. The first constructor error aborts the build.
func BuildGraph(opts []Option, cons ...Constructor) (*lpg.Graph, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	g := lpg.New()
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return g, nil
}

// Path builds the simple path 0 → 1 → ... → n-1. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *lpg.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: path needs 2, got %d", ErrTooFewNodes, n)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the directed cycle 0 → 1 → ... → n-1 → 0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *lpg.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs 3, got %d", ErrTooFewNodes, n)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds edges from the node at index center to the next leaves
// indexes. Requires leaves ≥ 1.
func Star(center, leaves int) Constructor {
	return func(g *lpg.Graph, cfg config) error {
		if leaves < 1 {
			return fmt.Errorf("%w: star needs 1 leaf, got %d", ErrTooFewNodes, leaves)
		}
		if err := ensureNode(g, cfg.idFn(center)); err != nil {
			return err
		}
		for i := center + 1; i <= center+leaves; i++ {
			if err := ensureNode(g, cfg.idFn(i)); err != nil {
				return err
			}
			if err := addEdge(g, cfg, center, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with one edge per unordered pair, oriented from the
// smaller index. Requires n ≥ 2.
func Complete(n int) Constructor {
	return func(g *lpg.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: complete graph needs 2, got %d", ErrTooFewNodes, n)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi style graph: every unordered pair
// gains an edge with probability p, drawn from the seeded generator.
func RandomSparse(n int, p float64) Constructor {
	return func(g *lpg.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: random graph needs 2, got %d", ErrTooFewNodes, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err := addEdge(g, cfg, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// ensureNode tolerates nodes added by an earlier constructor in the same
// build, so topologies compose.
func ensureNode(g *lpg.Graph, id string) error {
	err := g.AddNode(id, []string{"Node"}, nil)
	if err != nil && !errors.Is(err, lpg.ErrDuplicateNode) {
		return err
	}

	return nil
}

func addEdge(g *lpg.Graph, cfg config, from, to int) error {
	var props map[string]lpg.Value
	if cfg.weightProp != "" {
		w := cfg.wMin + cfg.rng.Float64()*(cfg.wMax-cfg.wMin)
		props = map[string]lpg.Value{cfg.weightProp: lpg.Float(w)}
	}
	_, err := g.AddEdge(cfg.idFn(from), cfg.idFn(to), cfg.edgeType, props)

	return err
}
