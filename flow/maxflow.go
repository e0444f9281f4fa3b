package flow

import (
	"fmt"
	"math"

	"github.com/StevenBtw/graphos/lpg"
)

// MaxFlow computes the maximum source→sink flow with Edmonds–Karp. Unknown
// endpoints surface lpg.ErrNodeNotFound; a source equal to the sink carries
// no flow and returns 0.
func MaxFlow(v lpg.View, source, sink string, opts ...Option) (*MaxFlowResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", lpg.ErrNodeNotFound, source)
	}
	if !v.HasNode(sink) {
		return nil, fmt.Errorf("%w: sink %q", lpg.ErrNodeNotFound, sink)
	}

	residual, err := buildResidual(v, o.CapacityProp)
	if err != nil {
		return nil, err
	}
	res := &MaxFlowResult{Residual: residual}
	if source == sink {
		return res, nil
	}

	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		parent := shortestAugmentingPath(residual, source, sink)
		if parent == nil {
			break
		}

		// bottleneck along the path
		bottle := math.Inf(1)
		for u := sink; u != source; u = parent[u] {
			if c := residual[parent[u]][u]; c < bottle {
				bottle = c
			}
		}

		for u := sink; u != source; u = parent[u] {
			p := parent[u]
			residual[p][u] -= bottle
			if residual[u] == nil {
				residual[u] = make(map[string]float64)
			}
			residual[u][p] += bottle
		}
		res.Value += bottle
	}

	return res, nil
}

// buildResidual decodes every capacity up front, summing parallel edges and
// skipping self-loops. Iteration order over the residual map does not affect
// the flow value, only which of several equal-value flows is produced.
func buildResidual(v lpg.View, prop string) (map[string]map[string]float64, error) {
	residual := make(map[string]map[string]float64, v.NodeCount())
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		c, err := e.Weight(prop)
		if err != nil {
			return nil, fmt.Errorf("flow: %w", err)
		}
		if c < 0 {
			return nil, fmt.Errorf("%w: %v on edge %s", ErrNegativeCapacity, c, e.ID)
		}
		if residual[e.From] == nil {
			residual[e.From] = make(map[string]float64)
		}
		residual[e.From][e.To] += c
	}

	return residual, nil
}

// shortestAugmentingPath runs BFS over positive residual arcs and returns
// the parent map of a source→sink path, or nil when the sink is unreachable.
func shortestAugmentingPath(residual map[string]map[string]float64, source, sink string) map[string]string {
	parent := map[string]string{source: source}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for nbr, c := range residual[u] {
			if c <= epsilon {
				continue
			}
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = u
			if nbr == sink {
				return parent
			}
			queue = append(queue, nbr)
		}
	}

	return nil
}
