package centrality

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// Degree computes total degree centrality: out-degree plus in-degree per
// node, a self-loop contributing one to each. With WithNormalized, scores
// are divided by (node_count - 1) and clamped into [0,1]; a single-node
// graph defines the normalized score as 0.
//
// Every node in the snapshot is present in the result, isolated nodes with
// score 0. Complexity: O(V + E).
func Degree(v lpg.View, opts ...Option) (ScoreMap, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ids := v.NodeIDs()
	scores := make(ScoreMap, len(ids))
	n := len(ids)
	for _, id := range ids {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		arcs, err := v.Neighbors(id, lpg.DirBoth)
		if err != nil {
			return nil, fmt.Errorf("centrality: neighbors of %q: %w", id, err)
		}
		deg := float64(len(arcs))
		if o.Normalized {
			if n <= 1 {
				deg = 0
			} else {
				deg /= float64(n - 1)
				// multi-edges can push raw degree past n-1
				if deg > 1 {
					deg = 1
				}
			}
		}
		scores[id] = deg
	}

	return scores, nil
}
