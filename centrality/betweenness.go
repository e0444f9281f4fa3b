package centrality

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// Betweenness computes betweenness centrality via Brandes' algorithm:
// one unweighted BFS per source plus reverse dependency accumulation.
// The score of a node is the sum over all node pairs (s,t) of the fraction
// of shortest s→t paths that pass through it; endpoints of a path do not
// count as passing through themselves.
//
// Scores are raw by default; WithNormalized divides by (n-1)(n-2), the
// number of ordered pairs a directed path can have as endpoints.
//
// Complexity: O(V·E). Memory: O(V + E).
func Betweenness(v lpg.View, opts ...Option) (ScoreMap, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ids := v.NodeIDs()
	scores := make(ScoreMap, len(ids))
	for _, id := range ids {
		scores[id] = 0
	}

	// Per-source state, reused across sources.
	sigma := make(map[string]float64, len(ids))   // number of shortest paths s→v
	dist := make(map[string]int, len(ids))        // hop distance s→v
	preds := make(map[string][]string, len(ids))  // predecessors on shortest paths
	delta := make(map[string]float64, len(ids))   // accumulated dependency

	for _, s := range ids {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		clear(sigma)
		clear(dist)
		clear(preds)
		clear(delta)

		// BFS from s counting shortest paths.
		stack := make([]string, 0, len(ids)) // nodes in nondecreasing distance
		sigma[s] = 1
		dist[s] = 0
		queue := []string{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			stack = append(stack, u)

			arcs, errNb := v.Neighbors(u, lpg.DirOut)
			if errNb != nil {
				return nil, fmt.Errorf("centrality: neighbors of %q: %w", u, errNb)
			}
			for _, arc := range arcs {
				w := arc.Neighbor
				if _, seen := dist[w]; !seen {
					dist[w] = dist[u] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[u]+1 {
					sigma[w] += sigma[u]
					preds[w] = append(preds[w], u)
				}
			}
		}

		// Accumulate dependencies in reverse BFS order.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			coeff := (1 + delta[w]) / sigma[w]
			for _, u := range preds[w] {
				delta[u] += sigma[u] * coeff
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	if o.Normalized {
		n := float64(len(ids))
		if norm := (n - 1) * (n - 2); norm > 0 {
			for id := range scores {
				scores[id] /= norm
			}
		}
	}

	return scores, nil
}
