package centrality

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
	"github.com/StevenBtw/graphos/traversal"
)

// Closeness computes closeness centrality: the reciprocal of the average
// hop distance from a node to every node it can reach over outgoing edges.
// A node reaching k nodes (itself excluded) at total distance s scores k/s.
//
// Policy: nodes with no outgoing reachability score 0. This is a documented
// choice, not an error; it keeps the full snapshot covered.
//
// Complexity: O(V·(V+E)) — one BFS per node.
func Closeness(v lpg.View, opts ...Option) (ScoreMap, error) {
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
		res, errBFS := traversal.BFS(v, id, traversal.WithContext(o.Ctx))
		if errBFS != nil {
			return nil, fmt.Errorf("centrality: closeness from %q: %w", id, errBFS)
		}

		var total int
		for _, d := range res.Depth {
			total += d
		}
		reached := res.Len() - 1 // exclude the node itself
		if reached <= 0 || total == 0 {
			scores[id] = 0

			continue
		}
		scores[id] = float64(reached) / float64(total)
	}

	return scores, nil
}
