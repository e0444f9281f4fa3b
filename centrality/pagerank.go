package centrality

import (
	"fmt"
	"math"

	"github.com/StevenBtw/graphos/lpg"
)

// PageRank runs power iteration over the snapshot's transition structure
// with uniform teleportation probability (1-damping)/N.
//
// Dangling nodes (zero out-degree) distribute their mass uniformly over all
// nodes each iteration — the standard dangling-node fix that keeps the
// score total at 1.0 within 0.01 for any non-empty graph. The iteration
// stops at convergence (L1 change below 1e-6) or at the cap, whichever
// comes first; exhausting the cap returns the last iterate, never an error.
//
// Complexity: O(iterations · (V + E)). Memory: O(V + E).
func PageRank(v lpg.View, opts ...Option) (ScoreMap, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ids := v.NodeIDs()
	n := len(ids)
	if n == 0 {
		return ScoreMap{}, nil
	}

	// Snapshot the out-adjacency once: successors per node, multi-edges
	// counted individually so parallel edges split the mass evenly.
	succ := make(map[string][]string, n)
	for _, id := range ids {
		arcs, errNb := v.Neighbors(id, lpg.DirOut)
		if errNb != nil {
			return nil, fmt.Errorf("centrality: neighbors of %q: %w", id, errNb)
		}
		targets := make([]string, len(arcs))
		for i, arc := range arcs {
			targets[i] = arc.Neighbor
		}
		succ[id] = targets
	}

	invN := 1.0 / float64(n)
	rank := make(ScoreMap, n)
	for _, id := range ids {
		rank[id] = invN
	}

	next := make(ScoreMap, n)
	for iter := 0; iter < o.MaxIterations; iter++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Mass parked on dangling nodes is spread uniformly.
		var dangling float64
		for _, id := range ids {
			if len(succ[id]) == 0 {
				dangling += rank[id]
			}
		}

		base := (1-o.Damping)*invN + o.Damping*dangling*invN
		for _, id := range ids {
			next[id] = base
		}
		for _, id := range ids {
			out := succ[id]
			if len(out) == 0 {
				continue
			}
			share := o.Damping * rank[id] / float64(len(out))
			for _, t := range out {
				next[t] += share
			}
		}

		var delta float64
		for _, id := range ids {
			delta += math.Abs(next[id] - rank[id])
		}
		rank, next = next, rank
		if delta < convergenceTol {
			break
		}
	}

	return rank, nil
}
