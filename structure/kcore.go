package structure

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// KCore computes the k-core decomposition by iterative peeling: nodes with
// undirected degree below the current threshold are removed (cascading),
// and a node's core number is the highest threshold at which it survives.
// Self-loops do not contribute to degree. MaxCore is the largest k whose
// core subgraph is non-empty; 0 for an empty snapshot.
//
// Complexity: O(V + E) amortized over the peeling. Memory: O(V + E).
func KCore(v lpg.View, opts ...Option) (*KCoreResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o := buildOptions(opts)

	ids := v.NodeIDs()
	degree := make(map[string]int, len(ids))
	adj := make(map[string][]string, len(ids))
	for _, id := range ids {
		arcs, err := v.Neighbors(id, lpg.DirBoth)
		if err != nil {
			return nil, fmt.Errorf("structure: neighbors of %q: %w", id, err)
		}
		for _, arc := range arcs {
			if arc.Neighbor == id {
				continue
			}
			adj[id] = append(adj[id], arc.Neighbor)
		}
		degree[id] = len(adj[id])
	}

	res := &KCoreResult{CoreNumbers: make(map[string]int, len(ids))}
	remaining := make(map[string]bool, len(ids))
	for _, id := range ids {
		remaining[id] = true
	}

	k := 0
	for len(remaining) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// raise the threshold to the smallest remaining degree
		minDeg := -1
		for id := range remaining {
			if minDeg < 0 || degree[id] < minDeg {
				minDeg = degree[id]
			}
		}
		if minDeg > k {
			k = minDeg
		}

		// peel everything at or below the threshold, cascading
		var queue []string
		for _, id := range ids {
			if remaining[id] && degree[id] <= k {
				queue = append(queue, id)
			}
		}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if !remaining[u] {
				continue
			}
			delete(remaining, u)
			res.CoreNumbers[u] = k
			for _, w := range adj[u] {
				if !remaining[w] {
					continue
				}
				degree[w]--
				if degree[w] <= k {
					queue = append(queue, w)
				}
			}
		}
	}
	res.MaxCore = k

	return res, nil
}
