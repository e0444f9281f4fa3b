package community

import (
	"github.com/StevenBtw/graphos/lpg"
)

// LabelPropagation assigns every node its own ID as the initial label, then
// sweeps nodes in ascending ID order, each adopting the most frequent label
// among its undirected neighbors. Ties are broken by the smallest label.
// Sweeping stops when a full sweep changes nothing or after Options.MaxSweeps.
//
// Complexity: O(S·(V+E)) for S sweeps. Memory: O(V+E).
func LabelPropagation(v lpg.View, opts ...Option) (*CommunityResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ids := v.NodeIDs()
	adj := undirectedAdjacency(v)

	comm := make(map[string]string, len(ids))
	for _, id := range ids {
		comm[id] = id
	}

	for sweep := 0; sweep < o.MaxSweeps; sweep++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		changed := false
		for _, u := range ids {
			best, ok := majorityLabel(adj[u], comm)
			if ok && best != comm[u] {
				comm[u] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	assignment, n := denseAssignment(ids, comm)

	return &CommunityResult{
		Assignment:     assignment,
		NumCommunities: n,
		Modularity:     modularityOf(adj, comm),
	}, nil
}

// majorityLabel returns the most frequent label among the weighted
// neighbors, smallest label on a tie. ok is false for isolated nodes.
func majorityLabel(nbrs map[string]float64, comm map[string]string) (string, bool) {
	if len(nbrs) == 0 {
		return "", false
	}
	freq := make(map[string]float64, len(nbrs))
	for v, w := range nbrs {
		freq[comm[v]] += w
	}

	var best string
	bestW := -1.0
	for label, w := range freq {
		if w > bestW || (w == bestW && label < best) {
			best, bestW = label, w
		}
	}

	return best, true
}
