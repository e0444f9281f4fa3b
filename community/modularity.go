package community

import "github.com/StevenBtw/graphos/lpg"

// undirectedAdjacency collapses the directed snapshot into a symmetric
// weighted adjacency map. Every edge contributes weight 1 in both
// directions, parallel edges accumulate, self-loops are dropped.
func undirectedAdjacency(v lpg.View) map[string]map[string]float64 {
	adj := make(map[string]map[string]float64, v.NodeCount())
	for _, id := range v.NodeIDs() {
		adj[id] = make(map[string]float64)
	}
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		adj[e.From][e.To]++
		adj[e.To][e.From]++
	}

	return adj
}

// modularityOf evaluates Newman modularity of a partition over the
// symmetric adjacency: Q = Σ_c [ in_c/(2m) − (tot_c/(2m))² ]. An edgeless
// graph has modularity 0.
func modularityOf(adj map[string]map[string]float64, comm map[string]string) float64 {
	var m2 float64 // 2m, the sum of all degrees
	deg := make(map[string]float64, len(adj))
	for u, nbrs := range adj {
		for _, w := range nbrs {
			deg[u] += w
		}
		m2 += deg[u]
	}
	if m2 == 0 {
		return 0
	}

	in := make(map[string]float64)
	tot := make(map[string]float64)
	for u, nbrs := range adj {
		tot[comm[u]] += deg[u]
		for v, w := range nbrs {
			if comm[u] == comm[v] {
				in[comm[u]] += w // counts each intra edge twice, once per endpoint
			}
		}
	}

	var q float64
	for c, t := range tot {
		q += in[c]/m2 - (t/m2)*(t/m2)
	}

	return q
}

// denseAssignment renumbers string community labels into dense integers,
// assigned in ascending order of each community's smallest member node ID.
func denseAssignment(ids []string, comm map[string]string) (map[string]int, int) {
	next := 0
	seen := make(map[string]int, len(comm))
	out := make(map[string]int, len(comm))
	for _, id := range ids {
		c, ok := seen[comm[id]]
		if !ok {
			c = next
			seen[comm[id]] = c
			next++
		}
		out[id] = c
	}

	return out, next
}
