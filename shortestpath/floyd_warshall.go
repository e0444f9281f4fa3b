package shortestpath

import (
	"math"

	"github.com/StevenBtw/graphos/lpg"
)

// FloydWarshall computes all-pairs shortest distances over outgoing edges.
// Negative weights are tolerated; a negative value on the diagonal after
// the final pass flags a negative cycle. Parallel edges contribute their
// minimum weight.
//
// The result maps each source to a DistanceMap of its reachable nodes
// (dist[u][u] == 0 for every node unless a negative cycle runs through u).
//
// Complexity: O(V³). Memory: O(V²). Intended for the small-to-medium
// snapshots the conformance suites use; prefer repeated Dijkstra on large
// sparse graphs.
func FloydWarshall(v lpg.View, opts ...Option) (*FloydWarshallResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o := buildOptions(opts)

	ids := v.NodeIDs()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Dense matrix initialized to +Inf, 0 on the diagonal.
	inf := math.Inf(1)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = inf
		}
		dist[i][i] = 0
	}
	for _, e := range v.Edges() {
		w, err := e.Weight(o.WeightProp)
		if err != nil {
			return nil, err
		}
		i, j := index[e.From], index[e.To]
		if w < dist[i][j] {
			dist[i][j] = w
		}
	}

	for k := 0; k < n; k++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if d := dik + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}

	res := &FloydWarshallResult{Distances: make(map[string]DistanceMap, n)}
	for i, u := range ids {
		if dist[i][i] < 0 {
			res.HasNegativeCycle = true
		}
		dm := make(DistanceMap)
		for j, w := range ids {
			if !math.IsInf(dist[i][j], 1) {
				dm[w] = dist[i][j]
			}
		}
		res.Distances[u] = dm
	}

	return res, nil
}
