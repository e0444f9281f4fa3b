package shortestpath

import (
	"fmt"
	"math"

	"github.com/StevenBtw/graphos/lpg"
)

// BellmanFord computes single-source shortest distances over outgoing
// edges, tolerating negative weights; this is its reason for existing
// alongside Dijkstra.
//
// It runs |V|-1 relaxation rounds over the full edge list, then one
// verification round. If any edge can still be relaxed, the result is
// flagged HasNegativeCycle and every node downstream of a relaxable edge
// keeps math.Inf(-1) as a sentinel distance: present, numeric, and
// unmistakably not a meaningful distance.
//
// The weight property is read per edge (lpg.ErrMissingWeight /
// lpg.ErrNonNumericWeight abort the call). Unreachable nodes are absent
// from the result. Complexity: O(V·E). Memory: O(V + E).
func BellmanFord(v lpg.View, source, weightProp string, opts ...Option) (*BellmanFordResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if !v.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", lpg.ErrNodeNotFound, source)
	}

	o := buildOptions(opts)
	if weightProp == "" {
		weightProp = o.WeightProp
	}

	// Decode every weight once up front; the relaxation rounds then touch
	// plain float64s.
	edges := v.Edges()
	weights := make([]float64, len(edges))
	for i, e := range edges {
		w, err := e.Weight(weightProp)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}

	n := v.NodeCount()
	dist := make(DistanceMap, n)
	dist[source] = 0

	// |V|-1 relaxation rounds. Stop early when a full round changes nothing.
	for round := 1; round < n; round++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		changed := false
		for i, e := range edges {
			du, ok := dist[e.From]
			if !ok {
				continue
			}
			if dv, seen := dist[e.To]; !seen || du+weights[i] < dv {
				dist[e.To] = du + weights[i]
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Verification round: any still-relaxable edge sits on (or behind) a
	// negative cycle. Collect the heads of such edges.
	var tainted []string
	for i, e := range edges {
		du, ok := dist[e.From]
		if !ok {
			continue
		}
		if dv, seen := dist[e.To]; !seen || du+weights[i] < dv {
			tainted = append(tainted, e.To)
		}
	}

	res := &BellmanFordResult{Distances: dist, HasNegativeCycle: len(tainted) > 0}
	if res.HasNegativeCycle {
		poisonDownstream(v, tainted, dist)
	}

	return res, nil
}

// poisonDownstream walks outgoing edges from every tainted node and pins
// all reachable distances to -Inf, since a negative cycle makes them
// arbitrarily small.
func poisonDownstream(v lpg.View, tainted []string, dist DistanceMap) {
	inf := math.Inf(-1)
	queue := append([]string(nil), tainted...)
	seen := make(map[string]bool, len(tainted))
	for _, id := range tainted {
		seen[id] = true
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		dist[u] = inf
		arcs, err := v.Neighbors(u, lpg.DirOut)
		if err != nil {
			// u came from the edge list, so it exists; nothing to do here.
			continue
		}
		for _, arc := range arcs {
			if !seen[arc.Neighbor] {
				seen[arc.Neighbor] = true
				queue = append(queue, arc.Neighbor)
			}
		}
	}
}
