package mst

import (
	"fmt"
	"sort"

	"github.com/StevenBtw/graphos/lpg"
	"github.com/StevenBtw/graphos/structure"
)

// Kruskal selects a minimum spanning forest by scanning edges in ascending
// weight order and keeping each edge whose endpoints are still in different
// union-find sets. The sort is stable, so ties resolve in snapshot insertion
// order.
//
// Complexity: O(E log E). Memory: O(V + E).
func Kruskal(v lpg.View, opts ...Option) (*MSTResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	cands, err := collectWeighted(v, o.WeightProp)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Weight < cands[j].Weight
	})

	uf := structure.NewUnionFind(v.NodeIDs())
	res := &MSTResult{}
	for _, e := range cands {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if uf.Union(e.From, e.To) {
			res.Edges = append(res.Edges, e)
			res.TotalWeight += e.Weight
		}
	}

	return res, nil
}

// collectWeighted decodes every non-loop edge of the snapshot up front so a
// bad weight fails the call before any edge is selected.
func collectWeighted(v lpg.View, prop string) ([]MSTEdge, error) {
	edges := v.Edges()
	cands := make([]MSTEdge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		w, err := e.Weight(prop)
		if err != nil {
			return nil, fmt.Errorf("mst: %w", err)
		}
		cands = append(cands, MSTEdge{From: e.From, To: e.To, Weight: w})
	}

	return cands, nil
}
