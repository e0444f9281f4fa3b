package mst

import (
	"container/heap"

	"github.com/StevenBtw/graphos/lpg"
)

// Prim grows a minimum spanning tree from a priority queue of frontier
// edges, restarting from every still-unvisited node in ascending ID order so
// a disconnected snapshot yields a forest. Weight ties resolve in snapshot
// insertion order.
//
// Complexity: O(E log E). Memory: O(V + E).
func Prim(v lpg.View, opts ...Option) (*MSTResult, error) {
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

	// undirected incidence: each edge is reachable from both endpoints
	incident := make(map[string][]frontierEdge, v.NodeCount())
	for i, e := range cands {
		fe := frontierEdge{edge: e, seq: i}
		fe.attach = e.To
		incident[e.From] = append(incident[e.From], fe)
		fe.attach = e.From
		incident[e.To] = append(incident[e.To], fe)
	}

	visited := make(map[string]bool, v.NodeCount())
	res := &MSTResult{}
	pq := &edgePQ{}

	grow := func(start string) error {
		visited[start] = true
		*pq = (*pq)[:0]
		for _, fe := range incident[start] {
			heap.Push(pq, fe)
		}
		for pq.Len() > 0 {
			select {
			case <-o.Ctx.Done():
				return o.Ctx.Err()
			default:
			}

			fe := heap.Pop(pq).(frontierEdge)
			if visited[fe.attach] {
				continue
			}
			visited[fe.attach] = true
			res.Edges = append(res.Edges, fe.edge)
			res.TotalWeight += fe.edge.Weight
			for _, next := range incident[fe.attach] {
				if !visited[next.attach] {
					heap.Push(pq, next)
				}
			}
		}

		return nil
	}

	for _, id := range v.NodeIDs() {
		if visited[id] {
			continue
		}
		if err := grow(id); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// frontierEdge is a candidate edge on the tree boundary; attach is the
// endpoint not yet in the tree when the entry was pushed.
type frontierEdge struct {
	edge   MSTEdge
	attach string
	seq    int
}

// edgePQ is a min-heap of frontier edges keyed by weight, with the snapshot
// sequence number as the tie-breaker.
type edgePQ []frontierEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}
	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
