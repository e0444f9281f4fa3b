package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// Dijkstra computes shortest distances from source to every reachable node
// over outgoing edges, reading weights from the configured edge property.
//
// Returns a DistanceMap with dist[source] == 0 and reachable nodes only.
// Fails with lpg.ErrNodeNotFound for an unknown source, ErrNegativeWeight
// the moment a negative weight is touched during relaxation, and
// lpg.ErrMissingWeight / lpg.ErrNonNumericWeight for undecodable weights.
//
// Complexity: O((V + E) log V) with a lazy-decrease-key min-heap.
// Memory: O(V + E).
func Dijkstra(v lpg.View, source string, opts ...Option) (DistanceMap, error) {
	r, err := newRunner(v, source, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// DijkstraPath computes one shortest path from source to target, stopping
// as soon as the target's distance is finalized. Returns (nil, nil) when
// the target is unreachable: "no path" is a domain result, not an error.
// When ties exist, any path whose length equals the minimum is returned.
func DijkstraPath(v lpg.View, source, target string, opts ...Option) (*PathResult, error) {
	r, err := newRunner(v, source, opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(target) {
		return nil, fmt.Errorf("%w: target %q", lpg.ErrNodeNotFound, target)
	}
	r.target = target
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.pathResult()
}

// AStar computes one shortest path from source to target, ordering the
// frontier by dist + heuristic(node). The heuristic must be admissible
// (never overestimate the remaining distance) for the result to be optimal;
// a nil heuristic degenerates to DijkstraPath. Same error and no-result
// policy as DijkstraPath.
func AStar(v lpg.View, source, target string, heuristic func(id string) float64, opts ...Option) (*PathResult, error) {
	r, err := newRunner(v, source, opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(target) {
		return nil, fmt.Errorf("%w: target %q", lpg.ErrNodeNotFound, target)
	}
	r.target = target
	r.heuristic = heuristic
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.pathResult()
}

// runner holds the mutable state for a single Dijkstra/AStar execution.
type runner struct {
	view      lpg.View
	opts      Options
	source    string
	target    string              // empty when computing all distances
	heuristic func(string) float64 // nil outside AStar

	dist    DistanceMap       // node ID → best known distance
	prev    map[string]string // node ID → predecessor on the best path
	visited map[string]bool   // distance finalized
	pq      nodePQ
}

// newRunner validates inputs and seeds the heap with the source at 0.
func newRunner(v lpg.View, source string, opts []Option) (*runner, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if !v.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", lpg.ErrNodeNotFound, source)
	}

	n := v.NodeCount()
	r := &runner{
		view:    v,
		opts:    buildOptions(opts),
		source:  source,
		dist:    make(DistanceMap, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source})

	return r, nil
}

// process pops nodes in increasing priority and relaxes their outgoing
// arcs. Stops when the heap drains or the target is finalized.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			// stale lazy-decrease-key entry
			continue
		}
		r.visited[item.id] = true

		if r.target != "" && item.id == r.target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every outgoing neighbor of u.
func (r *runner) relax(u string) error {
	arcs, err := r.view.Neighbors(u, lpg.DirOut)
	if err != nil {
		return fmt.Errorf("shortestpath: neighbors of %q: %w", u, err)
	}

	for _, arc := range arcs {
		w, err := arc.Weight(r.opts.WeightProp)
		if err != nil {
			return err
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s (%s→%s) weight=%g",
				ErrNegativeWeight, arc.EdgeID, u, arc.Neighbor, w)
		}

		newDist := r.dist[u] + w
		if cur, seen := r.dist[arc.Neighbor]; seen && newDist >= cur {
			continue
		}
		r.dist[arc.Neighbor] = newDist
		r.prev[arc.Neighbor] = u

		priority := newDist
		if r.heuristic != nil {
			priority += r.heuristic(arc.Neighbor)
		}
		heap.Push(&r.pq, &nodeItem{id: arc.Neighbor, priority: priority})
	}

	return nil
}

// pathResult reconstructs source→target from the predecessor links.
func (r *runner) pathResult() (*PathResult, error) {
	if !r.visited[r.target] {
		// unreachable target: no result, no error
		return nil, nil
	}

	path := []string{r.target}
	for cur := r.target; cur != r.source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &PathResult{Distance: r.dist[r.target], Path: path}, nil
}

// nodeItem is one heap entry: a node and its queue priority (distance, or
// distance + heuristic for AStar).
type nodeItem struct {
	id       string
	priority float64
}

// nodePQ is a min-heap of *nodeItem under the lazy-decrease-key strategy:
// improved distances push duplicates, stale entries are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
