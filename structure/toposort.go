package structure

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// Node colors for the topological DFS.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// topoSorter carries the DFS state for one TopologicalSort call.
type topoSorter struct {
	view  lpg.View
	opts  Options
	state map[string]int
	order []string
}

// TopologicalSort returns a total order consistent with every directed
// edge when the snapshot is acyclic: (order, true, nil). When a cycle
// exists it returns (nil, false, nil) — no order is a normal domain
// outcome, distinguishable from an empty graph's (empty, true, nil).
//
// Roots are explored in ascending node-ID order, making the order
// deterministic. Complexity: O(V + E).
func TopologicalSort(v lpg.View, opts ...Option) ([]string, bool, error) {
	if v == nil {
		return nil, false, ErrNilView
	}

	ids := v.NodeIDs()
	t := &topoSorter{
		view:  v,
		opts:  buildOptions(opts),
		state: make(map[string]int, len(ids)),
		order: make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		if t.state[id] != white {
			continue
		}
		acyclic, err := t.visit(id)
		if err != nil {
			return nil, false, err
		}
		if !acyclic {
			return nil, false, nil
		}
	}

	// reverse the post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, true, nil
}

// visit explores u depth-first; a gray→gray edge is a back edge, i.e. a
// cycle. Returns acyclic=false without error in that case.
func (t *topoSorter) visit(u string) (bool, error) {
	select {
	case <-t.opts.Ctx.Done():
		return false, t.opts.Ctx.Err()
	default:
	}

	t.state[u] = gray
	arcs, err := t.view.Neighbors(u, lpg.DirOut)
	if err != nil {
		return false, fmt.Errorf("structure: neighbors of %q: %w", u, err)
	}
	for _, arc := range arcs {
		switch t.state[arc.Neighbor] {
		case gray:
			return false, nil
		case white:
			acyclic, errVisit := t.visit(arc.Neighbor)
			if errVisit != nil || !acyclic {
				return acyclic, errVisit
			}
		}
	}
	t.state[u] = black
	t.order = append(t.order, u)

	return true, nil
}
