package traversal

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// dfsWalker encapsulates mutable DFS state for one call.
type dfsWalker struct {
	view lpg.View
	opts Options
	res  *Result
}

// DFS performs depth-first search over outgoing edges from start.
// The visiting order is not contractually specified beyond completeness:
// every node reachable from start appears in the result exactly once.
//
// Returns ErrNilView or lpg.ErrNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E). Memory: O(V) for the recursion stack and maps.
func DFS(v lpg.View, start string, opts ...Option) (*Result, error) {
	w, err := newDFSWalker(v, opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", lpg.ErrNodeNotFound, start)
	}
	if err = w.visit(start, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// DFSAll runs DFS from every unvisited node in ascending ID order, visiting
// the whole snapshot. Each restart roots a new DFS tree: tree roots are
// absent from Parent and have Depth 0.
func DFSAll(v lpg.View, opts ...Option) (*Result, error) {
	w, err := newDFSWalker(v, opts)
	if err != nil {
		return nil, err
	}
	for _, id := range v.NodeIDs() {
		if w.res.Visited(id) {
			continue
		}
		if err = w.visit(id, 0); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

func newDFSWalker(v lpg.View, opts []Option) (*dfsWalker, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := v.NodeCount()

	return &dfsWalker{
		view: v,
		opts: o,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}, nil
}

// visit explores id pre-order, recursing into unseen outgoing neighbors.
func (w *dfsWalker) visit(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("traversal: OnVisit at %q: %w", id, err)
	}

	if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
		return nil
	}

	arcs, err := w.view.Neighbors(id, lpg.DirOut)
	if err != nil {
		return fmt.Errorf("traversal: neighbors of %q: %w", id, err)
	}
	for _, arc := range arcs {
		if !w.opts.FilterNeighbor(id, arc.Neighbor) {
			continue
		}
		if w.res.Visited(arc.Neighbor) {
			continue
		}
		w.res.Parent[arc.Neighbor] = id
		if err = w.visit(arc.Neighbor, depth+1); err != nil {
			return err
		}
	}

	return nil
}
