package traversal

import (
	"context"
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// bfsWalker encapsulates mutable BFS state for one call.
type bfsWalker struct {
	view    lpg.View
	opts    Options
	ctx     context.Context
	queue   []queueItem
	res     *Result
	layered bool
	layers  [][]string
}

// BFS runs breadth-first search over outgoing edges from start, applying
// any number of functional Options. The start node is always included,
// even with zero outgoing edges.
//
// Returns ErrNilView or lpg.ErrNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(V + E). Memory: O(V).
func BFS(v lpg.View, start string, opts ...Option) (*Result, error) {
	w, err := newBFSWalker(v, start, opts)
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// BFSLayers runs BFS and returns the visited nodes grouped by the hop
// distance at which they were first reached: layer 0 = {start}, layer k =
// nodes first discovered at depth k. Terminates when no new nodes are
// discovered. Same error policy as BFS.
func BFSLayers(v lpg.View, start string, opts ...Option) ([][]string, error) {
	w, err := newBFSWalker(v, start, opts)
	if err != nil {
		return nil, err
	}
	w.layered = true
	w.layers = [][]string{{start}}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.layers, nil
}

// newBFSWalker validates inputs, builds options, and seeds the queue.
func newBFSWalker(v lpg.View, start string, opts []Option) (*bfsWalker, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", lpg.ErrNodeNotFound, start)
	}

	n := v.NodeCount()
	w := &bfsWalker{
		view: v,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	return w, nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("traversal: OnVisit at %q: %w", item.id, err)
		}

		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues the unseen outgoing neighbors of item, applying the
// neighbor filter and depth limit.
func (w *bfsWalker) expand(item queueItem) error {
	arcs, err := w.view.Neighbors(item.id, lpg.DirOut)
	if err != nil {
		return fmt.Errorf("traversal: neighbors of %q: %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, arc := range arcs {
		if !w.opts.FilterNeighbor(item.id, arc.Neighbor) {
			continue
		}
		if _, seen := w.res.Depth[arc.Neighbor]; seen {
			continue
		}
		w.res.Depth[arc.Neighbor] = nextDepth
		w.res.Parent[arc.Neighbor] = item.id
		w.queue = append(w.queue, queueItem{id: arc.Neighbor, depth: nextDepth})
		if w.layered {
			if len(w.layers) == nextDepth {
				w.layers = append(w.layers, nil)
			}
			w.layers[nextDepth] = append(w.layers[nextDepth], arc.Neighbor)
		}
	}

	return nil
}
