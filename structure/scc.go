package structure

import (
	"fmt"

	"github.com/StevenBtw/graphos/lpg"
)

// sccState carries Tarjan's bookkeeping for one call.
type sccState struct {
	view    lpg.View
	opts    Options
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	counter int
	groups  [][]string
}

// StronglyConnectedComponents partitions the snapshot under directed
// mutual reachability using Tarjan's algorithm. Every node belongs to
// exactly one group, including size-1 groups for nodes outside any cycle.
// Roots are explored in ascending node-ID order, so the grouping is
// deterministic; groups are emitted in reverse topological order of the
// condensation.
//
// Complexity: O(V + E). Memory: O(V).
func StronglyConnectedComponents(v lpg.View, opts ...Option) ([][]string, error) {
	if v == nil {
		return nil, ErrNilView
	}

	ids := v.NodeIDs()
	s := &sccState{
		view:    v,
		opts:    buildOptions(opts),
		index:   make(map[string]int, len(ids)),
		lowlink: make(map[string]int, len(ids)),
		onStack: make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		if _, visited := s.index[id]; !visited {
			if err := s.strongconnect(id); err != nil {
				return nil, err
			}
		}
	}

	return s.groups, nil
}

// strongconnect is the classic recursive step: assign discovery index and
// low-link, recurse into unvisited successors, and pop a completed root's
// stack segment as one component.
func (s *sccState) strongconnect(u string) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	s.index[u] = s.counter
	s.lowlink[u] = s.counter
	s.counter++
	s.stack = append(s.stack, u)
	s.onStack[u] = true

	arcs, err := s.view.Neighbors(u, lpg.DirOut)
	if err != nil {
		return fmt.Errorf("structure: neighbors of %q: %w", u, err)
	}
	for _, arc := range arcs {
		w := arc.Neighbor
		if _, visited := s.index[w]; !visited {
			if err = s.strongconnect(w); err != nil {
				return err
			}
			if s.lowlink[w] < s.lowlink[u] {
				s.lowlink[u] = s.lowlink[w]
			}
		} else if s.onStack[w] && s.index[w] < s.lowlink[u] {
			s.lowlink[u] = s.index[w]
		}
	}

	if s.lowlink[u] == s.index[u] {
		var group []string
		for {
			top := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			s.onStack[top] = false
			group = append(group, top)
			if top == u {
				break
			}
		}
		s.groups = append(s.groups, group)
	}

	return nil
}

// IsDAG reports whether the snapshot contains no directed cycle:
// equivalently, every strongly connected component is a singleton and no
// self-loop exists.
func IsDAG(v lpg.View, opts ...Option) (bool, error) {
	if v == nil {
		return false, ErrNilView
	}
	for _, e := range v.Edges() {
		if e.From == e.To {
			return false, nil
		}
	}

	groups, err := StronglyConnectedComponents(v, opts...)
	if err != nil {
		return false, err
	}
	for _, group := range groups {
		if len(group) > 1 {
			return false, nil
		}
	}

	return true, nil
}
