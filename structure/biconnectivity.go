package structure

import (
	"fmt"
	"sort"

	"github.com/StevenBtw/graphos/lpg"
)

// biconnState carries the discovery/low-link DFS shared by
// ArticulationPoints and Bridges. Direction is ignored: the classic
// biconnectivity algorithm runs on the undirected view.
type biconnState struct {
	view  lpg.View
	opts  Options
	disc  map[string]int
	low   map[string]int
	timer int

	cutpoints map[string]bool
	bridges   []Bridge
}

// ArticulationPoints returns the nodes whose removal increases the number
// of connected components, in ascending ID order.
// Complexity: O(V + E).
func ArticulationPoints(v lpg.View, opts ...Option) ([]string, error) {
	s, err := runBiconnectivity(v, opts)
	if err != nil {
		return nil, err
	}

	points := make([]string, 0, len(s.cutpoints))
	for id := range s.cutpoints {
		points = append(points, id)
	}
	sort.Strings(points)

	return points, nil
}

// Bridges returns the undirected edges whose removal increases the number
// of connected components, sorted by endpoints. A pair joined by parallel
// edges has no bridge between them; self-loops are never bridges.
// Complexity: O(V + E).
func Bridges(v lpg.View, opts ...Option) ([]Bridge, error) {
	s, err := runBiconnectivity(v, opts)
	if err != nil {
		return nil, err
	}

	sort.Slice(s.bridges, func(i, j int) bool {
		if s.bridges[i].U != s.bridges[j].U {
			return s.bridges[i].U < s.bridges[j].U
		}

		return s.bridges[i].V < s.bridges[j].V
	})

	return s.bridges, nil
}

func runBiconnectivity(v lpg.View, opts []Option) (*biconnState, error) {
	if v == nil {
		return nil, ErrNilView
	}

	ids := v.NodeIDs()
	s := &biconnState{
		view:      v,
		opts:      buildOptions(opts),
		disc:      make(map[string]int, len(ids)),
		low:       make(map[string]int, len(ids)),
		cutpoints: make(map[string]bool),
	}
	for _, id := range ids {
		if _, visited := s.disc[id]; visited {
			continue
		}
		if err := s.visit(id, ""); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// visit is the classic low-link DFS. parentEdge is the edge ID used to
// arrive at u, so a parallel edge back to the parent still counts as a
// back edge (and disqualifies the pair from being a bridge).
func (s *biconnState) visit(u, parentEdge string) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	s.timer++
	s.disc[u] = s.timer
	s.low[u] = s.timer
	children := 0

	arcs, err := s.view.Neighbors(u, lpg.DirBoth)
	if err != nil {
		return fmt.Errorf("structure: neighbors of %q: %w", u, err)
	}
	for _, arc := range arcs {
		w := arc.Neighbor
		if w == u || arc.EdgeID == parentEdge {
			// self-loops and the arrival edge are not back edges
			continue
		}
		if _, visited := s.disc[w]; !visited {
			children++
			if err = s.visit(w, arc.EdgeID); err != nil {
				return err
			}
			if s.low[w] < s.low[u] {
				s.low[u] = s.low[w]
			}
			if parentEdge != "" && s.low[w] >= s.disc[u] {
				s.cutpoints[u] = true
			}
			if s.low[w] > s.disc[u] {
				s.bridges = append(s.bridges, newBridge(u, w))
			}
		} else if s.disc[w] < s.low[u] {
			s.low[u] = s.disc[w]
		}
	}

	// a DFS root is an articulation point iff it has two or more subtrees
	if parentEdge == "" && children >= 2 {
		s.cutpoints[u] = true
	}

	return nil
}

func newBridge(a, b string) Bridge {
	if a > b {
		a, b = b, a
	}

	return Bridge{U: a, V: b}
}
