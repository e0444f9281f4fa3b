package community

import (
	"sort"

	"github.com/StevenBtw/graphos/lpg"
)

// Louvain runs greedy modularity optimization. Each pass sweeps nodes in
// ascending ID order, moving a node to the neighboring community with the
// highest modularity gain (only strictly positive gains move a node), until
// a sweep makes no move. The partition is then condensed into super-nodes
// and the next pass runs on the condensed graph. Passes stop when the
// modularity improvement drops below 1e-7 or after Options.MaxPasses.
//
// Every move strictly increases modularity, so the algorithm terminates on
// any input.
func Louvain(v lpg.View, opts ...Option) (*CommunityResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ids := v.NodeIDs()
	origAdj := undirectedAdjacency(v)

	s := newLouvainState(origAdj)
	final := make(map[string]string, len(ids))
	for _, id := range ids {
		final[id] = id
	}

	curQ := s.modularity()
	for pass := 0; pass < o.MaxPasses; pass++ {
		moved, err := s.oneLevel(o)
		if err != nil {
			return nil, err
		}
		if !moved {
			break
		}
		for id := range final {
			final[id] = s.comm[final[id]]
		}
		newQ := s.modularity()
		if newQ-curQ < minGain {
			break
		}
		curQ = newQ
		s = s.aggregate()
	}

	assignment, n := denseAssignment(ids, final)

	return &CommunityResult{
		Assignment:     assignment,
		NumCommunities: n,
		Modularity:     modularityOf(origAdj, final),
	}, nil
}

// louvainState is one level of the condensation hierarchy: a symmetric
// weighted graph plus the running community bookkeeping.
type louvainState struct {
	nodes []string
	adj   map[string]map[string]float64 // no self entries
	loop  map[string]float64            // A_uu, doubled self weight
	deg   map[string]float64            // k_u = loop_u + Σ adj_uv
	m2    float64                       // 2m, sum of all degrees

	comm map[string]string  // node → community label
	tot  map[string]float64 // Σ degrees per community
	in   map[string]float64 // Σ intra weight per community, doubled
}

func newLouvainState(adj map[string]map[string]float64) *louvainState {
	s := &louvainState{
		adj:  adj,
		loop: make(map[string]float64, len(adj)),
		deg:  make(map[string]float64, len(adj)),
		comm: make(map[string]string, len(adj)),
		tot:  make(map[string]float64, len(adj)),
		in:   make(map[string]float64, len(adj)),
	}
	for u, nbrs := range adj {
		s.nodes = append(s.nodes, u)
		d := s.loop[u]
		for _, w := range nbrs {
			d += w
		}
		s.deg[u] = d
		s.m2 += d
		s.comm[u] = u
		s.tot[u] = d
		s.in[u] = s.loop[u]
	}
	sort.Strings(s.nodes)

	return s
}

func (s *louvainState) modularity() float64 {
	if s.m2 == 0 {
		return 0
	}
	var q float64
	for c, t := range s.tot {
		if t == 0 && s.in[c] == 0 {
			continue
		}
		q += s.in[c]/s.m2 - (t/s.m2)*(t/s.m2)
	}

	return q
}

// oneLevel sweeps until no node moves, reporting whether any move happened.
func (s *louvainState) oneLevel(o Options) (bool, error) {
	if s.m2 == 0 {
		return false, nil
	}

	anyMoved := false
	for {
		select {
		case <-o.Ctx.Done():
			return false, o.Ctx.Err()
		default:
		}

		changed := false
		for _, u := range s.nodes {
			if s.moveNode(u) {
				changed = true
				anyMoved = true
			}
		}
		if !changed {
			return anyMoved, nil
		}
	}
}

// moveNode detaches u and reattaches it to the community with the best
// modularity gain, keeping its current community on ties.
func (s *louvainState) moveNode(u string) bool {
	c0 := s.comm[u]
	ku := s.deg[u]

	// weight from u to each adjacent community
	wc := make(map[string]float64, len(s.adj[u]))
	for v, w := range s.adj[u] {
		wc[s.comm[v]] += w
	}

	// detach
	s.tot[c0] -= ku
	s.in[c0] -= 2*wc[c0] + s.loop[u]

	bestC := c0
	bestGain := wc[c0] - s.tot[c0]*ku/s.m2

	cands := make([]string, 0, len(wc))
	for c := range wc {
		if c != c0 {
			cands = append(cands, c)
		}
	}
	sort.Strings(cands)
	for _, c := range cands {
		gain := wc[c] - s.tot[c]*ku/s.m2
		if gain > bestGain {
			bestC, bestGain = c, gain
		}
	}

	// reattach
	s.comm[u] = bestC
	s.tot[bestC] += ku
	s.in[bestC] += 2*wc[bestC] + s.loop[u]

	return bestC != c0
}

// aggregate condenses every community into a super-node labeled with the
// community label, carrying intra weight as a self-loop.
func (s *louvainState) aggregate() *louvainState {
	adj := make(map[string]map[string]float64)
	loop := make(map[string]float64)
	for _, u := range s.nodes {
		cu := s.comm[u]
		if _, ok := adj[cu]; !ok {
			adj[cu] = make(map[string]float64)
		}
		loop[cu] += s.loop[u]
		for v, w := range s.adj[u] {
			cv := s.comm[v]
			if cu == cv {
				loop[cu] += w // each intra pair seen from both ends
			} else {
				adj[cu][cv] += w
			}
		}
	}

	next := newLouvainState(adj)
	for c, l := range loop {
		next.loop[c] = l
		next.deg[c] += l
		next.m2 += l
		next.tot[c] += l
		next.in[c] += l
	}

	return next
}
