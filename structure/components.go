package structure

import "github.com/StevenBtw/graphos/lpg"

// ConnectedComponents partitions the snapshot under undirected
// reachability: an edge in either direction merges two components.
// Every node gets exactly one component ID; IDs are dense integers
// assigned in ascending order of each component's smallest member node ID,
// so they are arbitrary but stable within one call.
//
// Complexity: O(V + E·α(V)) via union-find.
func ConnectedComponents(v lpg.View, opts ...Option) (ComponentAssignment, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o := buildOptions(opts)

	ids := v.NodeIDs()
	uf := NewUnionFind(ids)
	for _, e := range v.Edges() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		uf.Union(e.From, e.To)
	}

	// ids is sorted, so roots are numbered by their smallest member.
	assignment := make(ComponentAssignment, len(ids))
	rootID := make(map[string]int)
	for _, id := range ids {
		root := uf.Find(id)
		cid, seen := rootID[root]
		if !seen {
			cid = len(rootID)
			rootID[root] = cid
		}
		assignment[id] = cid
	}

	return assignment, nil
}

// ConnectedComponentCount returns the number of distinct components under
// undirected reachability; ≥1 for any non-empty snapshot.
func ConnectedComponentCount(v lpg.View, opts ...Option) (int, error) {
	assignment, err := ConnectedComponents(v, opts...)
	if err != nil {
		return 0, err
	}

	distinct := make(map[int]struct{}, len(assignment))
	for _, cid := range assignment {
		distinct[cid] = struct{}{}
	}

	return len(distinct), nil
}
