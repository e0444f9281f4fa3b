package structure

// UnionFind is a disjoint-set forest over string node IDs with path
// compression and union by rank. It backs ConnectedComponents here and the
// MST algorithms in the mst package.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind creates a forest with each of the given IDs in its own set.
func NewUnionFind(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}

	return uf
}

// Find returns the representative of u's set, compressing the path as it
// walks up. Amortized near-O(1).
func (uf *UnionFind) Find(u string) string {
	for uf.parent[u] != u {
		// halve the path: point u at its grandparent
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// Union merges the sets containing u and v, attaching the shallower tree
// under the deeper root. Reports whether a merge happened (false when the
// two were already in one set).
func (uf *UnionFind) Union(u, v string) bool {
	rootU, rootV := uf.Find(u), uf.Find(v)
	if rootU == rootV {
		return false
	}
	if uf.rank[rootU] < uf.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	uf.parent[rootV] = rootU
	if uf.rank[rootU] == uf.rank[rootV] {
		uf.rank[rootU]++
	}

	return true
}

// Connected reports whether u and v are in the same set.
func (uf *UnionFind) Connected(u, v string) bool {
	return uf.Find(u) == uf.Find(v)
}
