package centrality_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/StevenBtw/graphos/centrality"
	"github.com/StevenBtw/graphos/lpg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildStar constructs 4 leaves, each with a single directed edge into the
// center node.
func buildStar(t *testing.T) (*lpg.Graph, string, []string) {
	t.Helper()
	g := lpg.New()
	require.NoError(t, g.AddNode("center", []string{"Node"}, nil))
	leaves := make([]string, 4)
	for i := range leaves {
		leaves[i] = fmt.Sprintf("leaf%d", i)
		require.NoError(t, g.AddNode(leaves[i], []string{"Node"}, nil))
		_, err := g.AddEdge(leaves[i], "center", "POINTS_TO", nil)
		require.NoError(t, err)
	}

	return g, "center", leaves
}

// buildChain constructs a→b→c.
func buildChain(t *testing.T) *lpg.Graph {
	t.Helper()
	g := lpg.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id, nil, nil))
	}
	_, _ = g.AddEdge("a", "b", "EDGE", nil)
	_, _ = g.AddEdge("b", "c", "EDGE", nil)

	return g
}

func buildRandomGraph(t *testing.T, n, m int, seed int64) *lpg.Graph {
	t.Helper()
	g := lpg.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("n%03d", i)
		require.NoError(t, g.AddNode(ids[i], []string{"Node"}, nil))
	}
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[[2]int]bool, m)
	for len(seen) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		_, err := g.AddEdge(ids[u], ids[v], "EDGE", nil)
		require.NoError(t, err)
	}

	return g
}

func TestDegree_TotalAndNormalized(t *testing.T) {
	g, center, leaves := buildStar(t)

	raw, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, raw[center], "center has in-degree 4")
	for _, leaf := range leaves {
		assert.Equal(t, 1.0, raw[leaf])
	}

	norm, err := centrality.Degree(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.Equal(t, 1.0, norm[center], "4/(5-1)")
	for id, s := range norm {
		assert.GreaterOrEqual(t, s, 0.0, "node %s", id)
		assert.LessOrEqual(t, s, 1.0, "node %s", id)
	}
}

func TestDegree_CoversIsolatedNodes(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.AddNode("island", nil, nil))
	scores, err := centrality.Degree(g)
	require.NoError(t, err)
	assert.Len(t, scores, 4, "every node present, isolated included")
	assert.Equal(t, 0.0, scores["island"])
}

func TestDegree_SingleNodeNormalizesToZero(t *testing.T) {
	g := lpg.New()
	require.NoError(t, g.AddNode("only", nil, nil))
	scores, err := centrality.Degree(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores["only"])
}

func TestDegree_SelfLoopCountsTwice(t *testing.T) {
	g := lpg.New()
	require.NoError(t, g.AddNode("a", nil, nil))
	_, _ = g.AddEdge("a", "a", "LOOP", nil)
	scores, err := centrality.Degree(g)
	require.NoError(t, err)
	// once in out-degree, once in in-degree
	assert.Equal(t, 2.0, scores["a"])
}

func TestPageRank_SumsToOne(t *testing.T) {
	g := buildRandomGraph(t, 50, 200, 42)
	pr, err := centrality.PageRank(g)
	require.NoError(t, err)
	require.Len(t, pr, 50)

	var sum float64
	for _, s := range pr {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 0.01, "PageRank should sum to ~1.0")
}

func TestPageRank_StarCenterDominates(t *testing.T) {
	g, center, leaves := buildStar(t)
	pr, err := centrality.PageRank(g)
	require.NoError(t, err)
	for _, leaf := range leaves {
		assert.Greater(t, pr[center], pr[leaf], "center should have highest PageRank")
	}
	// the center is dangling: its mass is recycled, so the sum still holds
	var sum float64
	for _, s := range pr {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 0.01)
}

func TestPageRank_EmptyGraphAndOptions(t *testing.T) {
	pr, err := centrality.PageRank(lpg.New())
	require.NoError(t, err)
	assert.Empty(t, pr)

	g := buildChain(t)
	_, err = centrality.PageRank(g, centrality.WithDamping(1.5))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.PageRank(g, centrality.WithMaxIterations(0))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)

	// a tiny cap is not an error: the last iterate is returned
	pr, err = centrality.PageRank(g, centrality.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Len(t, pr, 3)
}

func TestBetweenness_ChainMiddle(t *testing.T) {
	g := buildChain(t)
	bc, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, bc["b"], "only a→c passes through b")
	assert.Equal(t, 0.0, bc["a"], "endpoints do not pass through themselves")
	assert.Equal(t, 0.0, bc["c"])

	norm, err := centrality.Betweenness(g, centrality.WithNormalized())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, norm["b"], 1e-9, "1/((3-1)(3-2))")
}

func TestBetweenness_CoversEveryNode(t *testing.T) {
	g := buildRandomGraph(t, 40, 120, 42)
	bc, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.Len(t, bc, 40)
	for id, s := range bc {
		assert.GreaterOrEqual(t, s, 0.0, "node %s", id)
	}
}

func TestBetweenness_SplitsOverTiedPaths(t *testing.T) {
	// a→b→d and a→c→d are tied: b and c each carry half of the (a,d) pair.
	g := lpg.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id, nil, nil))
	}
	_, _ = g.AddEdge("a", "b", "EDGE", nil)
	_, _ = g.AddEdge("a", "c", "EDGE", nil)
	_, _ = g.AddEdge("b", "d", "EDGE", nil)
	_, _ = g.AddEdge("c", "d", "EDGE", nil)

	bc, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, bc["b"], 1e-9)
	assert.InDelta(t, 0.5, bc["c"], 1e-9)
}

func TestCloseness_ChainAndSink(t *testing.T) {
	g := buildChain(t)
	cc, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, cc["a"], 1e-9, "a reaches b at 1 and c at 2")
	assert.InDelta(t, 1.0, cc["b"], 1e-9)
	assert.Equal(t, 0.0, cc["c"], "no outgoing reachability scores 0 by policy")
}

func TestCloseness_CoversEveryNode(t *testing.T) {
	g := buildRandomGraph(t, 40, 120, 42)
	cc, err := centrality.Closeness(g)
	require.NoError(t, err)
	assert.Len(t, cc, 40)
}
