package shortestpath_test

import (
	"math"
	"testing"

	"github.com/StevenBtw/graphos/lpg"
	"github.com/StevenBtw/graphos/shortestpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weight(f float64) map[string]lpg.Value {
	return map[string]lpg.Value{"weight": lpg.Float(f)}
}

// buildDiamond constructs the reference graph from the conformance suite:
// a→b (1), a→c (10), b→d (1), c→d (1). Shortest a→d is 2 via b.
func buildDiamond(t *testing.T) *lpg.Graph {
	t.Helper()
	g := lpg.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id, []string{"Node"}, nil))
	}
	_, _ = g.AddEdge("a", "b", "EDGE", weight(1))
	_, _ = g.AddEdge("a", "c", "EDGE", weight(10))
	_, _ = g.AddEdge("b", "d", "EDGE", weight(1))
	_, _ = g.AddEdge("c", "d", "EDGE", weight(1))

	return g
}

func TestDijkstra_SourceDistanceIsZero(t *testing.T) {
	g := buildDiamond(t)
	dist, err := shortestpath.Dijkstra(g, "a")
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["a"])
	assert.Equal(t, 1.0, dist["b"])
	assert.Equal(t, 2.0, dist["d"], "a→b→d beats a→c→d")
	assert.Equal(t, 10.0, dist["c"])
}

func TestDijkstra_ReachableNodesOnly(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddNode("island", nil, nil))

	dist, err := shortestpath.Dijkstra(g, "a")
	require.NoError(t, err)
	_, present := dist["island"]
	assert.False(t, present, "absence of a key means unreachable")

	// edges are directed: nothing is reachable from the sink d
	dist, err = shortestpath.Dijkstra(g, "d")
	require.NoError(t, err)
	assert.Equal(t, shortestpath.DistanceMap{"d": 0}, dist)
}

func TestDijkstra_Errors(t *testing.T) {
	_, err := shortestpath.Dijkstra(nil, "a")
	assert.ErrorIs(t, err, shortestpath.ErrNilView)

	g := buildDiamond(t)
	_, err = shortestpath.Dijkstra(g, "missing")
	assert.ErrorIs(t, err, lpg.ErrNodeNotFound)

	// negative weight is rejected during relaxation
	_, errEdge := g.AddEdge("a", "b", "EDGE", weight(-1))
	require.NoError(t, errEdge)
	_, err = shortestpath.Dijkstra(g, "a")
	assert.ErrorIs(t, err, shortestpath.ErrNegativeWeight)
}

func TestDijkstra_MissingWeightProperty(t *testing.T) {
	g := lpg.New()
	require.NoError(t, g.AddNode("a", nil, nil))
	require.NoError(t, g.AddNode("b", nil, nil))
	_, _ = g.AddEdge("a", "b", "EDGE", nil)

	_, err := shortestpath.Dijkstra(g, "a")
	assert.ErrorIs(t, err, lpg.ErrMissingWeight, "no silent default substitution")

	// a custom property name is honored
	g2 := lpg.New()
	require.NoError(t, g2.AddNode("a", nil, nil))
	require.NoError(t, g2.AddNode("b", nil, nil))
	_, _ = g2.AddEdge("a", "b", "EDGE", map[string]lpg.Value{"cost": lpg.Int(7)})
	dist, err := shortestpath.Dijkstra(g2, "a", shortestpath.WithWeightProperty("cost"))
	require.NoError(t, err)
	assert.Equal(t, 7.0, dist["b"])
}

func TestDijkstraPath_DiamondContract(t *testing.T) {
	g := buildDiamond(t)
	res, err := shortestpath.DijkstraPath(g, "a", "d")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2.0, res.Distance)
	assert.Equal(t, []string{"a", "b", "d"}, res.Path)
	assert.NotContains(t, res.Path, "c", "should not go through c")
}

func TestDijkstraPath_NoResultWhenUnreachable(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddNode("island", nil, nil))

	res, err := shortestpath.DijkstraPath(g, "a", "island")
	require.NoError(t, err, "no path is a domain result, not an error")
	assert.Nil(t, res)

	_, err = shortestpath.DijkstraPath(g, "a", "missing")
	assert.ErrorIs(t, err, lpg.ErrNodeNotFound, "unknown target is a data error")
}

func TestDijkstraPath_SourceEqualsTarget(t *testing.T) {
	g := buildDiamond(t)
	res, err := shortestpath.DijkstraPath(g, "a", "a")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []string{"a"}, res.Path)
}

func TestAStar_MatchesDijkstra(t *testing.T) {
	g := buildDiamond(t)

	// zero heuristic degenerates to Dijkstra
	res, err := shortestpath.AStar(g, "a", "d", nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2.0, res.Distance)

	// an admissible heuristic may reorder exploration, never the distance
	remaining := map[string]float64{"a": 2, "b": 1, "c": 1, "d": 0}
	res, err = shortestpath.AStar(g, "a", "d", func(id string) float64 { return remaining[id] })
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2.0, res.Distance)
	assert.Equal(t, []string{"a", "b", "d"}, res.Path)
}

func TestBellmanFord_AgreesWithDijkstraOnNonNegative(t *testing.T) {
	g := buildDiamond(t)
	bf, err := shortestpath.BellmanFord(g, "a", "weight")
	require.NoError(t, err)
	assert.False(t, bf.HasNegativeCycle)

	dj, err := shortestpath.Dijkstra(g, "a")
	require.NoError(t, err)
	require.Equal(t, len(dj), len(bf.Distances))
	for id, d := range dj {
		assert.InDelta(t, d, bf.Distances[id], 1e-9, "node %s", id)
	}
}

func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	// a→b (4), a→c (2), c→b (-1): best a→b is 1
	g := lpg.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id, nil, nil))
	}
	_, _ = g.AddEdge("a", "b", "EDGE", weight(4))
	_, _ = g.AddEdge("a", "c", "EDGE", weight(2))
	_, _ = g.AddEdge("c", "b", "EDGE", weight(-1))

	res, err := shortestpath.BellmanFord(g, "a", "weight")
	require.NoError(t, err)
	assert.False(t, res.HasNegativeCycle)
	assert.Equal(t, 0.0, res.Distances["a"])
	assert.Equal(t, 1.0, res.Distances["b"])
	assert.Equal(t, 2.0, res.Distances["c"])
}

func TestBellmanFord_NegativeCycleSentinel(t *testing.T) {
	// a→b (1), b→c (-2), c→b (-2), c→d (1): the b↔c cycle poisons b, c, d.
	g := lpg.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id, nil, nil))
	}
	_, _ = g.AddEdge("a", "b", "EDGE", weight(1))
	_, _ = g.AddEdge("b", "c", "EDGE", weight(-2))
	_, _ = g.AddEdge("c", "b", "EDGE", weight(-2))
	_, _ = g.AddEdge("c", "d", "EDGE", weight(1))

	res, err := shortestpath.BellmanFord(g, "a", "weight")
	require.NoError(t, err)
	assert.True(t, res.HasNegativeCycle)
	assert.Equal(t, 0.0, res.Distances["a"], "source sits before the cycle")
	neg := math.Inf(-1)
	for _, id := range []string{"b", "c", "d"} {
		got, present := res.Distances[id]
		require.True(t, present, "cycle-reachable %s keeps a numeric sentinel", id)
		assert.Equal(t, neg, got, "node %s", id)
	}
}

func TestFloydWarshall_MatchesSingleSource(t *testing.T) {
	g := buildDiamond(t)
	fw, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	assert.False(t, fw.HasNegativeCycle)

	for _, source := range []string{"a", "b", "c", "d"} {
		dj, errD := shortestpath.Dijkstra(g, source)
		require.NoError(t, errD)
		assert.Equal(t, dj, fw.Distances[source], "source %s", source)
	}
}

func TestFloydWarshall_NegativeCycleDiagonal(t *testing.T) {
	g := lpg.New()
	require.NoError(t, g.AddNode("a", nil, nil))
	require.NoError(t, g.AddNode("b", nil, nil))
	_, _ = g.AddEdge("a", "b", "EDGE", weight(-1))
	_, _ = g.AddEdge("b", "a", "EDGE", weight(-1))

	fw, err := shortestpath.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, fw.HasNegativeCycle)
}
