package builder_test

import (
	"errors"
	"testing"

	"github.com/StevenBtw/graphos/builder"
	"github.com/StevenBtw/graphos/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_PathAndCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())

	dag, err := structure.IsDAG(g)
	require.NoError(t, err)
	assert.False(t, dag)
}

func TestBuildGraph_ConstructorsCompose(t *testing.T) {
	// a cycle with a star hanging off node 0 shares that node
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Star(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())

	n, err := structure.ConnectedComponentCount(g)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBuildGraph_SeededWeightsAreDeterministic(t *testing.T) {
	opts := []builder.Option{
		builder.WithSeed(42),
		builder.WithWeights("weight", 1, 10),
	}
	a, err := builder.BuildGraph(opts, builder.Complete(4))
	require.NoError(t, err)
	b, err := builder.BuildGraph(opts, builder.Complete(4))
	require.NoError(t, err)

	ea, eb := a.Edges(), b.Edges()
	require.Equal(t, len(ea), len(eb))
	for i := range ea {
		wa, err := ea[i].Weight("weight")
		require.NoError(t, err)
		wb, err := eb[i].Weight("weight")
		require.NoError(t, err)
		assert.Equal(t, wa, wb)
		assert.GreaterOrEqual(t, wa, 1.0)
		assert.Less(t, wa, 10.0)
	}
}

func TestBuildGraph_RandomSparse(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithSeed(7)},
		builder.RandomSparse(20, 0.3),
	)
	require.NoError(t, err)
	assert.Equal(t, 20, g.NodeCount())
	assert.Greater(t, g.EdgeCount(), 0)
	assert.LessOrEqual(t, g.EdgeCount(), 190)
}

func TestBuildGraph_Errors(t *testing.T) {
	if _, err := builder.BuildGraph(nil, builder.Path(1)); !errors.Is(err, builder.ErrTooFewNodes) {
		t.Errorf("short path: want ErrTooFewNodes, got %v", err)
	}
	if _, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1.5)); !errors.Is(err, builder.ErrInvalidProbability) {
		t.Errorf("bad probability: want ErrInvalidProbability, got %v", err)
	}
	if _, err := builder.BuildGraph([]builder.Option{builder.WithEdgeType("")}); !errors.Is(err, builder.ErrOptionViolation) {
		t.Errorf("empty edge type: want ErrOptionViolation, got %v", err)
	}
}

func TestBuildGraph_CustomIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithIDScheme(func(i int) string { return string(rune('a' + i)) })},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.True(t, g.HasNode("a"))
	assert.True(t, g.HasNode("c"))
	assert.False(t, g.HasNode("n000"))

	_, ok := g.Node("a")
	assert.True(t, ok)
}
