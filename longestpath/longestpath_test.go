package longestpath_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/curricula/builder"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/dfs"
	"github.com/katalvlaran/curricula/longestpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t testing.TB, opts []builder.Option, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	opts = append([]builder.Option{builder.WithIDScheme(builder.ExcelColumnIDFn)}, opts...)
	items, err := builder.Build(opts, cons...)
	require.NoError(t, err)
	g, err := core.Build(items)
	require.NoError(t, err)

	return g
}

func diamond(t testing.TB) *core.Graph {
	return build(t, nil,
		builder.Link(0, 1, course.Pre),
		builder.Link(1, 2, course.Pre),
		builder.Link(0, 2, course.Pre),
		builder.Link(2, 3, course.Pre),
	)
}

func TestLongestPath_Diamond(t *testing.T) {
	g := diamond(t)
	p, err := longestpath.LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.IDs(p.Vertices))
	assert.Equal(t, 12.0, p.Length)
}

func TestLongestPaths_Table(t *testing.T) {
	tab, err := longestpath.LongestPaths(diamond(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, 9, 12}, tab.EndingAt)
	assert.Equal(t, []float64{12, 9, 6, 3}, tab.StartingAt)
	assert.Equal(t, []float64{12, 12, 12, 12}, tab.Through)
	assert.Equal(t, []int{0, 1, 2, 3}, tab.Hops)
	assert.Equal(t, []int{0, 1, 2, 3}, tab.Order)
}

func TestLongestPath_Weighted(t *testing.T) {
	// A(1)→C(1), B(5)→C(1): the heavier B wins.
	credits := builder.WithCreditFn(func(idx int, _ *rand.Rand) float64 {
		if idx == 1 {
			return 5
		}
		return 1
	})
	g := build(t, []builder.Option{credits},
		builder.Link(0, 2, course.Pre),
		builder.Link(1, 2, course.Pre),
	)
	p, err := longestpath.LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, g.IDs(p.Vertices))
	assert.Equal(t, 6.0, p.Length)

	tab, err := longestpath.LongestPaths(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6, 6}, tab.Through)
}

func TestLongestPath_TieBreak(t *testing.T) {
	// A→C, B→C with equal credits: the lower predecessor wins.
	g := build(t, nil, builder.Link(0, 2, course.Pre), builder.Link(1, 2, course.Pre))
	p, err := longestpath.LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, p.Vertices)
}

func TestLongestPath_StrictGroup(t *testing.T) {
	// A and B a strict pair, then B→C: the group counts both members.
	g := build(t, nil,
		builder.StrictPairs(1, false),
		builder.Link(1, 2, course.Pre),
	)
	p, err := longestpath.LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.IDs(p.Vertices))
	assert.Equal(t, 9.0, p.Length)

	tab, err := longestpath.LongestPaths(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 9}, tab.Through)
	assert.Equal(t, []int{0, 0, 1}, tab.Hops)
}

func TestLongestPaths_HopsPerMember(t *testing.T) {
	// C→B pre, A→B strict: the group {A,B} shares weights but not hops.
	g := build(t, nil,
		builder.Link(2, 1, course.Pre),
		builder.Link(0, 1, course.StrictCo),
	)
	tab, err := longestpath.LongestPaths(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 9}, tab.Through)
	assert.Equal(t, []int{0, 1, 0}, tab.Hops)
}

func TestLongestPath_EdgeCases(t *testing.T) {
	g, err := core.Build(nil)
	require.NoError(t, err)
	p, err := longestpath.LongestPath(g)
	require.NoError(t, err)
	assert.Empty(t, p.Vertices)
	assert.Zero(t, p.Length)

	_, err = longestpath.LongestPath(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	cyclic := build(t, nil, builder.Chain(2, course.Pre), builder.Link(1, 0, course.Pre))
	_, err = longestpath.LongestPaths(cyclic)
	assert.ErrorIs(t, err, core.ErrCycleDetected)
}

// TestLongestPath_MatchesEnumeration cross-checks against brute force over
// every source→sink path.
func TestLongestPath_MatchesEnumeration(t *testing.T) {
	credits := builder.WithCreditFn(func(_ int, rng *rand.Rand) float64 {
		return float64(1 + rng.Intn(5))
	})
	for seed := int64(1); seed <= 5; seed++ {
		g := build(t, []builder.Option{builder.WithSeed(seed), credits}, builder.RandomDAG(14, 0.25))

		p, err := longestpath.LongestPath(g)
		require.NoError(t, err)

		paths, err := dfs.SourceSinkPaths(g)
		require.NoError(t, err)
		best := 0.0
		for path := range paths {
			w := 0.0
			for _, v := range path {
				w += g.Weight(v)
			}
			best = max(best, w)
		}
		assert.Equal(t, best, p.Length, "seed %d", seed)

		var sum float64
		for _, v := range p.Vertices {
			sum += g.Weight(v)
		}
		assert.Equal(t, p.Length, sum, "seed %d: path weight", seed)
	}
}
