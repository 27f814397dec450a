package metrics_test

import (
	"testing"

	"github.com/katalvlaran/curricula/builder"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/metrics"
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

func TestCompute_Diamond(t *testing.T) {
	rep, err := metrics.Compute(diamond(t))
	require.NoError(t, err)
	require.Len(t, rep.Courses, 4)

	want := []course.Metrics{
		{BlockingFactor: 3, DelayFactor: 12, Centrality: 0, Complexity: 15, RequisiteDistance: 0},
		{BlockingFactor: 2, DelayFactor: 12, Centrality: 4, Complexity: 14, RequisiteDistance: 1},
		{BlockingFactor: 1, DelayFactor: 12, Centrality: 7, Complexity: 13, RequisiteDistance: 2},
		{BlockingFactor: 0, DelayFactor: 12, Centrality: 0, Complexity: 12, RequisiteDistance: 3},
	}
	assert.Equal(t, want, rep.Courses)

	st := rep.Statistics
	assert.Equal(t, 4, st.Vertices)
	assert.Equal(t, 4, st.Edges)
	assert.Equal(t, 54.0, st.CurricularComplexity)
	assert.Equal(t, metrics.Summary{
		Count: 4, Total: 6, Min: 0, Max: 3, Mean: 1.5,
		PerCourse: map[string]float64{"A": 3, "B": 2, "C": 1, "D": 0},
	}, st.BlockingFactor)
	assert.Equal(t, 11.0, st.Centrality.Total)
	assert.Equal(t, 12.0, st.DelayFactor.Min)
	assert.Equal(t, 3.0, st.RequisiteDistance.Max)

	assert.Equal(t, metrics.Homology{Components: 1, Sources: 1, Sinks: 1}, rep.Homology)
}

func TestCompute_Cycle(t *testing.T) {
	g := build(t, nil, builder.Chain(4, course.Pre), builder.Link(3, 0, course.Pre))
	rep, err := metrics.Compute(g)
	assert.Nil(t, rep)
	var cyc *core.CycleDetectedError
	require.ErrorAs(t, err, &cyc)
	assert.Equal(t, []string{"A", "B", "C", "D"}, cyc.Courses)

	_, err = metrics.Compute(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestCompute_StrictGroup(t *testing.T) {
	// A, B strict pair; B→C pre; D→A co.
	g := build(t, nil,
		builder.StrictPairs(1, true),
		builder.Link(1, 2, course.Pre),
		builder.Link(3, 0, course.Co),
	)
	rep, err := metrics.Compute(g)
	require.NoError(t, err)

	a, b := rep.Courses[0], rep.Courses[1]
	assert.Equal(t, a.DelayFactor, b.DelayFactor, "members share the group's delay")
	assert.Equal(t, 12.0, a.DelayFactor)
	assert.Equal(t, a.Centrality, b.Centrality)
	assert.Equal(t, 4, a.Centrality, "D → {A,B} → C counts four courses")
	assert.Equal(t, 1, a.RequisiteDistance, "D→A")
	assert.Equal(t, 0, b.RequisiteDistance, "B has only the strict edge from A")
	assert.Equal(t, 1, rep.Courses[2].RequisiteDistance, "B→C")

	// A gates B through the strict edge, and C.
	assert.Equal(t, 2, a.BlockingFactor)
	assert.Equal(t, 3, rep.Courses[3].BlockingFactor)

	assert.Equal(t, metrics.Homology{
		Components: 1, Sources: 1, Sinks: 1, StrictPairs: 1, StrictCycles: 0,
	}, rep.Homology)
}

func TestCompute_Properties(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := build(t, []builder.Option{builder.WithSeed(seed)}, builder.RandomDAG(25, 0.15))
		rep, err := metrics.Compute(g)
		require.NoError(t, err)

		for _, v := range g.Sinks() {
			assert.Zero(t, rep.Courses[v].BlockingFactor, "seed %d sink %s", seed, g.ID(v))
		}
		for _, v := range g.Sources() {
			assert.Zero(t, rep.Courses[v].RequisiteDistance, "seed %d source %s", seed, g.ID(v))
		}
		for v, m := range rep.Courses {
			assert.Equal(t, float64(m.BlockingFactor)+m.DelayFactor, m.Complexity)
			assert.GreaterOrEqual(t, m.DelayFactor, g.Weight(v))
		}
	}
}

func TestCompute_Properties_StrictGroups(t *testing.T) {
	// strict pairs (0,1), (2,3), (4,5) on top of a sparse random DAG
	for seed := int64(1); seed <= 4; seed++ {
		g := build(t, []builder.Option{builder.WithSeed(seed)},
			builder.RandomDAG(20, 0.15),
			builder.StrictPairs(3, true),
		)
		rep, err := metrics.Compute(g)
		require.NoError(t, err)

		for _, v := range g.Sinks() {
			assert.Zero(t, rep.Courses[v].BlockingFactor, "seed %d sink %s", seed, g.ID(v))
		}
		for _, v := range g.Sources() {
			assert.Zero(t, rep.Courses[v].RequisiteDistance, "seed %d source %s", seed, g.ID(v))
		}
	}
}

func TestCompute_StrictMemberSource(t *testing.T) {
	// C→B pre, A→B strict: A has no requisites of its own.
	g := build(t, nil,
		builder.Link(2, 1, course.Pre),
		builder.Link(0, 1, course.StrictCo),
	)
	rep, err := metrics.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, g.Sources())
	assert.Equal(t, 0, rep.Courses[0].RequisiteDistance)
	assert.Equal(t, 1, rep.Courses[1].RequisiteDistance)
	assert.Equal(t, 0, rep.Courses[2].RequisiteDistance)
}

func TestCentrality_MaxPaths(t *testing.T) {
	g := build(t, nil, builder.Layered(4, 3))

	_, err := metrics.Compute(g, metrics.WithMaxPaths(10))
	assert.ErrorIs(t, err, metrics.ErrTooManyPaths)

	c, err := metrics.Centrality(g, 81)
	require.NoError(t, err)
	// each middle course lies on 27 paths of four courses
	assert.Equal(t, 108, c[3])
	assert.Zero(t, c[0])
	assert.Zero(t, c[11])
}

func TestComputeHomology(t *testing.T) {
	// strict triangle A-B-C, D isolated, E→F
	g := build(t, nil,
		builder.Link(0, 1, course.StrictCo),
		builder.Link(1, 2, course.StrictCo),
		builder.Link(0, 2, course.StrictCo),
		builder.Link(3, 3, course.StrictCo),
		builder.Link(4, 5, course.Pre),
	)
	h, err := metrics.ComputeHomology(g)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Components)
	assert.Equal(t, 3, h.StrictPairs)
	assert.Equal(t, 1, h.StrictCycles)
	assert.Equal(t, []int{0, 4}, g.Sources())
	assert.Equal(t, 2, h.Sources)

	_, err = metrics.ComputeHomology(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestBasicStatistics_Empty(t *testing.T) {
	g, err := core.Build(nil)
	require.NoError(t, err)
	st := metrics.BasicStatistics(g, nil)
	assert.Zero(t, st.Vertices)
	assert.Zero(t, st.Complexity.Mean)
	assert.Empty(t, st.Complexity.PerCourse)
}
