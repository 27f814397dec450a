package metrics

import (
	"fmt"

	"github.com/katalvlaran/curricula/bfs"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/dfs"
	"github.com/katalvlaran/curricula/longestpath"
)

// Compute validates g and returns per-course metrics, statistics and homology.
func Compute(g *core.Graph, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Structural precondition
	if err := dfs.Validate(g); err != nil {
		return nil, err
	}

	// 2. Path tables
	table, err := longestpath.LongestPaths(g)
	if err != nil {
		return nil, err
	}
	centrality, err := Centrality(g, o.maxPaths)
	if err != nil {
		return nil, err
	}

	// 3. Per-course records
	n := g.VertexCount()
	ms := make([]course.Metrics, n)
	for v := 0; v < n; v++ {
		gated, err := bfs.ReachableFrom(g, v)
		if err != nil {
			return nil, err
		}
		ms[v] = course.Metrics{
			BlockingFactor:    len(gated),
			DelayFactor:       table.Through[v],
			Centrality:        centrality[v],
			RequisiteDistance: table.Hops[v],
		}
		ms[v].Complexity = float64(ms[v].BlockingFactor) + ms[v].DelayFactor
	}

	// 4. Aggregates
	hom, err := ComputeHomology(g)
	if err != nil {
		return nil, err
	}

	return &Report{
		Courses:    ms,
		Statistics: BasicStatistics(g, ms),
		Homology:   hom,
	}, nil
}

// Centrality returns, per vertex, the summed course-count length of every
// source→sink path of the condensed graph on which the vertex's group is
// interior. maxPaths > 0 caps the enumeration.
func Centrality(g *core.Graph, maxPaths int) ([]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	cond := g.Condense()
	paths, err := dfs.SourceSinkPaths(cond.Graph)
	if err != nil {
		return nil, err
	}

	perGroup := make([]int, cond.Graph.VertexCount())
	count := 0
	for path := range paths {
		count++
		if maxPaths > 0 && count > maxPaths {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyPaths, maxPaths)
		}
		length := 0
		for _, gid := range path {
			length += len(cond.Members[gid])
		}
		for i := 1; i < len(path)-1; i++ {
			perGroup[path[i]] += length
		}
	}

	out := make([]int, g.VertexCount())
	for v := range out {
		out[v] = perGroup[cond.GroupOf[v]]
	}

	return out, nil
}
