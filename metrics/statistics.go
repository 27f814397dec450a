package metrics

import (
	"github.com/katalvlaran/curricula/bfs"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
)

// BasicStatistics aggregates ms (indexed by vertex id of g).
func BasicStatistics(g *core.Graph, ms []course.Metrics) Statistics {
	st := Statistics{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	}
	pick := func(f func(course.Metrics) float64) Summary {
		vals := make([]float64, len(ms))
		for v, m := range ms {
			vals[v] = f(m)
		}

		return summarize(g, vals)
	}
	st.BlockingFactor = pick(func(m course.Metrics) float64 { return float64(m.BlockingFactor) })
	st.DelayFactor = pick(func(m course.Metrics) float64 { return m.DelayFactor })
	st.Centrality = pick(func(m course.Metrics) float64 { return float64(m.Centrality) })
	st.Complexity = pick(func(m course.Metrics) float64 { return m.Complexity })
	st.RequisiteDistance = pick(func(m course.Metrics) float64 { return float64(m.RequisiteDistance) })
	st.CurricularComplexity = st.Complexity.Total

	return st
}

// summarize folds one metric; an empty curriculum gives a zero Summary.
func summarize(g *core.Graph, vals []float64) Summary {
	s := Summary{Count: len(vals), PerCourse: make(map[string]float64, len(vals))}
	for v, x := range vals {
		s.PerCourse[g.ID(v)] = x
		s.Total += x
		if v == 0 || x < s.Min {
			s.Min = x
		}
		if v == 0 || x > s.Max {
			s.Max = x
		}
	}
	if s.Count > 0 {
		s.Mean = s.Total / float64(s.Count)
	}

	return s
}

// ComputeHomology summarises the structural shape of g.
func ComputeHomology(g *core.Graph) (Homology, error) {
	if g == nil {
		return Homology{}, core.ErrNilGraph
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return Homology{}, err
	}
	cond := g.Condense()

	// cyclomatic number of the undirected strict co-requisite graph:
	// pairs − vertices in merged groups + merged groups
	merged, groups := 0, 0
	for _, members := range cond.Members {
		if len(members) > 1 {
			merged += len(members)
			groups++
		}
	}

	return Homology{
		Components:   len(comps),
		Sources:      len(g.Sources()),
		Sinks:        len(g.Sinks()),
		StrictPairs:  cond.Pairs,
		StrictCycles: cond.Pairs - merged + groups,
	}, nil
}
