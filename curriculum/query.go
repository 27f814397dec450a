package curriculum

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/curricula/bfs"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/dfs"
	"github.com/katalvlaran/curricula/longestpath"
	"github.com/katalvlaran/curricula/metrics"
)

// Graph returns the requisite graph of the current courses.
func (c *Curriculum) Graph() (*core.Graph, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}

	return s.graph, nil
}

// Validate reports a *core.CycleDetectedError when the requisites, with strict
// co-requisites ignored or merged, contain a cycle.
func (c *Curriculum) Validate() error {
	s, err := c.current()
	if err != nil {
		return err
	}

	return s.validate()
}

// Classify labels every requisite edge by a depth-first traversal.
func (c *Curriculum) Classify() ([]dfs.ClassifiedEdge, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}

	return dfs.Classify(s.graph)
}

// TopologicalSort returns course ids with every requisite before the courses
// needing it. Strict co-requisite groups stay adjacent.
func (c *Curriculum) TopologicalSort() ([]string, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	order, err := s.topoOrder()
	if err != nil {
		return nil, err
	}

	return s.graph.IDs(order), nil
}

// ReachableFrom returns the ids of the courses id gates, sorted by vertex id.
func (c *Curriculum) ReachableFrom(id string, opts ...ReachOption) ([]string, error) {
	return c.reach(id, nil, bfs.ReachableFrom, opts)
}

// ReachableTo returns the ids of the courses id requires, sorted by vertex id.
func (c *Curriculum) ReachableTo(id string, opts ...ReachOption) ([]string, error) {
	return c.reach(id, nil, bfs.ReachableTo, opts)
}

// ReachableFromSubgraph is ReachableFrom restricted to the courses in subgraph.
func (c *Curriculum) ReachableFromSubgraph(id string, subgraph []string, opts ...ReachOption) ([]string, error) {
	if subgraph == nil {
		subgraph = []string{}
	}

	return c.reach(id, subgraph, bfs.ReachableFrom, opts)
}

// ReachableToSubgraph is ReachableTo restricted to the courses in subgraph.
func (c *Curriculum) ReachableToSubgraph(id string, subgraph []string, opts ...ReachOption) ([]string, error) {
	if subgraph == nil {
		subgraph = []string{}
	}

	return c.reach(id, subgraph, bfs.ReachableTo, opts)
}

// Reach returns the ids of every course that one of ids requires.
func (c *Curriculum) Reach(ids []string) ([]string, error) {
	s, err := c.valid()
	if err != nil {
		return nil, err
	}
	vs, err := vertices(s.graph, ids)
	if err != nil {
		return nil, err
	}
	out, err := bfs.Reach(s.graph, vs)
	if err != nil {
		return nil, err
	}

	return s.graph.IDs(out), nil
}

type reachFn func(g *core.Graph, v int, opts ...bfs.Option) ([]int, error)

// reach resolves ids and runs fn; a non-nil subgraph restricts the traversal.
func (c *Curriculum) reach(id string, subgraph []string, fn reachFn, ropts []ReachOption) ([]string, error) {
	var rc reachConfig
	for _, o := range ropts {
		o(&rc)
	}
	s, err := c.valid()
	if err != nil {
		return nil, err
	}
	v, err := vertex(s.graph, id)
	if err != nil {
		return nil, err
	}
	opts := []bfs.Option{bfs.WithMaxDepth(rc.depth)}
	if subgraph != nil {
		vs, err := vertices(s.graph, subgraph)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bfs.WithSubgraph(vs))
	}
	out, err := fn(s.graph, v, opts...)
	if err != nil {
		return nil, err
	}

	return s.graph.IDs(out), nil
}

// AllPaths yields every simple requisite path from course from to course to.
// The sequence reads the graph of the moment AllPaths was called.
func (c *Curriculum) AllPaths(from, to string) (iter.Seq[[]string], error) {
	s, err := c.valid()
	if err != nil {
		return nil, err
	}
	u, err := vertex(s.graph, from)
	if err != nil {
		return nil, err
	}
	v, err := vertex(s.graph, to)
	if err != nil {
		return nil, err
	}
	seq, err := dfs.AllPaths(s.graph, u, v)
	if err != nil {
		return nil, err
	}

	return func(yield func([]string) bool) {
		for p := range seq {
			if !yield(s.graph.IDs(p)) {
				return
			}
		}
	}, nil
}

var errReached = errors.New("curriculum: destination reached")

// ShortestChain returns the requisite chain from course from to course to with
// the fewest edges, both ends included. It fails with bfs.ErrNoPath when from
// does not gate to.
func (c *Curriculum) ShortestChain(from, to string) ([]string, error) {
	s, err := c.valid()
	if err != nil {
		return nil, err
	}
	u, err := vertex(s.graph, from)
	if err != nil {
		return nil, err
	}
	v, err := vertex(s.graph, to)
	if err != nil {
		return nil, err
	}
	stop := bfs.WithOnVisit(func(w, _ int) error {
		if w == v {
			return errReached
		}

		return nil
	})
	res, err := bfs.BFS(s.graph, u, stop)
	if err != nil && !errors.Is(err, errReached) {
		return nil, err
	}
	p, err := res.PathTo(v)
	if err != nil {
		return nil, fmt.Errorf("%s to %s: %w", from, to, bfs.ErrNoPath)
	}

	return s.graph.IDs(p), nil
}

// LongestPath returns the heaviest requisite chain by credit hours.
func (c *Curriculum) LongestPath() (Path, error) {
	s, err := c.valid()
	if err != nil {
		return Path{}, err
	}
	p, err := longestpath.LongestPath(s.graph)
	if err != nil {
		return Path{}, err
	}

	return Path{Courses: s.graph.IDs(p.Vertices), Length: p.Length}, nil
}

// LongestPaths returns a copy of the per-vertex longest-path table. Index it
// with VertexID.
func (c *Curriculum) LongestPaths() (*longestpath.Table, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	t, err := s.paths()
	if err != nil {
		return nil, err
	}

	return t.Clone(), nil
}

// ComputeMetrics computes every course metric and writes each record back to
// its course. Nothing is written on error.
func (c *Curriculum) ComputeMetrics() (*metrics.Report, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	maxPaths := c.maxPaths
	c.mu.RUnlock()
	rep, err := s.metrics(maxPaths)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.stampLocked() != s.stamp {
		return nil, &core.StaleCacheError{Have: s.stamp, Want: c.stampLocked()}
	}
	for v, it := range c.courses {
		it.SetMetrics(rep.Courses[v])
	}
	c.logger.Debug("metrics computed",
		"curriculum", c.id,
		"complexity", rep.Statistics.CurricularComplexity,
	)

	return rep, nil
}

// BasicStatistics computes the curriculum-wide metric aggregates.
func (c *Curriculum) BasicStatistics() (metrics.Statistics, error) {
	rep, err := c.ComputeMetrics()
	if err != nil {
		return metrics.Statistics{}, err
	}

	return rep.Statistics, nil
}

// Homology summarises the structure of the requisite graph.
func (c *Curriculum) Homology() (metrics.Homology, error) {
	s, err := c.valid()
	if err != nil {
		return metrics.Homology{}, err
	}

	return metrics.ComputeHomology(s.graph)
}

func vertex(g *core.Graph, id string) (int, error) {
	v, ok := g.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}

	return v, nil
}

func vertices(g *core.Graph, ids []string) ([]int, error) {
	vs := make([]int, 0, len(ids))
	for _, id := range ids {
		v, err := vertex(g, id)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}

	return vs, nil
}
