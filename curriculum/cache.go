package curriculum

import (
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/dfs"
	"github.com/katalvlaran/curricula/longestpath"
	"github.com/katalvlaran/curricula/metrics"
	"github.com/katalvlaran/curricula/topo"
)

// current returns the snapshot for the present stamp, rebuilding it if needed.
func (c *Curriculum) current() (*snapshot, error) {
	c.mu.RLock()
	if s := c.snap; s != nil && s.stamp == c.stampLocked() {
		c.mu.RUnlock()

		return s, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// 1. Another writer may have rebuilt in between
	stamp := c.stampLocked()
	if s := c.snap; s != nil && s.stamp == stamp {
		return s, nil
	}

	// 2. Build
	g, err := core.Build(c.courses)
	if err != nil {
		c.logger.Debug("graph build failed", "curriculum", c.id, "revision", stamp, "err", err)

		return nil, err
	}

	// 3. Courses are shared and may change outside c.mu
	if now := c.stampLocked(); now != stamp {
		return nil, &core.StaleCacheError{Have: stamp, Want: now}
	}
	stale := c.snap != nil
	for v, it := range c.courses {
		it.SetVertexID(c.id, v)
		if stale {
			// courses may have changed outside the curriculum
			it.SetMetrics(course.Uncomputed())
		}
	}
	c.snap = &snapshot{stamp: stamp, graph: g}
	c.logger.Debug("graph rebuilt",
		"curriculum", c.id,
		"revision", stamp,
		"courses", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return c.snap, nil
}

// valid returns the current snapshot once it passes validation. Queries
// that walk paths or reachability go through it.
func (c *Curriculum) valid() (*snapshot, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	if err = s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *snapshot) validate() error {
	s.validateOnce.Do(func() {
		s.validateErr = dfs.Validate(s.graph)
	})

	return s.validateErr
}

func (s *snapshot) topoOrder() ([]int, error) {
	s.orderOnce.Do(func() {
		if s.orderErr = s.validate(); s.orderErr != nil {
			return
		}
		s.order, s.orderErr = topo.Sort(s.graph)
	})

	return s.order, s.orderErr
}

func (s *snapshot) paths() (*longestpath.Table, error) {
	s.tableOnce.Do(func() {
		if s.tableErr = s.validate(); s.tableErr != nil {
			return
		}
		s.table, s.tableErr = longestpath.LongestPaths(s.graph)
	})

	return s.table, s.tableErr
}

func (s *snapshot) metrics(maxPaths int) (*metrics.Report, error) {
	s.reportOnce.Do(func() {
		s.report, s.reportErr = metrics.Compute(s.graph, metrics.WithMaxPaths(maxPaths))
	})

	return s.report, s.reportErr
}
