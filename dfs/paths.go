package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/curricula/core"
)

// AllPaths returns a lazy sequence of every simple directed path from u to v,
// each as a fresh slice of vertex ids starting with u and ending with v.
// The sequence is exhaustive and duplicate-free; when u == v it yields [u].
// Paths are produced in lexicographic order of their vertex ids.
func AllPaths(g *core.Graph, u, v int) (iter.Seq[[]int], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.Has(u) || !g.Has(v) {
		return nil, fmt.Errorf("%w: %d→%d", core.ErrVertexOutOfRange, u, v)
	}

	return func(yield func([]int) bool) {
		e := newEnumerator(g, func(w int) bool { return w == v })
		e.walk(u, yield)
	}, nil
}

// SourceSinkPaths returns a lazy sequence of every simple path that starts at
// a source (no incoming edge) and ends at a sink (no outgoing edge). An
// isolated vertex yields a path of length one.
func SourceSinkPaths(g *core.Graph) (iter.Seq[[]int], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return func(yield func([]int) bool) {
		e := newEnumerator(g, func(w int) bool { return len(g.Successors(w)) == 0 })
		for _, s := range g.Sources() {
			if !e.walk(s, yield) {
				return
			}
		}
	}, nil
}

// enumerator walks simple paths, yielding whenever target accepts the tip.
type enumerator struct {
	graph  *core.Graph
	target func(int) bool
	onPath []bool
	path   []int
}

func newEnumerator(g *core.Graph, target func(int) bool) *enumerator {
	return &enumerator{
		graph:  g,
		target: target,
		onPath: make([]bool, g.VertexCount()),
	}
}

// walk extends the current path with w; it returns false once yield asks to stop.
func (e *enumerator) walk(w int, yield func([]int) bool) bool {
	e.path = append(e.path, w)
	e.onPath[w] = true
	defer func() {
		e.path = e.path[:len(e.path)-1]
		e.onPath[w] = false
	}()

	if e.target(w) {
		// A simple path cannot continue past its end vertex.
		return yield(append([]int(nil), e.path...))
	}
	for _, x := range e.graph.Successors(w) {
		if e.onPath[x] {
			continue
		}
		if !e.walk(x, yield) {
			return false
		}
	}

	return true
}
