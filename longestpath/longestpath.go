package longestpath

import (
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/topo"
)

// runner carries the condensed-graph tables of one computation.
type runner struct {
	g       *core.Graph
	cond    *core.Condensation
	order   []int   // vertex topological order
	groups  []int   // group topological order
	members [][]int // group → members in topological order

	dist  []float64 // longest path ending at group
	start []float64 // longest path starting at group
	prev  []int     // arg-max predecessor group, -1 if none
}

// LongestPath returns the single longest weighted path in g. When several
// paths share the maximum length, the one ending earliest in topological
// order wins. An empty graph yields an empty Path.
func LongestPath(g *core.Graph) (Path, error) {
	r, err := newRunner(g)
	if err != nil {
		return Path{}, err
	}
	if len(r.groups) == 0 {
		return Path{}, nil
	}
	r.forward()

	// 1. Pick the end group
	end := r.groups[0]
	for _, gid := range r.groups[1:] {
		if r.dist[gid] > r.dist[end] {
			end = gid
		}
	}

	// 2. Walk back-pointers
	var rev []int
	for gid := end; gid >= 0; gid = r.prev[gid] {
		rev = append(rev, gid)
	}

	// 3. Expand groups front to back
	var vs []int
	for i := len(rev) - 1; i >= 0; i-- {
		vs = append(vs, r.members[rev[i]]...)
	}

	return Path{Vertices: vs, Length: r.dist[end]}, nil
}

// LongestPaths computes the per-vertex Table.
func LongestPaths(g *core.Graph) (*Table, error) {
	r, err := newRunner(g)
	if err != nil {
		return nil, err
	}
	r.forward()
	r.backward()

	n := g.VertexCount()
	t := &Table{
		EndingAt:   make([]float64, n),
		StartingAt: make([]float64, n),
		Through:    make([]float64, n),
		Hops:       make([]int, n),
		Order:      r.order,
	}
	cg := r.cond.Graph
	for v := 0; v < n; v++ {
		gid := r.cond.GroupOf[v]
		t.EndingAt[v] = r.dist[gid]
		t.StartingAt[v] = r.start[gid]
		t.Through[v] = r.dist[gid] + r.start[gid] - cg.Weight(gid)
	}
	r.hopsInto(t.Hops)

	return t, nil
}

// newRunner sorts g and derives the group order from the vertex order.
func newRunner(g *core.Graph) (*runner, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	order, err := topo.Sort(g)
	if err != nil {
		return nil, err
	}

	cond := g.Condense()
	k := cond.Graph.VertexCount()
	r := &runner{
		g:       g,
		cond:    cond,
		order:   order,
		members: make([][]int, k),
		dist:    make([]float64, k),
		start:   make([]float64, k),
		prev:    make([]int, k),
	}
	// topo.Sort keeps groups contiguous, so first appearance orders them.
	for _, v := range order {
		gid := cond.GroupOf[v]
		if len(r.members[gid]) == 0 {
			r.groups = append(r.groups, gid)
		}
		r.members[gid] = append(r.members[gid], v)
	}

	return r, nil
}

// forward fills dist and prev.
func (r *runner) forward() {
	cg := r.cond.Graph
	for _, gid := range r.groups {
		best, arg := 0.0, -1
		for _, p := range cg.Predecessors(gid) {
			if r.dist[p] > best {
				best, arg = r.dist[p], p
			}
		}
		r.dist[gid] = best + cg.Weight(gid)
		r.prev[gid] = arg
	}
}

// backward fills start on the reversed graph.
func (r *runner) backward() {
	cg := r.cond.Graph
	for i := len(r.groups) - 1; i >= 0; i-- {
		gid := r.groups[i]
		best := 0.0
		for _, s := range cg.Successors(gid) {
			if r.start[s] > best {
				best = r.start[s]
			}
		}
		r.start[gid] = best + cg.Weight(gid)
	}
}

// hopsInto fills hops per vertex over non-strict edges. The vertex order is a
// linear extension of those edges, group members included, so one pass
// suffices; a course whose only requisites are strict co-requisites stays 0.
func (r *runner) hopsInto(hops []int) {
	for _, v := range r.order {
		for _, u := range r.g.Predecessors(v) {
			if kind, _ := r.g.Kind(u, v); kind != core.StrictCo && hops[u]+1 > hops[v] {
				hops[v] = hops[u] + 1
			}
		}
	}
}
