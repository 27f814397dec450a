package topo

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/curricula/core"
)

// Sort returns a total order of g's vertices in which u precedes v for every
// Pre or Co edge u→v between different strict co-requisite groups, and every
// group occupies a contiguous run.
func Sort(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	// 1. Order the groups
	cond := g.Condense()
	all := make([]bool, cond.Graph.VertexCount())
	for i := range all {
		all[i] = true
	}
	groups, rest := kahn(cond.Graph, all, nil)
	if len(rest) > 0 {
		return nil, cycleError(g, cond.Expand(rest))
	}

	// 2. Expand each group in intra-group order
	order := make([]int, 0, g.VertexCount())
	inGroup := make([]bool, g.VertexCount())
	for _, gid := range groups {
		members := cond.Members[gid]
		if len(members) == 1 {
			v := members[0]
			if kind, loop := g.Kind(v, v); loop && kind != core.StrictCo {
				return nil, cycleError(g, members)
			}
			order = append(order, v)
			continue
		}
		for _, v := range members {
			inGroup[v] = true
		}
		part, rest := kahn(g, inGroup, core.NonStrict)
		for _, v := range members {
			inGroup[v] = false
		}
		if len(rest) > 0 {
			return nil, cycleError(g, rest)
		}
		order = append(order, part...)
	}

	return order, nil
}

// kahn orders the vertices v with in[v] using the edges between them that
// keep accepts (all edges when keep is nil). It returns the order and the
// vertices left over because they sit on or behind a cycle.
func kahn(g *core.Graph, in []bool, keep func(core.Edge) bool) (order, rest []int) {
	n := g.VertexCount()
	accept := func(u, v int) bool {
		if !in[u] || !in[v] {
			return false
		}
		if keep == nil {
			return true
		}
		kind, _ := g.Kind(u, v)

		return keep(core.Edge{From: u, To: v, Kind: kind})
	}

	// 1. In-degrees
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		if !in[v] {
			continue
		}
		for _, u := range g.Predecessors(v) {
			if accept(u, v) {
				indeg[v]++
			}
		}
	}

	// 2. Seed with zero in-degree vertices
	h := &minHeap{}
	for v := 0; v < n; v++ {
		if in[v] && indeg[v] == 0 {
			*h = append(*h, v)
		}
	}
	heap.Init(h)

	// 3. Remove repeatedly, smallest id first
	for h.Len() > 0 {
		u := heap.Pop(h).(int)
		order = append(order, u)
		for _, v := range g.Successors(u) {
			if !accept(u, v) {
				continue
			}
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(h, v)
			}
		}
	}

	// 4. Leftovers
	for v := 0; v < n; v++ {
		if in[v] && indeg[v] > 0 {
			rest = append(rest, v)
		}
	}

	return order, rest
}

// cycleError names the vertices that could not be ordered.
func cycleError(g *core.Graph, vs []int) error {
	vs = append([]int(nil), vs...)
	sort.Ints(vs)

	return &core.CycleDetectedError{Courses: g.IDs(vs)}
}

// Position returns, for each vertex, its index in order. Vertices missing
// from order map to -1.
func Position(n int, order []int) []int {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range order {
		pos[v] = i
	}

	return pos
}
