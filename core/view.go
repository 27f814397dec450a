// File: view.go
// Role: non-mutating views of a Graph (edge filtering, strict co-requisite condensation).
//
// Determinism:
//   - Filter keeps vertex ids unchanged.
//   - Condense numbers groups by their smallest member vertex, so group order
//     follows insertion order.
package core

import (
	"sort"
	"strings"
)

// GroupSeparator joins member course ids into a condensed vertex id.
const GroupSeparator = "+"

// Filter returns a graph with the same vertices and only the edges for which
// keep returns true. Vertex ids, course ids and weights are shared with g.
//
// Complexity: O(V + E).
func (g *Graph) Filter(keep func(Edge) bool) *Graph {
	out := &Graph{
		ids:     g.ids,
		index:   g.index,
		weights: g.weights,
		succ:    make([][]int, len(g.ids)),
		pred:    make([][]int, len(g.ids)),
		kinds:   make(map[edgeKey]Requisite),
	}
	for _, e := range g.edges {
		if keep(e) {
			out.addEdge(e.From, e.To, e.Kind)
		}
	}
	out.finish()

	return out
}

// Condensation is g with every strict co-requisite group merged into a single
// vertex. A group is a connected component of the strict co-requisite edges,
// direction ignored; a course with no strict co-requisite is a group of one.
type Condensation struct {
	// Graph has one vertex per group. Its vertex id is the group id, its course
	// id is the members' ids joined by GroupSeparator and its weight is the
	// members' total credit hours. It holds the non-strict edges between
	// distinct groups; when several member edges connect two groups the edge
	// is Pre if any of them is Pre.
	Graph *Graph

	// Members lists the original vertex ids of each group, ascending.
	Members [][]int

	// GroupOf maps an original vertex id to its group.
	GroupOf []int

	// Pairs is the number of unordered vertex pairs joined by a strict
	// co-requisite edge in either direction (self-loops excluded).
	Pairs int
}

// Condense merges strict co-requisite groups.
//
// Implementation:
//   - Stage 1: Union-find over strict co-requisite edges.
//   - Stage 2: Number groups by smallest member and collect members.
//   - Stage 3: Project non-strict edges onto groups, dropping intra-group edges.
//
// Complexity: O((V + E)·α(V)).
func (g *Graph) Condense() *Condensation {
	n := len(g.ids)

	// Stage 1: union-find
	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	var find func(int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}

		return v
	}
	pairs := make(map[edgeKey]struct{})
	for _, e := range g.edges {
		if e.Kind != StrictCo || e.From == e.To {
			continue
		}
		a, b := e.From, e.To
		if a > b {
			a, b = b, a
		}
		pairs[edgeKey{a, b}] = struct{}{}
		ra, rb := find(a), find(b)
		if ra == rb {
			continue
		}
		// keep the smaller vertex as root
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	// Stage 2: groups numbered by smallest member (roots are smallest members)
	c := &Condensation{GroupOf: make([]int, n), Pairs: len(pairs)}
	groupOfRoot := make(map[int]int)
	for v := 0; v < n; v++ {
		r := find(v)
		gid, ok := groupOfRoot[r]
		if !ok {
			gid = len(c.Members)
			groupOfRoot[r] = gid
			c.Members = append(c.Members, nil)
		}
		c.GroupOf[v] = gid
		c.Members[gid] = append(c.Members[gid], v)
	}

	// Stage 3: condensed graph
	k := len(c.Members)
	cg := &Graph{
		ids:     make([]string, k),
		index:   make(map[string]int, k),
		weights: make([]float64, k),
		succ:    make([][]int, k),
		pred:    make([][]int, k),
		kinds:   make(map[edgeKey]Requisite),
	}
	for gid, members := range c.Members {
		names := make([]string, len(members))
		for i, v := range members {
			names[i] = g.ids[v]
			cg.weights[gid] += g.weights[v]
		}
		cg.ids[gid] = strings.Join(names, GroupSeparator)
		cg.index[cg.ids[gid]] = gid
	}
	projected := make(map[edgeKey]Requisite)
	for _, e := range g.edges {
		if e.Kind == StrictCo {
			continue
		}
		a, b := c.GroupOf[e.From], c.GroupOf[e.To]
		if a == b {
			continue
		}
		key := edgeKey{a, b}
		if prev, seen := projected[key]; !seen || (prev != Pre && e.Kind == Pre) {
			projected[key] = e.Kind
		}
	}
	keys := make([]edgeKey, 0, len(projected))
	for key := range projected {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}

		return keys[i].to < keys[j].to
	})
	for _, key := range keys {
		cg.addEdge(key.from, key.to, projected[key])
	}
	cg.finish()
	c.Graph = cg

	return c
}

// Expand maps group ids of the condensed graph to the original vertex ids of
// their members, preserving group order and member order.
func (c *Condensation) Expand(groups []int) []int {
	var out []int
	for _, gid := range groups {
		out = append(out, c.Members[gid]...)
	}

	return out
}
