// File: methods.go
// Role: read-only queries over a built Graph.
//
// Concurrency:
//   - A Graph is never mutated after Build/Filter/Condense; all queries are
//     safe for concurrent use.
package core

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Has reports whether v is a valid vertex id.
func (g *Graph) Has(v int) bool { return v >= 0 && v < len(g.ids) }

// Successors returns the sorted vertices w with v→w (courses v is a requisite of).
func (g *Graph) Successors(v int) []int { return g.succ[v] }

// Predecessors returns the sorted vertices u with u→v (requisites of v).
func (g *Graph) Predecessors(v int) []int { return g.pred[v] }

// Kind returns the requisite kind of u→v and whether the edge exists.
func (g *Graph) Kind(u, v int) (kind Requisite, ok bool) {
	kind, ok = g.kinds[edgeKey{u, v}]

	return kind, ok
}

// ID returns the course id of vertex v.
func (g *Graph) ID(v int) string { return g.ids[v] }

// IDs maps vertex ids to course ids, preserving order.
func (g *Graph) IDs(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = g.ids[v]
	}

	return out
}

// Index returns the vertex id of course id.
func (g *Graph) Index(id string) (int, bool) {
	v, ok := g.index[id]

	return v, ok
}

// Weight returns the credit hours of vertex v.
func (g *Graph) Weight(v int) float64 { return g.weights[v] }

// Edges returns a copy of the edge catalogue sorted by (From, To).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Sources returns the vertices with no incoming edge, ascending.
func (g *Graph) Sources() []int {
	var out []int
	for v := range g.ids {
		if len(g.pred[v]) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// Sinks returns the vertices with no outgoing edge, ascending.
func (g *Graph) Sinks() []int {
	var out []int
	for v := range g.ids {
		if len(g.succ[v]) == 0 {
			out = append(out, v)
		}
	}

	return out
}
