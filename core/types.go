// File: types.go
// Role: Graph and Edge types and the Build constructor.
//
// Determinism:
//   - Vertex ids follow the order of the items passed to Build.
//   - Requisites of each item are read in ascending id order.
package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/curricula/course"
)

// Edge is a requisite relation From→To: course From is a Kind-requisite of To.
type Edge struct {
	From int
	To   int
	Kind course.Requisite
}

// edgeKey addresses an edge by its endpoints.
type edgeKey struct{ from, to int }

// Graph is the immutable requisite graph of one set of courses.
//
// All slices returned by query methods are owned by the Graph and must not be
// modified by callers.
type Graph struct {
	ids     []string       // vertex → course id
	index   map[string]int // course id → vertex
	weights []float64      // vertex → credit hours

	succ  [][]int // succ[u] = sorted v with u→v
	pred  [][]int // pred[v] = sorted u with u→v
	kinds map[edgeKey]course.Requisite
	edges []Edge // sorted by (From, To)
}

// Build creates the requisite graph of items.
//
// Implementation:
//   - Stage 1: Assign dense vertex ids in slice order; reject nil items,
//     duplicate ids and invalid credit hours.
//   - Stage 2: For every target item, resolve each requisite id to a vertex
//     and record the edge requisite→target with its kind.
//   - Stage 3: Sort adjacency lists and the edge catalogue.
//
// Errors:
//   - course.ErrNilCourse (wrapped) for a nil item.
//   - *DuplicateCourseError, *InvalidCreditError, *DanglingRequisiteError.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func Build(items []course.Item) (*Graph, error) {
	n := len(items)
	g := &Graph{
		ids:     make([]string, n),
		index:   make(map[string]int, n),
		weights: make([]float64, n),
		succ:    make([][]int, n),
		pred:    make([][]int, n),
		kinds:   make(map[edgeKey]course.Requisite),
	}

	// Stage 1: vertices
	for v, it := range items {
		if it == nil {
			return nil, fmt.Errorf("core: item %d: %w", v, course.ErrNilCourse)
		}
		id := it.ID()
		if _, dup := g.index[id]; dup {
			return nil, &DuplicateCourseError{ID: id}
		}
		credits := it.Credits()
		if math.IsNaN(credits) || math.IsInf(credits, 0) || credits <= 0 {
			return nil, &InvalidCreditError{ID: id, Credits: credits}
		}
		g.ids[v] = id
		g.index[id] = v
		g.weights[v] = credits
	}

	// Stage 2: edges, requisite → target
	for v, it := range items {
		reqs := it.Requisites()
		reqIDs := make([]string, 0, len(reqs))
		for rid := range reqs {
			reqIDs = append(reqIDs, rid)
		}
		sort.Strings(reqIDs)

		for _, rid := range reqIDs {
			u, ok := g.index[rid]
			if !ok {
				return nil, &DanglingRequisiteError{Course: g.ids[v], Requisite: rid}
			}
			g.addEdge(u, v, reqs[rid])
		}
	}

	// Stage 3: canonical ordering
	g.finish()

	return g, nil
}

// addEdge records u→v of kind; duplicates are impossible because requisites
// are keyed by requisite id on the target.
func (g *Graph) addEdge(u, v int, kind course.Requisite) {
	g.succ[u] = append(g.succ[u], v)
	g.pred[v] = append(g.pred[v], u)
	g.kinds[edgeKey{u, v}] = kind
	g.edges = append(g.edges, Edge{From: u, To: v, Kind: kind})
}

// finish sorts adjacency lists and the edge catalogue.
func (g *Graph) finish() {
	for v := range g.succ {
		sort.Ints(g.succ[v])
		sort.Ints(g.pred[v])
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].From != g.edges[j].From {
			return g.edges[i].From < g.edges[j].From
		}

		return g.edges[i].To < g.edges[j].To
	})
}
