package bfs

import "github.com/katalvlaran/curricula/core"

// Components returns the weakly connected components of g: edge direction
// is ignored. Each component lists its vertices in BFS order; components are
// ordered by their smallest vertex.
//
// Time O(V + E), Memory O(V).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	var comps [][]int

	for v0 := 0; v0 < n; v0++ {
		if seen[v0] {
			continue
		}
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, nbrs := range [][]int{g.Successors(u), g.Predecessors(u)} {
				for _, w := range nbrs {
					if !seen[w] {
						seen[w] = true
						queue = append(queue, w)
					}
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
