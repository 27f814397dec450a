// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, depths and parent links.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/curricula/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from start.
// Returns core.ErrNilGraph, ErrStartVertexNotFound, ErrOutsideSubgraph or
// ErrOptionViolation for invalid input, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	if o.Subgraph != nil && !o.Subgraph[start] {
		return nil, fmt.Errorf("%w: %s", ErrOutsideSubgraph, g.ID(start))
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// resolve applies options and materialises the subgraph mask.
func resolve(g *core.Graph, opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.subgraphIDs != nil {
		o.Subgraph = make([]bool, g.VertexCount())
		for _, v := range o.subgraphIDs {
			if !g.Has(v) {
				return o, fmt.Errorf("%w: subgraph vertex %d out of range", ErrOptionViolation, v)
			}
			o.Subgraph[v] = true
		}
	}

	return o, nil
}

// enqueue marks v discovered at depth d from parent and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors queues each unseen neighbor allowed by direction,
// subgraph, edge filter and depth limit.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	neighbors := w.graph.Successors(item.v)
	if w.opts.Direction == Backward {
		neighbors = w.graph.Predecessors(item.v)
	}
	for _, nbr := range neighbors {
		if w.opts.Subgraph != nil && !w.opts.Subgraph[nbr] {
			continue
		}
		e := core.Edge{From: item.v, To: nbr}
		if w.opts.Direction == Backward {
			e.From, e.To = nbr, item.v
		}
		e.Kind, _ = w.graph.Kind(e.From, e.To)
		if !w.opts.FilterEdge(e) {
			continue
		}
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, next, item.v)
		}
	}
}

// ReachableFrom returns every vertex reachable from v by following edges
// forward (the courses v gates), excluding v, sorted ascending.
func ReachableFrom(g *core.Graph, v int, opts ...Option) ([]int, error) {
	return reachable(g, v, Forward, opts)
}

// ReachableTo returns every vertex from which v is reachable (the courses v
// requires), excluding v, sorted ascending.
func ReachableTo(g *core.Graph, v int, opts ...Option) ([]int, error) {
	return reachable(g, v, Backward, opts)
}

func reachable(g *core.Graph, v int, d Direction, opts []Option) ([]int, error) {
	all := append(append([]Option(nil), opts...), WithDirection(d))
	res, err := BFS(g, v, all...)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(res.Order))
	for _, w := range res.Order {
		if w != v {
			out = append(out, w)
		}
	}
	sort.Ints(out)

	return out, nil
}

// Reach returns the union of ReachableTo(v) over every v in vs, sorted.
func Reach(g *core.Graph, vs []int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	seen := make([]bool, g.VertexCount())
	for _, v := range vs {
		r, err := ReachableTo(g, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, u := range r {
			seen[u] = true
		}
	}
	var out []int
	for v, ok := range seen {
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}
