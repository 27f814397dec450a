package dfs

import "github.com/katalvlaran/curricula/core"

// classifier holds the state of one DFS forest.
type classifier struct {
	graph *core.Graph
	state []int
	disc  []int // discovery time
	clock int
	stack []int // active recursion path
	out   []ClassifiedEdge
	cycle []int // vertices of the first back edge's cycle, path order
}

// Classify runs a DFS forest over g and labels every edge.
//
// Edges are returned in the order they were examined. Each call recomputes
// the forest; nothing is cached.
func Classify(g *core.Graph) ([]ClassifiedEdge, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return run(g).out, nil
}

// run drives the forest: sources first, then any leftover vertex.
func run(g *core.Graph) *classifier {
	n := g.VertexCount()
	c := &classifier{
		graph: g,
		state: make([]int, n),
		disc:  make([]int, n),
		stack: make([]int, 0, n),
		out:   make([]ClassifiedEdge, 0, g.EdgeCount()),
	}

	// 1. Roots at sources, insertion order
	for _, s := range g.Sources() {
		if c.state[s] == White {
			c.visit(s)
		}
	}
	// 2. Vertices reachable only through cycles
	for v := 0; v < n; v++ {
		if c.state[v] == White {
			c.visit(v)
		}
	}

	return c
}

// visit explores u recursively.
func (c *classifier) visit(u int) {
	// 1. Discover
	c.state[u] = Gray
	c.disc[u] = c.clock
	c.clock++
	c.stack = append(c.stack, u)

	// 2. Label each outgoing edge
	for _, w := range c.graph.Successors(u) {
		kind, _ := c.graph.Kind(u, w)
		e := ClassifiedEdge{From: u, To: w, Kind: kind}
		switch c.state[w] {
		case White:
			e.Class = Tree
			c.out = append(c.out, e)
			c.visit(w)
		case Gray:
			e.Class = Back
			c.out = append(c.out, e)
			if c.cycle == nil {
				c.cycle = append([]int(nil), c.stack[indexOf(c.stack, w):]...)
			}
		default:
			if c.disc[u] < c.disc[w] {
				e.Class = Forward
			} else {
				e.Class = Cross
			}
			c.out = append(c.out, e)
		}
	}

	// 3. Finish
	c.stack = c.stack[:len(c.stack)-1]
	c.state[u] = Black
}

// indexOf returns the position of v in s, or -1.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
