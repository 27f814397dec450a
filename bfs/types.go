// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/curricula/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOutsideSubgraph is returned when the start vertex is not part of the
	// WithSubgraph vertex set.
	ErrOutsideSubgraph = errors.New("bfs: start vertex outside subgraph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Direction selects which way edges are followed.
type Direction int

const (
	// Forward follows u→v from u to v: courses gated by the start.
	Forward Direction = iota
	// Backward follows u→v from v to u: requisites of the start.
	Backward
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Direction of travel; default Forward.
	Direction Direction

	// Subgraph, if non-nil, restricts the walk to vertices v with Subgraph[v].
	Subgraph []bool

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(e core.Edge) bool

	// subgraphIDs is resolved into Subgraph once the graph size is known.
	subgraphIDs []int
	err         error
}

// DefaultOptions returns forward traversal with no limits or filters.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Direction:  Forward,
		OnVisit:    func(int, int) error { return nil },
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithDirection sets the traversal direction.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		if d != Forward && d != Backward {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithSubgraph restricts traversal to the subgraph induced by vs.
func WithSubgraph(vs []int) Option {
	return func(o *BFSOptions) {
		o.subgraphIDs = append(make([]int, 0, len(vs)), vs...)
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false, e.g. core.NonStrict.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence (start first).
//   - Depth: distance in edges from the start, -1 if unreached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the BFS-tree path from the start vertex to dest.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	var path []int
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
