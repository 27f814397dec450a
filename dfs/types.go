package dfs

import (
	"fmt"

	"github.com/katalvlaran/curricula/core"
)

// Vertex visitation states.
const (
	White = iota // not yet discovered
	Gray         // on the recursion stack
	Black        // fully explored
)

// EdgeClass labels an edge relative to one DFS forest.
type EdgeClass int

const (
	// Tree: the edge discovered its target.
	Tree EdgeClass = iota
	// Forward: target is a finished descendant reached by another tree path.
	Forward
	// Back: target is an ancestor still on the recursion stack (a cycle).
	Back
	// Cross: target is finished and lies in another subtree.
	Cross
)

// String returns "tree", "forward", "back" or "cross".
func (c EdgeClass) String() string {
	switch c {
	case Tree:
		return "tree"
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Cross:
		return "cross"
	default:
		return fmt.Sprintf("edgeclass(%d)", int(c))
	}
}

// ClassifiedEdge is one requisite edge with its DFS label.
type ClassifiedEdge struct {
	From  int
	To    int
	Kind  core.Requisite
	Class EdgeClass
}
