package dfs

import "github.com/katalvlaran/curricula/core"

// Validate checks the structural invariant of a requisite graph: with strict
// co-requisite edges removed the graph is acyclic, and it stays acyclic when
// each strict co-requisite group is merged into one vertex.
//
// On failure it returns *core.CycleDetectedError with the course ids on the
// first cycle found, in path order (merged groups are expanded to members).
func Validate(g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}

	// 1. Hard requisites only
	if c := run(g.Filter(core.NonStrict)); c.cycle != nil {
		return &core.CycleDetectedError{Courses: g.IDs(c.cycle)}
	}

	// 2. Strict co-requisite groups merged
	cond := g.Condense()
	if c := run(cond.Graph); c.cycle != nil {
		return &core.CycleDetectedError{Courses: g.IDs(cond.Expand(c.cycle))}
	}

	return nil
}

// BackEdges returns the back edges of Classify(g) restricted to non-strict
// requisites; an empty result means Validate's first check passes.
func BackEdges(g *core.Graph) ([]ClassifiedEdge, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	var out []ClassifiedEdge
	for _, e := range run(g.Filter(core.NonStrict)).out {
		if e.Class == Back {
			out = append(out, e)
		}
	}

	return out, nil
}
