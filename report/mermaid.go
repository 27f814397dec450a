package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/curriculum"
)

// WriteMermaid writes c's requisite graph as a Mermaid flowchart. Node ids
// are vertex ids (N0, N1, ...) since course ids need not be valid Mermaid
// identifiers. The longest path is highlighted when c validates.
func WriteMermaid(w io.Writer, c *curriculum.Curriculum) error {
	g, err := c.Graph()
	if err != nil {
		return err
	}
	onPath := make(map[int]bool)
	lp, err := c.LongestPath()
	switch {
	case err == nil:
		for _, id := range lp.Courses {
			v, _ := g.Index(id)
			onPath[v] = true
		}
	case !errors.Is(err, core.ErrCycleDetected):
		return err
	}

	node := func(v int) string { return fmt.Sprintf("N%d", v) }
	label := func(v int) string {
		name := g.ID(v)
		if it, ok := c.Course(name); ok && it.Name() != name {
			name += ": " + it.Name()
		}

		return strings.ReplaceAll(name, `"`, "'")
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	// 1. Nodes, strict co-requisite groups boxed
	cond := g.Condense()
	for gid, members := range cond.Members {
		if len(members) > 1 {
			fmt.Fprintf(&sb, "  subgraph G%d[\"%s\"]\n", gid, cond.Graph.ID(gid))
			for _, v := range members {
				fmt.Fprintf(&sb, "    %s[\"%s\"]\n", node(v), label(v))
			}
			sb.WriteString("  end\n")
			continue
		}
		fmt.Fprintf(&sb, "  %s[\"%s\"]\n", node(members[0]), label(members[0]))
	}

	// 2. Edges
	for _, e := range g.Edges() {
		arrow := "-->"
		switch e.Kind {
		case core.Co:
			arrow = "-.->"
		case core.StrictCo:
			arrow = "==>"
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", node(e.From), arrow, node(e.To))
	}

	// 3. Longest path
	if len(onPath) > 0 {
		sb.WriteString("  classDef critical stroke:#d33,stroke-width:3px\n")
		ids := make([]string, 0, len(onPath))
		for v := 0; v < g.VertexCount(); v++ {
			if onPath[v] {
				ids = append(ids, node(v))
			}
		}
		fmt.Fprintf(&sb, "  class %s critical\n", strings.Join(ids, ","))
	}

	_, err = io.WriteString(w, sb.String())

	return err
}
