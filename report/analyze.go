package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/curricula/curriculum"
	"gopkg.in/yaml.v3"
)

// Analyze computes metrics for c and collects the report data. Courses
// appear in vertex order.
func Analyze(c *curriculum.Curriculum) (*Analysis, error) {
	rep, err := c.ComputeMetrics()
	if err != nil {
		return nil, err
	}
	order, err := c.TopologicalSort()
	if err != nil {
		return nil, err
	}
	lp, err := c.LongestPath()
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		ID:          c.ID(),
		Name:        c.Name(),
		Institution: c.Institution(),
		Credits:     c.Credits(),
		Order:       order,
		LongestPath: lp,
		Statistics:  rep.Statistics,
		Homology:    rep.Homology,
	}
	for v, it := range c.Courses() {
		a.Courses = append(a.Courses, CourseRow{
			ID:      it.ID(),
			Name:    it.Name(),
			Credits: it.Credits(),
			Metrics: rep.Courses[v],
		})
	}

	return a, nil
}

// Write renders a in format f. Mermaid needs the graph and is handled by
// WriteMermaid.
func Write(w io.Writer, f Format, a *Analysis) error {
	switch f {
	case JSON:
		return WriteJSON(w, a)
	case YAML:
		return WriteYAML(w, a)
	case Text:
		return WriteText(w, a)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteJSON writes a as indented JSON.
func WriteJSON(w io.Writer, a *Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(a)
}

// WriteYAML writes a as YAML.
func WriteYAML(w io.Writer, a *Analysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return err
	}

	return enc.Close()
}
