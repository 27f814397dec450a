package report

import (
	"errors"
	"strings"

	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/curriculum"
	"github.com/katalvlaran/curricula/metrics"
)

// ErrUnknownFormat indicates a report format that Write does not render.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names a report rendering.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	Text    Format = "text"
	Mermaid Format = "mermaid"
)

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, Text, Mermaid:
		return f, nil
	default:
		return "", errors.Join(ErrUnknownFormat, errors.New(s))
	}
}

// CourseRow is one course line of an Analysis.
type CourseRow struct {
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Credits float64        `json:"credits" yaml:"credits"`
	Metrics course.Metrics `json:"metrics" yaml:"metrics"`
}

// Analysis is everything a report shows about one curriculum.
type Analysis struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Institution string             `json:"institution,omitempty" yaml:"institution,omitempty"`
	Credits     float64            `json:"credits" yaml:"credits"`
	Courses     []CourseRow        `json:"courses" yaml:"courses"`
	Order       []string           `json:"order" yaml:"order"`
	LongestPath curriculum.Path    `json:"longest_path" yaml:"longest_path"`
	Statistics  metrics.Statistics `json:"statistics" yaml:"statistics"`
	Homology    metrics.Homology   `json:"homology" yaml:"homology"`
}
