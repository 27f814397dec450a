package metrics

import (
	"errors"

	"github.com/katalvlaran/curricula/course"
)

// ErrTooManyPaths is returned when centrality enumeration exceeds WithMaxPaths.
var ErrTooManyPaths = errors.New("metrics: too many source-sink paths")

// Summary aggregates one metric over all courses.
type Summary struct {
	Count     int                `json:"count" yaml:"count"`
	Total     float64            `json:"total" yaml:"total"`
	Min       float64            `json:"min" yaml:"min"`
	Max       float64            `json:"max" yaml:"max"`
	Mean      float64            `json:"mean" yaml:"mean"`
	PerCourse map[string]float64 `json:"per_course" yaml:"per_course"`
}

// Statistics are the curriculum-wide aggregates.
type Statistics struct {
	Vertices int `json:"vertices" yaml:"vertices"`
	Edges    int `json:"edges" yaml:"edges"`

	BlockingFactor    Summary `json:"blocking_factor" yaml:"blocking_factor"`
	DelayFactor       Summary `json:"delay_factor" yaml:"delay_factor"`
	Centrality        Summary `json:"centrality" yaml:"centrality"`
	Complexity        Summary `json:"complexity" yaml:"complexity"`
	RequisiteDistance Summary `json:"requisite_distance" yaml:"requisite_distance"`

	// CurricularComplexity is the sum of all course complexities.
	CurricularComplexity float64 `json:"curricular_complexity" yaml:"curricular_complexity"`
}

// Homology summarises the structural shape of a curriculum.
type Homology struct {
	// Components counts weakly connected components.
	Components int `json:"components" yaml:"components"`
	// Sources counts courses with no requisites.
	Sources int `json:"sources" yaml:"sources"`
	// Sinks counts courses nothing depends on.
	Sinks int `json:"sinks" yaml:"sinks"`
	// StrictPairs counts unordered course pairs joined by a strict co-requisite.
	StrictPairs int `json:"strict_pairs" yaml:"strict_pairs"`
	// StrictCycles counts independent cycles among strict co-requisite pairs.
	StrictCycles int `json:"strict_cycles" yaml:"strict_cycles"`
}

// Report is the full result of Compute.
type Report struct {
	// Courses holds one metrics record per vertex, indexed by vertex id.
	Courses    []course.Metrics `json:"courses" yaml:"courses"`
	Statistics Statistics       `json:"statistics" yaml:"statistics"`
	Homology   Homology         `json:"homology" yaml:"homology"`
}

// Option configures Compute.
type Option func(*options)

type options struct {
	maxPaths int
}

// WithMaxPaths caps the number of source→sink paths enumerated for
// centrality; exceeding it fails with ErrTooManyPaths. 0 means no cap.
func WithMaxPaths(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxPaths = n
		}
	}
}
