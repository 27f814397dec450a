package course

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for course operations.
var (
	// ErrNilCourse indicates a nil Item was passed where a course is required.
	ErrNilCourse = errors.New("course: course is nil")

	// ErrRequisiteNotFound indicates DeleteRequisite referenced a requisite
	// that the target course does not have.
	ErrRequisiteNotFound = errors.New("course: requisite not found")

	// ErrUnknownRequisite indicates an unrecognised requisite kind name.
	ErrUnknownRequisite = errors.New("course: unknown requisite kind")

	// ErrLengthMismatch indicates AddRequisites got slices of different lengths.
	ErrLengthMismatch = errors.New("course: requisite courses and kinds differ in length")
)

// Requisite is the kind of a requisite edge rc → tc.
type Requisite int

const (
	// Pre: rc must be completed in a term strictly before tc.
	Pre Requisite = iota
	// Co: rc may be taken before tc or in the same term.
	Co
	// StrictCo: rc must be taken in the same term as tc.
	StrictCo
)

// String returns the canonical lower-case name: "pre", "co" or "strict_co".
func (r Requisite) String() string {
	switch r {
	case Pre:
		return "pre"
	case Co:
		return "co"
	case StrictCo:
		return "strict_co"
	default:
		return fmt.Sprintf("requisite(%d)", int(r))
	}
}

// ParseRequisite maps a name to a Requisite. Matching is case-insensitive and
// accepts "pre", "prereq", "prerequisite", "co", "coreq", "corequisite",
// "strict_co", "strict-co" and "strictco".
func ParseRequisite(s string) (Requisite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "prereq", "prerequisite":
		return Pre, nil
	case "co", "coreq", "corequisite":
		return Co, nil
	case "strict_co", "strict-co", "strictco":
		return StrictCo, nil
	}

	return Pre, fmt.Errorf("%w: %q", ErrUnknownRequisite, s)
}

// MarshalText encodes the requisite by name (used by YAML/TOML/JSON encoders).
func (r Requisite) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a requisite from its name.
func (r *Requisite) UnmarshalText(text []byte) error {
	parsed, err := ParseRequisite(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// uncomputed is the sentinel stored in every metric until computed.
const uncomputed = -1

// Metrics is the per-course metrics record.
type Metrics struct {
	// BlockingFactor counts the courses gated, directly or transitively, by this one.
	BlockingFactor int `json:"blocking_factor" yaml:"blocking_factor"`

	// DelayFactor is the weight of the longest requisite path through this course.
	DelayFactor float64 `json:"delay_factor" yaml:"delay_factor"`

	// Centrality sums the lengths of source→sink paths on which this course is interior.
	Centrality int `json:"centrality" yaml:"centrality"`

	// Complexity is BlockingFactor + DelayFactor.
	Complexity float64 `json:"complexity" yaml:"complexity"`

	// RequisiteDistance is the length (in edges) of the longest requisite chain into this course.
	RequisiteDistance int `json:"requisite_distance" yaml:"requisite_distance"`
}

// Uncomputed returns a Metrics record with every field set to -1.
func Uncomputed() Metrics {
	return Metrics{
		BlockingFactor:    uncomputed,
		DelayFactor:       uncomputed,
		Centrality:        uncomputed,
		Complexity:        uncomputed,
		RequisiteDistance: uncomputed,
	}
}

// Computed reports whether m holds calculated values rather than the sentinel.
func (m Metrics) Computed() bool {
	return m.BlockingFactor != uncomputed && m.Complexity != uncomputed
}

// Item is the uniform view over a Course or a Collection.
//
// The interface is sealed: only types in this package implement it, so the
// set of variants stays closed.
type Item interface {
	// ID returns the unique course identifier.
	ID() string
	// Name returns the human-readable name.
	Name() string
	// Credits returns the credit-hour weight used for path lengths.
	Credits() float64
	// Requisites returns a copy of the requisite map: requisite id → kind.
	Requisites() map[string]Requisite
	// Metrics returns the last metrics record written by SetMetrics.
	Metrics() Metrics
	// SetMetrics overwrites the metrics record.
	SetMetrics(m Metrics)
	// VertexID returns the vertex id of this course inside curriculumID's graph.
	VertexID(curriculumID string) (int, bool)
	// SetVertexID records the vertex id of this course inside curriculumID's graph.
	SetVertexID(curriculumID string, v int)
	// Revision is a monotonic counter bumped on every requisite mutation.
	Revision() uint64

	base() *record
}
