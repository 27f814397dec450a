package curriculum

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/longestpath"
	"github.com/katalvlaran/curricula/metrics"
)

var (
	// ErrCourseNotFound indicates a course id that is not part of the curriculum.
	ErrCourseNotFound = errors.New("curriculum: course not found")

	// ErrEmptyName indicates a curriculum created without a name.
	ErrEmptyName = errors.New("curriculum: name is empty")
)

// Curriculum is a named, ordered set of courses.
type Curriculum struct {
	mu sync.RWMutex // guards everything below

	id          string
	name        string
	institution string
	degreeType  string
	cip         string

	courses []course.Item
	index   map[string]int // course id → vertex id
	rev     uint64

	snap     *snapshot
	maxPaths int
	logger   *log.Logger
}

// Option configures a Curriculum.
type Option func(*Curriculum)

// WithID overrides the random default identifier.
func WithID(id string) Option {
	return func(c *Curriculum) {
		if id != "" {
			c.id = id
		}
	}
}

// WithLogger routes cache diagnostics to l. Nil keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(c *Curriculum) {
		if l != nil {
			c.logger = l
		}
	}
}

// ReachOption tunes a reachability query.
type ReachOption func(*reachConfig)

type reachConfig struct {
	depth int
}

// WithDepth stops a reachability query d requisite edges from the start.
// Zero means no limit; a negative d fails the query with bfs.ErrOptionViolation.
func WithDepth(d int) ReachOption {
	return func(r *reachConfig) { r.depth = d }
}

// WithInstitution records the offering institution.
func WithInstitution(name string) Option {
	return func(c *Curriculum) { c.institution = name }
}

// WithDegreeType records the awarded degree, e.g. "BS".
func WithDegreeType(t string) Option {
	return func(c *Curriculum) { c.degreeType = t }
}

// WithCIP records the Classification of Instructional Programs code.
func WithCIP(code string) Option {
	return func(c *Curriculum) { c.cip = code }
}

// WithMaxPaths caps centrality path enumeration, see metrics.WithMaxPaths.
func WithMaxPaths(n int) Option {
	return func(c *Curriculum) {
		if n >= 0 {
			c.maxPaths = n
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// snapshot is the derived data for one stamp. The graph is built eagerly;
// everything else on first use.
type snapshot struct {
	stamp uint64
	graph *core.Graph

	validateOnce sync.Once
	validateErr  error

	orderOnce sync.Once
	order     []int
	orderErr  error

	tableOnce sync.Once
	table     *longestpath.Table
	tableErr  error

	reportOnce sync.Once
	report     *metrics.Report
	reportErr  error
}

// Path is a course-id path with its total credit hours.
type Path struct {
	Courses []string `json:"courses" yaml:"courses"`
	Length  float64  `json:"length" yaml:"length"`
}
