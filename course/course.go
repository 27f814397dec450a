package course

import (
	"hash/fnv"
	"strconv"
)

// Course is a single course in a curriculum.
type Course struct {
	record

	prefix      string
	num         string
	crossListed []*Course
}

// compile-time check
var _ Item = (*Course)(nil)

// NewCourse creates a course worth credits credit hours.
// Without WithID the identifier is derived by ID(prefix, num, name, institution).
func NewCourse(name string, credits float64, opts ...Option) *Course {
	a := applyOptions(opts)
	if a.id == "" {
		a.id = ID(a.prefix, a.num, name, a.institution)
	}

	return &Course{
		record: newRecord(name, credits, a),
		prefix: a.prefix,
		num:    a.num,
	}
}

// Prefix returns the department prefix.
func (c *Course) Prefix() string { return c.prefix }

// Num returns the course number.
func (c *Course) Num() string { return c.num }

// CrossListed returns the courses cross-listed with c.
func (c *Course) CrossListed() []*Course { return c.crossListed }

// AddCrossListed records courses offered as c under another listing.
func (c *Course) AddCrossListed(others ...*Course) {
	c.crossListed = append(c.crossListed, others...)
}

// ID derives a stable course identifier from its descriptive fields.
// The same four strings always produce the same identifier.
func ID(prefix, num, name, institution string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name + prefix + num + institution))

	return strconv.FormatUint(h.Sum64(), 16)
}
