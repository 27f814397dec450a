package course

import "strconv"

// Collection is a placeholder slot that any one of its courses can fill.
// For analytics it behaves like a course worth Credits() credit hours.
type Collection struct {
	record

	courses []*Course
}

// compile-time check
var _ Item = (*Collection)(nil)

// NewCollection creates a collection slot worth credits credit hours.
// Without WithID the identifier is derived from name, institution and size.
func NewCollection(name string, credits float64, courses []*Course, opts ...Option) *Collection {
	a := applyOptions(opts)
	if a.id == "" {
		a.id = ID("", strconv.Itoa(len(courses)), name, a.institution)
	}

	return &Collection{
		record:  newRecord(name, credits, a),
		courses: append([]*Course(nil), courses...),
	}
}

// Courses returns the member courses.
func (c *Collection) Courses() []*Course {
	return append([]*Course(nil), c.courses...)
}
