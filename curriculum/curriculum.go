package curriculum

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
)

// New returns a curriculum holding items in order. It fails on a nil item or
// a repeated course id; requisites are not checked until the first query.
func New(name string, items []course.Item, opts ...Option) (*Curriculum, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	c := &Curriculum{
		id:     uuid.NewString(),
		name:   name,
		index:  make(map[string]int, len(items)),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, it := range items {
		if err := c.add(it); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ID returns the curriculum identifier.
func (c *Curriculum) ID() string { return c.id }

// Name returns the curriculum name.
func (c *Curriculum) Name() string { return c.name }

// Institution returns the offering institution.
func (c *Curriculum) Institution() string { return c.institution }

// DegreeType returns the awarded degree.
func (c *Curriculum) DegreeType() string { return c.degreeType }

// CIP returns the program classification code.
func (c *Curriculum) CIP() string { return c.cip }

// Len returns the number of courses.
func (c *Curriculum) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.courses)
}

// Credits returns the total credit hours of all courses.
func (c *Curriculum) Credits() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var sum float64
	for _, it := range c.courses {
		sum += it.Credits()
	}

	return sum
}

// Courses returns the courses in vertex order. The slice is a copy.
func (c *Curriculum) Courses() []course.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.courses)
}

// Course returns the course with id.
func (c *Curriculum) Course(id string) (course.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.index[id]
	if !ok {
		return nil, false
	}

	return c.courses[v], true
}

// VertexID returns the vertex id of course id.
func (c *Curriculum) VertexID(id string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.index[id]

	return v, ok
}

// Revision returns the current stamp: the curriculum revision plus every
// course revision. It never decreases.
func (c *Curriculum) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.stampLocked()
}

// AddCourse appends it as the next vertex.
func (c *Curriculum) AddCourse(it course.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.add(it); err != nil {
		return err
	}
	c.invalidate()

	return nil
}

// RemoveCourse removes course id and every requisite on it held by the
// remaining courses. Later courses shift down one vertex id.
func (c *Curriculum) RemoveCourse(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	removed := c.courses[v]
	c.courses = slices.Delete(c.courses, v, v+1)
	for _, it := range c.courses {
		if _, has := it.Requisites()[id]; has {
			if err := course.DeleteRequisiteByID(it, id); err != nil {
				return err
			}
		}
	}
	if cl, ok := removed.(interface{ ClearVertexID(string) }); ok {
		cl.ClearVertexID(c.id)
	}
	c.reindex()
	// retire the removed course's revisions so the stamp keeps growing
	c.rev += removed.Revision() + 1
	removed.SetMetrics(course.Uncomputed())
	c.invalidate()

	return nil
}

// AddRequisite records course requisiteID as a kind requisite of targetID.
func (c *Curriculum) AddRequisite(requisiteID, targetID string, kind course.Requisite) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rc, tc, err := c.pair(requisiteID, targetID)
	if err != nil {
		return err
	}
	if err = course.AddRequisite(rc, tc, kind); err != nil {
		return err
	}
	c.rev++
	c.invalidate()

	return nil
}

// RemoveRequisite deletes the requisite requisiteID from targetID.
func (c *Curriculum) RemoveRequisite(requisiteID, targetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rc, tc, err := c.pair(requisiteID, targetID)
	if err != nil {
		return err
	}
	if err = course.DeleteRequisite(rc, tc); err != nil {
		return err
	}
	c.rev++
	c.invalidate()

	return nil
}

func (c *Curriculum) add(it course.Item) error {
	if it == nil {
		return course.ErrNilCourse
	}
	if _, dup := c.index[it.ID()]; dup {
		return &core.DuplicateCourseError{ID: it.ID()}
	}
	c.index[it.ID()] = len(c.courses)
	c.courses = append(c.courses, it)
	c.rev++

	return nil
}

// invalidate drops derived data after a mutation: the snapshot and every
// metrics record written back by ComputeMetrics. Requires c.mu.
func (c *Curriculum) invalidate() {
	c.snap = nil
	for _, it := range c.courses {
		it.SetMetrics(course.Uncomputed())
	}
}

func (c *Curriculum) pair(requisiteID, targetID string) (rc, tc course.Item, err error) {
	r, ok := c.index[requisiteID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrCourseNotFound, requisiteID)
	}
	t, ok := c.index[targetID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrCourseNotFound, targetID)
	}

	return c.courses[r], c.courses[t], nil
}

func (c *Curriculum) reindex() {
	clear(c.index)
	for v, it := range c.courses {
		c.index[it.ID()] = v
	}
}

// stampLocked requires c.mu to be held.
func (c *Curriculum) stampLocked() uint64 {
	s := c.rev
	for _, it := range c.courses {
		s += it.Revision()
	}

	return s
}
