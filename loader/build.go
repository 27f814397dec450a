package loader

import (
	"fmt"

	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/curriculum"
)

// Build turns d into a curriculum. opts are applied after the options
// derived from d, so callers may override the id or attach a logger.
func (d *Definition) Build(opts ...curriculum.Option) (*curriculum.Curriculum, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: missing curriculum name", ErrInvalidDefinition)
	}

	// 1. Courses
	items := make([]course.Item, 0, len(d.Courses))
	for i, cd := range d.Courses {
		if cd.Name == "" {
			return nil, fmt.Errorf("%w: course %d has no name", ErrInvalidDefinition, i)
		}
		items = append(items, cd.item())
	}

	// 2. Requisites by id, forward references allowed
	for i, cd := range d.Courses {
		for _, rd := range cd.Requisites {
			kind := course.Pre
			if rd.Kind != "" {
				k, err := course.ParseRequisite(rd.Kind)
				if err != nil {
					return nil, fmt.Errorf("loader: course %s: %w", items[i].ID(), err)
				}
				kind = k
			}
			if err := course.SetRequisiteByID(items[i], rd.ID, kind); err != nil {
				return nil, err
			}
		}
	}

	// 3. Curriculum
	all := []curriculum.Option{
		curriculum.WithID(d.ID),
		curriculum.WithInstitution(d.Institution),
		curriculum.WithDegreeType(d.DegreeType),
		curriculum.WithCIP(d.CIP),
	}

	return curriculum.New(d.Name, items, append(all, opts...)...)
}

func (cd CourseDef) options() []course.Option {
	return []course.Option{
		course.WithID(cd.ID),
		course.WithPrefix(cd.Prefix),
		course.WithNum(cd.Num),
		course.WithInstitution(cd.Institution),
		course.WithCollege(cd.College),
		course.WithDepartment(cd.Department),
		course.WithCanonicalName(cd.CanonicalName),
	}
}

func (cd CourseDef) item() course.Item {
	if len(cd.Members) == 0 {
		return course.NewCourse(cd.Name, cd.Credits, cd.options()...)
	}
	members := make([]*course.Course, 0, len(cd.Members))
	for _, m := range cd.Members {
		members = append(members, course.NewCourse(m.Name, m.Credits, m.options()...))
	}

	return course.NewCollection(cd.Name, cd.Credits, members, cd.options()...)
}

// FromCurriculum captures c as a definition, courses in vertex order and
// requisites sorted by id.
func FromCurriculum(c *curriculum.Curriculum) *Definition {
	d := &Definition{
		ID:          c.ID(),
		Name:        c.Name(),
		Institution: c.Institution(),
		DegreeType:  c.DegreeType(),
		CIP:         c.CIP(),
	}
	for _, it := range c.Courses() {
		d.Courses = append(d.Courses, courseDef(it))
	}

	return d
}
