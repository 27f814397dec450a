package core

import "github.com/katalvlaran/curricula/course"

// Requisite is an alias of course.Requisite so algorithm packages can filter
// edges without importing course.
type Requisite = course.Requisite

// Requisite kinds, re-exported.
const (
	Pre      = course.Pre
	Co       = course.Co
	StrictCo = course.StrictCo
)

// NonStrict keeps every edge except strict co-requisites. Use with Filter.
func NonStrict(e Edge) bool { return e.Kind != StrictCo }

// StrictOnly keeps only strict co-requisite edges. Use with Filter.
func StrictOnly(e Edge) bool { return e.Kind == StrictCo }
