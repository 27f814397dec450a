package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to one of them.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrVertexOutOfRange indicates a vertex id outside 0..V-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrDuplicateCourse indicates two items resolve to the same course id.
	ErrDuplicateCourse = errors.New("core: duplicate course")

	// ErrDanglingRequisite indicates a requisite references an absent course.
	ErrDanglingRequisite = errors.New("core: dangling requisite")

	// ErrInvalidCredit indicates a non-positive or NaN credit-hour weight.
	ErrInvalidCredit = errors.New("core: invalid credit hours")

	// ErrCycleDetected indicates the requisite structure contains a cycle.
	ErrCycleDetected = errors.New("core: cycle detected")

	// ErrStaleCache indicates derived data was read after the curriculum changed.
	ErrStaleCache = errors.New("core: stale cache")
)

// DuplicateCourseError reports two items with the same id.
type DuplicateCourseError struct {
	ID string
}

func (e *DuplicateCourseError) Error() string {
	return fmt.Sprintf("core: duplicate course %q", e.ID)
}

func (e *DuplicateCourseError) Unwrap() error { return ErrDuplicateCourse }

// DanglingRequisiteError reports that Course lists Requisite, which is not
// part of the curriculum.
type DanglingRequisiteError struct {
	Course    string
	Requisite string
}

func (e *DanglingRequisiteError) Error() string {
	return fmt.Sprintf("core: course %q requires %q, which is not in the curriculum", e.Course, e.Requisite)
}

func (e *DanglingRequisiteError) Unwrap() error { return ErrDanglingRequisite }

// InvalidCreditError reports a course whose credit hours cannot weight a path.
type InvalidCreditError struct {
	ID      string
	Credits float64
}

func (e *InvalidCreditError) Error() string {
	return fmt.Sprintf("core: course %q has invalid credit hours %v", e.ID, e.Credits)
}

func (e *InvalidCreditError) Unwrap() error { return ErrInvalidCredit }

// CycleDetectedError carries the course ids of an offending cycle, in path
// order when the cycle was found by traversal.
type CycleDetectedError struct {
	Courses []string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("core: cycle detected among courses [%s]", strings.Join(e.Courses, ", "))
}

func (e *CycleDetectedError) Unwrap() error { return ErrCycleDetected }

// StaleCacheError reports derived data stamped Have while the source is at Want.
type StaleCacheError struct {
	Have uint64
	Want uint64
}

func (e *StaleCacheError) Error() string {
	return fmt.Sprintf("core: stale cache (revision %d, current %d)", e.Have, e.Want)
}

func (e *StaleCacheError) Unwrap() error { return ErrStaleCache }
