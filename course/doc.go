// Package course defines the vertex records of a curriculum graph.
//
// What:
//
//   - Course: a single course with a credit-hour weight.
//   - Collection: a placeholder for a set of courses, any one of which may
//     fill that slot in a curriculum (e.g. "math general education").
//   - Item: the capability interface both satisfy. Every graph algorithm in
//     this module works only against Item: {ID, Credits, Requisites}.
//   - Requisite: Pre, Co, StrictCo.
//   - Metrics: the per-course metrics record written back by the metrics
//     calculator. Every field starts at -1 (uncomputed).
//
// Requisites are stored on the target course: AddRequisite(rc, tc, kind)
// records "rc is a kind-requisite of tc". Each mutation bumps the course's
// Revision so that curricula holding the course can detect staleness.
//
// Concurrency:
//
//	A course may belong to several curricula at once. Its requisite map,
//	metrics record and vertex index are guarded by a per-course mutex.
//
// Errors:
//
//   - ErrNilCourse          nil Item passed to a requisite helper.
//   - ErrRequisiteNotFound  DeleteRequisite on a missing requisite.
//   - ErrUnknownRequisite   ParseRequisite on an unknown name.
//   - ErrLengthMismatch     AddRequisites with unequal slices.
package course
