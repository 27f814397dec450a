// Package core builds the directed requisite graph of a curriculum and
// exposes it as an immutable, densely indexed structure.
//
// The Graph G = (V,E) has:
//
//   - one vertex per course.Item, numbered 0..V-1 in the order the items
//     were supplied (insertion order);
//   - one edge u→v per requisite "u is a requisite of v", tagged with its
//     course.Requisite kind (Pre, Co, StrictCo);
//   - a weight per vertex: the course's credit hours.
//
// Why a dense, immutable graph?
//
//   - Every algorithm downstream (dfs, topo, bfs, longestpath, metrics) is a
//     pure function of the graph; freezing it after Build makes those
//     functions safe to run without locks.
//   - Integer vertex ids make distance tables plain slices.
//   - Deterministic iteration: Successors, Predecessors and Edges are sorted
//     ascending by vertex id, so every traversal is reproducible.
//
// Core API:
//
//	Build(items []course.Item) (*Graph, error)  // O(V + E log E)
//	VertexCount(), EdgeCount()                  // O(1)
//	Successors(v), Predecessors(v)              // O(1), sorted, read-only
//	Kind(u, v) (course.Requisite, bool)         // O(1)
//	Index(id), ID(v), IDs(vs), Weight(v)        // O(1) / O(|vs|)
//	Edges()                                     // O(E), sorted by (From, To)
//	Sources(), Sinks()                          // O(V)
//	Filter(keep func(Edge) bool) *Graph         // O(E): same vertices, fewer edges
//	Condense() *Condensation                    // O(V + E): merge strict co-requisite groups
//
// Errors:
//
//	DuplicateCourseError    – two items share one id        (errors.Is ErrDuplicateCourse)
//	DanglingRequisiteError  – requisite id not in the items  (errors.Is ErrDanglingRequisite)
//	InvalidCreditError      – credit hours ≤ 0 or NaN        (errors.Is ErrInvalidCredit)
//	CycleDetectedError      – raised by dfs / topo           (errors.Is ErrCycleDetected)
//	StaleCacheError         – raised by curriculum           (errors.Is ErrStaleCache)
package core
