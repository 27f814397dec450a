// Package metrics derives curriculum complexity measures from a requisite
// graph.
//
// Per course v:
//
//   - blocking factor    = |bfs.ReachableFrom(v)|, the courses v gates.
//   - delay factor       = weight of the longest path through v.
//   - requisite distance = edges on the longest requisite chain into v.
//   - centrality         = Σ length of every source→sink path on which v is
//     neither the first nor the last course. Path length counts courses.
//   - complexity         = blocking factor + delay factor.
//
// Strict co-requisite groups are merged for delay factor, requisite distance
// and centrality: members share their group's values, and a group on a path
// contributes all of its members to the path's length. Blocking factor uses
// every edge, so a course gates its strict co-requisite partner.
//
// Curriculum-wide, Statistics aggregates each metric (count, total, min, max,
// mean, per-course detail) and Homology summarises the structure: weakly
// connected components, sources, sinks, merged strict co-requisite pairs and
// the independent cycles those pairs form.
//
// Compute validates the graph first and returns no partial results on error.
package metrics
