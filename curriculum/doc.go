// Package curriculum is the id-based facade over a set of courses and the
// analyses derived from their requisite graph.
//
// A Curriculum owns an ordered course list (insertion order is vertex order)
// and the course id → vertex id index. Every query builds, or reuses, one
// cached snapshot:
//
//	graph      core.Build over the current courses
//	validated  dfs.Validate
//	order      topo.Sort
//	table      longestpath.LongestPaths
//	report     metrics.Compute
//
// The snapshot is stamped with the curriculum revision plus the revision of
// every course. Mutating the curriculum, or any of its courses directly
// through the course package, changes the stamp and the next query rebuilds.
// Derived values are computed at most once per snapshot.
//
// All methods are safe for concurrent use.
package curriculum
