// Package longestpath computes weighted longest paths over an acyclic
// requisite graph.
//
// The weight of a path is the total credit hours of its courses. Strict
// co-requisite groups are merged first (core.Graph.Condense): a group counts
// once with its combined weight and is never split by a path.
//
// Recurrence, evaluated in topological order (package topo):
//
//	dist[v] = weight(v)                              if v has no predecessor
//	dist[v] = weight(v) + max{ dist[p] : p → v }     otherwise
//
// The arg-max predecessor is kept as a back-pointer (lowest vertex on ties),
// so the globally longest path is recovered by walking back from arg-max dist.
// The same recurrence on the reversed graph gives the longest path starting
// at each vertex, and
//
//	through[v] = dist[v] + start[v] − weight(v)
//
// is the longest path passing through v.
//
// Complexity:
//
//   - Time:  O((V + E) log V), dominated by the topological sort.
//   - Space: O(V).
//
// Errors:
//
//   - core.ErrNilGraph          if the graph pointer is nil.
//   - *core.CycleDetectedError  if the graph is not acyclic.
package longestpath
