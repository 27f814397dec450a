// Package dfs implements depth-first algorithms over a core.Graph:
// edge classification, structural validation and simple-path enumeration.
//
// What:
//
//   - Classify: DFS forest over every vertex labelling each edge Tree,
//     Forward, Back or Cross. Roots are the sources (no incoming requisite)
//     in insertion order, then any vertex still unvisited (vertices that sit
//     only on cycles) in insertion order. Successors are explored ascending.
//   - Validate: rejects requisite structures with a true cycle. Strict
//     co-requisite edges are removed first, so mutual strict co-requisites
//     are tolerated; a second pass checks the graph with strict co-requisite
//     groups merged, because merging can close a cycle of its own.
//   - AllPaths: lazy iter.Seq of every simple path u ⇝ v.
//   - SourceSinkPaths: lazy iter.Seq of every simple path from a source to a sink.
//
// Vertex colouring follows the classic scheme: White (undiscovered), Gray
// (on the recursion stack), Black (finished). An edge into a Gray vertex is a
// back edge; into a Black vertex it is forward when the target was discovered
// after the source, cross otherwise.
//
// Complexity:
//
//   - Classify, Validate: Time O(V + E), Memory O(V)
//   - AllPaths:           Time O(P·V) for P paths, Memory O(V)
//
// Errors:
//
//   - core.ErrNilGraph           graph pointer is nil
//   - core.ErrVertexOutOfRange   path endpoint not in graph
//   - *core.CycleDetectedError   Validate found a cycle (errors.Is core.ErrCycleDetected)
package dfs
