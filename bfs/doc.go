// Package bfs provides breadth-first reachability over a core.Graph.
//
// A requisite edge u→v reads "u is a requisite of v". Walking Forward from a
// course finds every course it gates (directly or transitively); walking
// Backward finds every course it requires.
//
// What:
//
//   - BFS: single-source walk returning visit order, depth and parent links.
//   - ReachableFrom / ReachableTo: the reachable vertex set, start excluded,
//     sorted ascending.
//   - WithSubgraph: restrict any walk to the subgraph induced by a vertex set;
//     only edges with both endpoints inside are followed.
//   - Reach: union of ReachableTo over a vertex set.
//   - Components: weakly connected components (edge direction ignored).
//
// Only set membership is tracked; path lengths belong to package longestpath.
//
// Complexity: Time O(V + E), Memory O(V) per walk.
//
// Errors:
//
//   - core.ErrNilGraph         graph pointer is nil
//   - ErrStartVertexNotFound   start vertex id out of range
//   - ErrOutsideSubgraph       start vertex not in the WithSubgraph set
//   - ErrOptionViolation       invalid option (e.g. negative depth)
package bfs
