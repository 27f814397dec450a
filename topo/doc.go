// Package topo orders the courses of a requisite graph so that every
// prerequisite and co-requisite precedes the course that needs it.
//
// Sort uses Kahn's algorithm: repeatedly remove a vertex with in-degree zero.
// Ties are broken by ascending insertion order (smallest vertex id first),
// which makes the output a deterministic function of the graph.
//
// Strict co-requisites carry no precedence; instead each strict co-requisite
// group is kept contiguous in the output. Sort therefore runs Kahn over the
// condensed graph (core.Graph.Condense) and expands every group into its
// members, ordering members by a second Kahn pass over the non-strict edges
// inside the group.
//
// Sort re-checks acyclicity independently of dfs.Validate: if vertices remain
// with non-zero in-degree once no more can be removed, it returns
// *core.CycleDetectedError naming them.
//
// Complexity: Time O((V + E) log V), Memory O(V).
package topo
