// Package curricula is an in-memory engine for analysing the requisite
// structure of academic curricula.
//
// 🚀 What is curricula?
//
//	A curriculum is a directed graph: courses are vertices weighted by credit
//	hours, requisites are typed edges (pre, co, strict co). On top of it:
//		• Structure: build, validate (cycle detection), classify edges
//		• Orderings: topological sort with strict co-requisite groups kept together
//		• Reachability: courses gated / required, restricted to a subgraph
//		• Paths: all simple paths (lazy), longest weighted path
//		• Metrics: blocking factor, delay factor, centrality, complexity,
//		  requisite distance, plus statistics and homology
//
// ✨ Why this layout?
//
//   - One package per concern, each usable on its own against *core.Graph
//   - Deterministic: every traversal visits vertices in insertion order
//   - The curriculum facade caches derived data and rebuilds on change
//
// Subpackages:
//
//	course/         Course, Collection, requisite kinds, per-course metrics record
//	core/           immutable requisite graph, strict co-requisite condensation, errors
//	dfs/            edge classification, validation, all-paths enumeration
//	topo/           Kahn topological order
//	bfs/            reachability, weakly connected components
//	longestpath/    longest credit-weighted paths on the DAG
//	metrics/        per-course metrics, statistics, homology
//	curriculum/     id-based facade with a revision-stamped cache
//	builder/        synthetic curricula for tests and benchmarks
//	loader/         YAML, TOML, JSON and HCL definition files
//	report/         JSON, YAML, text and Mermaid output
//	cmd/curricula   command-line interface
//
// Quick example:
//
//	A ──▶ B ──▶ C ──▶ D
//	└───────────▲
//
//	a := course.NewCourse("A", 3, course.WithID("A"))
//	...
//	c, _ := curriculum.New("Example", []course.Item{a, b, cc, d})
//	order, _ := c.TopologicalSort()   // [A B C D]
//	rep, _ := c.ComputeMetrics()      // rep.Courses[0].BlockingFactor == 3
package curricula
