// SPDX-License-Identifier: MIT
// Package builder generates deterministic curriculum fixtures: ordered sets
// of course.Item values wired with requisites, ready for core.Build or
// curriculum.New.
//
// One orchestrator, many constructors:
//
//	items, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithIDScheme(builder.ExcelColumnIDFn)},
//		builder.Chain(4, course.Pre),         // A→B→C→D
//		builder.RandomDAG(20, 0.2),           // extra edges among 20 courses
//	)
//
// Constructors share one course set. A course id produced twice refers to the
// same course, so constructors compose (a Chain over ids 0..3 followed by a
// Layered over ids 0..7 adds requisites among the same first four courses).
//
// Determinism: equal options, seed and constructor order yield equal fixtures.
// Requisites only ever point from a lower index to a higher index unless a
// constructor states otherwise, so fixtures are acyclic by construction.
package builder
