package dfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/curricula/builder"
	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/dfs"
)

// ExampleValidate shows a prerequisite loop being reported with its courses.
func ExampleValidate() {
	items, _ := builder.Build(
		[]builder.Option{builder.WithIDScheme(builder.CourseCodeIDFn("CS", 101))},
		builder.Chain(3, course.Pre),
		builder.Link(2, 0, course.Pre), // CS103 is a prerequisite of CS101
	)
	g, _ := core.Build(items)

	var cyc *core.CycleDetectedError
	if err := dfs.Validate(g); errors.As(err, &cyc) {
		fmt.Println(cyc.Courses)
	}
	// Output:
	// [CS101 CS102 CS103]
}

// ExampleAllPaths lists every requisite chain between two courses.
func ExampleAllPaths() {
	items, _ := builder.Build(
		[]builder.Option{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Link(0, 1, course.Pre),
		builder.Link(1, 2, course.Pre),
		builder.Link(0, 2, course.Co),
	)
	g, _ := core.Build(items)

	paths, _ := dfs.AllPaths(g, 0, 2)
	for p := range paths {
		fmt.Println(g.IDs(p))
	}
	// Output:
	// [A B C]
	// [A C]
}
