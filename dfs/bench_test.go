package dfs_test

import (
	"testing"

	"github.com/katalvlaran/curricula/builder"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/dfs"
)

// BenchmarkValidate_Chain10000 measures validation of a 10,000-course chain.
// Validation filters, classifies and condenses: O(V + E) each.
func BenchmarkValidate_Chain10000(b *testing.B) {
	g := build(b, builder.Chain(10000, course.Pre))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := dfs.Validate(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllPaths_Layered enumerates the 4⁴ paths of a 6-term, 4-wide programme.
func BenchmarkAllPaths_Layered(b *testing.B) {
	g := build(b, builder.Layered(6, 4))
	last := g.VertexCount() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, _ := dfs.AllPaths(g, 0, last)
		for range seq {
		}
	}
}
