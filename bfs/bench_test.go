package bfs_test

import (
	"testing"

	"github.com/katalvlaran/curricula/bfs"
	"github.com/katalvlaran/curricula/builder"
	"github.com/katalvlaran/curricula/course"
)

// BenchmarkReachableFrom_Chain measures forward reachability on a chain of N courses.
func BenchmarkReachableFrom_Chain(b *testing.B) {
	const N = 10000
	g := build(b, nil, builder.Chain(N, course.Pre))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ReachableFrom(g, 0)
	}
}

// BenchmarkReach_Layered unions the requisites of the final term of a 10×10 programme.
func BenchmarkReach_Layered(b *testing.B) {
	g := build(b, nil, builder.Layered(10, 10))
	last := []int{90, 91, 92, 93, 94, 95, 96, 97, 98, 99}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Reach(g, last)
	}
}
