package longestpath

import "slices"

// Path is a sequence of vertices and its total credit-hour weight.
type Path struct {
	Vertices []int
	Length   float64
}

// Table holds per-vertex longest-path quantities. Members of one strict
// co-requisite group share their group's weights; Hops is per vertex.
//
// A Table held by a cache may be shared: hand out Clone instead.
type Table struct {
	// EndingAt is the weight of the longest path ending at each vertex.
	EndingAt []float64

	// StartingAt is the weight of the longest path starting at each vertex.
	StartingAt []float64

	// Through is the weight of the longest path passing through each vertex.
	Through []float64

	// Hops is the number of pre and co edges on the longest requisite chain
	// ending at each vertex. Strict co-requisite edges count zero, so every
	// source has 0.
	Hops []int

	// Order is the topological order the table was computed in.
	Order []int
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	return &Table{
		EndingAt:   slices.Clone(t.EndingAt),
		StartingAt: slices.Clone(t.StartingAt),
		Through:    slices.Clone(t.Through),
		Hops:       slices.Clone(t.Hops),
		Order:      slices.Clone(t.Order),
	}
}
