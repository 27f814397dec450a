// Package builder provides ID schemes for generated courses.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a course identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "C" followed by the decimal index, e.g. 0→"C0".
func DefaultIDFn(idx int) string {
	return "C" + strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the Excel-style column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// CourseCodeIDFn returns an IDFn producing catalogue-style codes such as
// "MATH101", "MATH102", ... starting at number start.
func CourseCodeIDFn(prefix string, start int) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(start+idx)
	}
}
