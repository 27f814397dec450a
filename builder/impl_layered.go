// SPDX-License-Identifier: MIT
// Package: curricula/builder
//
// impl_layered.go: Layered(terms, width): a term-by-term programme where every
// course of term t is a prerequisite of every course of term t+1.
//
// Indices are assigned term by term: term t holds indices t·width … t·width+width-1.
//
// Complexity: O(terms · width²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/curricula/course"
)

const methodLayered = "Layered"

// Layered returns a Constructor producing a complete layered DAG.
func Layered(terms, width int) Constructor {
	return func(s *Set, cfg config) error {
		if terms < 1 || width < 1 {
			return fmt.Errorf("%s: terms=%d width=%d: %w", methodLayered, terms, width, ErrTooFewCourses)
		}
		s.ensure(terms*width-1, cfg)
		for t := 0; t+1 < terms; t++ {
			for i := 0; i < width; i++ {
				for j := 0; j < width; j++ {
					if err := s.link(t*width+i, (t+1)*width+j, course.Pre, cfg); err != nil {
						return fmt.Errorf("%s: %w", methodLayered, err)
					}
				}
			}
		}

		return nil
	}
}
