// SPDX-License-Identifier: MIT
// Package: curricula/builder
//
// impl_random.go: RandomDAG(n, p): each ordered pair (i, j) with i < j becomes a
// prerequisite with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewCourses), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run i asc, j asc, so a fixed seed fixes the outcome.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/curricula/course"
)

const methodRandomDAG = "RandomDAG"

// RandomDAG returns a Constructor sampling an acyclic requisite structure.
func RandomDAG(n int, p float64) Constructor {
	return func(s *Set, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomDAG, n, ErrTooFewCourses)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomDAG, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
		}
		s.ensure(n-1, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					if err := s.link(i, j, course.Pre, cfg); err != nil {
						return fmt.Errorf("%s: %w", methodRandomDAG, err)
					}
				}
			}
		}

		return nil
	}
}

// StrictPairs returns a Constructor joining courses (2k, 2k+1) for k < pairs
// with a strict co-requisite, in both directions when mutual is true.
func StrictPairs(pairs int, mutual bool) Constructor {
	return func(s *Set, cfg config) error {
		if pairs < 1 {
			return fmt.Errorf("StrictPairs: pairs=%d < min=1: %w", pairs, ErrTooFewCourses)
		}
		for k := 0; k < pairs; k++ {
			if err := s.link(2*k, 2*k+1, course.StrictCo, cfg); err != nil {
				return fmt.Errorf("StrictPairs: %w", err)
			}
			if !mutual {
				continue
			}
			if err := s.link(2*k+1, 2*k, course.StrictCo, cfg); err != nil {
				return fmt.Errorf("StrictPairs: %w", err)
			}
		}

		return nil
	}
}
