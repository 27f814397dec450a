// SPDX-License-Identifier: MIT
// Package: curricula/builder
//
// impl_chain.go: Chain(n, kind): courses 0→1→…→n-1.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/curricula/course"
)

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain returns a Constructor linking courses 0..n-1 in sequence, each a
// kind-requisite of the next.
func Chain(n int, kind course.Requisite) Constructor {
	return func(s *Set, cfg config) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewCourses)
		}
		s.ensure(n-1, cfg)
		for i := 1; i < n; i++ {
			if err := s.link(i-1, i, kind, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
		}

		return nil
	}
}

// Link returns a Constructor adding a single requisite between two course
// indices. Unlike the other constructors it may create cycles; tests use it to
// inject them deliberately.
func Link(from, to int, kind course.Requisite) Constructor {
	return func(s *Set, cfg config) error {
		if from < 0 || to < 0 {
			return fmt.Errorf("Link: %d→%d: %w", from, to, ErrIndexOutOfRange)
		}
		if err := s.link(from, to, kind, cfg); err != nil {
			return fmt.Errorf("Link: %w", err)
		}

		return nil
	}
}
