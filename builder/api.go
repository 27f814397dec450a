// SPDX-License-Identifier: MIT
// Package: curricula/builder
//
// api.go: public entry point and the shared course set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/curricula/course"
)

// Constructor adds courses and requisites to the shared set.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
type Constructor func(s *Set, cfg config) error

// Set is the ordered course collection under construction.
type Set struct {
	items []course.Item
	byIdx map[int]*course.Course
}

// Build resolves options and applies constructors in order.
// Constructor errors are wrapped as "builder: Build: %w".
func Build(opts []Option, cons ...Constructor) ([]course.Item, error) {
	cfg := newConfig(opts...)
	s := &Set{byIdx: make(map[int]*course.Course)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return s.items, nil
}

// ensure returns the course at idx, creating it (and any missing lower
// indices) on first use so insertion order always matches index order.
func (s *Set) ensure(idx int, cfg config) *course.Course {
	for i := len(s.items); i <= idx; i++ {
		id := cfg.idFn(i)
		c := course.NewCourse(id, cfg.creditFn(i, cfg.rng), course.WithID(id))
		s.items = append(s.items, c)
		s.byIdx[i] = c
	}

	return s.byIdx[idx]
}

// link records course index from as a kind-requisite of course index to.
func (s *Set) link(from, to int, kind course.Requisite, cfg config) error {
	rc, tc := s.ensure(from, cfg), s.ensure(to, cfg)
	if rc == nil || tc == nil {
		return fmt.Errorf("link %d→%d: missing course: %w", from, to, ErrConstructFailed)
	}
	if err := course.AddRequisite(rc, tc, kind); err != nil {
		return fmt.Errorf("link %d→%d: %w", from, to, err)
	}

	return nil
}

// Len returns the number of courses created so far.
func (s *Set) Len() int { return len(s.items) }
