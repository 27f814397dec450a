// SPDX-License-Identifier: MIT
// Package: curricula/builder
//
// errors.go: sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewCourses indicates a size parameter below the constructor's minimum.
var ErrTooFewCourses = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrIndexOutOfRange indicates a constructor referenced a course index that
// has not been created.
var ErrIndexOutOfRange = errors.New("builder: course index out of range")
