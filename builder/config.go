// SPDX-License-Identifier: MIT
// Package: curricula/builder
//
// config.go: builder configuration and deterministic defaults.
//
// Defaults:
//   • idFn     = DefaultIDFn ("C0","C1",...)
//   • rng      = nil (pure unless seeded)
//   • creditFn = constant 3 credit hours

package builder

import "math/rand"

// defaultCredits is the credit-hour weight of generated courses.
const defaultCredits = 3.0

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	creditFn func(idx int, rng *rand.Rand) float64
}

// Option customises fixture generation.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     DefaultIDFn,
		creditFn: func(int, *rand.Rand) float64 { return defaultCredits },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed installs a deterministic random source for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme sets the course id generator. A nil fn keeps the default.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithCredits gives every generated course the same credit hours.
func WithCredits(credits float64) Option {
	return func(c *config) {
		c.creditFn = func(int, *rand.Rand) float64 { return credits }
	}
}

// WithCreditFn computes credit hours per course index. rng is nil unless
// WithSeed was applied.
func WithCreditFn(fn func(idx int, rng *rand.Rand) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.creditFn = fn
		}
	}
}
