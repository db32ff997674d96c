// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxDegree caps vertex degrees in RandomConnected. Panics if d < 1.
func WithMaxDegree(d int) BuilderOption {
	if d < 1 {
		panic("builder: WithMaxDegree(d<1)")
	}
	return func(c *builderConfig) {
		c.maxDegree = d
	}
}

// WithMinDegree makes RandomConnected add every admissible edge at a vertex
// until it reaches degree d, regardless of the density. Panics if d < 0.
func WithMinDegree(d int) BuilderOption {
	if d < 0 {
		panic("builder: WithMinDegree(d<0)")
	}
	return func(c *builderConfig) {
		c.minDegree = d
	}
}

// WithMaxRetries bounds the attempts of stochastic constructors.
// Panics if n < 1.
func WithMaxRetries(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRetries(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRetries = n
	}
}
