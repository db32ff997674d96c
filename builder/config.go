// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil    (stochastic constructors fail with ErrNeedRandSource)
//   • maxDegree  = 0      (unbounded)
//   • minDegree  = 0      (no forced edges)
//   • maxRetries = 100    (RandomConnected / RandomRegular attempts)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Degree bounds for RandomConnected; 0 disables the upper bound.
	maxDegree int
	minDegree int
	// Attempts before a stochastic constructor gives up.
	maxRetries int
}

const defaultMaxRetries = 100

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
