// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX).
//   • Implementations attach context with %w: "Cycle: n=2 < min=3: %w".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates an input the constructor cannot realize
// (nil constructor, self-loop chord, negative vertex).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrRetriesExhausted indicates that a stochastic constructor used up its
// attempts without producing a valid topology.
var ErrRetriesExhausted = errors.New("builder: retries exhausted")

// ErrBadTopology indicates a topology spec ParseTopology cannot read.
var ErrBadTopology = errors.New("builder: bad topology spec")

// ErrBadEdgeList indicates malformed edge-list input.
var ErrBadEdgeList = errors.New("builder: malformed edge list")
