package wilson

import (
	"errors"
	"math/rand"
)

// ErrRootNotLive indicates a root vertex that is out of range or has no
// incident edges in the current graph.
var ErrRootNotLive = errors.New("wilson: root vertex is not live")

// Option configures a Sampler at construction.
type Option func(*Sampler)

// WithRand makes the sampler draw from r. The caller keeps ownership and must
// not share r with another goroutine. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("wilson: WithRand(nil)")
	}
	return func(s *Sampler) { s.rng = r }
}

// WithSeed gives the sampler its own deterministic stream.
// seed == 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(s *Sampler) { s.rng = RandFromSeed(seed) }
}
