package approx

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned by Config.Validate and the Parse helpers.
	ErrInvalidConfig = errors.New("approx: invalid configuration")

	// ErrInvariant marks a bookkeeping violation that aborts a run.
	ErrInvariant = errors.New("approx: invariant violated")

	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("approx: graph is nil")

	// ErrConsumed is returned by a second call to Run.
	ErrConsumed = errors.New("approx: estimator already ran")
)

// ConvergenceMode selects the per-pivot stopping rule.
type ConvergenceMode int

const (
	// ConvergenceRatio stops when the buffer's max/min spread is small.
	ConvergenceRatio ConvergenceMode = iota
	// ConvergenceVariance stops when the buffer's coefficient of variation is small.
	ConvergenceVariance
	// ConvergenceConstant stops after a fixed number of samples.
	ConvergenceConstant
)

var convergenceNames = [...]string{"ratio", "variance", "constant"}

func (m ConvergenceMode) String() string {
	if m < 0 || int(m) >= len(convergenceNames) {
		return fmt.Sprintf("ConvergenceMode(%d)", int(m))
	}
	return convergenceNames[m]
}

// ParseConvergenceMode maps "ratio", "variance" or "constant"
// (case-insensitive) to a ConvergenceMode.
func ParseConvergenceMode(s string) (ConvergenceMode, error) {
	for i, name := range convergenceNames {
		if strings.EqualFold(s, name) {
			return ConvergenceMode(i), nil
		}
	}
	return 0, fmt.Errorf("ParseConvergenceMode: %q: %w", s, ErrInvalidConfig)
}

// CountMode is a pivot's permanent classification.
type CountMode int

const (
	ModeUnspecified CountMode = iota
	ModePresence              // pivot will be contracted
	ModeAbsence               // pivot will be removed
)

func (m CountMode) String() string {
	switch m {
	case ModeUnspecified:
		return "unspecified"
	case ModePresence:
		return "presence"
	case ModeAbsence:
		return "absence"
	}
	return fmt.Sprintf("CountMode(%d)", int(m))
}

// RipplePolicy controls how far one sample propagates past the current
// pivot.
type RipplePolicy int

const (
	// RipplePerBatch stops propagation at the first inconsistent pivot j and
	// keeps every later sample of the same batch at or before j.
	RipplePerBatch RipplePolicy = iota
	// RipplePerSample stops each sample at its own first inconsistency.
	RipplePerSample
	// RippleOff feeds samples to the current pivot only.
	RippleOff
)

var rippleNames = [...]string{"per-batch", "per-sample", "off"}

func (p RipplePolicy) String() string {
	if p < 0 || int(p) >= len(rippleNames) {
		return fmt.Sprintf("RipplePolicy(%d)", int(p))
	}
	return rippleNames[p]
}

// ParseRipplePolicy maps "per-batch", "per-sample" or "off"
// (case-insensitive) to a RipplePolicy.
func ParseRipplePolicy(s string) (RipplePolicy, error) {
	for i, name := range rippleNames {
		if strings.EqualFold(s, name) {
			return RipplePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("ParseRipplePolicy: %q: %w", s, ErrInvalidConfig)
}

// Result summarizes one estimation run.
type Result struct {
	Count            float64   // Π 1/ratio_k; +Inf once it leaves float64 range
	CountLog         float64   // Σ log(1/ratio_k)
	EffectiveSamples int64     // observations over all pivots, ripple included
	ActualSamples    int64     // spanning trees drawn
	Pivots           int       // number of pivots K
	Contracted       int       // pivots committed by contraction
	Removed          int       // pivots committed by removal
	ShortCircuited   int       // pivots finalized as contraction side effects
	Ratios           []float64 // final ratio per pivot position
}

// Option customizes an Estimator.
type Option func(*Estimator)

// WithLogger routes progress events to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(e *Estimator) { e.log = l }
}

// WithRand replaces the Config.Seed stream with r, which then drives the
// processing-order shuffle, root selection and the sampler. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("approx: WithRand(nil)")
	}
	return func(e *Estimator) { e.rng = r }
}
