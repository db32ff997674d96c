package approx

import (
	"fmt"
	"math"
)

// Default tuning values.
const (
	DefaultRatioThreshold    = 0.002
	DefaultVarianceThreshold = 0.001
	DefaultConstantThreshold = 10000
	DefaultPresampleSize     = 50
	DefaultBufferSize        = 8
	DefaultInitialBatchSize  = 500
)

// Config holds every tunable of a run. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	Convergence       ConvergenceMode
	RatioThreshold    float64 // Ratio: converged when max/min < 1 + RatioThreshold
	VarianceThreshold float64 // Variance: converged when stddev/mean < VarianceThreshold
	ConstantThreshold int64   // Constant: converged once folded samples exceed this
	PresampleSize     int64   // samples needed before a pivot is classified
	BufferSize        int     // inverse-ratio snapshots per pivot
	InitialBatchSize  int     // starting batch size of every pivot
	Shuffle           bool    // shuffle the processing order
	Seed              int64   // 0 selects the fixed default seed
	Ripple            RipplePolicy
	RandomRoot        bool // root each batch at a random live vertex instead of the first one
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Convergence:       ConvergenceRatio,
		RatioThreshold:    DefaultRatioThreshold,
		VarianceThreshold: DefaultVarianceThreshold,
		ConstantThreshold: DefaultConstantThreshold,
		PresampleSize:     DefaultPresampleSize,
		BufferSize:        DefaultBufferSize,
		InitialBatchSize:  DefaultInitialBatchSize,
		Ripple:            RipplePerBatch,
		RandomRoot:        true,
	}
}

// Validate reports the first field that cannot drive a run.
func (c Config) Validate() error {
	switch {
	case c.Convergence < ConvergenceRatio || c.Convergence > ConvergenceConstant:
		return fmt.Errorf("Validate: Convergence %d: %w", int(c.Convergence), ErrInvalidConfig)
	case !positiveFinite(c.RatioThreshold):
		return fmt.Errorf("Validate: RatioThreshold %v: %w", c.RatioThreshold, ErrInvalidConfig)
	case !positiveFinite(c.VarianceThreshold):
		return fmt.Errorf("Validate: VarianceThreshold %v: %w", c.VarianceThreshold, ErrInvalidConfig)
	case c.ConstantThreshold < 1:
		return fmt.Errorf("Validate: ConstantThreshold %d: %w", c.ConstantThreshold, ErrInvalidConfig)
	case c.PresampleSize < 1:
		return fmt.Errorf("Validate: PresampleSize %d: %w", c.PresampleSize, ErrInvalidConfig)
	case c.BufferSize < 1:
		return fmt.Errorf("Validate: BufferSize %d: %w", c.BufferSize, ErrInvalidConfig)
	case c.InitialBatchSize < 1:
		return fmt.Errorf("Validate: InitialBatchSize %d: %w", c.InitialBatchSize, ErrInvalidConfig)
	case c.Ripple < RipplePerBatch || c.Ripple > RippleOff:
		return fmt.Errorf("Validate: Ripple %d: %w", int(c.Ripple), ErrInvalidConfig)
	}
	return nil
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
