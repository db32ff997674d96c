package approx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stcount/approx"
)

func TestDefaultConfig(t *testing.T) {
	cfg := approx.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, approx.ConvergenceRatio, cfg.Convergence)
	assert.Equal(t, 0.002, cfg.RatioThreshold)
	assert.Equal(t, 0.001, cfg.VarianceThreshold)
	assert.Equal(t, int64(10000), cfg.ConstantThreshold)
	assert.Equal(t, int64(50), cfg.PresampleSize)
	assert.Equal(t, 8, cfg.BufferSize)
	assert.Equal(t, 500, cfg.InitialBatchSize)
	assert.False(t, cfg.Shuffle)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, approx.RipplePerBatch, cfg.Ripple)
	assert.True(t, cfg.RandomRoot)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*approx.Config)
	}{
		{"Convergence", func(c *approx.Config) { c.Convergence = 7 }},
		{"RatioZero", func(c *approx.Config) { c.RatioThreshold = 0 }},
		{"RatioNaN", func(c *approx.Config) { c.RatioThreshold = math.NaN() }},
		{"VarianceInf", func(c *approx.Config) { c.VarianceThreshold = math.Inf(1) }},
		{"Constant", func(c *approx.Config) { c.ConstantThreshold = 0 }},
		{"Presample", func(c *approx.Config) { c.PresampleSize = -1 }},
		{"Buffer", func(c *approx.Config) { c.BufferSize = 0 }},
		{"Batch", func(c *approx.Config) { c.InitialBatchSize = 0 }},
		{"Ripple", func(c *approx.Config) { c.Ripple = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := approx.DefaultConfig()
			tc.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), approx.ErrInvalidConfig)
		})
	}
}

func TestParseConvergenceMode(t *testing.T) {
	for _, m := range []approx.ConvergenceMode{approx.ConvergenceRatio, approx.ConvergenceVariance, approx.ConvergenceConstant} {
		got, err := approx.ParseConvergenceMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := approx.ParseConvergenceMode("VARIANCE")
	require.NoError(t, err)
	assert.Equal(t, approx.ConvergenceVariance, got)

	_, err = approx.ParseConvergenceMode("median")
	require.ErrorIs(t, err, approx.ErrInvalidConfig)
	assert.Equal(t, "ConvergenceMode(9)", approx.ConvergenceMode(9).String())
}

func TestParseRipplePolicy(t *testing.T) {
	for _, p := range []approx.RipplePolicy{approx.RipplePerBatch, approx.RipplePerSample, approx.RippleOff} {
		got, err := approx.ParseRipplePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := approx.ParseRipplePolicy("sometimes")
	require.ErrorIs(t, err, approx.ErrInvalidConfig)
}

func TestCountMode_String(t *testing.T) {
	assert.Equal(t, "unspecified", approx.ModeUnspecified.String())
	assert.Equal(t, "presence", approx.ModePresence.String())
	assert.Equal(t, "absence", approx.ModeAbsence.String())
	assert.Equal(t, "CountMode(5)", approx.CountMode(5).String())
}
