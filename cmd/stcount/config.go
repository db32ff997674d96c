package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stcount/approx"
)

const (
	serviceName = "stcount"
	envPrefix   = "STCOUNT"
)

// Config manages command configuration using Viper. Precedence: changed
// flags, STCOUNT_* environment, config file, defaults.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults for every key.
func NewConfig() *Config {
	v := viper.New()

	d := approx.DefaultConfig()
	v.SetDefault("estimator.convergence", d.Convergence.String())
	v.SetDefault("estimator.ratio_threshold", d.RatioThreshold)
	v.SetDefault("estimator.variance_threshold", d.VarianceThreshold)
	v.SetDefault("estimator.constant_threshold", d.ConstantThreshold)
	v.SetDefault("estimator.presample_size", d.PresampleSize)
	v.SetDefault("estimator.buffer_size", d.BufferSize)
	v.SetDefault("estimator.initial_batch_size", d.InitialBatchSize)
	v.SetDefault("estimator.shuffle", d.Shuffle)
	v.SetDefault("estimator.seed", d.Seed)
	v.SetDefault("estimator.ripple", d.Ripple.String())
	v.SetDefault("estimator.random_root", d.RandomRoot)

	v.SetDefault("graph.seed", int64(1))

	v.SetDefault("run.runs", 1)
	v.SetDefault("run.verify", false)
	v.SetDefault("run.format", formatYAML)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the
// extension (yaml, json, toml).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile: %w", err)
	}
	return nil
}

// BindFlags binds each flag named in keys to its viper key.
func (c *Config) BindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			return fmt.Errorf("BindFlags: unknown flag %q", flag)
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("BindFlags: %s: %w", flag, err)
		}
	}
	return nil
}

func (c *Config) GraphSeed() int64 { return c.v.GetInt64("graph.seed") }

func (c *Config) Runs() int { return c.v.GetInt("run.runs") }
func (c *Config) Verify() bool { return c.v.GetBool("run.verify") }
func (c *Config) Format() string { return c.v.GetString("run.format") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogFormat() string { return c.v.GetString("logging.format") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// ToEstimatorConfig assembles and validates an approx.Config.
func (c *Config) ToEstimatorConfig() (approx.Config, error) {
	conv, err := approx.ParseConvergenceMode(c.v.GetString("estimator.convergence"))
	if err != nil {
		return approx.Config{}, fmt.Errorf("ToEstimatorConfig: %w", err)
	}
	ripple, err := approx.ParseRipplePolicy(c.v.GetString("estimator.ripple"))
	if err != nil {
		return approx.Config{}, fmt.Errorf("ToEstimatorConfig: %w", err)
	}

	cfg := approx.Config{
		Convergence:       conv,
		RatioThreshold:    c.v.GetFloat64("estimator.ratio_threshold"),
		VarianceThreshold: c.v.GetFloat64("estimator.variance_threshold"),
		ConstantThreshold: c.v.GetInt64("estimator.constant_threshold"),
		PresampleSize:     c.v.GetInt64("estimator.presample_size"),
		BufferSize:        c.v.GetInt("estimator.buffer_size"),
		InitialBatchSize:  c.v.GetInt("estimator.initial_batch_size"),
		Shuffle:           c.v.GetBool("estimator.shuffle"),
		Seed:              c.v.GetInt64("estimator.seed"),
		Ripple:            ripple,
		RandomRoot:        c.v.GetBool("estimator.random_root"),
	}
	if err := cfg.Validate(); err != nil {
		return approx.Config{}, fmt.Errorf("ToEstimatorConfig: %w", err)
	}

	return cfg, nil
}

// CreateLogger creates a zerolog logger writing to w. An unknown level
// falls back to info; format "json" disables the console writer.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := w
	if c.LogFormat() != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("service", serviceName).Logger()
}
