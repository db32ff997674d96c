package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stcount/approx"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// Report is the document written by "stcount run".
type Report struct {
	Graph    string         `yaml:"graph" json:"graph"`
	Vertices int            `yaml:"vertices" json:"vertices"`
	Edges    int            `yaml:"edges" json:"edges"`
	Settings SettingsReport `yaml:"settings" json:"settings"`
	Exact    *ExactReport   `yaml:"exact,omitempty" json:"exact,omitempty"`
	Runs     []RunReport    `yaml:"runs" json:"runs"`
	Summary  *SummaryReport `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// SettingsReport echoes the estimator configuration of the runs.
type SettingsReport struct {
	Convergence       string  `yaml:"convergence" json:"convergence"`
	RatioThreshold    float64 `yaml:"ratio_threshold" json:"ratio_threshold"`
	VarianceThreshold float64 `yaml:"variance_threshold" json:"variance_threshold"`
	ConstantThreshold int64   `yaml:"constant_threshold" json:"constant_threshold"`
	PresampleSize     int64   `yaml:"presample_size" json:"presample_size"`
	BufferSize        int     `yaml:"buffer_size" json:"buffer_size"`
	InitialBatchSize  int     `yaml:"initial_batch_size" json:"initial_batch_size"`
	Shuffle           bool    `yaml:"shuffle" json:"shuffle"`
	Ripple            string  `yaml:"ripple" json:"ripple"`
	RandomRoot        bool    `yaml:"random_root" json:"random_root"`
}

// ExactReport holds the Matrix-Tree reference value.
type ExactReport struct {
	Count    *float64 `yaml:"count,omitempty" json:"count,omitempty"`
	CountLog float64  `yaml:"count_log" json:"count_log"`
}

// RunReport is one estimator run. Count is omitted once it overflows.
type RunReport struct {
	ID               string   `yaml:"id" json:"id"`
	Seed             int64    `yaml:"seed" json:"seed"`
	Count            *float64 `yaml:"count,omitempty" json:"count,omitempty"`
	CountLog         float64  `yaml:"count_log" json:"count_log"`
	EffectiveSamples int64    `yaml:"effective_samples" json:"effective_samples"`
	ActualSamples    int64    `yaml:"actual_samples" json:"actual_samples"`
	Pivots           int      `yaml:"pivots" json:"pivots"`
	Contracted       int      `yaml:"contracted" json:"contracted"`
	Removed          int      `yaml:"removed" json:"removed"`
	ShortCircuited   int      `yaml:"short_circuited" json:"short_circuited"`
	Elapsed          string   `yaml:"elapsed" json:"elapsed"`
	RelativeError    *float64 `yaml:"relative_error,omitempty" json:"relative_error,omitempty"`
}

// SummaryReport aggregates CountLog over the runs.
type SummaryReport struct {
	MeanLog   float64 `yaml:"mean_log" json:"mean_log"`
	StdDevLog float64 `yaml:"stddev_log" json:"stddev_log"`
}

func settingsOf(c approx.Config) SettingsReport {
	return SettingsReport{
		Convergence:       c.Convergence.String(),
		RatioThreshold:    c.RatioThreshold,
		VarianceThreshold: c.VarianceThreshold,
		ConstantThreshold: c.ConstantThreshold,
		PresampleSize:     c.PresampleSize,
		BufferSize:        c.BufferSize,
		InitialBatchSize:  c.InitialBatchSize,
		Shuffle:           c.Shuffle,
		Ripple:            c.Ripple.String(),
		RandomRoot:        c.RandomRoot,
	}
}

// finite returns &x, or nil when x is ±Inf or NaN.
func finite(x float64) *float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nil
	}
	return &x
}

// summarize fills Summary from Runs. A single run has zero spread.
func (r *Report) summarize() {
	if len(r.Runs) == 0 {
		return
	}
	logs := make([]float64, len(r.Runs))
	for i, run := range r.Runs {
		logs[i] = run.CountLog
	}
	s := &SummaryReport{MeanLog: stat.Mean(logs, nil)}
	if len(logs) > 1 {
		s.StdDevLog = stat.StdDev(logs, nil)
	}
	r.Summary = s
}

// writeReport encodes r in the given format.
func writeReport(w io.Writer, format string, r Report) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writeReport: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writeReport: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("writeReport: unknown format %q", format)
	}
}

// openOutput returns the file at path, or the command's stdout when path is
// empty. The returned close function is always non-nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("openOutput: %w", err)
	}
	return f, f.Close, nil
}
