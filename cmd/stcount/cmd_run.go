package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stcount/approx"
	"github.com/katalvlaran/stcount/mtt"
	"github.com/katalvlaran/stcount/wilson"
)

func (a *app) newRunCmd() *cobra.Command {
	var (
		src    graphSource
		output string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Estimate the spanning-tree count of a graph",
		Example: `  stcount run --graph grid:4x4 --runs 5 --verify
  stcount run --input g.txt --convergence variance --format json -o report.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, src, output)
		},
	}
	addGraphFlags(cmd, &src)

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "report file (default stdout)")
	f.Int("runs", 1, "independent estimator runs")
	f.Bool("verify", false, "compare every run with the exact Matrix-Tree count")
	f.String("format", formatYAML, "report format (yaml or json)")

	d := approx.DefaultConfig()
	f.String("convergence", d.Convergence.String(), "convergence strategy (ratio, variance, constant)")
	f.String("ripple", d.Ripple.String(), "ripple policy (per-batch, per-sample, off)")
	f.Int64("seed", d.Seed, "estimator seed; run i uses seed+i (0 selects the default seed)")
	f.Float64("ratio-threshold", d.RatioThreshold, "ratio strategy threshold")
	f.Float64("variance-threshold", d.VarianceThreshold, "variance strategy threshold")
	f.Int64("constant-threshold", d.ConstantThreshold, "constant strategy sample count")
	f.Int64("presample", d.PresampleSize, "samples before a pivot is classified")
	f.Int("buffer", d.BufferSize, "inverse-ratio snapshots per pivot")
	f.Int("batch", d.InitialBatchSize, "initial batch size")
	f.Bool("shuffle", d.Shuffle, "shuffle the pivot order")
	f.Bool("random-root", d.RandomRoot, "root each batch at a random vertex")
	cobra.CheckErr(a.cfg.BindFlags(f, map[string]string{
		"runs":               "run.runs",
		"verify":             "run.verify",
		"format":             "run.format",
		"convergence":        "estimator.convergence",
		"ripple":             "estimator.ripple",
		"seed":               "estimator.seed",
		"ratio-threshold":    "estimator.ratio_threshold",
		"variance-threshold": "estimator.variance_threshold",
		"constant-threshold": "estimator.constant_threshold",
		"presample":          "estimator.presample_size",
		"buffer":             "estimator.buffer_size",
		"batch":              "estimator.initial_batch_size",
		"shuffle":            "estimator.shuffle",
		"random-root":        "estimator.random_root",
	}))

	return cmd
}

func (a *app) run(cmd *cobra.Command, src graphSource, output string) error {
	cfg, err := a.cfg.ToEstimatorConfig()
	if err != nil {
		return err
	}
	runs := a.cfg.Runs()
	if runs < 1 {
		return fmt.Errorf("run: --runs=%d < 1", runs)
	}
	format := a.cfg.Format()
	if format != formatYAML && format != formatJSON {
		return fmt.Errorf("run: unknown format %q", format)
	}

	el, err := src.load(a.cfg.GraphSeed())
	if err != nil {
		return err
	}
	g, err := el.Graph()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	rep := Report{
		Graph:    src.String(),
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Settings: settingsOf(cfg),
	}

	var exactLog float64
	if a.cfg.Verify() {
		if exactLog, err = mtt.LogCount(g); err != nil {
			return fmt.Errorf("run: verify: %w", err)
		}
		rep.Exact = &ExactReport{Count: finite(mtt.FromLog(exactLog)), CountLog: exactLog}
		a.log.Info().Float64("count_log", exactLog).Msg("exact count")
	}

	base := cfg.Seed
	if base == 0 {
		base = wilson.DefaultSeed
	}
	for i := 0; i < runs; i++ {
		id := uuid.NewString()
		runCfg := cfg
		runCfg.Seed = base + int64(i)

		log := a.log.With().Str("run_id", id).Int("run", i).Logger()
		start := time.Now()
		res, err := approx.Count(cmd.Context(), g.Clone(), runCfg, approx.WithLogger(log))
		if err != nil {
			return fmt.Errorf("run %d (%s): %w", i, id, err)
		}

		rr := RunReport{
			ID:               id,
			Seed:             runCfg.Seed,
			Count:            finite(res.Count),
			CountLog:         res.CountLog,
			EffectiveSamples: res.EffectiveSamples,
			ActualSamples:    res.ActualSamples,
			Pivots:           res.Pivots,
			Contracted:       res.Contracted,
			Removed:          res.Removed,
			ShortCircuited:   res.ShortCircuited,
			Elapsed:          time.Since(start).String(),
		}
		if rep.Exact != nil {
			rr.RelativeError = finite(mtt.RelativeError(res.CountLog, exactLog))
		}
		rep.Runs = append(rep.Runs, rr)
	}
	rep.summarize()

	w, closeFn, err := openOutput(cmd, output)
	if err != nil {
		return err
	}
	if err := writeReport(w, format, rep); err != nil {
		_ = closeFn()
		return err
	}
	return closeFn()
}
