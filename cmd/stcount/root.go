package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg        *Config
	log        zerolog.Logger
	configPath string
}

// newRootCmd assembles the command tree with a fresh Config.
func newRootCmd() *cobra.Command {
	a := &app{cfg: NewConfig(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "stcount",
		Short: "Approximate spanning-tree counting by sequential edge self-reduction",
		Long: `stcount estimates the number of spanning trees of a connected multigraph
by sampling uniform spanning trees (Wilson's algorithm) and multiplying
per-edge inverse ratios. Exact Matrix-Tree counts are available for
verification.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.configPath != "" {
				if err := a.cfg.LoadFromFile(a.configPath); err != nil {
					return err
				}
			}
			a.log = a.cfg.CreateLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	pf.String("log-format", "console", "log format (console or json)")
	pf.Int64("graph-seed", 1, "seed for random topologies")
	cobra.CheckErr(a.cfg.BindFlags(pf, map[string]string{
		"log-level":  "logging.level",
		"log-format": "logging.format",
		"graph-seed": "graph.seed",
	}))

	root.AddCommand(a.newRunCmd(), a.newExactCmd(), a.newGenCmd())

	return root
}

// addGraphFlags registers the graph source flags shared by run, exact and gen.
func addGraphFlags(cmd *cobra.Command, src *graphSource) {
	f := cmd.Flags()
	f.StringVarP(&src.topology, "graph", "g", "", `topology spec, e.g. "grid:4x4", "random:30,0.2", "reference"`)
	f.StringVarP(&src.input, "input", "i", "", "edge-list file")
	cmd.MarkFlagsMutuallyExclusive("graph", "input")
	cmd.MarkFlagsOneRequired("graph", "input")
}
