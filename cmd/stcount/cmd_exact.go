package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stcount/mtt"
)

func (a *app) newExactCmd() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:     "exact",
		Short:   "Print the exact spanning-tree count (Matrix-Tree theorem)",
		Example: "  stcount exact --graph complete:8",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			el, err := src.load(a.cfg.GraphSeed())
			if err != nil {
				return err
			}
			g, err := el.Graph()
			if err != nil {
				return fmt.Errorf("exact: %w", err)
			}
			logCount, err := mtt.LogCount(g)
			if err != nil {
				return fmt.Errorf("exact: %w", err)
			}
			a.log.Debug().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).Msg("laplacian factorized")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tcount=%.0f\tlog=%.9f\n", src, mtt.FromLog(logCount), logCount)
			return err
		},
	}
	addGraphFlags(cmd, &src)

	return cmd
}
