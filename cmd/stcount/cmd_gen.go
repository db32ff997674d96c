package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stcount/builder"
)

func (a *app) newGenCmd() *cobra.Command {
	var (
		topology string
		output   string
	)
	cmd := &cobra.Command{
		Use:     "gen",
		Short:   "Write a generated topology as an edge list",
		Example: "  stcount gen --graph random:40,0.15 --graph-seed 7 -o g.txt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			el, err := graphSource{topology: topology}.load(a.cfg.GraphSeed())
			if err != nil {
				return err
			}
			if _, err := el.Graph(); err != nil {
				return fmt.Errorf("gen: %w", err)
			}

			maxDeg := 0
			for _, d := range el.Degrees() {
				maxDeg = max(maxDeg, d)
			}
			a.log.Info().Str("graph", topology).Int("vertices", el.N).Int("edges", len(el.Edges)).
				Int("max_degree", maxDeg).Msg("generated")

			w, closeFn, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			if err := builder.WriteEdgeList(w, el); err != nil {
				_ = closeFn()
				return err
			}
			return closeFn()
		},
	}
	cmd.Flags().StringVarP(&topology, "graph", "g", "", "topology spec")
	cmd.Flags().StringVarP(&output, "output", "o", "", "edge-list file (default stdout)")
	cobra.CheckErr(cmd.MarkFlagRequired("graph"))

	return cmd
}
