package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/beecolor/converters"
)

func newGraphCmd(f *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Generate the graph and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			g, err := buildGraph(cfg)
			if err != nil {
				return err
			}
			cc, err := converters.ConnectedComponents(g)
			if err != nil {
				return err
			}

			st := g.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices:    %d\n", st.VertexCount)
			fmt.Fprintf(out, "edges:       %d\n", st.EdgeCount)
			fmt.Fprintf(out, "degree:      min %d, max %d, mean %.2f\n", st.MinDegree, st.MaxDegree, st.MeanDegree)
			fmt.Fprintf(out, "isolated:    %d\n", st.IsolatedCount)
			fmt.Fprintf(out, "components:  %d\n", len(cc))

			return nil
		},
	}
}
