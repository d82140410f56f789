package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beecolor/chart"
	"github.com/katalvlaran/beecolor/coloring"
)

func newRunCmd(f *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bee-colony search and chart its quality trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.cfg.InitialColorCount, "colors", f.cfg.InitialColorCount, "initial color count (K0)")
	fl.IntVar(&f.cfg.ScoutCount, "scouts", f.cfg.ScoutCount, "scouts per iteration")
	fl.IntVar(&f.cfg.WorkerCount, "workers", f.cfg.WorkerCount, "repair attempts per iteration (sampled policy; defaults to the sampled profile's count)")
	fl.IntVar(&f.cfg.MaxIterations, "iterations", f.cfg.MaxIterations, "iteration budget")
	fl.IntVar(&f.cfg.SamplingInterval, "interval", f.cfg.SamplingInterval, "trace sampling interval")
	fl.StringVar(&f.cfg.Policy, "policy", f.cfg.Policy, "worker policy: exhaustive | sampled")
	fl.StringVarP(&f.cfg.Output, "output", "o", f.cfg.Output, "PNG chart path (empty to skip)")

	return cmd
}

func runSearch(cmd *cobra.Command, f *runFlags) error {
	cfg, err := f.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	logger := f.logger(cmd.ErrOrStderr())
	logger.WithFields(log.Fields{
		"vertices": cfg.NumVertices,
		"degree":   cfg.MaxDegree,
		"policy":   cfg.Policy,
		"seed":     cfg.Seed,
	}).Info("generating graph")

	g, err := buildGraph(cfg)
	if err != nil {
		return err
	}

	opts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		coloring.WithRand(coloring.DeriveRNG(cfg.Seed, streamSearch)),
		coloring.WithLogger(logger),
		coloring.WithOnSample(func(i, best int) {
			logger.WithFields(log.Fields{"iteration": i, "quality": best}).Debug("sample")
		}),
	)
	res, err := coloring.Search(g, opts...)
	if err != nil {
		return err
	}

	sum, err := chart.Summarize(res.Trace)
	if err != nil {
		return err
	}
	bad, err := coloring.ConflictingEdges(g, res.Best)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "graph:       %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())
	fmt.Fprintf(out, "quality:     %d (%d conflicting edges)\n", res.Quality, len(bad))
	fmt.Fprintf(out, "colors:      %d\n", res.Colors)
	fmt.Fprintf(out, "best at:     iteration %d of %d\n", res.BestIteration, cfg.MaxIterations)
	fmt.Fprintf(out, "trace:       %d samples, mean %.2f, gain %.0f\n", sum.Samples, sum.Mean, sum.Gain)

	if cfg.Output == "" {
		return nil
	}
	if err = writeChart(cfg.Output, res); err != nil {
		return err
	}
	logger.WithField("path", cfg.Output).Info("chart written")

	return nil
}

func writeChart(path string, res *coloring.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return chart.NewPNG(file).Render(res.Trace, res.Interval)
}
