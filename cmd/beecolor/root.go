package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/coloring"
	"github.com/katalvlaran/beecolor/config"
	"github.com/katalvlaran/beecolor/core"
)

// RNG streams derived from the run seed, one per consumer.
const (
	streamGraph uint64 = iota
	streamSearch
)

// runFlags holds the raw flag values; only flags the user set override the
// loaded configuration.
type runFlags struct {
	configPath string
	profile    string
	verbose    bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	f := &runFlags{cfg: config.Default()}

	root := &cobra.Command{
		Use:          "beecolor",
		Short:        "Bee-colony graph coloring",
		Version:      version,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&f.profile, "profile", config.ProfileExhaustive, "defaults profile: exhaustive | sampled")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	pf.IntVar(&f.cfg.NumVertices, "vertices", f.cfg.NumVertices, "number of graph vertices")
	pf.IntVar(&f.cfg.MaxDegree, "max-degree", f.cfg.MaxDegree, "degree cap of the generator")
	pf.Int64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "random seed (0 = fixed default)")

	root.AddCommand(newRunCmd(f), newGraphCmd(f))

	return root
}

// resolve loads the config (file or profile) and applies explicitly set flags.
func (f *runFlags) resolve(flags *pflag.FlagSet) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.Profile(f.profile)
	}
	if err != nil {
		return config.Config{}, err
	}

	set := map[string]func(){
		"vertices":   func() { cfg.NumVertices = f.cfg.NumVertices },
		"max-degree": func() { cfg.MaxDegree = f.cfg.MaxDegree },
		"seed":       func() { cfg.Seed = f.cfg.Seed },
		"colors":     func() { cfg.InitialColorCount = f.cfg.InitialColorCount },
		"scouts":     func() { cfg.ScoutCount = f.cfg.ScoutCount },
		"workers":    func() { cfg.WorkerCount = f.cfg.WorkerCount },
		"iterations": func() { cfg.MaxIterations = f.cfg.MaxIterations },
		"interval":   func() { cfg.SamplingInterval = f.cfg.SamplingInterval },
		"policy":     func() { cfg.Policy = f.cfg.Policy },
		"output":     func() { cfg.Output = f.cfg.Output },
	}
	flags.Visit(func(fl *pflag.Flag) {
		if apply, ok := set[fl.Name]; ok {
			apply()
		}
	})
	// Switching to the sampled policy by flag alone borrows the sampled
	// profile's worker count.
	if fl := flags.Lookup("workers"); cfg.Policy == config.ProfileSampled && cfg.WorkerCount < 1 && (fl == nil || !fl.Changed) {
		cfg.WorkerCount = config.SampledWorkers
	}

	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (f *runFlags) logger(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if f.verbose {
		l.SetLevel(log.DebugLevel)
	}

	return l
}

// buildGraph generates the bounded-degree graph of cfg.
func buildGraph(cfg config.Config) (*core.Graph, error) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(coloring.DeriveRNG(cfg.Seed, streamGraph))},
		builder.BoundedDegree(cfg.NumVertices, cfg.MaxDegree),
	)
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}

	return g, nil
}
