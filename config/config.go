// SPDX-License-Identifier: MIT

// Package config holds the run parameters of the beecolor driver and loads
// them from YAML. Missing keys keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beecolor/coloring"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Profile names.
const (
	ProfileExhaustive = coloring.PolicyExhaustive
	ProfileSampled    = coloring.PolicySampled
)

// Default run parameters.
const (
	DefaultNumVertices = 150
	DefaultMaxDegree   = 20
	DefaultOutput      = "quality.png"
)

// Sampled-profile defaults.
const (
	SampledWorkers          = 10
	SampledMaxIterations    = 5000
	SampledSamplingInterval = 100
)

// Config is the full set of run parameters.
type Config struct {
	NumVertices       int    `yaml:"numVertices"`
	MaxDegree         int    `yaml:"maxDegree"`
	InitialColorCount int    `yaml:"initialColorCount"`
	ScoutCount        int    `yaml:"scoutCount"`
	WorkerCount       int    `yaml:"workerCount"`
	MaxIterations     int    `yaml:"maxIterations"`
	SamplingInterval  int    `yaml:"samplingInterval"`
	Policy            string `yaml:"policy"`
	Seed              int64  `yaml:"seed"`
	Output            string `yaml:"output"`
}

// Default returns the exhaustive profile.
func Default() Config {
	return Config{
		NumVertices:       DefaultNumVertices,
		MaxDegree:         DefaultMaxDegree,
		InitialColorCount: coloring.DefaultInitialColors,
		ScoutCount:        coloring.DefaultScouts,
		MaxIterations:     coloring.DefaultMaxIterations,
		SamplingInterval:  coloring.DefaultSamplingInterval,
		Policy:            ProfileExhaustive,
		Output:            DefaultOutput,
	}
}

// Profile returns the defaults of a named profile.
func Profile(name string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProfileExhaustive:
	case ProfileSampled:
		cfg.Policy = ProfileSampled
		cfg.WorkerCount = SampledWorkers
		cfg.MaxIterations = SampledMaxIterations
		cfg.SamplingInterval = SampledSamplingInterval
	default:
		return Config{}, fmt.Errorf("%w: unknown profile %q", ErrInvalid, name)
	}

	return cfg, nil
}

// Load reads path over the defaults of the profile named in the file
// (exhaustive when absent) and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	var head struct {
		Policy string `yaml:"policy"`
	}
	if err = yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	base := ProfileExhaustive
	if head.Policy != "" {
		base = head.Policy
	}
	cfg, err := Profile(base)
	if err != nil {
		return Config{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	cfg.Policy = strings.ToLower(strings.TrimSpace(cfg.Policy))

	return cfg, cfg.Validate()
}

// Validate checks every field and names the first offender.
func (c Config) Validate() error {
	switch {
	case c.NumVertices < 1:
		return fmt.Errorf("%w: numVertices must be ≥ 1 (%d)", ErrInvalid, c.NumVertices)
	case c.MaxDegree < 0:
		return fmt.Errorf("%w: maxDegree cannot be negative (%d)", ErrInvalid, c.MaxDegree)
	case c.InitialColorCount < 1:
		return fmt.Errorf("%w: initialColorCount must be ≥ 1 (%d)", ErrInvalid, c.InitialColorCount)
	case c.ScoutCount < 0 || c.ScoutCount > c.NumVertices:
		return fmt.Errorf("%w: scoutCount must be in [0, %d] (%d)", ErrInvalid, c.NumVertices, c.ScoutCount)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: maxIterations must be ≥ 1 (%d)", ErrInvalid, c.MaxIterations)
	case c.SamplingInterval < 1:
		return fmt.Errorf("%w: samplingInterval must be ≥ 1 (%d)", ErrInvalid, c.SamplingInterval)
	}
	if _, err := c.WorkerPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// WorkerPolicy resolves Policy and WorkerCount.
func (c Config) WorkerPolicy() (coloring.WorkerPolicy, error) {
	return coloring.ParsePolicy(c.Policy, c.WorkerCount)
}

// SearchOptions translates the config into coloring options. rng-related
// options are left to the caller.
func (c Config) SearchOptions() ([]coloring.Option, error) {
	p, err := c.WorkerPolicy()
	if err != nil {
		return nil, err
	}

	return []coloring.Option{
		coloring.WithInitialColors(c.InitialColorCount),
		coloring.WithScouts(c.ScoutCount),
		coloring.WithPolicy(p),
		coloring.WithMaxIterations(c.MaxIterations),
		coloring.WithSamplingInterval(c.SamplingInterval),
	}, nil
}
