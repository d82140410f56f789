package coloring

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Default run parameters.
const (
	DefaultInitialColors    = 22
	DefaultScouts           = 3
	DefaultMaxIterations    = 1000
	DefaultSamplingInterval = 20
)

// Option configures Search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the parameters of one search run.
type Options struct {
	// InitialColors (K0) bounds the initial random colors: [1, K0].
	InitialColors int
	// Scouts (S) is the number of nodes released per scout step.
	Scouts int
	// Policy is the worker repair policy.
	Policy WorkerPolicy
	// MaxIterations bounds the run; iterations 1..MaxIterations-1 mutate.
	MaxIterations int
	// SamplingInterval is the trace stride in iterations.
	SamplingInterval int
	// Rand is the single randomness source of the run.
	Rand *rand.Rand
	// Logger receives Debug events (new best, finish). Defaults to a
	// discard logger.
	Logger logrus.FieldLogger
	// OnSample, if set, is called after each trace append with the
	// iteration and the best quality recorded.
	OnSample func(iteration, best int)

	err error
}

// DefaultOptions returns Options with the default run parameters:
//   - K0 = 22, S = 3, exhaustive repair
//   - 1000 iterations sampled every 20
//   - RNG seeded with the default seed, discard logger.
func DefaultOptions() Options {
	return Options{
		InitialColors:    DefaultInitialColors,
		Scouts:           DefaultScouts,
		Policy:           Exhaustive{},
		MaxIterations:    DefaultMaxIterations,
		SamplingInterval: DefaultSamplingInterval,
		Rand:             rngFromSeed(0),
		Logger:           discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func (o *Options) violate(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrOptionViolation}, args...)...)
	}
}

// WithInitialColors sets K0 (must be ≥ 1).
func WithInitialColors(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.violate("InitialColors must be ≥ 1 (%d)", k)
			return
		}
		o.InitialColors = k
	}
}

// WithScouts sets S (must be ≥ 0; the upper bound |V| is checked per graph).
func WithScouts(s int) Option {
	return func(o *Options) {
		if s < 0 {
			o.violate("Scouts cannot be negative (%d)", s)
			return
		}
		o.Scouts = s
	}
}

// WithPolicy sets the worker policy (nil is a violation).
func WithPolicy(p WorkerPolicy) Option {
	return func(o *Options) {
		if p == nil {
			o.violate("Policy cannot be nil")
			return
		}
		o.Policy = p
	}
}

// WithMaxIterations sets the iteration budget (must be ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("MaxIterations must be ≥ 1 (%d)", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSamplingInterval sets the trace stride (must be ≥ 1).
func WithSamplingInterval(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("SamplingInterval must be ≥ 1 (%d)", n)
			return
		}
		o.SamplingInterval = n
	}
}

// WithRand sets an explicit RNG; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh RNG (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithLogger sets the debug logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSample registers a trace hook; nil is ignored.
func WithOnSample(fn func(iteration, best int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSample = fn
		}
	}
}
