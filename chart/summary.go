package chart

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a quality trace numerically.
type Summary struct {
	Samples int
	First   float64
	Last    float64
	Min     float64
	Max     float64
	Mean    float64
	// StdDev is the unbiased sample standard deviation (NaN for one sample).
	StdDev float64
	// Gain is Last − First; it is ≥ 0 for a monotone trace.
	Gain float64
}

// Summarize computes a Summary of trace.
func Summarize(trace []int) (Summary, error) {
	if len(trace) == 0 {
		return Summary{}, ErrEmptyTrace
	}
	xs := make([]float64, len(trace))
	for i, q := range trace {
		xs[i] = float64(q)
	}
	mean, std := stat.MeanStdDev(xs, nil)

	return Summary{
		Samples: len(xs),
		First:   xs[0],
		Last:    xs[len(xs)-1],
		Min:     floats.Min(xs),
		Max:     floats.Max(xs),
		Mean:    mean,
		StdDev:  std,
		Gain:    xs[len(xs)-1] - xs[0],
	}, nil
}
