package chart

import "errors"

var (
	// ErrEmptyTrace is returned when there is nothing to draw or summarize.
	ErrEmptyTrace = errors.New("chart: empty trace")

	// ErrBadInterval is returned for a sampling interval < 1.
	ErrBadInterval = errors.New("chart: sampling interval must be ≥ 1")

	// ErrNilWriter is returned by a PNG renderer without a destination.
	ErrNilWriter = errors.New("chart: nil writer")
)
