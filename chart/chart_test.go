package chart_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/chart"
)

func TestPoints(t *testing.T) {
	pts, err := chart.Points([]int{-5, -3, -3}, 20)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 40.0, pts[2].X)
	assert.Equal(t, -3.0, pts[2].Y)

	_, err = chart.Points(nil, 20)
	assert.ErrorIs(t, err, chart.ErrEmptyTrace)
	_, err = chart.Points([]int{0}, 0)
	assert.ErrorIs(t, err, chart.ErrBadInterval)
}

func TestLinePlot_Labels(t *testing.T) {
	p, err := chart.LinePlot([]int{-4, -2, 0}, 10, "t", "x", "y", nil)
	require.NoError(t, err)
	assert.Equal(t, "t", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
}

func TestPNG_Render(t *testing.T) {
	var buf bytes.Buffer
	r := chart.NewPNG(&buf)

	require.NoError(t, r.Render([]int{-12, -8, -8, -3, -1}, 20))
	img, err := png.Decode(&buf)
	require.NoError(t, err, "output must be a valid PNG")
	assert.Positive(t, img.Bounds().Dx())
	assert.Positive(t, img.Bounds().Dy())
}

func TestPNG_RenderErrors(t *testing.T) {
	assert.ErrorIs(t, chart.NewPNG(nil).Render([]int{0}, 1), chart.ErrNilWriter)

	var buf bytes.Buffer
	assert.ErrorIs(t, chart.NewPNG(&buf).Render(nil, 1), chart.ErrEmptyTrace)
	assert.ErrorIs(t, chart.NewPNG(&buf).Render([]int{0}, 0), chart.ErrBadInterval)
	assert.Zero(t, buf.Len())
}

func TestSummarize(t *testing.T) {
	s, err := chart.Summarize([]int{-3, -1, -1, -1})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Samples)
	assert.Equal(t, -3.0, s.Min)
	assert.Equal(t, -1.0, s.Max)
	assert.InDelta(t, -1.5, s.Mean, 1e-12)
	assert.InDelta(t, 1.0, s.StdDev, 1e-12)
	assert.Equal(t, 2.0, s.Gain)

	_, err = chart.Summarize(nil)
	assert.ErrorIs(t, err, chart.ErrEmptyTrace)
}
