// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Line-chart rendering of a quality trace.
// Determinism:
//   - Same trace, interval and labels ⇒ identical plot model.

package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default labels of the quality chart.
const (
	DefaultTitle  = "Coloring quality by iteration"
	DefaultXLabel = "iterations (x interval)"
	DefaultYLabel = "coloring quality"
)

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Renderer consumes a finished quality trace.
type Renderer interface {
	Render(trace []int, interval int) error
}

// PNG renders the trace as a line chart and writes it to W.
type PNG struct {
	W      io.Writer
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	Color  color.Color
}

// NewPNG returns a PNG renderer with the default labels and size.
func NewPNG(w io.Writer) *PNG {
	return &PNG{
		W:      w,
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Color:  color.RGBA{R: 0, G: 128, B: 255, A: 255},
	}
}

var _ Renderer = (*PNG)(nil)

// Render implements Renderer.
//
// Errors: ErrNilWriter, ErrEmptyTrace, ErrBadInterval, or a wrapped plot /
// encoder error.
func (p *PNG) Render(trace []int, interval int) error {
	if p.W == nil {
		return ErrNilWriter
	}
	pl, err := LinePlot(trace, interval, p.Title, p.XLabel, p.YLabel, p.Color)
	if err != nil {
		return err
	}

	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	canvas := vgimg.New(w, h)
	pl.Draw(draw.New(canvas))
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(p.W); err != nil {
		return fmt.Errorf("writing line chart PNG: %w", err)
	}

	return nil
}

// Points maps trace entry k to (k*interval, trace[k]).
func Points(trace []int, interval int) (plotter.XYs, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyTrace
	}
	if interval < 1 {
		return nil, ErrBadInterval
	}
	pts := make(plotter.XYs, len(trace))
	for k, q := range trace {
		pts[k].X = float64(k * interval)
		pts[k].Y = float64(q)
	}

	return pts, nil
}

// LinePlot builds the plot model without drawing it. A nil c keeps the
// plotter's default line color.
func LinePlot(trace []int, interval int, title, xLabel, yLabel string, c color.Color) (*plot.Plot, error) {
	pts, err := Points(trace, interval)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("creating line: %w", err)
	}
	if c != nil {
		line.Color = c
	}
	line.Width = vg.Points(2)
	p.Add(line, plotter.NewGrid())

	return p, nil
}
