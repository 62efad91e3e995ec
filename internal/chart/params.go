package chart

import (
	"image/color"
	"time"
)

// Defaults match the look of the GNOME system monitor strip charts.
const (
	DefaultLineWidth        = 1.0
	DefaultFillAlpha        = 0.2
	DefaultSpacingPerSecond = 10.0
	DefaultReleaseMargin    = 50
	DefaultCornerRadius     = 12.0
	DefaultTickFrequency    = 10.0 // Hz
	DefaultSampleInterval   = time.Second
)

// DefaultColor is the series color used when none is configured.
var DefaultColor = color.RGBA{R: 0x89, G: 0xb4, B: 0xfa, A: 0xff}

// Params holds the visual parameters of a chart. They are fixed for the
// lifetime of a GraphArea.
type Params struct {
	LineWidth        float64
	FillAlpha        float64
	SpacingPerSecond float64
	ReleaseMargin    int
	CornerRadius     float64
	// Color is the single base color. The stroke uses it opaque and the
	// fill uses it at FillAlpha.
	Color          color.RGBA
	TickFrequency  float64
	SampleInterval time.Duration
}

// DefaultParams returns Params populated with the package defaults.
func DefaultParams() Params {
	return Params{
		LineWidth:        DefaultLineWidth,
		FillAlpha:        DefaultFillAlpha,
		SpacingPerSecond: DefaultSpacingPerSecond,
		ReleaseMargin:    DefaultReleaseMargin,
		CornerRadius:     DefaultCornerRadius,
		Color:            DefaultColor,
		TickFrequency:    DefaultTickFrequency,
		SampleInterval:   DefaultSampleInterval,
	}
}

// SampleSpacing is the horizontal distance between two consecutive samples.
// It is also the offset the animator jumps back to on every arrival.
func (p Params) SampleSpacing() float64 {
	interval := p.SampleInterval
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return p.SpacingPerSecond * interval.Seconds()
}

// TickStep is the horizontal distance the chart scrolls per tick.
func (p Params) TickStep() float64 {
	freq := p.TickFrequency
	if freq <= 0 {
		freq = DefaultTickFrequency
	}
	return p.SpacingPerSecond / freq
}

// TickPeriod is the interval between ticks at the configured frequency.
func (p Params) TickPeriod() time.Duration {
	freq := p.TickFrequency
	if freq <= 0 {
		freq = DefaultTickFrequency
	}
	return time.Duration(float64(time.Second) / freq)
}

// Scaled returns p with its pixel-sized parameters multiplied by k.
func (p Params) Scaled(k float64) Params {
	p.LineWidth *= k
	p.SpacingPerSecond *= k
	p.CornerRadius *= k
	return p
}

// StrokeColor returns the base color at full opacity.
func (p Params) StrokeColor() color.NRGBA {
	return withAlpha(p.Color, 1)
}

// FillColor returns the base color at FillAlpha.
func (p Params) FillColor() color.NRGBA {
	return withAlpha(p.Color, p.FillAlpha)
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
