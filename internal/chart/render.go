package chart

import "math"

// Frame is everything Render needs to draw one frame.
type Frame struct {
	// Samples are ordered newest first.
	Samples []float64
	Offset  float64
	Width   float64
	Height  float64
	Params  Params
}

// Scaled returns the frame enlarged by k, e.g. to export a terminal-sized
// chart at a higher resolution.
func (f Frame) Scaled(k float64) Frame {
	f.Offset *= k
	f.Width *= k
	f.Height *= k
	f.Params = f.Params.Scaled(k)
	return f
}

// Render converts a frame into draw commands: fill, stroke, then the
// rounded-rectangle mask. A zero or negative viewport renders nothing.
// An empty sample list yields empty fill and stroke paths but still
// emits the mask.
func Render(f Frame) []Command {
	if !(f.Width > 0 && f.Height > 0) {
		return nil
	}

	points := MapPoints(f)
	join := Style{Join: JoinRound, Cap: CapRound}

	fill := join
	fill.Color = f.Params.FillColor()

	stroke := join
	stroke.Color = f.Params.StrokeColor()
	stroke.LineWidth = f.Params.LineWidth

	return []Command{
		{Kind: Fill, Path: dataPath(points, f.Width, f.Height, true), Style: fill},
		{Kind: Stroke, Path: dataPath(points, f.Width, f.Height, false), Style: stroke},
		{Kind: Mask, Path: RoundedRect(f.Width, f.Height, f.Params.CornerRadius), Style: Style{
			Color:    f.Params.StrokeColor(),
			Operator: DestIn,
		}},
	}
}

// MapPoints maps each sample to surface coordinates. The newest sample sits
// at the right edge shifted by the offset; older samples step left by the
// sample spacing. A value of 100 maps to the top edge, 0 to the bottom.
func MapPoints(f Frame) []Point {
	spacing := f.Params.SampleSpacing()
	pts := make([]Point, len(f.Samples))
	for i, v := range f.Samples {
		pts[i] = Point{
			X: f.Width - float64(i)*spacing + f.Offset,
			Y: f.Height - f.Height*(v/100.0),
		}
	}
	return pts
}

// dataPath builds the polyline through the points. With closeArea set it
// drops to the bottom under the last point, runs along the bottom to the
// right edge and closes, giving the area under the curve.
func dataPath(points []Point, width, height float64, closeArea bool) Path {
	if len(points) == 0 {
		return nil
	}
	var b pathBuilder
	for _, p := range points {
		b.lineTo(p.X, p.Y)
	}
	if closeArea {
		last := points[len(points)-1]
		b.lineTo(last.X, height)
		b.lineTo(width, height)
		b.close()
	}
	return b.path
}

// RoundedRect builds a closed rectangle covering width x height with
// quarter-circle corners of radius r. Traversal starts on the right edge
// at (width, height-r) and visits the bottom-right, bottom-left, top-left
// and top-right corners in turn.
func RoundedRect(width, height, r float64) Path {
	r = min(max(r, 0), width/2, height/2)

	var b pathBuilder
	b.lineTo(width, height-r)
	b.arc(width-r, height-r, r, 0, math.Pi/2)
	b.lineTo(r, height)
	b.arc(r, height-r, r, math.Pi/2, math.Pi)
	b.lineTo(0, r)
	b.arc(r, r, r, math.Pi, 3*math.Pi/2)
	b.lineTo(width-r, 0)
	b.arc(width-r, r, r, 3*math.Pi/2, 2*math.Pi)
	b.close()
	return b.path
}
