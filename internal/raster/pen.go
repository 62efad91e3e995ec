package raster

import (
	"image"
	"slices"

	"golang.org/x/image/vector"

	"github.com/bamsammich/sysgraph/internal/chart"
)

// pen feeds lines to the rasterizer, clipped to the canvas.
//
// The rasterizer accumulates signed coverage to the right of each edge, so
// an edge outside the canvas can be replaced by its projection onto the
// nearest border without changing any visible pixel, as long as the
// projection is split where the edge crosses a border.
type pen struct {
	z     *vector.Rasterizer
	w, h  float64
	first chart.Point
	cur   chart.Point
}

func newPen(z *vector.Rasterizer, size image.Point) *pen {
	return &pen{z: z, w: float64(size.X), h: float64(size.Y)}
}

func (p *pen) moveTo(pt chart.Point) {
	p.first, p.cur = pt, pt
	q := p.clamp(pt)
	p.z.MoveTo(float32(q.X), float32(q.Y))
}

func (p *pen) lineTo(pt chart.Point) {
	a := p.cur
	var ts []float64
	for _, x := range []float64{0, p.w} {
		if t, ok := crossing(a.X, pt.X, x); ok {
			ts = append(ts, t)
		}
	}
	for _, y := range []float64{0, p.h} {
		if t, ok := crossing(a.Y, pt.Y, y); ok {
			ts = append(ts, t)
		}
	}
	slices.Sort(ts)
	for _, t := range ts {
		p.emit(chart.Point{X: a.X + t*(pt.X-a.X), Y: a.Y + t*(pt.Y-a.Y)})
	}
	p.emit(pt)
	p.cur = pt
}

// crossing returns where on [a, b] the coordinate passes through edge.
func crossing(a, b, edge float64) (float64, bool) {
	if (a < edge) == (b < edge) || a == b {
		return 0, false
	}
	return (edge - a) / (b - a), true
}

func (p *pen) close() {
	p.lineTo(p.first)
	p.z.ClosePath()
}

func (p *pen) emit(pt chart.Point) {
	q := p.clamp(pt)
	p.z.LineTo(float32(q.X), float32(q.Y))
}

func (p *pen) clamp(pt chart.Point) chart.Point {
	return chart.Point{
		X: min(max(pt.X, 0), p.w),
		Y: min(max(pt.Y, 0), p.h),
	}
}
