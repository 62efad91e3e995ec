package raster

import (
	"math"

	"github.com/bamsammich/sysgraph/internal/chart"
)

// arcStep is the largest angle covered by one line of a flattened arc.
const arcStep = math.Pi / 16

// subpath is a flattened run of points.
type subpath struct {
	points []chart.Point
	closed bool
}

// flatten converts a path to polylines. Arcs become short line runs; as in
// cairo, an arc joins the current point to its start with a line.
func flatten(p chart.Path) []subpath {
	var (
		out []subpath
		cur *subpath
	)
	start := func(pt chart.Point) {
		out = append(out, subpath{points: []chart.Point{pt}})
		cur = &out[len(out)-1]
	}
	add := func(pt chart.Point) {
		if cur == nil || cur.closed {
			start(pt)
			return
		}
		cur.points = append(cur.points, pt)
	}

	for _, s := range p {
		switch s.Op {
		case chart.MoveTo:
			start(chart.Point{X: s.X, Y: s.Y})
		case chart.LineTo:
			add(chart.Point{X: s.X, Y: s.Y})
		case chart.ArcTo:
			for _, pt := range arcPoints(s) {
				add(pt)
			}
		case chart.Close:
			if cur != nil {
				cur.closed = true
			}
		}
	}
	return out
}

func arcPoints(s chart.Segment) []chart.Point {
	sweep := s.A1 - s.A0
	n := max(int(math.Ceil(math.Abs(sweep)/arcStep)), 1)
	pts := make([]chart.Point, n+1)
	for i := range pts {
		a := s.A0 + sweep*float64(i)/float64(n)
		pts[i] = chart.Point{X: s.CX + s.R*math.Cos(a), Y: s.CY + s.R*math.Sin(a)}
	}
	return pts
}
