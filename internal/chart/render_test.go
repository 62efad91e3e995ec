package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(samples []float64) Frame {
	p := DefaultParams()
	p.SpacingPerSecond = 10
	return Frame{Samples: samples, Width: 200, Height: 100, Params: p}
}

func TestMapPoints(t *testing.T) {
	pts := MapPoints(testFrame([]float64{80, 50, 20}))
	want := []Point{{200, 20}, {190, 50}, {180, 80}}
	require.Len(t, pts, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, pts[i].X, 1e-9)
		assert.InDelta(t, want[i].Y, pts[i].Y, 1e-9)
	}
}

func TestMapPointsOffsetShiftsRight(t *testing.T) {
	f := testFrame([]float64{80, 50})
	f.Offset = 4
	pts := MapPoints(f)
	assert.InDelta(t, 204.0, pts[0].X, 1e-9)
	assert.InDelta(t, 194.0, pts[1].X, 1e-9)
}

func TestMapPointsOutOfRange(t *testing.T) {
	pts := MapPoints(testFrame([]float64{150, -50}))
	assert.InDelta(t, -50.0, pts[0].Y, 1e-9) // above the top edge
	assert.InDelta(t, 150.0, pts[1].Y, 1e-9) // below the bottom edge
}

func TestRenderOrder(t *testing.T) {
	cmds := Render(testFrame([]float64{80, 50, 20}))
	require.Len(t, cmds, 3)
	assert.Equal(t, Fill, cmds[0].Kind)
	assert.Equal(t, Stroke, cmds[1].Kind)
	assert.Equal(t, Mask, cmds[2].Kind)
	assert.Equal(t, DestIn, cmds[2].Style.Operator)
}

func TestRenderFillClosesToBottom(t *testing.T) {
	cmds := Render(testFrame([]float64{80, 50, 20}))
	fill := cmds[0].Path

	require.True(t, fill.Closed())
	assert.Equal(t, MoveTo, fill[0].Op)
	assert.Equal(t, []Point{
		{200, 20}, {190, 50}, {180, 80},
		{180, 100}, {200, 100},
	}, fill.Points())
}

func TestRenderStrokeIsOpen(t *testing.T) {
	cmds := Render(testFrame([]float64{80, 50, 20}))
	stroke := cmds[1].Path

	assert.False(t, stroke.Closed())
	assert.Equal(t, []Point{{200, 20}, {190, 50}, {180, 80}}, stroke.Points())
}

func TestRenderStyles(t *testing.T) {
	f := testFrame([]float64{50})
	f.Params.LineWidth = 1.5
	f.Params.FillAlpha = 0.2
	cmds := Render(f)

	fill, stroke := cmds[0].Style, cmds[1].Style
	assert.Equal(t, uint8(51), fill.Color.A)
	assert.Equal(t, uint8(255), stroke.Color.A)
	assert.Equal(t, f.Params.Color.R, fill.Color.R)
	assert.Equal(t, f.Params.Color.R, stroke.Color.R)
	assert.InDelta(t, 1.5, stroke.LineWidth, 0)
	assert.Equal(t, JoinRound, fill.Join)
	assert.Equal(t, CapRound, stroke.Cap)
}

func TestRenderEmptyBuffer(t *testing.T) {
	cmds := Render(testFrame(nil))
	require.Len(t, cmds, 3)
	assert.True(t, cmds[0].Path.Empty())
	assert.True(t, cmds[1].Path.Empty())
	assert.False(t, cmds[2].Path.Empty())
}

func TestRenderDegenerateViewport(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {0, 100}, {200, 0}, {-10, 50}, {50, -1}, {math.NaN(), 10}} {
		f := testFrame([]float64{10, 20})
		f.Width, f.Height = size[0], size[1]
		assert.Empty(t, Render(f), "viewport %v", size)
	}

	for _, w := range []float64{1e19, math.Inf(1)} {
		f := testFrame([]float64{10, 20})
		f.Width = w
		assert.NotPanics(t, func() { Render(f) }, "width %g", w)
	}
}

func TestRoundedRectGeometry(t *testing.T) {
	path := RoundedRect(200, 100, 12)
	require.True(t, path.Closed())
	assert.Equal(t, MoveTo, path[0].Op)
	assert.InDelta(t, 200.0, path[0].X, 0)
	assert.InDelta(t, 88.0, path[0].Y, 0)

	arcs := path.Arcs()
	require.Len(t, arcs, 4)
	centers := []Point{{188, 88}, {12, 88}, {12, 12}, {188, 12}}
	for i, arc := range arcs {
		assert.InDelta(t, centers[i].X, arc.CX, 1e-9, "arc %d", i)
		assert.InDelta(t, centers[i].Y, arc.CY, 1e-9, "arc %d", i)
		assert.InDelta(t, 12.0, arc.R, 0)
		assert.InDelta(t, math.Pi/2, arc.A1-arc.A0, 1e-9, "arc %d sweep", i)
	}

	assert.Equal(t, []Point{{200, 88}, {12, 100}, {0, 12}, {188, 0}}, path.Points())
}

func TestRoundedRectClampsRadius(t *testing.T) {
	path := RoundedRect(10, 6, 12)
	for _, arc := range path.Arcs() {
		assert.InDelta(t, 3.0, arc.R, 1e-9)
	}
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "LineTo(1,2)", Segment{Op: LineTo, X: 1, Y: 2}.String())
	assert.Equal(t, "Close", Segment{Op: Close}.String())
	assert.Equal(t, "Unknown", SegmentOp(42).String())
	assert.Equal(t, "Mask", Mask.String())
}

func TestFrameScaled(t *testing.T) {
	f := testFrame([]float64{80, 50, 20})
	f.Offset = 2
	pts := MapPoints(f)

	big := f.Scaled(4)
	assert.InDelta(t, 800.0, big.Width, 0)
	assert.InDelta(t, 400.0, big.Height, 0)
	assert.InDelta(t, 4*f.Params.LineWidth, big.Params.LineWidth, 1e-9)
	assert.InDelta(t, 4*f.Params.CornerRadius, big.Params.CornerRadius, 1e-9)

	bigPts := MapPoints(big)
	require.Len(t, bigPts, len(pts))
	for i := range pts {
		assert.InDelta(t, 4*pts[i].X, bigPts[i].X, 1e-9)
		assert.InDelta(t, 4*pts[i].Y, bigPts[i].Y, 1e-9)
	}
}
