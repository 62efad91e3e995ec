// Package raster executes chart draw commands against an in-memory RGBA
// image using an anti-aliasing scanline rasterizer.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/bamsammich/sysgraph/internal/chart"
)

// circleSides is the polygon resolution used for round joins and caps.
const circleSides = 16

// Canvas is a transparent RGBA surface that chart commands are drawn on.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ chart.Executor = (*Canvas)(nil)

// New creates a transparent canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Execute draws cmds in order.
func (c *Canvas) Execute(cmds []chart.Command) {
	if c.img.Rect.Empty() {
		return
	}
	for _, cmd := range cmds {
		switch cmd.Kind {
		case chart.Fill:
			c.fill(cmd)
		case chart.Stroke:
			c.stroke(cmd)
		case chart.Mask:
			c.mask(cmd)
		}
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return WritePNG(w, c.img)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Stack composites canvases top to bottom over an opaque background,
// separated by gap pixels. The result is as wide as the widest canvas.
func Stack(canvases []*Canvas, gap int, bg color.RGBA) *image.RGBA {
	width, height := 0, 0
	for i, c := range canvases {
		size := c.Bounds().Size()
		width = max(width, size.X)
		height += size.Y
		if i > 0 {
			height += gap
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Rect, image.NewUniform(bg), image.Point{}, draw.Src)

	y := 0
	for _, c := range canvases {
		r := c.Bounds().Add(image.Pt(0, y))
		draw.Draw(out, r, c.img, c.img.Rect.Min, draw.Over)
		y += r.Dy() + gap
	}
	return out
}

func (c *Canvas) fill(cmd chart.Command) {
	subs := flatten(cmd.Path)
	if len(subs) == 0 {
		return
	}
	c.resetRasterizer()
	for _, sp := range subs {
		c.polygon(sp.points)
	}
	c.paint(cmd.Style)
}

func (c *Canvas) stroke(cmd chart.Command) {
	subs := flatten(cmd.Path)
	if len(subs) == 0 {
		return
	}
	half := cmd.Style.LineWidth / 2
	if half <= 0 {
		return
	}
	c.resetRasterizer()
	for _, sp := range subs {
		pts := sp.points
		if sp.closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			c.segmentQuad(pts[i-1], pts[i], half)
		}
		if cmd.Style.Join == chart.JoinRound || cmd.Style.Cap == chart.CapRound || len(pts) == 1 {
			for _, p := range pts {
				c.circle(p, half)
			}
		}
	}
	c.paint(cmd.Style)
}

// mask applies the command path as a coverage mask. Only DestIn is
// supported: destination pixels are scaled by the path coverage, so
// everything outside the path is erased.
func (c *Canvas) mask(cmd chart.Command) {
	b := c.img.Rect
	cov := image.NewAlpha(b)
	if subs := flatten(cmd.Path); len(subs) > 0 {
		c.resetRasterizer()
		for _, sp := range subs {
			c.polygon(sp.points)
		}
		c.z.DrawOp = draw.Src
		c.z.Draw(cov, b, image.Opaque, image.Point{})
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(cov.AlphaAt(x, y).A)
			if a == 0xff {
				continue
			}
			i := c.img.PixOffset(x, y)
			px := c.img.Pix[i : i+4 : i+4]
			for k := range px {
				px[k] = uint8(uint32(px[k]) * a / 0xff)
			}
		}
	}
}

func (c *Canvas) paint(st chart.Style) {
	c.z.DrawOp = draw.Over
	c.z.Draw(c.img, c.img.Rect, image.NewUniform(st.Color), image.Point{})
}

func (c *Canvas) resetRasterizer() {
	s := c.img.Rect.Size()
	c.z.Reset(s.X, s.Y)
}

func (c *Canvas) polygon(pts []chart.Point) {
	if len(pts) < 2 {
		return
	}
	p := newPen(c.z, c.img.Rect.Size())
	p.moveTo(pts[0])
	for _, pt := range pts[1:] {
		p.lineTo(pt)
	}
	p.close()
}

// segmentQuad adds the rectangle covering a stroked line segment. Its
// winding matches circle so overlapping pieces add up instead of cancel.
func (c *Canvas) segmentQuad(a, b chart.Point, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	c.polygon([]chart.Point{
		{X: a.X - nx, Y: a.Y - ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: a.X + nx, Y: a.Y + ny},
	})
}

func (c *Canvas) circle(center chart.Point, r float64) {
	pts := make([]chart.Point, circleSides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSides
		pts[i] = chart.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	c.polygon(pts)
}

// Blend composites a premultiplied pixel over an opaque background.
func Blend(px color.RGBA, bg color.RGBA) color.RGBA {
	inv := 0xff - uint32(px.A)
	mix := func(fg, back uint8) uint8 {
		return uint8(uint32(fg) + uint32(back)*inv/0xff)
	}
	return color.RGBA{R: mix(px.R, bg.R), G: mix(px.G, bg.G), B: mix(px.B, bg.B), A: 0xff}
}
