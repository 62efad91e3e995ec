package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/sysgraph/internal/raster"
)

const upperHalf = "▀"

// halfBlocks renders an image as terminal cells, two pixel rows per cell:
// the upper half block takes the top pixel as foreground and the bottom
// pixel as background. Translucent pixels are blended over bg. Runs of
// identically colored cells share one style.
func halfBlocks(img *image.RGBA, bg color.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}

		var (
			runTop, runBottom color.RGBA
			runLen            int
		)
		flush := func() {
			if runLen == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(hexColor(runTop)).
				Background(hexColor(runBottom))
			sb.WriteString(style.Render(strings.Repeat(upperHalf, runLen)))
			runLen = 0
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			top := raster.Blend(img.RGBAAt(x, y), bg)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = raster.Blend(img.RGBAAt(x, y+1), bg)
			}
			if runLen > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			runLen++
		}
		flush()
	}
	return sb.String()
}
