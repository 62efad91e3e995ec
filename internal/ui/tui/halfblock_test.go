package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfBlocks_RowsAndColumns(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	out := halfBlocks(img, background)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 5, strings.Count(line, upperHalf))
	}
}

func TestHalfBlocks_OddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 0xff, A: 0xff})
	out := halfBlocks(img, background)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 3, strings.Count(lines[1], upperHalf))
}

func TestHalfBlocks_Empty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	assert.Empty(t, halfBlocks(img, background))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#89b4fa", string(hexColor(SeriesColor(0))))
	assert.Equal(t, "#a6e3a1", string(hexColor(SeriesColor(1))))
	assert.Equal(t, "#89b4fa", string(hexColor(SeriesColor(len(SeriesColors)))), "wraps around")
}
