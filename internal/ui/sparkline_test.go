package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparklineAllZeros(t *testing.T) {
	result := Sparkline([]float64{0, 0, 0, 0, 0}, 5, 100)
	assert.Equal(t, "▁▁▁▁▁", result)
}

func TestSparklineSingleSample(t *testing.T) {
	result := Sparkline([]float64{100}, 5, 100)
	// 1 value, padded left with 4 zeros.
	runes := []rune(result)
	assert.Len(t, runes, 5)
	assert.Equal(t, '▁', runes[0]) // zero padding
	assert.Equal(t, '█', runes[4])
}

func TestSparklinePercentScale(t *testing.T) {
	runes := []rune(Sparkline([]float64{0, 50, 100}, 3, 100))
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '▄', runes[1])
	assert.Equal(t, '█', runes[2])
}

func TestSparklineOverCeilingClamps(t *testing.T) {
	assert.Equal(t, "█", Sparkline([]float64{250}, 1, 100))
	assert.Equal(t, "▁", Sparkline([]float64{-20}, 1, 100))
}

func TestSparklineAutoScale(t *testing.T) {
	// When all values are the same, they all map to max (█).
	for _, r := range Sparkline([]float64{5, 5, 5, 5}, 4, 0) {
		assert.Equal(t, '█', r)
	}
}

func TestSparklineZeroWidth(t *testing.T) {
	assert.Equal(t, "", Sparkline([]float64{1, 2, 3}, 0, 100))
}

func TestSparklineTruncation(t *testing.T) {
	// More data than width: takes last `width` samples.
	data := []float64{10, 20, 30, 40, 50}
	assert.Len(t, []rune(Sparkline(data, 3, 100)), 3)
}
