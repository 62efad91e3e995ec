package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleBufferPushFrontIsNewestFirst(t *testing.T) {
	b := NewSampleBuffer(1, 0)
	b.PushFront(20)
	b.PushFront(50)
	b.PushFront(80)

	assert.Equal(t, []float64{80, 50, 20}, b.Values())
	assert.Equal(t, 3, b.Len())
	assert.InDelta(t, 80.0, b.At(0), 0)
}

func TestSampleBufferReleaseBound(t *testing.T) {
	tests := []struct {
		name   string
		pushes int
		width  float64
		step   float64
		margin int
		want   int
	}{
		{name: "under capacity", pushes: 5, width: 100, step: 10, margin: 2, want: 5},
		{name: "at capacity", pushes: 12, width: 100, step: 10, margin: 2, want: 12},
		{name: "over capacity", pushes: 40, width: 100, step: 10, margin: 2, want: 12},
		{name: "fractional width floors", pushes: 40, width: 109, step: 10, margin: 2, want: 12},
		{name: "sub-pixel step", pushes: 500, width: 200, step: 1, margin: 50, want: 250},
		{name: "zero width keeps margin", pushes: 80, width: 0, step: 1, margin: 50, want: 50},
		{name: "negative width keeps margin", pushes: 80, width: -30, step: 1, margin: 50, want: 50},
		{name: "huge width keeps everything", pushes: 80, width: 1e19, step: 1, margin: 50, want: 80},
		{name: "infinite width keeps everything", pushes: 80, width: math.Inf(1), step: 0.5, margin: 50, want: 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSampleBuffer(tt.step, tt.margin)
			for i := range tt.pushes {
				b.PushFront(float64(i))
			}
			b.ReleaseIfNeeded(tt.width)
			assert.Equal(t, tt.want, b.Len())
			assert.LessOrEqual(t, b.Len(), b.VisibleCapacity(tt.width))
		})
	}
}

func TestSampleBufferReleaseDropsOldest(t *testing.T) {
	b := NewSampleBuffer(10, 1)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		b.PushFront(v)
	}
	// capacity = floor(20/10) + 1 = 3
	b.ReleaseIfNeeded(20)
	assert.Equal(t, []float64{5, 4, 3}, b.Values())
}

func TestSampleBufferReleaseIdempotent(t *testing.T) {
	b := NewSampleBuffer(1, 50)
	for i := range 400 {
		b.PushFront(float64(i % 100))
	}
	b.ReleaseIfNeeded(120)
	once := b.Values()
	b.ReleaseIfNeeded(120)
	assert.Equal(t, once, b.Values())
}

func TestSampleBufferOutOfRangeValuesKept(t *testing.T) {
	b := NewSampleBuffer(1, 0)
	b.PushFront(-20)
	b.PushFront(150)
	assert.Equal(t, []float64{150, -20}, b.Values())
}

func TestSampleBufferValuesIsCopy(t *testing.T) {
	b := NewSampleBuffer(1, 0)
	b.PushFront(10)
	vals := b.Values()
	vals[0] = 99
	assert.InDelta(t, 10.0, b.At(0), 0)
}

func TestSampleBufferVisibleCapacityUnbounded(t *testing.T) {
	b := NewSampleBuffer(1, 50)
	assert.Equal(t, math.MaxInt, b.VisibleCapacity(1e19))
	assert.Equal(t, math.MaxInt, b.VisibleCapacity(math.Inf(1)))
	assert.Equal(t, 50, b.VisibleCapacity(math.Inf(-1)))
	assert.Equal(t, 1050, b.VisibleCapacity(1000))
}
