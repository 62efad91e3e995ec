package chart

import "math"

// SampleBuffer stores recently arrived samples, newest first. It is not
// safe for concurrent use; the owning GraphArea serializes access.
type SampleBuffer struct {
	values []float64
	step   float64
	margin int
}

// NewSampleBuffer creates an empty buffer that retains
// floor(width/step)+margin samples on each release pass.
func NewSampleBuffer(step float64, margin int) *SampleBuffer {
	return &SampleBuffer{step: step, margin: max(margin, 0)}
}

// PushFront inserts v as the newest sample. Values are not range checked.
func (b *SampleBuffer) PushFront(v float64) {
	b.values = append(b.values, 0)
	copy(b.values[1:], b.values)
	b.values[0] = v
}

// VisibleCapacity returns how many samples a viewport of the given width
// keeps after a release pass. Widths too large to count in an int are
// unbounded and return math.MaxInt.
func (b *SampleBuffer) VisibleCapacity(width float64) int {
	if width <= 0 || b.step <= 0 || math.IsNaN(width) {
		return b.margin
	}
	n := math.Floor(width / b.step)
	if n >= float64(math.MaxInt-b.margin) {
		return math.MaxInt
	}
	return int(n) + b.margin
}

// ReleaseIfNeeded drops the oldest samples beyond VisibleCapacity(width).
func (b *SampleBuffer) ReleaseIfNeeded(width float64) {
	capacity := b.VisibleCapacity(width)
	if len(b.values) <= capacity {
		return
	}
	clear(b.values[capacity:])
	b.values = b.values[:capacity]
}

// Len returns the number of buffered samples.
func (b *SampleBuffer) Len() int { return len(b.values) }

// At returns the i-th sample, 0 being the newest.
func (b *SampleBuffer) At(i int) float64 { return b.values[i] }

// Values returns a copy of the buffered samples, newest first.
func (b *SampleBuffer) Values() []float64 {
	out := make([]float64, len(b.values))
	copy(out, b.values)
	return out
}
