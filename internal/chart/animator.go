package chart

// ScrollAnimator tracks how far the chart has scrolled since the last
// sample arrived. Reset jumps forward by one full sample step; each tick
// pulls the offset back by one tick step.
//
// The offset is not clamped at zero: if ticks outpace
// arrivals the content keeps scrolling left.
type ScrollAnimator struct {
	offset   float64
	fullStep float64
	tickStep float64
}

// NewScrollAnimator creates an animator with a zero offset.
func NewScrollAnimator(fullStep, tickStep float64) *ScrollAnimator {
	return &ScrollAnimator{fullStep: fullStep, tickStep: tickStep}
}

// Reset sets the offset to one full step. Called once per sample.
func (a *ScrollAnimator) Reset() { a.offset = a.fullStep }

// Advance moves the offset back by one tick step. Called once per tick.
func (a *ScrollAnimator) Advance() { a.offset -= a.tickStep }

// Offset returns the current horizontal shift.
func (a *ScrollAnimator) Offset() float64 { return a.offset }
