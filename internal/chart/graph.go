package chart

import (
	"context"
	"time"
)

// Surface is the host drawing surface as seen by a GraphArea. QueueDraw
// must not block; repeated requests before the next paint may collapse
// into one.
type Surface interface {
	QueueDraw()
}

// GraphArea owns the sample history and scroll state of one chart. It is
// not safe for concurrent use: AddValue, Tick and Draw must all run on the
// owning goroutine. Use Run to drain samples and ticks from other
// goroutines.
type GraphArea struct {
	params   Params
	surface  Surface
	buffer   *SampleBuffer
	animator *ScrollAnimator
}

// NewGraphArea creates a GraphArea. surface may be nil.
func NewGraphArea(params Params, surface Surface) *GraphArea {
	return &GraphArea{
		params:   params,
		surface:  surface,
		buffer:   NewSampleBuffer(params.TickStep(), params.ReleaseMargin),
		animator: NewScrollAnimator(params.SampleSpacing(), params.TickStep()),
	}
}

// AddValue records a new sample and restarts the scroll animation.
func (g *GraphArea) AddValue(v float64) {
	g.buffer.PushFront(v)
	g.animator.Reset()
}

// Tick advances the scroll animation and asks the surface for a redraw.
func (g *GraphArea) Tick() {
	g.animator.Advance()
	if g.surface != nil {
		g.surface.QueueDraw()
	}
}

// Draw is the draw callback: it releases samples the viewport no longer
// needs and renders the current state.
func (g *GraphArea) Draw(width, height float64) []Command {
	g.buffer.ReleaseIfNeeded(width)
	return Render(g.Frame(width, height))
}

// Frame captures the current state for the given viewport without
// releasing any samples.
func (g *GraphArea) Frame(width, height float64) Frame {
	return Frame{
		Samples: g.buffer.Values(),
		Offset:  g.animator.Offset(),
		Width:   width,
		Height:  height,
		Params:  g.params,
	}
}

// Params returns the visual parameters the area was built with.
func (g *GraphArea) Params() Params { return g.params }

// Offset returns the current scroll offset.
func (g *GraphArea) Offset() float64 { return g.animator.Offset() }

// Len returns the number of buffered samples.
func (g *GraphArea) Len() int { return g.buffer.Len() }

// Values returns a copy of the buffered samples, newest first.
func (g *GraphArea) Values() []float64 { return g.buffer.Values() }

// Run drains samples and ticks on the calling goroutine until ctx is done
// or both channels are closed. A nil channel is never selected.
func (g *GraphArea) Run(ctx context.Context, samples <-chan float64, ticks <-chan time.Time) error {
	for samples != nil || ticks != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v, ok := <-samples:
			if !ok {
				samples = nil
				continue
			}
			g.AddValue(v)
		case _, ok := <-ticks:
			if !ok {
				ticks = nil
				continue
			}
			g.Tick()
		}
	}
	return nil
}

// RedrawSignal is a Surface that coalesces redraw requests into a
// single-slot channel.
type RedrawSignal struct {
	c chan struct{}
}

// NewRedrawSignal creates a RedrawSignal.
func NewRedrawSignal() *RedrawSignal {
	return &RedrawSignal{c: make(chan struct{}, 1)}
}

// QueueDraw requests a redraw without blocking.
func (s *RedrawSignal) QueueDraw() {
	select {
	case s.c <- struct{}{}:
	default:
	}
}

// C returns the channel that receives pending redraw requests.
func (s *RedrawSignal) C() <-chan struct{} { return s.c }
