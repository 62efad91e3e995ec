// Package tick provides the fixed-frequency redraw tick source.
package tick

import (
	"sync"
	"time"
)

// Ticker invokes a callback at a fixed frequency between Start and Stop.
// The callback runs on the ticker's own goroutine.
type Ticker struct {
	period time.Duration
	fn     func(time.Time)

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New creates a stopped Ticker firing hz times per second. A non-positive
// frequency falls back to 10 Hz.
func New(hz float64, fn func(time.Time)) *Ticker {
	if hz <= 0 {
		hz = 10
	}
	return &Ticker{
		period: time.Duration(float64(time.Second) / hz),
		fn:     fn,
	}
}

// Period returns the interval between ticks.
func (t *Ticker) Period() time.Duration { return t.period }

// Start begins ticking. Starting a running ticker is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(t.stop, t.done)
}

// Stop halts ticking and waits for an in-flight callback to return.
// Stopping a stopped ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether the ticker has been started and not stopped.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Ticker) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	tk := time.NewTicker(t.period)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			t.fn(now)
		}
	}
}

// Forward returns a callback that hands ticks to ch without blocking.
// Ticks are dropped while the receiver is behind, which coalesces them.
func Forward(ch chan<- time.Time) func(time.Time) {
	return func(now time.Time) {
		select {
		case ch <- now:
		default:
		}
	}
}
