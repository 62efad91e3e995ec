package tick

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerPeriod(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, New(10, func(time.Time) {}).Period())
	assert.Equal(t, 100*time.Millisecond, New(0, func(time.Time) {}).Period())
	assert.Equal(t, 50*time.Millisecond, New(20, func(time.Time) {}).Period())
}

func TestTickerStartStop(t *testing.T) {
	var n atomic.Int32
	tk := New(200, func(time.Time) { n.Add(1) })

	tk.Start()
	tk.Start() // no second goroutine
	assert.True(t, tk.Running())

	assert.Eventually(t, func() bool { return n.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	tk.Stop()
	assert.False(t, tk.Running())
	after := n.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, n.Load(), "no ticks after Stop")

	tk.Stop() // idempotent
}

func TestTickerRestart(t *testing.T) {
	var n atomic.Int32
	tk := New(200, func(time.Time) { n.Add(1) })
	tk.Start()
	tk.Stop()
	before := n.Load()

	tk.Start()
	defer tk.Stop()
	assert.Eventually(t, func() bool { return n.Load() > before }, 2*time.Second, 5*time.Millisecond)
}

func TestForwardDoesNotBlock(t *testing.T) {
	ch := make(chan time.Time, 1)
	fwd := Forward(ch)

	fwd(time.Unix(1, 0))
	fwd(time.Unix(2, 0)) // dropped

	assert.Equal(t, time.Unix(1, 0), <-ch)
	assert.Empty(t, ch)
}
