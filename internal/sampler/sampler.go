// Package sampler produces periodic scalar measurements normalized to the
// 0-100 range and delivers them through registered callbacks.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrUnknownSource is returned by New for an unrecognized source name.
var ErrUnknownSource = errors.New("unknown sample source")

// Sampler asynchronously produces values. Every produced value is passed
// once to each registered callback, on the sampler's goroutine.
type Sampler interface {
	OnSample(fn func(float64))
	Start(ctx context.Context)
	Stop()
}

// ReadFunc takes one measurement.
type ReadFunc func(ctx context.Context) (float64, error)

// Poller is a Sampler that calls a ReadFunc at a fixed interval.
type Poller struct {
	source   string
	interval time.Duration
	read     ReadFunc

	mu       sync.Mutex
	onSample []func(float64)
	onError  []func(error)
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewPoller creates a stopped Poller.
func NewPoller(source string, interval time.Duration, read ReadFunc) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{source: source, interval: interval, read: read}
}

// Source returns the name the poller was created with.
func (p *Poller) Source() string { return p.source }

// Interval returns the polling interval.
func (p *Poller) Interval() time.Duration { return p.interval }

// OnSample registers a callback for produced values.
func (p *Poller) OnSample(fn func(float64)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onSample = append(p.onSample, fn)
}

// OnError registers a callback for failed reads. Failed reads produce no
// value.
func (p *Poller) OnError(fn func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onError = append(p.onError, fn)
}

// Start takes a first measurement immediately and then one per interval
// until Stop is called or ctx is done. Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.loop(ctx, p.done)
}

// Stop halts polling and waits for the polling goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.poll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	v, err := p.read(ctx)
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	onSample, onError := p.onSample, p.onError
	p.mu.Unlock()

	if err != nil {
		slog.Warn("sample failed", "source", p.source, "error", err)
		for _, fn := range onError {
			fn(err)
		}
		return
	}
	for _, fn := range onSample {
		fn(v)
	}
}

// Sources lists the names accepted by New.
func Sources() []string {
	return []string{"cpu", "mem", "swap", "disk[:PATH]", "sine"}
}

// New creates a Poller for a named source.
func New(source string, interval time.Duration) (*Poller, error) {
	name, arg, _ := strings.Cut(source, ":")
	var read ReadFunc
	switch name {
	case "cpu":
		read = CPUPercent
	case "mem":
		read = MemoryPercent
	case "swap":
		read = SwapPercent
	case "disk":
		if arg == "" {
			arg = "/"
		}
		read = DiskPercent(arg)
	case "sine":
		read = Sine(time.Now(), 10*time.Second)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return NewPoller(source, interval, read), nil
}

// CPUPercent reports total CPU utilization since the previous call.
func CPUPercent(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, fmt.Errorf("cpu percent: %w", err)
	}
	if len(pcts) == 0 {
		return 0, errors.New("cpu percent: no data")
	}
	return pcts[0], nil
}

// MemoryPercent reports used physical memory.
func MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.UsedPercent, nil
}

// SwapPercent reports used swap space.
func SwapPercent(ctx context.Context) (float64, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("swap memory: %w", err)
	}
	return sw.UsedPercent, nil
}

// DiskPercent reports used space of the filesystem holding path.
func DiskPercent(path string) ReadFunc {
	return func(ctx context.Context) (float64, error) {
		u, err := disk.UsageWithContext(ctx, path)
		if err != nil {
			return 0, fmt.Errorf("disk usage %s: %w", path, err)
		}
		return u.UsedPercent, nil
	}
}

// Sine produces a synthetic wave between 0 and 100 with the given period.
func Sine(start time.Time, period time.Duration) ReadFunc {
	return func(context.Context) (float64, error) {
		phase := float64(time.Since(start)) / float64(period)
		return 50 + 50*math.Sin(2*math.Pi*phase), nil
	}
}

// Chan registers a callback on s that forwards values to the returned
// channel. Sends block until received or ctx is done.
func Chan(ctx context.Context, s Sampler, size int) <-chan float64 {
	ch := make(chan float64, size)
	s.OnSample(func(v float64) {
		select {
		case ch <- v:
		case <-ctx.Done():
		}
	})
	return ch
}
