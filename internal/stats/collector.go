package stats

import (
	"fmt"
	"math"
	"sync"
)

const ringSize = 60

// Series keeps the most recent samples of one monitor for summary
// statistics. It is independent of the chart buffer, which is trimmed to
// the viewport.
type Series struct {
	mu     sync.Mutex
	ring   [ringSize]float64
	idx    int
	count  int // capped at ringSize
	total  int64
	failed int64
}

// NewSeries creates an empty Series.
func NewSeries() *Series {
	return &Series{}
}

// Add records a sample.
func (s *Series) Add(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring[s.idx] = v
	s.idx = (s.idx + 1) % ringSize
	if s.count < ringSize {
		s.count++
	}
	s.total++
}

// AddFailed counts a failed read.
func (s *Series) AddFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
}

// Snapshot is a point-in-time summary of a Series.
type Snapshot struct {
	Last    float64
	Avg     float64
	Min     float64
	Max     float64
	Samples int64
	Failed  int64
}

// Snapshot summarizes the last n samples.
func (s *Series) Snapshot(n int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Samples: s.total, Failed: s.failed}
	count := min(n, s.count)
	if count <= 0 {
		return snap
	}

	snap.Min, snap.Max = math.Inf(1), math.Inf(-1)
	var sum float64
	for i := range count {
		v := s.ring[(s.idx-1-i+ringSize)%ringSize]
		sum += v
		snap.Min = min(snap.Min, v)
		snap.Max = max(snap.Max, v)
	}
	snap.Last = s.ring[(s.idx-1+ringSize)%ringSize]
	snap.Avg = sum / float64(count)
	return snap
}

// Last returns the newest sample, or 0 if there is none.
func (s *Series) Last() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return 0
	}
	return s.ring[(s.idx-1+ringSize)%ringSize]
}

// RollingAvg returns the average of the last n samples.
func (s *Series) RollingAvg(n int) float64 {
	return s.Snapshot(n).Avg
}

// SparklineData returns the last n samples, oldest first.
func (s *Series) SparklineData(n int) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := min(n, s.count)
	if count <= 0 {
		return nil
	}

	data := make([]float64, count)
	for i := range count {
		data[i] = s.ring[(s.idx-count+i+ringSize)%ringSize]
	}
	return data
}

func (s Snapshot) String() string {
	return fmt.Sprintf("last=%.1f avg=%.1f min=%.1f max=%.1f samples=%d failed=%d",
		s.Last, s.Avg, s.Min, s.Max, s.Samples, s.Failed)
}
