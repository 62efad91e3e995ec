package ui

import "github.com/bamsammich/sysgraph/internal/event"

// Event is re-exported so presenters need not import the event package.
type Event = event.Event

// Re-export event types for convenience.
const (
	SamplerStarted = event.SamplerStarted
	SampleReceived = event.SampleReceived
	SampleFailed   = event.SampleFailed
	SamplerStopped = event.SamplerStopped
)
