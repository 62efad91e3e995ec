package event

import "time"

// Type identifies the kind of event.
type Type int

const (
	SamplerStarted Type = iota + 1
	SampleReceived
	SampleFailed
	SamplerStopped
)

var typeNames = [...]string{
	SamplerStarted: "SamplerStarted",
	SampleReceived: "SampleReceived",
	SampleFailed:   "SampleFailed",
	SamplerStopped: "SamplerStopped",
}

func (t Type) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return "Unknown"
}

// Event is a single notification from a sampler.
type Event struct {
	Type      Type
	Timestamp time.Time
	Monitor   int    // index of the monitor the sampler feeds
	Source    string // sampler source name, e.g. "cpu"
	Value     float64
	Error     error
}
