package event

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		want string
		typ  Type
	}{
		{want: "SamplerStarted", typ: SamplerStarted},
		{want: "SampleReceived", typ: SampleReceived},
		{want: "SampleFailed", typ: SampleFailed},
		{want: "SamplerStopped", typ: SamplerStopped},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestTypeStringUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Type(999).String())
	assert.Equal(t, "Unknown", Type(0).String())
}

func TestEventFields(t *testing.T) {
	now := time.Now()
	errBoom := errors.New("boom")
	ev := Event{
		Type:      SampleFailed,
		Timestamp: now,
		Monitor:   2,
		Source:    "mem",
		Error:     errBoom,
	}

	assert.Equal(t, SampleFailed, ev.Type)
	assert.Equal(t, now, ev.Timestamp)
	assert.Equal(t, 2, ev.Monitor)
	assert.Equal(t, "mem", ev.Source)
	assert.ErrorIs(t, ev.Error, errBoom)
}
