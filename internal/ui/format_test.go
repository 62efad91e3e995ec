package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0%"},
		{3.14159, "3.1%"},
		{9.94, "9.9%"},
		{42.4, "42%"},
		{100, "100%"},
		{-5, "-5.0%"},
		{130.6, "131%"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(tt.input))
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		want  string
		input int64
	}{
		{"0", 0},
		{"999", 999},
		{"1,000", 1000},
		{"48,917", 48917},
		{"1,234,567", 1234567},
		{"-1,000", -1000},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.input))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "3m 17s", FormatDuration(197*time.Second))
	assert.Equal(t, "1h 01m 01s", FormatDuration(3661*time.Second))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "CPU   ", PadRight("CPU", 6))
	assert.Equal(t, "Memory", PadRight("Memory", 3))
	assert.Equal(t, "µs ", PadRight("µs", 3))
	assert.Equal(t, "温度  ", PadRight("温度", 6))
}
