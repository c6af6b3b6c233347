package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMinutes_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"hours and minutes", "3h 30m", 210},
		{"hours only", "8h", 480},
		{"minutes only", "45m", 45},
		{"zero minutes", "2h 0m", 120},
		{"sub-hour trip", "0h 50m", 50},
		{"no space", "1h20m", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, err := DurationMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestDurationMinutes_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty", "", ErrEmptyDuration},
		{"no units", "330", ErrInvalidDuration},
		{"wrong units", "3 hours", ErrInvalidDuration},
		{"garbage", "soon", ErrInvalidDuration},
		{"units only", "h m", ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DurationMinutes(tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestHourOf_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"08:30", 8},
		{"8:30", 8},
		{"00:00", 0},
		{"23:59", 23},
		{"12:05", 12},
	}

	for _, tt := range tests {
		hour, err := HourOf(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, hour, tt.input)
	}
}

func TestHourOf_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty", "", ErrEmptyClock},
		{"hour out of range", "24:00", ErrInvalidClock},
		{"minute out of range", "10:60", ErrInvalidClock},
		{"missing minutes", "10", ErrInvalidClock},
		{"words", "morning", ErrInvalidClock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HourOf(tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
