package timeparse

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	// ErrEmptyDuration indicates the duration string is empty
	ErrEmptyDuration = errors.New("duration cannot be empty")

	// ErrInvalidDuration indicates the duration doesn't match the "Xh Ym" pattern
	ErrInvalidDuration = errors.New("duration must match the \"Xh Ym\" pattern (e.g. \"3h 30m\")")

	// ErrEmptyClock indicates the clock string is empty
	ErrEmptyClock = errors.New("time cannot be empty")

	// ErrInvalidClock indicates the clock string doesn't match the "HH:MM" pattern
	ErrInvalidClock = errors.New("time must match the \"HH:MM\" pattern (e.g. \"08:30\")")
)

// durationRegex matches trip durations like "3h 30m", "3h" or "45m"
var durationRegex = regexp.MustCompile(`^(?:(\d+)h)?\s*(?:(\d+)m)?$`)

// clockRegex matches 24-hour departure times like "08:30" or "8:30"
var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// DurationMinutes parses a trip duration string like "3h 30m" into total minutes.
// Accepts hour-only ("3h") and minute-only ("45m") forms.
func DurationMinutes(duration string) (int, error) {
	if duration == "" {
		return 0, ErrEmptyDuration
	}

	match := durationRegex.FindStringSubmatch(duration)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, ErrInvalidDuration
	}

	minutes := 0
	if match[1] != "" {
		hours, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, ErrInvalidDuration
		}
		minutes += hours * 60
	}
	if match[2] != "" {
		mins, err := strconv.Atoi(match[2])
		if err != nil {
			return 0, ErrInvalidDuration
		}
		minutes += mins
	}

	return minutes, nil
}

// HourOf parses a departure time string like "08:30" and returns the hour component.
func HourOf(clock string) (int, error) {
	if clock == "" {
		return 0, ErrEmptyClock
	}

	match := clockRegex.FindStringSubmatch(clock)
	if match == nil {
		return 0, ErrInvalidClock
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, ErrInvalidClock
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}

	return hour, nil
}
