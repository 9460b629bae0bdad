package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed as minutes since midnight. The zero value
// is not a valid clock reading; use ParseClock or NewClock.
type Clock struct {
	minutes int
	valid   bool
}

func NewClock(hour, minute int) Clock {
	return Clock{minutes: hour*60 + minute, valid: true}
}

// FromTime extracts the clock reading from a wall-clock instant.
func FromTime(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

// FromMinutes builds a Clock from minutes since midnight, as stored in the
// database.
func FromMinutes(minutes int) Clock {
	return Clock{minutes: minutes, valid: true}
}

// ParseClock parses "HH:MM" or "HH:MM:SS". An empty string yields the absent
// Clock with no error, so schedule columns left blank stay absent instead of
// becoming midnight.
func ParseClock(s string) (Clock, error) {
	if strings.TrimSpace(s) == "" {
		return Clock{}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock{}, fmt.Errorf("invalid clock %q: expected HH:MM or HH:MM:SS", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid clock %q: out of range", s)
	}

	return NewClock(hour, minute), nil
}

// IsPresent reports whether c holds a real clock reading.
func (c Clock) IsPresent() bool {
	return c.valid
}

// Minutes returns minutes since midnight. Only meaningful when IsPresent.
func (c Clock) Minutes() int {
	return c.minutes
}

// Sub returns c - other in minutes, signed.
func (c Clock) Sub(other Clock) int {
	return c.minutes - other.minutes
}

// DistanceTo returns the absolute minute difference between two readings.
func (c Clock) DistanceTo(other Clock) int {
	d := c.minutes - other.minutes
	if d < 0 {
		d = -d
	}
	return d
}

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.minutes < other.minutes
}

// String renders the reading as "HH:MM"; absent readings render empty.
func (c Clock) String() string {
	if !c.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}
