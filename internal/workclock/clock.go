// Package workclock holds the working-time calculation and validation
// engine: rounding, gross/net hour math, statutory break derivation and
// overlap detection for clock-in/clock-out entries. Everything in this
// package is a pure function over clock values so it can be exercised
// without a database or any registration side effects.
package workclock

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day, independent of any calendar date.
// TZ is an optional informational timezone label; the engine compares
// clock values as given and never converts between zones.
type Clock struct {
	Hour   int
	Minute int
	TZ     string
}

func NewClock(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

// ParseClock parses "15:04" formatted clock text.
func ParseClock(s string) (Clock, error) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return Clock{}, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	c := Clock{Hour: hour, Minute: minute}
	if !c.Valid() {
		return Clock{}, fmt.Errorf("clock time %q out of range", s)
	}
	return c, nil
}

// Minutes converts the clock value to minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour < 24 && c.Minute >= 0 && c.Minute < 60
}

func (c Clock) Equal(o Clock) bool {
	return c.Hour == o.Hour && c.Minute == o.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
