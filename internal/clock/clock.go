// Package clock implements wall-clock times of day that wrap at midnight.
package clock

import (
	"fmt"
	"strconv"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// Clock is a time of day expressed as minutes after midnight, always in
// [0, MinutesPerDay).
type Clock int

// Midnight is 00:00.
const Midnight Clock = 0

// Parse reads a zero-padded "HH:MM" string.
func Parse(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return Clock(h*MinutesPerHour + m), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Of builds a Clock from hours and minutes, wrapping out-of-range values.
func Of(hours, minutes int) Clock {
	return Midnight.Add(hours*MinutesPerHour + minutes)
}

// Add shifts c by minutes (negative moves earlier), wrapping across midnight.
func (c Clock) Add(minutes int) Clock {
	total := (int(c) + minutes) % MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}
	return Clock(total)
}

func (c Clock) Hour() int   { return int(c) / MinutesPerHour }
func (c Clock) Minute() int { return int(c) % MinutesPerHour }

// MinutesUntil returns the minutes elapsed from c forward to other, treating
// other <= c as falling on the next day.
func (c Clock) MinutesUntil(other Clock) int {
	d := int(other) - int(c)
	if d <= 0 {
		d += MinutesPerDay
	}
	return d
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
