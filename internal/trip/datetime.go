package trip

import (
	"fmt"
	"time"

	"github.com/tj/go-naturaldate"
)

// LocalLayout is the canonical form of Leg.DepartLocal and Leg.ArriveLocal.
const LocalLayout = "2006-01-02T15:04"

// DateLayout formats calendar dates in plans.
const DateLayout = "2006-01-02"

var localLayouts = []string{
	LocalLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// LoadZone loads an IANA zone, rejecting the empty name that
// time.LoadLocation would silently treat as UTC.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("empty time zone")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", name, err)
	}
	return loc, nil
}

// ParseLocal parses an ISO-8601 datetime as wall-clock time in zone. Values
// carrying an explicit offset (RFC 3339) are converted into the zone.
func ParseLocal(value, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid local datetime %q", value)
}

// ParseNatural accepts anything ParseLocal does and otherwise falls back to
// natural phrases such as "next friday 3pm", resolved against ref as seen
// in zone. The result is formatted with LocalLayout.
func ParseNatural(value, zone string, ref time.Time) (string, error) {
	if t, err := ParseLocal(value, zone); err == nil {
		return t.Format(LocalLayout), nil
	}
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	t, err := naturaldate.Parse(value, ref.In(loc), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", value, err)
	}
	return t.In(loc).Format(LocalLayout), nil
}
