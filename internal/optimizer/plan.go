package optimizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/christopherklint97/jetlagr/internal/clock"
)

// Strategy is the direction the sleep-wake cycle is moved.
type Strategy string

const (
	StrategyAdvance Strategy = "advance"
	StrategyDelay   Strategy = "delay"
	StrategyMinimal Strategy = "minimal"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyAdvance, StrategyDelay, StrategyMinimal:
		return true
	}
	return false
}

type ActivityType string

const (
	ActivitySleep          ActivityType = "sleep"
	ActivityMelatonin      ActivityType = "melatonin"
	ActivityLightSeek      ActivityType = "light-seek"
	ActivityLightAvoid     ActivityType = "light-avoid"
	ActivityCaffeineCutoff ActivityType = "caffeine-cutoff"
	ActivityNap            ActivityType = "nap"
)

// ActivityTypes lists every activity kind in display order.
var ActivityTypes = []ActivityType{
	ActivitySleep,
	ActivityMelatonin,
	ActivityLightSeek,
	ActivityLightAvoid,
	ActivityCaffeineCutoff,
	ActivityNap,
}

func (a ActivityType) Valid() bool {
	for _, t := range ActivityTypes {
		if a == t {
			return true
		}
	}
	return false
}

// Label is the display name, e.g. "Caffeine cutoff".
func (a ActivityType) Label() string {
	s := strings.Replace(string(a), "-", " ", 1)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DayKind tells which phase of the trip a PlanDay belongs to.
type DayKind string

const (
	DayPreTravel   DayKind = "pre-travel"
	DayTravel      DayKind = "travel"
	DayPostArrival DayKind = "post-arrival"
)

// ActivityBlock is a timed recommendation. End before Start means the block
// runs past midnight into the next day.
type ActivityBlock struct {
	Type        ActivityType `json:"type"`
	Start       clock.Clock  `json:"start_time"`
	End         clock.Clock  `json:"end_time"`
	Description string       `json:"description"`
	TimeZone    string       `json:"time_zone"`
}

// Minutes is the block length, wrapping past midnight when needed.
func (b ActivityBlock) Minutes() int {
	return b.Start.MinutesUntil(b.End)
}

type PlanDay struct {
	Date       string          `json:"date"`
	Kind       DayKind         `json:"kind"`
	TimeZone   string          `json:"time_zone"`
	Summary    string          `json:"summary"`
	Activities []ActivityBlock `json:"activities"`
}

// Plan is the full schedule derived from one trip.
type Plan struct {
	TripID                  string    `json:"trip_id"`
	TotalTimeZoneDifference int       `json:"total_time_zone_difference"`
	ShiftStrategy           Strategy  `json:"shift_strategy"`
	DailyShiftMinutes       int       `json:"daily_shift_minutes"`
	KeyActions              []string  `json:"key_actions"`
	Days                    []PlanDay `json:"days"`
	GeneratedAt             time.Time `json:"generated_at"`
}

// DaysOfKind returns the days in one phase, in plan order.
func (p *Plan) DaysOfKind(kind DayKind) []PlanDay {
	var out []PlanDay
	for _, d := range p.Days {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Check reports the first unknown strategy or activity type in p.
func (p *Plan) Check() error {
	if !p.ShiftStrategy.Valid() {
		return fmt.Errorf("unknown shift strategy %q", p.ShiftStrategy)
	}
	for _, d := range p.Days {
		for _, b := range d.Activities {
			if !b.Type.Valid() {
				return fmt.Errorf("%s: unknown activity type %q", d.Date, b.Type)
			}
		}
	}
	return nil
}
