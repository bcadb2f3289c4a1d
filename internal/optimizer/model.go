package optimizer

import (
	"math"
	"time"

	"github.com/christopherklint97/jetlagr/internal/trip"
)

// Policy constants.
const (
	// MinimalThresholdHours is the smallest offset that gets a real shift.
	MinimalThresholdHours = 3
	// MaxConditioningDays caps pre-travel conditioning at one week.
	MaxConditioningDays = 7
	// PostArrivalDays is the fixed entrainment window after the final arrival.
	PostArrivalDays = 3
	// PostArrivalMelatoninDays limits melatonin to the first arrival days.
	PostArrivalMelatoninDays = 2

	minimalShiftMinutes = 30
	baseShiftMinutes    = 60
)

// TimeZoneDelta returns the whole-hour civil offset of dest relative to the
// zone of departure, both evaluated at the departure instant so daylight
// saving in force at travel time is respected. Positive means dest is ahead
// (eastward). Fractional hours truncate toward zero.
func TimeZoneDelta(departure time.Time, dest *time.Location) int {
	_, originOffset := departure.Zone()
	_, destOffset := departure.In(dest).Zone()
	return (destOffset - originOffset) / 3600
}

// ClassifyStrategy picks the shift direction from a signed delta.
func ClassifyStrategy(deltaHours int) Strategy {
	abs := deltaHours
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < MinimalThresholdHours:
		return StrategyMinimal
	case deltaHours > 0:
		return StrategyAdvance
	default:
		return StrategyDelay
	}
}

func sensitivityMultiplier(s trip.Sensitivity) float64 {
	switch s {
	case trip.SensitivityLow:
		return 1.5
	case trip.SensitivityHigh:
		return 0.7
	default:
		return 1.0
	}
}

// DailyShiftMinutes is how far the sleep window moves per conditioning day.
func DailyShiftMinutes(s Strategy, sensitivity trip.Sensitivity) int {
	base := baseShiftMinutes
	if s == StrategyMinimal {
		base = minimalShiftMinutes
	}
	return int(math.Round(float64(base) * sensitivityMultiplier(sensitivity)))
}

// ConditioningDays is the number of pre-travel days needed to close the gap
// at dailyShift minutes per day, capped at MaxConditioningDays.
func ConditioningDays(s Strategy, deltaHours, dailyShift int) int {
	if s == StrategyMinimal {
		return 1
	}
	abs := deltaHours
	if abs < 0 {
		abs = -abs
	}
	days := int(math.Ceil(float64(abs*60) / float64(dailyShift)))
	return min(days, MaxConditioningDays)
}

// CaffeineCutoffHours is the caffeine-free window before sleep for a habit.
func CaffeineCutoffHours(h trip.CaffeineHabit) int {
	switch h {
	case trip.CaffeineNone:
		return 4
	case trip.CaffeineModerate:
		return 7
	case trip.CaffeineHeavy:
		return 8
	default:
		return 6
	}
}
