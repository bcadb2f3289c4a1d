// Package optimizer turns a trip into a day-by-day circadian adjustment
// plan. Generation is pure and deterministic apart from the GeneratedAt
// stamp.
package optimizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/christopherklint97/jetlagr/internal/clock"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

// ErrPrecondition marks trips that cannot produce a trustworthy plan.
var ErrPrecondition = errors.New("trip violates plan preconditions")

type Optimizer struct {
	Now    func() time.Time
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Optimizer {
	return &Optimizer{Now: time.Now, logger: logger}
}

// Generate builds the plan for t. Any precondition violation returns an
// error wrapping ErrPrecondition and no plan.
func (o *Optimizer) Generate(t trip.Trip) (*Plan, error) {
	in, err := resolve(t)
	if err != nil {
		o.logger.Error().Err(err).Str("trip_id", t.ID).Msg("rejecting trip")
		return nil, err
	}

	delta := TimeZoneDelta(in.departure, in.finalDestZone)
	strategy := ClassifyStrategy(delta)
	dailyShift := DailyShiftMinutes(strategy, t.Sensitivity)
	shiftDays := ConditioningDays(strategy, delta, dailyShift)

	p := planner{
		in:         in,
		strategy:   strategy,
		dailyShift: dailyShift,
		caffeine:   CaffeineCutoffHours(t.CaffeineHabits),
	}

	days := make([]PlanDay, 0, shiftDays+len(t.Legs)+PostArrivalDays)
	days = append(days, p.preTravelDays(shiftDays)...)
	days = append(days, p.travelDays()...)
	days = append(days, p.postArrivalDays()...)

	o.logger.Debug().
		Str("trip_id", t.ID).
		Int("delta_hours", delta).
		Str("strategy", string(strategy)).
		Int("daily_shift_minutes", dailyShift).
		Int("days", len(days)).
		Msg("generated plan")

	return &Plan{
		TripID:                  t.ID,
		TotalTimeZoneDifference: delta,
		ShiftStrategy:           strategy,
		DailyShiftMinutes:       dailyShift,
		KeyActions:              KeyActions(strategy, dailyShift, t.MelatoninOptIn),
		Days:                    days,
		GeneratedAt:             o.Now(),
	}, nil
}

// MustGenerate is Generate for callers that treat a bad trip as a bug.
func MustGenerate(t trip.Trip) *Plan {
	p, err := New(zerolog.Nop()).Generate(t)
	if err != nil {
		panic(err)
	}
	return p
}

// resolved holds a trip's parsed fields.
type resolved struct {
	trip          trip.Trip
	sleepStart    clock.Clock
	sleepEnd      clock.Clock
	departure     time.Time
	finalDestZone *time.Location
	legDeparts    []time.Time
	finalArrival  time.Time
}

func resolve(t trip.Trip) (*resolved, error) {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
	}

	if len(t.Legs) == 0 {
		return nil, fail("trip %q has no legs", t.ID)
	}
	if !t.Sensitivity.Valid() {
		return nil, fail("unknown sensitivity %q", t.Sensitivity)
	}
	if !t.CaffeineHabits.Valid() {
		return nil, fail("unknown caffeine habits %q", t.CaffeineHabits)
	}
	if !t.CabinType.Valid() {
		return nil, fail("unknown cabin type %q", t.CabinType)
	}

	in := &resolved{trip: t}
	var err error
	if in.sleepStart, err = clock.Parse(t.UsualSleepStart); err != nil {
		return nil, fail("usual sleep start: %v", err)
	}
	if in.sleepEnd, err = clock.Parse(t.UsualSleepEnd); err != nil {
		return nil, fail("usual sleep end: %v", err)
	}

	for i, leg := range t.Legs {
		depart, err := trip.ParseLocal(leg.DepartLocal, leg.OriginTZ)
		if err != nil {
			return nil, fail("leg %d departure: %v", i+1, err)
		}
		arrive, err := trip.ParseLocal(leg.ArriveLocal, leg.DestTZ)
		if err != nil {
			return nil, fail("leg %d arrival: %v", i+1, err)
		}
		in.legDeparts = append(in.legDeparts, depart)
		in.finalArrival = arrive
	}
	in.departure = in.legDeparts[0]
	in.finalDestZone = in.finalArrival.Location()

	return in, nil
}
