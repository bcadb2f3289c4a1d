package calendar

import (
	"fmt"
	"io"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

const productID = "-//jetlagr//circadian plan//EN"

// Occurrence is an activity block pinned to absolute instants.
type Occurrence struct {
	Day   optimizer.PlanDay
	Index int
	Block optimizer.ActivityBlock
	Start time.Time
	End   time.Time
}

// Occurrences resolves every block of every day in the zone it was planned
// in. A block whose end is not after its start finishes on the next day.
func Occurrences(plan *optimizer.Plan) ([]Occurrence, error) {
	var out []Occurrence
	for _, day := range plan.Days {
		for i, b := range day.Activities {
			zone := b.TimeZone
			if zone == "" {
				zone = day.TimeZone
			}
			loc, err := trip.LoadZone(zone)
			if err != nil {
				return nil, fmt.Errorf("day %s: %w", day.Date, err)
			}
			date, err := time.ParseInLocation(trip.DateLayout, day.Date, loc)
			if err != nil {
				return nil, fmt.Errorf("parsing day %q: %w", day.Date, err)
			}

			y, m, d := date.Date()
			start := time.Date(y, m, d, b.Start.Hour(), b.Start.Minute(), 0, 0, loc)
			endDay := d
			if b.End <= b.Start {
				endDay++
			}
			end := time.Date(y, m, endDay, b.End.Hour(), b.End.Minute(), 0, 0, loc)

			out = append(out, Occurrence{Day: day, Index: i, Block: b, Start: start, End: end})
		}
	}
	return out, nil
}

// UID is stable for a given trip, day and block position so re-importing
// an export updates events instead of duplicating them.
func (o Occurrence) UID(tripID string) string {
	return fmt.Sprintf("%s-%s-%s-%d@jetlagr", tripID, o.Day.Date, o.Block.Type, o.Index)
}

// Export writes the plan as an iCalendar document with one event per
// activity block.
func Export(w io.Writer, plan *optimizer.Plan, t trip.Trip) error {
	occurrences, err := Occurrences(plan)
	if err != nil {
		return fmt.Errorf("resolving plan times: %w", err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText("X-WR-CALNAME", fmt.Sprintf("jetlagr: %s", t.Name))

	stamp := plan.GeneratedAt.UTC()
	if plan.GeneratedAt.IsZero() {
		stamp = time.Now().UTC()
	}

	for _, o := range occurrences {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, o.UID(plan.TripID))
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetDateTime(ical.PropDateTimeStart, o.Start.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, o.End.UTC())
		event.Props.SetText(ical.PropSummary, o.Block.Type.Label())
		event.Props.SetText(ical.PropDescription, o.Block.Description)
		event.Props.SetText(ical.PropCategories, string(o.Block.Type))
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}
