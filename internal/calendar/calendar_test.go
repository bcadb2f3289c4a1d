package calendar

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	ical "github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/jetlagr/internal/clock"
	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

func decodeEvents(t *testing.T, r io.Reader) map[string]ical.Event {
	t.Helper()
	dec := ical.NewDecoder(r)
	events := make(map[string]ical.Event)
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for _, component := range cal.Children {
			if component.Name != ical.CompEvent {
				continue
			}
			event := ical.Event{Component: component}
			uid, err := event.Props.Text(ical.PropUID)
			require.NoError(t, err)
			events[uid] = event
		}
	}
	return events
}

func shortHopPlan(t *testing.T) (trip.Trip, *optimizer.Plan) {
	t.Helper()
	tr, ok := trip.Sample("example-c-short-hop")
	require.True(t, ok)
	plan := optimizer.MustGenerate(tr)
	plan.GeneratedAt = time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC)
	return tr, plan
}

func TestExportOneEventPerBlock(t *testing.T) {
	tr, plan := shortHopPlan(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, plan, tr))
	assert.True(t, strings.HasPrefix(buf.String(), "BEGIN:VCALENDAR"))

	total := 0
	for _, d := range plan.Days {
		total += len(d.Activities)
	}
	events := decodeEvents(t, &buf)
	assert.Len(t, events, total)
}

func TestExportResolvesZonesAndWrapsMidnight(t *testing.T) {
	tr, plan := shortHopPlan(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, plan, tr))
	events := decodeEvents(t, &buf)

	// Dubai is UTC+4; post-arrival sleep runs 23:30 to 07:30 next morning.
	sleep, ok := events["example-c-short-hop-2024-12-02-sleep-2@jetlagr"]
	require.True(t, ok)

	start, err := sleep.DateTimeStart(nil)
	require.NoError(t, err)
	end, err := sleep.DateTimeEnd(nil)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 12, 2, 19, 30, 0, 0, time.UTC)), start)
	assert.True(t, end.Equal(time.Date(2024, 12, 3, 3, 30, 0, 0, time.UTC)), end)

	summary, err := sleep.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Sleep", summary)

	stamp, err := sleep.Props.DateTime(ical.PropDateTimeStamp, nil)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(plan.GeneratedAt))
}

func TestOccurrencesFallBackToDayZone(t *testing.T) {
	plan := &optimizer.Plan{
		TripID: "custom-1",
		Days: []optimizer.PlanDay{{
			Date:     "2024-03-30",
			TimeZone: "Europe/London",
			Activities: []optimizer.ActivityBlock{{
				Type:  optimizer.ActivityCaffeineCutoff,
				Start: clock.MustParse("15:00"),
				End:   clock.MustParse("23:00"),
			}},
		}},
	}
	occ, err := Occurrences(plan)
	require.NoError(t, err)
	require.Len(t, occ, 1)
	assert.Equal(t, "Europe/London", occ[0].Start.Location().String())
	assert.Equal(t, 8*time.Hour, occ[0].End.Sub(occ[0].Start))
	assert.Equal(t, "custom-1-2024-03-30-caffeine-cutoff-0@jetlagr", occ[0].UID(plan.TripID))
}

func TestOccurrencesAcrossSpringForward(t *testing.T) {
	// London moves to BST at 01:00 UTC on 2024-03-31.
	plan := &optimizer.Plan{
		Days: []optimizer.PlanDay{{
			Date:     "2024-03-30",
			TimeZone: "Europe/London",
			Activities: []optimizer.ActivityBlock{{
				Type:  optimizer.ActivitySleep,
				Start: clock.MustParse("23:00"),
				End:   clock.MustParse("07:00"),
			}},
		}},
	}
	occ, err := Occurrences(plan)
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour, occ[0].End.Sub(occ[0].Start))
}

func TestExportRejectsUnknownZone(t *testing.T) {
	plan := &optimizer.Plan{
		Days: []optimizer.PlanDay{{
			Date:     "2024-03-30",
			TimeZone: "Mars/Olympus",
			Activities: []optimizer.ActivityBlock{{
				Type:  optimizer.ActivityNap,
				Start: clock.MustParse("12:00"),
				End:   clock.MustParse("15:00"),
			}},
		}},
	}
	err := Export(io.Discard, plan, trip.Trip{Name: "broken"})
	assert.Error(t, err)
}
