package render

import (
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/jetlagr/internal/clock"
	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

func samplePlan(t *testing.T, id string) (trip.Trip, *optimizer.Plan) {
	t.Helper()
	tr, ok := trip.Sample(id)
	require.True(t, ok)
	return tr, optimizer.MustGenerate(tr)
}

func TestFormatTime(t *testing.T) {
	tests := map[string]string{
		"00:00": "12:00 AM",
		"07:30": "7:30 AM",
		"12:00": "12:00 PM",
		"15:05": "3:05 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTime(clock.MustParse(in)), in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Thursday, October 10, 2024", FormatDate("2024-10-10"))
	assert.Equal(t, "Oct 10", ShortDate("2024-10-10"))
	assert.Equal(t, "someday", FormatDate("someday"))
}

func TestHourSlotsWrapPastMidnight(t *testing.T) {
	day := optimizer.PlanDay{Activities: []optimizer.ActivityBlock{
		{Type: optimizer.ActivityCaffeineCutoff, Start: clock.MustParse("15:00"), End: clock.MustParse("23:00")},
		{Type: optimizer.ActivitySleep, Start: clock.MustParse("23:00"), End: clock.MustParse("07:00")},
	}}
	slots := HourSlots(day)
	require.Len(t, slots, 24)

	for h := 0; h < 7; h++ {
		assert.Equal(t, optimizer.ActivitySleep, slots[h], "hour %d", h)
	}
	for h := 7; h < 15; h++ {
		assert.Empty(t, slots[h], "hour %d", h)
	}
	for h := 15; h < 23; h++ {
		assert.Equal(t, optimizer.ActivityCaffeineCutoff, slots[h], "hour %d", h)
	}
	assert.Equal(t, optimizer.ActivitySleep, slots[23])
}

func TestHourSlotsFirstBlockWins(t *testing.T) {
	day := optimizer.PlanDay{Activities: []optimizer.ActivityBlock{
		{Type: optimizer.ActivityMelatonin, Start: clock.MustParse("20:00"), End: clock.MustParse("20:30")},
		{Type: optimizer.ActivityCaffeineCutoff, Start: clock.MustParse("16:00"), End: clock.MustParse("23:00")},
	}}
	slots := HourSlots(day)
	assert.Equal(t, optimizer.ActivityMelatonin, slots[20])
	assert.Equal(t, optimizer.ActivityCaffeineCutoff, slots[21])
}

func TestDayListsActivities(t *testing.T) {
	_, plan := samplePlan(t, "example-a-eastward")
	travel := plan.DaysOfKind(optimizer.DayTravel)
	require.Len(t, travel, 1)

	out := Day(travel[0])
	assert.Contains(t, out, "Travel day: New York to Tokyo")
	assert.Contains(t, out, "Light avoid")
	assert.Contains(t, out, "Caffeine cutoff")
	assert.Contains(t, out, "Asia/Tokyo")
	// business class gets no nap
	assert.NotContains(t, out, "Nap")
}

func TestDayWithoutActivities(t *testing.T) {
	out := Day(optimizer.PlanDay{Date: "2024-10-10", Summary: "Rest"})
	assert.Contains(t, out, noActivities)
}

func TestTerminal(t *testing.T) {
	tr, plan := samplePlan(t, "example-b-westward")
	out := Terminal(plan, tr)

	assert.Contains(t, out, "delay strategy")
	assert.Contains(t, out, "London → Los Angeles")
	assert.Contains(t, out, "Key actions")
	assert.Contains(t, out, "Daily timeline overview")
	for _, d := range plan.Days {
		assert.Contains(t, out, d.Summary)
	}
}

func TestMarkdown(t *testing.T) {
	tr, plan := samplePlan(t, "example-c-short-hop")
	out := Markdown(plan, tr)

	assert.True(t, strings.HasPrefix(out, "# Mumbai to Dubai (Short Hop)\n"))
	assert.Contains(t, out, "**minimal strategy**")
	assert.Contains(t, out, "| 1h | 45 min |")
	assert.Equal(t, len(plan.Days), strings.Count(out, "\n## ")-1)
	assert.Contains(t, out, "| Sleep | 11:30 PM – 7:30 AM | Maintain destination sleep schedule |")
}

func TestMarkdownEscapesPipes(t *testing.T) {
	plan := &optimizer.Plan{
		ShiftStrategy: optimizer.StrategyMinimal,
		Days: []optimizer.PlanDay{{
			Date: "2024-10-10",
			Activities: []optimizer.ActivityBlock{{
				Type:        optimizer.ActivityNap,
				Start:       clock.MustParse("12:00"),
				End:         clock.MustParse("12:30"),
				Description: "short | sweet",
			}},
		}},
	}
	out := Markdown(plan, trip.Trip{Name: "A|B", Legs: []trip.Leg{{OriginCity: "A", DestCity: "B"}}})
	assert.Contains(t, out, `# A\|B`)
	assert.Contains(t, out, `short \| sweet`)
}
