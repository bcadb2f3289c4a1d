// Package render formats plans for the terminal and as Markdown documents.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/christopherklint97/jetlagr/internal/clock"
	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

const (
	noActivities  = "No specific activities for this day"
	overviewDays  = 7
	hoursPerDay   = 24
	emptyTimeSlot = "·"
)

// FormatTime renders a clock time as "3:05 PM".
func FormatTime(c clock.Clock) string {
	h := c.Hour()
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, c.Minute(), ampm)
}

// FormatDate renders "2024-10-10" as "Thursday, October 10, 2024". Dates
// that do not parse are returned unchanged.
func FormatDate(date string) string {
	d, err := time.Parse(trip.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

// ShortDate renders "2024-10-10" as "Oct 10".
func ShortDate(date string) string {
	d, err := time.Parse(trip.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2")
}

func timeRange(b optimizer.ActivityBlock) string {
	if b.End == b.Start {
		return FormatTime(b.Start)
	}
	return FormatTime(b.Start) + " – " + FormatTime(b.End)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Header renders the plan summary: strategy, headline numbers and key
// actions.
func Header(plan *optimizer.Plan, t trip.Trip) string {
	var b strings.Builder

	title := titleStyle.Render(t.Name)
	strategy := strategyStyles[plan.ShiftStrategy].Render(string(plan.ShiftStrategy) + " strategy")
	b.WriteString(title + "  " + strategy + "\n")
	b.WriteString(subtitleStyle.Render(t.Route()) + "\n\n")

	stats := []string{
		statStyle.Render(fmt.Sprintf("%dh", abs(plan.TotalTimeZoneDifference))) + dimStyle.Render(" time difference"),
		statStyle.Render(fmt.Sprintf("%d", len(plan.Days))) + dimStyle.Render(" plan days"),
		statStyle.Render(fmt.Sprintf("%d", len(plan.KeyActions))) + dimStyle.Render(" key actions"),
	}
	b.WriteString(strings.Join(stats, "   ") + "\n\n")

	b.WriteString(headingStyle.Render("Key actions") + "\n")
	for _, a := range plan.KeyActions {
		b.WriteString(bulletStyle.Render("• ") + a + "\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Day renders one plan day with its activities in start order.
func Day(day optimizer.PlanDay) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(FormatDate(day.Date)))
	b.WriteString(dimStyle.Render("  " + day.TimeZone))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(day.Summary) + "\n")

	if len(day.Activities) == 0 {
		b.WriteString(dimStyle.Render("  "+noActivities) + "\n")
		return b.String()
	}

	for _, a := range day.Activities {
		style := styleFor(a.Type)
		label := style.Bold(true).Render(fmt.Sprintf("%-16s", a.Type.Label()))
		when := fmt.Sprintf("%-20s", timeRange(a))
		b.WriteString("  " + label + " " + when + " " + a.Description + "\n")
	}
	return b.String()
}

// coveringActivity returns the first block that is active at the top of
// the hour, honoring blocks that wrap past midnight.
func coveringActivity(day optimizer.PlanDay, hour int) (optimizer.ActivityBlock, bool) {
	at := clock.Of(hour, 0)
	for _, a := range day.Activities {
		if a.Start <= a.End {
			if at >= a.Start && at < a.End {
				return a, true
			}
			continue
		}
		if at >= a.Start || at < a.End {
			return a, true
		}
	}
	return optimizer.ActivityBlock{}, false
}

// HourSlots returns, for each hour of the day, the activity active at the
// top of that hour or "" when nothing is.
func HourSlots(day optimizer.PlanDay) []optimizer.ActivityType {
	slots := make([]optimizer.ActivityType, hoursPerDay)
	for h := range slots {
		if a, ok := coveringActivity(day, h); ok {
			slots[h] = a.Type
		}
	}
	return slots
}

// Timeline renders one glyph per hour of the day.
func Timeline(day optimizer.PlanDay) string {
	var b strings.Builder
	for _, t := range HourSlots(day) {
		if t == "" {
			b.WriteString(dimStyle.Render(emptyTimeSlot))
			continue
		}
		b.WriteString(styleFor(t).Render(glyphs[t]))
	}
	return b.String()
}

func legend() string {
	parts := make([]string, 0, len(optimizer.ActivityTypes))
	for _, t := range optimizer.ActivityTypes {
		parts = append(parts, styleFor(t).Render(glyphs[t])+" "+t.Label())
	}
	return dimStyle.Render("legend: ") + strings.Join(parts, "  ")
}

// Overview renders the hourly timeline for the first week of the plan.
func Overview(plan *optimizer.Plan) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Daily timeline overview") + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-8s %s", "", "0     6     12    18    ")) + "\n")

	days := plan.Days
	if len(days) > overviewDays {
		days = days[:overviewDays]
	}
	for _, d := range days {
		fmt.Fprintf(&b, "%-8s %s  %s\n", ShortDate(d.Date), Timeline(d),
			dimStyle.Render(fmt.Sprintf("%d activities", len(d.Activities))))
	}
	b.WriteString(legend())
	return b.String()
}

// Terminal renders the whole plan for a terminal.
func Terminal(plan *optimizer.Plan, t trip.Trip) string {
	sections := []string{Header(plan, t)}
	for _, d := range plan.Days {
		sections = append(sections, Day(d))
	}
	sections = append(sections, Overview(plan))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
