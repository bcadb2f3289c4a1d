package render

import (
	"fmt"
	"strings"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

// Markdown renders the plan as a printable document, one section per day
// separated by horizontal rules.
func Markdown(plan *optimizer.Plan, t trip.Trip) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeCell(t.Name))
	fmt.Fprintf(&b, "%s · **%s strategy**\n\n", t.Route(), plan.ShiftStrategy)

	b.WriteString("| Time difference | Daily shift | Plan days | Key actions |\n")
	b.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %dh | %d min | %d | %d |\n\n",
		abs(plan.TotalTimeZoneDifference), plan.DailyShiftMinutes, len(plan.Days), len(plan.KeyActions))

	b.WriteString("## Key actions\n\n")
	for _, a := range plan.KeyActions {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	for _, d := range plan.Days {
		b.WriteString("\n---\n\n")
		fmt.Fprintf(&b, "## %s\n\n", FormatDate(d.Date))
		fmt.Fprintf(&b, "_%s_ (%s)\n\n", d.Summary, d.TimeZone)

		if len(d.Activities) == 0 {
			fmt.Fprintf(&b, "%s\n", noActivities)
			continue
		}

		b.WriteString("| Activity | Time | Notes |\n")
		b.WriteString("|---|---|---|\n")
		for _, a := range d.Activities {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", a.Type.Label(), timeRange(a), escapeCell(a.Description))
		}
	}

	if !plan.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "\n---\n\n_Generated %s_\n", plan.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
