package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

var strategyStyles = map[optimizer.Strategy]lipgloss.Style{
	optimizer.StrategyAdvance: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	optimizer.StrategyDelay:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	optimizer.StrategyMinimal: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
}

var activityStyles = map[optimizer.ActivityType]lipgloss.Style{
	optimizer.ActivitySleep:          lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	optimizer.ActivityMelatonin:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	optimizer.ActivityLightSeek:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	optimizer.ActivityLightAvoid:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	optimizer.ActivityCaffeineCutoff: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	optimizer.ActivityNap:            lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// timeline glyphs, one per activity type
var glyphs = map[optimizer.ActivityType]string{
	optimizer.ActivitySleep:          "S",
	optimizer.ActivityMelatonin:      "M",
	optimizer.ActivityLightSeek:      "L",
	optimizer.ActivityLightAvoid:     "D",
	optimizer.ActivityCaffeineCutoff: "C",
	optimizer.ActivityNap:            "N",
}

func styleFor(t optimizer.ActivityType) lipgloss.Style {
	if s, ok := activityStyles[t]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
