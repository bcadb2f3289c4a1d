package optimizer

import "fmt"

// KeyActions summarises the plan as headline advice. It is derived from the
// strategy and profile, not from the generated blocks.
func KeyActions(s Strategy, dailyShift int, melatoninOptIn bool) []string {
	if s == StrategyMinimal {
		return []string{
			fmt.Sprintf("Minimal adjustment needed (< %d hour difference)", MinimalThresholdHours),
			"Stay hydrated and avoid heavy meals during travel",
			"Brief morning light exposure at destination",
		}
	}

	verb := "Delay"
	if s == StrategyAdvance {
		verb = "Advance"
	}
	actions := []string{fmt.Sprintf("%s sleep by %d min/day", verb, dailyShift)}

	if melatoninOptIn {
		actions = append(actions, "Take melatonin 2-3 hours before target bedtime")
	}

	if s == StrategyAdvance {
		actions = append(actions, "Seek bright morning light, avoid evening light")
	} else {
		actions = append(actions, "Seek late afternoon light, avoid morning light")
	}
	return actions
}
