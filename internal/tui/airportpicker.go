package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/christopherklint97/jetlagr/internal/airports"
)

const airportPickerVisible = 15

type airportPickerModel struct {
	prompt   string
	all      []airports.Airport
	filtered []airports.Airport
	cursor   int
	filter   textinput.Model
	done     bool
	canceled bool
}

// AirportPickerResult holds the airport the user chose.
type AirportPickerResult struct {
	Airport  airports.Airport
	Canceled bool
}

// AirportPickerApp wraps airportPickerModel for standalone use with tea.NewProgram.
type AirportPickerApp struct {
	picker airportPickerModel
	result *AirportPickerResult
}

func NewAirportPickerApp(prompt string) *AirportPickerApp {
	return &AirportPickerApp{
		picker: newAirportPicker(prompt, airports.All()),
	}
}

func (a *AirportPickerApp) Init() tea.Cmd {
	return a.picker.Init()
}

func (a *AirportPickerApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.picker.Update(msg)
	a.picker = m.(airportPickerModel)

	if a.picker.done || a.picker.canceled {
		a.result = a.picker.Result()
		return a, tea.Quit
	}

	return a, cmd
}

func (a *AirportPickerApp) View() string {
	return a.picker.View()
}

func (a *AirportPickerApp) GetResult() *AirportPickerResult {
	return a.result
}

func newAirportPicker(prompt string, all []airports.Airport) airportPickerModel {
	ti := textinput.New()
	ti.Placeholder = "City, code or country..."
	ti.Focus()

	return airportPickerModel{
		prompt:   prompt,
		all:      all,
		filtered: all,
		filter:   ti,
	}
}

func (m airportPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m airportPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				m.done = true
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	prevFilter := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)

	if m.filter.Value() != prevFilter {
		m.applyFilter()
	}

	return m, cmd
}

func (m *airportPickerModel) applyFilter() {
	query := m.filter.Value()
	if strings.TrimSpace(query) == "" {
		m.filtered = m.all
	} else {
		m.filtered = airports.Search(query, 0)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m airportPickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  No airports match filter"))
		b.WriteString("\n")
	} else {
		start := 0
		if m.cursor >= airportPickerVisible {
			start = m.cursor - airportPickerVisible + 1
		}
		end := min(start+airportPickerVisible, len(m.filtered))

		for i := start; i < end; i++ {
			ap := m.filtered[i]
			line := fmt.Sprintf("%s  %s", ap.IATA, ap.City)
			zone := dimStyle.Render("  " + ap.Country + " · " + ap.Timezone)
			if i == m.cursor {
				b.WriteString(highlightStyle.Render("> "+line) + zone)
			} else {
				b.WriteString("  " + line + zone)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%d airports · ↑/↓: move · Enter: choose · Esc: cancel", len(m.filtered))))

	return b.String()
}

func (m airportPickerModel) Result() *AirportPickerResult {
	if m.canceled || len(m.filtered) == 0 {
		return &AirportPickerResult{Canceled: true}
	}
	return &AirportPickerResult{Airport: m.filtered[m.cursor]}
}
