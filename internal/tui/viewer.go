package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/render"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

type viewerKeys struct {
	Prev     key.Binding
	Next     key.Binding
	Up       key.Binding
	Down     key.Binding
	Overview key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k viewerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Overview, k.Help, k.Quit}
}

func (k viewerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Up, k.Down},
		{k.Overview, k.Help, k.Quit},
	}
}

var defaultViewerKeys = viewerKeys{
	Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
	Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Overview: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Viewer is a day-by-day plan browser.
type Viewer struct {
	plan     *optimizer.Plan
	trip     trip.Trip
	day      int
	overview bool
	ready    bool

	viewport viewport.Model
	help     help.Model
	keys     viewerKeys
	width    int
	height   int
}

func NewViewer(plan *optimizer.Plan, t trip.Trip) *Viewer {
	return &Viewer{
		plan: plan,
		trip: t,
		help: help.New(),
		keys: defaultViewerKeys,
	}
}

func (v *Viewer) Init() tea.Cmd {
	return nil
}

// Day is the index of the day on screen.
func (v *Viewer) Day() int {
	return v.day
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.help.Width = msg.Width
		if !v.ready {
			v.viewport = viewport.New(msg.Width, 0)
			v.ready = true
		}
		v.viewport.Width = msg.Width
		v.resize()
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Prev):
			if v.day > 0 {
				v.day--
				v.overview = false
				v.refresh()
			}
			return v, nil
		case key.Matches(msg, v.keys.Next):
			if v.day < len(v.plan.Days)-1 {
				v.day++
				v.overview = false
				v.refresh()
			}
			return v, nil
		case key.Matches(msg, v.keys.Overview):
			v.overview = !v.overview
			v.refresh()
			return v, nil
		case key.Matches(msg, v.keys.Help):
			v.help.ShowAll = !v.help.ShowAll
			v.resize()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// resize gives the viewport whatever height the header and footer leave.
func (v *Viewer) resize() {
	if !v.ready {
		return
	}
	v.viewport.Height = max(1, v.height-lipgloss.Height(v.header())-lipgloss.Height(v.footer()))
}

func (v *Viewer) refresh() {
	if !v.ready {
		return
	}
	v.viewport.SetContent(v.content())
	v.viewport.GotoTop()
}

func (v *Viewer) content() string {
	if v.overview {
		return render.Header(v.plan, v.trip) + "\n\n" + render.Overview(v.plan)
	}
	if len(v.plan.Days) == 0 {
		return dimStyle.Render("This plan has no days.")
	}
	return render.Day(v.plan.Days[v.day])
}

func (v *Viewer) header() string {
	var tabs []string
	for i, d := range v.plan.Days {
		label := render.ShortDate(d.Date)
		if i == v.day && !v.overview {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if v.width > 0 {
		row = lipgloss.NewStyle().MaxWidth(v.width).Render(row)
	}
	return titleStyle.Render(v.trip.Name) + "\n" +
		subtitleStyle.Render(v.trip.Route()+" · "+string(v.plan.ShiftStrategy)+" strategy") + "\n" + row
}

func (v *Viewer) footer() string {
	return helpStyle.Render(v.help.View(v.keys))
}

func (v *Viewer) View() string {
	if !v.ready {
		return "Loading plan..."
	}
	return strings.Join([]string{v.header(), v.viewport.View(), v.footer()}, "\n")
}
