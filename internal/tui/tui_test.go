package tui

import (
	"testing"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newSizedViewer(t *testing.T) (*Viewer, *optimizer.Plan) {
	t.Helper()
	tr, ok := trip.Sample("example-a-eastward")
	require.True(t, ok)
	plan := optimizer.MustGenerate(tr)

	v := NewViewer(plan, tr)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return v, plan
}

func TestViewerNavigatesDays(t *testing.T) {
	v, plan := newSizedViewer(t)
	assert.Equal(t, 0, v.Day())
	assert.Contains(t, v.View(), plan.Days[0].Summary)

	v.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, v.Day())

	v.Update(tea.KeyMsg{Type: tea.KeyRight})
	v.Update(keyRunes("l"))
	assert.Equal(t, 2, v.Day())
	assert.Contains(t, v.View(), plan.Days[2].Summary)

	for range plan.Days {
		v.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, len(plan.Days)-1, v.Day())
}

func TestViewerOverviewToggle(t *testing.T) {
	v, _ := newSizedViewer(t)
	v.Update(keyRunes("o"))
	assert.Contains(t, v.View(), "Daily timeline overview")
	v.Update(keyRunes("o"))
	assert.NotContains(t, v.View(), "Daily timeline overview")
}

func TestViewerHelpKeepsLayoutInWindow(t *testing.T) {
	v, _ := newSizedViewer(t)
	short := v.viewport.Height
	assert.LessOrEqual(t, lipgloss.Height(v.View()), 40)

	v.Update(keyRunes("?"))
	assert.True(t, v.help.ShowAll)
	assert.Less(t, v.viewport.Height, short)
	assert.LessOrEqual(t, lipgloss.Height(v.View()), 40)

	v.Update(keyRunes("?"))
	assert.Equal(t, short, v.viewport.Height)
}

func TestViewerQuits(t *testing.T) {
	v, _ := newSizedViewer(t)
	_, cmd := v.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewerBeforeSize(t *testing.T) {
	tr, _ := trip.Sample("example-c-short-hop")
	v := NewViewer(optimizer.MustGenerate(tr), tr)
	assert.Equal(t, "Loading plan...", v.View())
}

func TestAirportPickerFiltersAndChooses(t *testing.T) {
	app := NewAirportPickerApp("Origin")
	for _, r := range "nrt" {
		app.Update(keyRunes(string(r)))
	}
	require.NotEmpty(t, app.picker.filtered)
	assert.Equal(t, "NRT", app.picker.filtered[0].IATA)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	res := app.GetResult()
	require.NotNil(t, res)
	assert.False(t, res.Canceled)
	assert.Equal(t, "Asia/Tokyo", res.Airport.Timezone)
}

func TestAirportPickerCancel(t *testing.T) {
	app := NewAirportPickerApp("Destination")
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	res := app.GetResult()
	require.NotNil(t, res)
	assert.True(t, res.Canceled)
}

func TestAirportPickerNoMatches(t *testing.T) {
	app := NewAirportPickerApp("Origin")
	for _, r := range "zzzzq" {
		app.Update(keyRunes(string(r)))
	}
	assert.Empty(t, app.picker.filtered)
	assert.Contains(t, app.View(), "No airports match filter")

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, app.GetResult())
}
