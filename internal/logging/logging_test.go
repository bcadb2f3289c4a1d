package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/jetlagr/internal/config"
)

func TestJSONFormatCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	c := Component(l, "optimizer")
	c.Info().Int("delta", 13).Msg("plan generated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "optimizer", line["component"])
	assert.Equal(t, "plan generated", line["message"])
	assert.EqualValues(t, 13, line["delta"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWriter(&buf, config.LoggingConfig{Level: "WARN", Format: "json"})
	require.NoError(t, err)

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWriter(&buf, config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)

	l.Debug().Str("trip", "custom-1").Msg("saved")
	assert.Contains(t, buf.String(), "saved")
	assert.Contains(t, buf.String(), "trip=custom-1")
}

func TestConsoleColorFollowsWriter(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestRejectsBadSettings(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
	_, err = NewWriter(&bytes.Buffer{}, config.LoggingConfig{Format: "xml"})
	assert.ErrorContains(t, err, "unknown log format")
}
