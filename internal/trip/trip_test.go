package trip

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplesValidate(t *testing.T) {
	for _, s := range Samples() {
		assert.NoError(t, s.Validate(), s.ID)
	}
}

func TestSamplesAreCopies(t *testing.T) {
	a, ok := Sample("example-a-eastward")
	require.True(t, ok)
	a.Legs[0].DestTZ = "Europe/Paris"

	b, _ := Sample("example-a-eastward")
	assert.Equal(t, "Asia/Tokyo", b.Legs[0].DestTZ)

	_, ok = Sample("nope")
	assert.False(t, ok)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	tr := Trip{
		UsualSleepStart: "11pm",
		UsualSleepEnd:   "07:00",
		Sensitivity:     "extreme",
		CaffeineHabits:  CaffeineLight,
		CabinType:       "cargo",
		Legs: []Leg{{
			OriginCity:  "Paris",
			OriginTZ:    "Europe/Paris",
			DestCity:    "Rome",
			DestTZ:      "Europe/Rome",
			DepartLocal: "2024-05-01T10:00",
			ArriveLocal: "2024-05-01T09:00",
		}},
	}
	err := tr.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"trip name is required",
		"usual sleep start",
		`unknown sensitivity "extreme"`,
		`unknown cabin type "cargo"`,
		"leg 1: arrival 2024-05-01T09:00 is before departure",
	} {
		assert.Contains(t, msg, want)
	}
	assert.NotContains(t, msg, "caffeine")
}

func TestValidateRequiresLegs(t *testing.T) {
	tr, _ := Sample("example-a-eastward")
	tr.Legs = nil
	assert.ErrorContains(t, tr.Validate(), "at least one leg is required")
}

func TestValidateDoesNotCheckContinuity(t *testing.T) {
	tr, _ := Sample("example-d-multi-leg")
	tr.Legs[1].OriginCity = "Osaka"
	tr.Legs[1].OriginTZ = "Asia/Tokyo"
	assert.NoError(t, tr.Validate())
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2024-10-10T15:00", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", got.Location().String())
	assert.Equal(t, 15, got.Hour())

	got, err = ParseLocal("2024-10-10T19:00:00Z", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2024-10-10T15:00", got.Format(LocalLayout))

	_, err = ParseLocal("2024-10-10T15:00", "")
	assert.Error(t, err)
	_, err = ParseLocal("soon", "Asia/Tokyo")
	assert.Error(t, err)
}

func TestParseNatural(t *testing.T) {
	ref := time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC) // a Monday

	got, err := ParseNatural("2024-10-10T15:00", "Asia/Tokyo", ref)
	require.NoError(t, err)
	assert.Equal(t, "2024-10-10T15:00", got)

	got, err = ParseNatural("tomorrow", "UTC", ref)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "2024-10-08"), got)

	_, err = ParseNatural("whenever", "Nowhere/Land", ref)
	assert.Error(t, err)
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.toml")
	data := `id = "custom-1"
name = "Berlin offsite"
usual_sleep_start = "23:30"
usual_sleep_end = "07:30"
melatonin_opt_in = true
sensitivity = "high"
caffeine_habits = "heavy"
cabin_type = "economy"

[[legs]]
origin_city = "Chicago"
origin_code = "ORD"
origin_tz = "America/Chicago"
dest_city = "Berlin"
dest_code = "BER"
dest_tz = "Europe/Berlin"
depart_local = "2024-06-01T17:00"
arrive_local = "2024-06-02T08:30"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	tr, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Berlin offsite", tr.Name)
	assert.Equal(t, SensitivityHigh, tr.Sensitivity)
	require.Len(t, tr.Legs, 1)
	assert.Equal(t, "leg-1", tr.Legs[0].ID)
	assert.NoError(t, tr.Validate())

	out, err := MarshalTOML(*tr)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Europe/Berlin")
}

func TestLoadFileJSONAndUnsupported(t *testing.T) {
	dir := t.TempDir()
	tr, _ := Sample("example-b-westward")
	data, err := json.Marshal(tr)
	require.NoError(t, err)
	path := filepath.Join(dir, "trip.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tr, *got)

	_, err = LoadFile(filepath.Join(dir, "trip.yaml"))
	assert.Error(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trip.txt"), data, 0o644))
	_, err = LoadFile(filepath.Join(dir, "trip.txt"))
	assert.ErrorContains(t, err, "unsupported trip file format")
}

func TestSchemaListsEnums(t *testing.T) {
	out, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	cabin, ok := props["cabin_type"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"economy", "premium", "business", "first"}, cabin["enum"])
	assert.Contains(t, props, "legs")
}

func TestRouteAndIDs(t *testing.T) {
	tr, _ := Sample("example-d-multi-leg")
	assert.Equal(t, "San Francisco → Singapore (2 legs)", tr.Route())

	id := NewID()
	assert.True(t, strings.HasPrefix(id, "custom-"))
	assert.NotEqual(t, id, NewID())

	tr.Legs[0].ID = ""
	tr.AssignLegIDs()
	assert.Equal(t, "leg-1", tr.Legs[0].ID)
	assert.Equal(t, "nrt-sin", tr.Legs[1].ID)
}
