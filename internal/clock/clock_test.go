package clock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWrapsAcrossMidnight(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{"23:30", 90, "01:00"},
		{"00:30", -90, "23:00"},
		{"07:00", -7 * 60, "00:00"},
		{"23:00", -25 * 60, "22:00"},
		{"12:15", 3 * MinutesPerDay, "12:15"},
		{"00:00", -1, "23:59"},
	}
	for _, tt := range tests {
		got := MustParse(tt.start).Add(tt.minutes)
		assert.Equal(t, tt.want, got.String(), "%s %+d", tt.start, tt.minutes)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30", "12:3x"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
	c, err := Parse("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour())
	assert.Equal(t, 5, c.Minute())
}

func TestMinutesUntil(t *testing.T) {
	assert.Equal(t, 8*60, MustParse("23:00").MinutesUntil(MustParse("07:00")))
	assert.Equal(t, 120, MustParse("07:30").MinutesUntil(MustParse("09:30")))
	assert.Equal(t, MinutesPerDay, MustParse("10:00").MinutesUntil(MustParse("10:00")))
}

func TestOfWraps(t *testing.T) {
	assert.Equal(t, "01:30", Of(25, 30).String())
	assert.Equal(t, "23:00", Of(0, -60).String())
}

func TestTextRoundTrip(t *testing.T) {
	type wrapper struct {
		At Clock `json:"at"`
	}
	out, err := json.Marshal(wrapper{At: MustParse("06:45")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"06:45"}`, string(out))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"at":"21:10"}`), &w))
	assert.Equal(t, Of(21, 10), w.At)

	assert.Error(t, json.Unmarshal([]byte(`{"at":"25:00"}`), &w))
}
