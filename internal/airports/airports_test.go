package airports

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCode(t *testing.T) {
	a, ok := ByCode("hnd")
	require.True(t, ok)
	assert.Equal(t, "Asia/Tokyo", a.Timezone)
	assert.Equal(t, "Tokyo", a.CityName())

	_, ok = ByCode("XXX")
	assert.False(t, ok)
}

func TestSearchExactCodeFirst(t *testing.T) {
	results := Search("lax", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "LAX", results[0].IATA)
}

func TestSearchLimit(t *testing.T) {
	results := Search("US", 3)
	assert.Len(t, results, 3)
	assert.Empty(t, Search("  ", 10))
}

func TestTableZonesLoad(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		assert.False(t, seen[a.IATA], "duplicate code %s", a.IATA)
		seen[a.IATA] = true
		_, err := time.LoadLocation(a.Timezone)
		assert.NoError(t, err, "airport %s", a.IATA)
	}
}
