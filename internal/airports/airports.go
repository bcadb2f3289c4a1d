package airports

import (
	"strings"
)

// All returns a copy of the reference table.
func All() []Airport {
	out := make([]Airport, len(table))
	copy(out, table)
	return out
}

// ByCode finds an airport by IATA code, ignoring case.
func ByCode(code string) (Airport, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, a := range table {
		if a.IATA == code {
			return a, true
		}
	}
	return Airport{}, false
}

// Search returns airports whose code, city or country contains query,
// exact code matches first. A limit <= 0 means no limit.
func Search(query string, limit int) []Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var exact, partial []Airport
	for _, a := range table {
		switch {
		case strings.ToLower(a.IATA) == q:
			exact = append(exact, a)
		case strings.Contains(strings.ToLower(a.City), q),
			strings.Contains(strings.ToLower(a.IATA), q),
			strings.ToLower(a.Country) == q:
			partial = append(partial, a)
		}
	}

	results := append(exact, partial...)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// CityName strips the "(CODE)" qualifier used to tell apart airports that
// share a city, e.g. "New York (JFK)" -> "New York".
func (a Airport) CityName() string {
	if i := strings.Index(a.City, " ("); i > 0 {
		return a.City[:i]
	}
	return a.City
}
