package trip

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

func (s Sensitivity) Valid() bool {
	switch s {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return true
	}
	return false
}

type CaffeineHabit string

const (
	CaffeineNone     CaffeineHabit = "none"
	CaffeineLight    CaffeineHabit = "light"
	CaffeineModerate CaffeineHabit = "moderate"
	CaffeineHeavy    CaffeineHabit = "heavy"
)

func (c CaffeineHabit) Valid() bool {
	switch c {
	case CaffeineNone, CaffeineLight, CaffeineModerate, CaffeineHeavy:
		return true
	}
	return false
}

type CabinType string

const (
	CabinEconomy  CabinType = "economy"
	CabinPremium  CabinType = "premium"
	CabinBusiness CabinType = "business"
	CabinFirst    CabinType = "first"
)

func (c CabinType) Valid() bool {
	switch c {
	case CabinEconomy, CabinPremium, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

// Leg is one flight segment. DepartLocal and ArriveLocal are wall-clock
// datetimes in the origin and destination zones respectively.
type Leg struct {
	ID          string `json:"id" toml:"id"`
	OriginCity  string `json:"origin_city" toml:"origin_city"`
	OriginCode  string `json:"origin_code" toml:"origin_code"`
	OriginTZ    string `json:"origin_tz" toml:"origin_tz" jsonschema:"example=America/New_York"`
	DestCity    string `json:"dest_city" toml:"dest_city"`
	DestCode    string `json:"dest_code" toml:"dest_code"`
	DestTZ      string `json:"dest_tz" toml:"dest_tz" jsonschema:"example=Asia/Tokyo"`
	DepartLocal string `json:"depart_local" toml:"depart_local" jsonschema:"example=2024-10-10T15:00"`
	ArriveLocal string `json:"arrive_local" toml:"arrive_local" jsonschema:"example=2024-10-11T19:00"`
}

// Trip is a traveler profile plus an ordered list of legs.
type Trip struct {
	ID              string        `json:"id" toml:"id"`
	Name            string        `json:"name" toml:"name"`
	Legs            []Leg         `json:"legs" toml:"legs" jsonschema:"minItems=1"`
	UsualSleepStart string        `json:"usual_sleep_start" toml:"usual_sleep_start" jsonschema:"pattern=^[0-2][0-9]:[0-5][0-9]$"`
	UsualSleepEnd   string        `json:"usual_sleep_end" toml:"usual_sleep_end" jsonschema:"pattern=^[0-2][0-9]:[0-5][0-9]$"`
	MelatoninOptIn  bool          `json:"melatonin_opt_in" toml:"melatonin_opt_in"`
	Sensitivity     Sensitivity   `json:"sensitivity" toml:"sensitivity" jsonschema:"enum=low,enum=medium,enum=high"`
	CaffeineHabits  CaffeineHabit `json:"caffeine_habits" toml:"caffeine_habits" jsonschema:"enum=none,enum=light,enum=moderate,enum=heavy"`
	CabinType       CabinType     `json:"cabin_type" toml:"cabin_type" jsonschema:"enum=economy,enum=premium,enum=business,enum=first"`
}

func (t Trip) FirstLeg() Leg {
	return t.Legs[0]
}

func (t Trip) FinalLeg() Leg {
	return t.Legs[len(t.Legs)-1]
}

// Route is a short "A → B" label, with the leg count for multi-leg trips.
func (t Trip) Route() string {
	if len(t.Legs) == 0 {
		return ""
	}
	first, last := t.FirstLeg(), t.FinalLeg()
	if len(t.Legs) == 1 {
		return fmt.Sprintf("%s → %s", first.OriginCity, last.DestCity)
	}
	return fmt.Sprintf("%s → %s (%d legs)", first.OriginCity, last.DestCity, len(t.Legs))
}

// NewID returns an identifier for a trip entered by hand.
func NewID() string {
	return "custom-" + uuid.NewString()
}

// AssignLegIDs fills empty leg ids with their 1-based position.
func (t *Trip) AssignLegIDs() {
	for i := range t.Legs {
		if strings.TrimSpace(t.Legs[i].ID) == "" {
			t.Legs[i].ID = fmt.Sprintf("leg-%d", i+1)
		}
	}
}
