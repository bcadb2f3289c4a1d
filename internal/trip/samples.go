package trip

var samples = []Trip{
	{
		ID:   "example-a-eastward",
		Name: "New York to Tokyo (Eastward Long-haul)",
		Legs: []Leg{{
			ID:          "jfk-hnd",
			OriginCity:  "New York",
			OriginCode:  "JFK",
			OriginTZ:    "America/New_York",
			DestCity:    "Tokyo",
			DestCode:    "HND",
			DestTZ:      "Asia/Tokyo",
			DepartLocal: "2024-10-10T15:00",
			ArriveLocal: "2024-10-11T19:00",
		}},
		UsualSleepStart: "23:00",
		UsualSleepEnd:   "07:00",
		MelatoninOptIn:  true,
		Sensitivity:     SensitivityMedium,
		CaffeineHabits:  CaffeineModerate,
		CabinType:       CabinBusiness,
	},
	{
		ID:   "example-b-westward",
		Name: "London to Los Angeles (Westward Long-haul)",
		Legs: []Leg{{
			ID:          "lhr-lax",
			OriginCity:  "London",
			OriginCode:  "LHR",
			OriginTZ:    "Europe/London",
			DestCity:    "Los Angeles",
			DestCode:    "LAX",
			DestTZ:      "America/Los_Angeles",
			DepartLocal: "2024-11-04T11:30",
			ArriveLocal: "2024-11-04T14:45",
		}},
		UsualSleepStart: "22:30",
		UsualSleepEnd:   "06:30",
		MelatoninOptIn:  false,
		Sensitivity:     SensitivityHigh,
		CaffeineHabits:  CaffeineHeavy,
		CabinType:       CabinEconomy,
	},
	{
		ID:   "example-c-short-hop",
		Name: "Mumbai to Dubai (Short Hop)",
		Legs: []Leg{{
			ID:          "bom-dxb",
			OriginCity:  "Mumbai",
			OriginCode:  "BOM",
			OriginTZ:    "Asia/Kolkata",
			DestCity:    "Dubai",
			DestCode:    "DXB",
			DestTZ:      "Asia/Dubai",
			DepartLocal: "2024-12-01T09:00",
			ArriveLocal: "2024-12-01T10:45",
		}},
		UsualSleepStart: "23:30",
		UsualSleepEnd:   "07:30",
		MelatoninOptIn:  true,
		Sensitivity:     SensitivityLow,
		CaffeineHabits:  CaffeineLight,
		CabinType:       CabinPremium,
	},
	{
		ID:   "example-d-multi-leg",
		Name: "San Francisco to Singapore via Tokyo",
		Legs: []Leg{
			{
				ID:          "sfo-nrt",
				OriginCity:  "San Francisco",
				OriginCode:  "SFO",
				OriginTZ:    "America/Los_Angeles",
				DestCity:    "Tokyo",
				DestCode:    "NRT",
				DestTZ:      "Asia/Tokyo",
				DepartLocal: "2025-03-03T13:00",
				ArriveLocal: "2025-03-04T16:30",
			},
			{
				ID:          "nrt-sin",
				OriginCity:  "Tokyo",
				OriginCode:  "NRT",
				OriginTZ:    "Asia/Tokyo",
				DestCity:    "Singapore",
				DestCode:    "SIN",
				DestTZ:      "Asia/Singapore",
				DepartLocal: "2025-03-04T18:30",
				ArriveLocal: "2025-03-05T00:45",
			},
		},
		UsualSleepStart: "23:00",
		UsualSleepEnd:   "07:00",
		MelatoninOptIn:  true,
		Sensitivity:     SensitivityMedium,
		CaffeineHabits:  CaffeineNone,
		CabinType:       CabinEconomy,
	},
}

// Samples returns copies of the built-in example trips.
func Samples() []Trip {
	out := make([]Trip, len(samples))
	for i, s := range samples {
		s.Legs = append([]Leg(nil), s.Legs...)
		out[i] = s
	}
	return out
}

// Sample looks up a built-in trip by id.
func Sample(id string) (Trip, bool) {
	for _, s := range Samples() {
		if s.ID == id {
			return s, true
		}
	}
	return Trip{}, false
}
