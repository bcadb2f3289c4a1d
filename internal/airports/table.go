// Package airports holds the static airport reference table used to fill in
// leg cities, codes and time zones.
package airports

type Airport struct {
	City     string `json:"city"`
	Timezone string `json:"timezone"`
	IATA     string `json:"iata"`
	Country  string `json:"country"`
}

var table = []Airport{
	// North America - United States
	{City: "New York (JFK)", Timezone: "America/New_York", IATA: "JFK", Country: "US"},
	{City: "New York (LGA)", Timezone: "America/New_York", IATA: "LGA", Country: "US"},
	{City: "New York (EWR)", Timezone: "America/New_York", IATA: "EWR", Country: "US"},
	{City: "Los Angeles", Timezone: "America/Los_Angeles", IATA: "LAX", Country: "US"},
	{City: "San Francisco", Timezone: "America/Los_Angeles", IATA: "SFO", Country: "US"},
	{City: "Chicago (ORD)", Timezone: "America/Chicago", IATA: "ORD", Country: "US"},
	{City: "Chicago (MDW)", Timezone: "America/Chicago", IATA: "MDW", Country: "US"},
	{City: "Miami", Timezone: "America/New_York", IATA: "MIA", Country: "US"},
	{City: "Dallas", Timezone: "America/Chicago", IATA: "DFW", Country: "US"},
	{City: "Denver", Timezone: "America/Denver", IATA: "DEN", Country: "US"},
	{City: "Seattle", Timezone: "America/Los_Angeles", IATA: "SEA", Country: "US"},
	{City: "Boston", Timezone: "America/New_York", IATA: "BOS", Country: "US"},
	{City: "Washington DC (IAD)", Timezone: "America/New_York", IATA: "IAD", Country: "US"},
	{City: "Washington DC (DCA)", Timezone: "America/New_York", IATA: "DCA", Country: "US"},
	{City: "Atlanta", Timezone: "America/New_York", IATA: "ATL", Country: "US"},
	{City: "Houston", Timezone: "America/Chicago", IATA: "IAH", Country: "US"},
	{City: "Phoenix", Timezone: "America/Phoenix", IATA: "PHX", Country: "US"},
	{City: "Philadelphia", Timezone: "America/New_York", IATA: "PHL", Country: "US"},
	{City: "Las Vegas", Timezone: "America/Los_Angeles", IATA: "LAS", Country: "US"},
	{City: "Orlando", Timezone: "America/New_York", IATA: "MCO", Country: "US"},
	{City: "San Diego", Timezone: "America/Los_Angeles", IATA: "SAN", Country: "US"},
	{City: "Minneapolis", Timezone: "America/Chicago", IATA: "MSP", Country: "US"},
	{City: "Detroit", Timezone: "America/Detroit", IATA: "DTW", Country: "US"},
	{City: "Portland", Timezone: "America/Los_Angeles", IATA: "PDX", Country: "US"},
	{City: "Austin", Timezone: "America/Chicago", IATA: "AUS", Country: "US"},
	{City: "Nashville", Timezone: "America/Chicago", IATA: "BNA", Country: "US"},
	{City: "Salt Lake City", Timezone: "America/Denver", IATA: "SLC", Country: "US"},
	{City: "Honolulu", Timezone: "Pacific/Honolulu", IATA: "HNL", Country: "US"},
	{City: "Anchorage", Timezone: "America/Anchorage", IATA: "ANC", Country: "US"},

	// North America - Canada
	{City: "Toronto", Timezone: "America/Toronto", IATA: "YYZ", Country: "CA"},
	{City: "Vancouver", Timezone: "America/Vancouver", IATA: "YVR", Country: "CA"},
	{City: "Montreal", Timezone: "America/Toronto", IATA: "YUL", Country: "CA"},
	{City: "Calgary", Timezone: "America/Edmonton", IATA: "YYC", Country: "CA"},
	{City: "Ottawa", Timezone: "America/Toronto", IATA: "YOW", Country: "CA"},

	// North America - Mexico
	{City: "Mexico City", Timezone: "America/Mexico_City", IATA: "MEX", Country: "MX"},
	{City: "Cancún", Timezone: "America/Cancun", IATA: "CUN", Country: "MX"},
	{City: "Guadalajara", Timezone: "America/Mexico_City", IATA: "GDL", Country: "MX"},
	{City: "Monterrey", Timezone: "America/Monterrey", IATA: "MTY", Country: "MX"},

	// South America
	{City: "São Paulo", Timezone: "America/Sao_Paulo", IATA: "GRU", Country: "BR"},
	{City: "Rio de Janeiro", Timezone: "America/Sao_Paulo", IATA: "GIG", Country: "BR"},
	{City: "Buenos Aires", Timezone: "America/Argentina/Buenos_Aires", IATA: "EZE", Country: "AR"},
	{City: "Bogotá", Timezone: "America/Bogota", IATA: "BOG", Country: "CO"},
	{City: "Lima", Timezone: "America/Lima", IATA: "LIM", Country: "PE"},
	{City: "Santiago", Timezone: "America/Santiago", IATA: "SCL", Country: "CL"},

	// Europe - United Kingdom
	{City: "London (LHR)", Timezone: "Europe/London", IATA: "LHR", Country: "GB"},
	{City: "London (LGW)", Timezone: "Europe/London", IATA: "LGW", Country: "GB"},
	{City: "London (STN)", Timezone: "Europe/London", IATA: "STN", Country: "GB"},
	{City: "Manchester", Timezone: "Europe/London", IATA: "MAN", Country: "GB"},
	{City: "Edinburgh", Timezone: "Europe/London", IATA: "EDI", Country: "GB"},

	// Europe - Western Europe
	{City: "Paris (CDG)", Timezone: "Europe/Paris", IATA: "CDG", Country: "FR"},
	{City: "Paris (ORY)", Timezone: "Europe/Paris", IATA: "ORY", Country: "FR"},
	{City: "Frankfurt", Timezone: "Europe/Berlin", IATA: "FRA", Country: "DE"},
	{City: "Munich", Timezone: "Europe/Berlin", IATA: "MUC", Country: "DE"},
	{City: "Berlin", Timezone: "Europe/Berlin", IATA: "BER", Country: "DE"},
	{City: "Amsterdam", Timezone: "Europe/Amsterdam", IATA: "AMS", Country: "NL"},
	{City: "Brussels", Timezone: "Europe/Brussels", IATA: "BRU", Country: "BE"},
	{City: "Zurich", Timezone: "Europe/Zurich", IATA: "ZRH", Country: "CH"},
	{City: "Geneva", Timezone: "Europe/Zurich", IATA: "GVA", Country: "CH"},
	{City: "Vienna", Timezone: "Europe/Vienna", IATA: "VIE", Country: "AT"},

	// Europe - Southern Europe
	{City: "Madrid", Timezone: "Europe/Madrid", IATA: "MAD", Country: "ES"},
	{City: "Barcelona", Timezone: "Europe/Madrid", IATA: "BCN", Country: "ES"},
	{City: "Rome (FCO)", Timezone: "Europe/Rome", IATA: "FCO", Country: "IT"},
	{City: "Milan (MXP)", Timezone: "Europe/Rome", IATA: "MXP", Country: "IT"},
	{City: "Venice", Timezone: "Europe/Rome", IATA: "VCE", Country: "IT"},
	{City: "Athens", Timezone: "Europe/Athens", IATA: "ATH", Country: "GR"},
	{City: "Lisbon", Timezone: "Europe/Lisbon", IATA: "LIS", Country: "PT"},

	// Europe - Northern Europe
	{City: "Stockholm", Timezone: "Europe/Stockholm", IATA: "ARN", Country: "SE"},
	{City: "Copenhagen", Timezone: "Europe/Copenhagen", IATA: "CPH", Country: "DK"},
	{City: "Oslo", Timezone: "Europe/Oslo", IATA: "OSL", Country: "NO"},
	{City: "Helsinki", Timezone: "Europe/Helsinki", IATA: "HEL", Country: "FI"},

	// Europe - Eastern Europe
	{City: "Moscow", Timezone: "Europe/Moscow", IATA: "SVO", Country: "RU"},
	{City: "St Petersburg", Timezone: "Europe/Moscow", IATA: "LED", Country: "RU"},
	{City: "Istanbul", Timezone: "Europe/Istanbul", IATA: "IST", Country: "TR"},
	{City: "Warsaw", Timezone: "Europe/Warsaw", IATA: "WAW", Country: "PL"},
	{City: "Prague", Timezone: "Europe/Prague", IATA: "PRG", Country: "CZ"},
	{City: "Budapest", Timezone: "Europe/Budapest", IATA: "BUD", Country: "HU"},

	// Middle East
	{City: "Dubai", Timezone: "Asia/Dubai", IATA: "DXB", Country: "AE"},
	{City: "Abu Dhabi", Timezone: "Asia/Dubai", IATA: "AUH", Country: "AE"},
	{City: "Doha", Timezone: "Asia/Qatar", IATA: "DOH", Country: "QA"},
	{City: "Tel Aviv", Timezone: "Asia/Jerusalem", IATA: "TLV", Country: "IL"},
	{City: "Riyadh", Timezone: "Asia/Riyadh", IATA: "RUH", Country: "SA"},
	{City: "Jeddah", Timezone: "Asia/Riyadh", IATA: "JED", Country: "SA"},

	// Africa
	{City: "Cairo", Timezone: "Africa/Cairo", IATA: "CAI", Country: "EG"},
	{City: "Johannesburg", Timezone: "Africa/Johannesburg", IATA: "JNB", Country: "ZA"},
	{City: "Cape Town", Timezone: "Africa/Johannesburg", IATA: "CPT", Country: "ZA"},
	{City: "Lagos", Timezone: "Africa/Lagos", IATA: "LOS", Country: "NG"},
	{City: "Nairobi", Timezone: "Africa/Nairobi", IATA: "NBO", Country: "KE"},
	{City: "Casablanca", Timezone: "Africa/Casablanca", IATA: "CMN", Country: "MA"},
	{City: "Addis Ababa", Timezone: "Africa/Addis_Ababa", IATA: "ADD", Country: "ET"},

	// Asia - East Asia
	{City: "Tokyo (NRT)", Timezone: "Asia/Tokyo", IATA: "NRT", Country: "JP"},
	{City: "Tokyo (HND)", Timezone: "Asia/Tokyo", IATA: "HND", Country: "JP"},
	{City: "Osaka", Timezone: "Asia/Tokyo", IATA: "KIX", Country: "JP"},
	{City: "Beijing", Timezone: "Asia/Shanghai", IATA: "PEK", Country: "CN"},
	{City: "Shanghai (PVG)", Timezone: "Asia/Shanghai", IATA: "PVG", Country: "CN"},
	{City: "Hong Kong", Timezone: "Asia/Hong_Kong", IATA: "HKG", Country: "HK"},
	{City: "Seoul (ICN)", Timezone: "Asia/Seoul", IATA: "ICN", Country: "KR"},
	{City: "Taipei", Timezone: "Asia/Taipei", IATA: "TPE", Country: "TW"},
	{City: "Guangzhou", Timezone: "Asia/Shanghai", IATA: "CAN", Country: "CN"},
	{City: "Shenzhen", Timezone: "Asia/Shanghai", IATA: "SZX", Country: "CN"},

	// Asia - Southeast Asia
	{City: "Singapore", Timezone: "Asia/Singapore", IATA: "SIN", Country: "SG"},
	{City: "Bangkok", Timezone: "Asia/Bangkok", IATA: "BKK", Country: "TH"},
	{City: "Kuala Lumpur", Timezone: "Asia/Kuala_Lumpur", IATA: "KUL", Country: "MY"},
	{City: "Jakarta", Timezone: "Asia/Jakarta", IATA: "CGK", Country: "ID"},
	{City: "Manila", Timezone: "Asia/Manila", IATA: "MNL", Country: "PH"},
	{City: "Ho Chi Minh City", Timezone: "Asia/Ho_Chi_Minh", IATA: "SGN", Country: "VN"},
	{City: "Hanoi", Timezone: "Asia/Ho_Chi_Minh", IATA: "HAN", Country: "VN"},
	{City: "Bali", Timezone: "Asia/Makassar", IATA: "DPS", Country: "ID"},

	// Asia - South Asia
	{City: "Mumbai", Timezone: "Asia/Kolkata", IATA: "BOM", Country: "IN"},
	{City: "Delhi", Timezone: "Asia/Kolkata", IATA: "DEL", Country: "IN"},
	{City: "Bangalore", Timezone: "Asia/Kolkata", IATA: "BLR", Country: "IN"},
	{City: "Chennai", Timezone: "Asia/Kolkata", IATA: "MAA", Country: "IN"},
	{City: "Hyderabad", Timezone: "Asia/Kolkata", IATA: "HYD", Country: "IN"},
	{City: "Colombo", Timezone: "Asia/Colombo", IATA: "CMB", Country: "LK"},
	{City: "Karachi", Timezone: "Asia/Karachi", IATA: "KHI", Country: "PK"},
	{City: "Dhaka", Timezone: "Asia/Dhaka", IATA: "DAC", Country: "BD"},

	// Oceania
	{City: "Sydney", Timezone: "Australia/Sydney", IATA: "SYD", Country: "AU"},
	{City: "Melbourne", Timezone: "Australia/Melbourne", IATA: "MEL", Country: "AU"},
	{City: "Brisbane", Timezone: "Australia/Brisbane", IATA: "BNE", Country: "AU"},
	{City: "Perth", Timezone: "Australia/Perth", IATA: "PER", Country: "AU"},
	{City: "Auckland", Timezone: "Pacific/Auckland", IATA: "AKL", Country: "NZ"},
	{City: "Wellington", Timezone: "Pacific/Auckland", IATA: "WLG", Country: "NZ"},
	{City: "Christchurch", Timezone: "Pacific/Auckland", IATA: "CHC", Country: "NZ"},
}
