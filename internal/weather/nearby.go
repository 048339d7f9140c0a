package weather

var defaultNearbyCities = []string{"London", "New York", "Tokyo", "Sydney"}

var nearbyCitiesByCountry = map[string][]string{
	// Europe
	"United Kingdom": {"London", "Manchester", "Edinburgh", "Birmingham"},
	"France":         {"Paris", "Lyon", "Marseille", "Nice"},
	"Germany":        {"Berlin", "Munich", "Hamburg", "Frankfurt"},
	"Italy":          {"Rome", "Milan", "Venice", "Florence"},
	"Spain":          {"Madrid", "Barcelona", "Valencia", "Seville"},
	"Serbia":         {"Belgrade", "Novi Sad", "Niš", "Kragujevac"},

	// North America
	"United States of America": {"New York", "Los Angeles", "Chicago", "Miami"},
	"Canada":                   {"Toronto", "Vancouver", "Montreal", "Calgary"},
	"Mexico":                   {"Mexico City", "Cancun", "Guadalajara", "Monterrey"},

	// Asia
	"Japan": {"Tokyo", "Osaka", "Kyoto", "Sapporo"},
	"China": {"Beijing", "Shanghai", "Hong Kong", "Guangzhou"},
	"India": {"Mumbai", "New Delhi", "Bangalore", "Chennai"},

	// Oceania
	"Australia":   {"Sydney", "Melbourne", "Brisbane", "Perth"},
	"New Zealand": {"Auckland", "Wellington", "Christchurch", "Queenstown"},

	// Middle East
	"United Arab Emirates": {"Dubai", "Abu Dhabi", "Sharjah", "Ajman"},
}

// NearbyCities returns four well-known cities for the given country, or a
// default world list when the country is not in the table. The match is exact.
// Callers get their own copy of the list.
func NearbyCities(country string) []string {
	cities, ok := nearbyCitiesByCountry[country]
	if !ok {
		cities = defaultNearbyCities
	}
	return append([]string(nil), cities...)
}
