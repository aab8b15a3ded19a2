package flights

import (
	"sort"
	"strings"
)

// Confidence grades how an airport match was made.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Airport describes a city's primary airport.
type Airport struct {
	Code    string `json:"airportCode"`
	Name    string `json:"airportName"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// AirportMatch is the result of a lookup, including how it was matched.
type AirportMatch struct {
	Airport
	MatchedCity string `json:"matchedCity,omitempty"`
	Confidence  string `json:"confidence"`
}

// cityAirports maps lowercase city names to their primary airports.
var cityAirports = map[string]Airport{
	// North America
	"new york":      {Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
	"los angeles":   {Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA"},
	"chicago":       {Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA"},
	"miami":         {Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "USA"},
	"san francisco": {Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "USA"},
	"toronto":       {Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
	"vancouver":     {Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},

	// Europe
	"london":    {Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK"},
	"paris":     {Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	"amsterdam": {Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	"frankfurt": {Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	"madrid":    {Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "Spain"},
	"rome":      {Code: "FCO", Name: "Leonardo da Vinci International Airport", City: "Rome", Country: "Italy"},
	"zurich":    {Code: "ZUR", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland"},
	"vienna":    {Code: "VIE", Name: "Vienna International Airport", City: "Vienna", Country: "Austria"},
	"munich":    {Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany"},
	"barcelona": {Code: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain"},

	// Asia
	"tokyo":        {Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	"beijing":      {Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China"},
	"shanghai":     {Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China"},
	"hong kong":    {Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	"singapore":    {Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	"seoul":        {Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	"bangkok":      {Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	"kuala lumpur": {Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia"},
	"mumbai":       {Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	"delhi":        {Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India"},

	// Middle East & Africa
	"dubai":        {Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	"doha":         {Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar"},
	"istanbul":     {Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey"},
	"cairo":        {Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt"},
	"johannesburg": {Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa"},
	"casablanca":   {Code: "CMN", Name: "Mohammed V International Airport", City: "Casablanca", Country: "Morocco"},

	// Australia & Oceania
	"sydney":    {Code: "SYD", Name: "Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	"melbourne": {Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia"},
	"auckland":  {Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand"},

	// South America
	"sao paulo":      {Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil"},
	"rio de janeiro": {Code: "GIG", Name: "Rio de Janeiro/Galeão International Airport", City: "Rio de Janeiro", Country: "Brazil"},
	"buenos aires":   {Code: "EZE", Name: "Ezeiza International Airport", City: "Buenos Aires", Country: "Argentina"},
	"lima":           {Code: "LIM", Name: "Jorge Chávez International Airport", City: "Lima", Country: "Peru"},
	"bogota":         {Code: "BOG", Name: "El Dorado International Airport", City: "Bogotá", Country: "Colombia"},
}

// cityAliases maps common abbreviations to table keys. Aliases are consulted
// before substring matching, so an alias hit counts as an exact match.
var cityAliases = map[string]string{
	"nyc":    "new york",
	"la":     "los angeles",
	"sf":     "san francisco",
	"chi":    "chicago",
	"vegas":  "las vegas",
	"dc":     "washington",
	"philly": "philadelphia",
	"bos":    "boston",
	"sea":    "seattle",
	"atl":    "atlanta",
}

// LookupAirport resolves a city name to its primary airport code. Match
// precedence: exact table hit, then alias resolution (both high confidence),
// then substring containment in either direction (medium), then a last-resort
// guess of the first three letters uppercased (low). Only a name shorter than
// three letters with no other match fails.
func LookupAirport(city string) (AirportMatch, bool) {
	name := strings.ToLower(strings.TrimSpace(city))

	if airport, ok := cityAirports[name]; ok {
		return AirportMatch{Airport: airport, Confidence: ConfidenceHigh}, true
	}

	if full, ok := cityAliases[name]; ok {
		if airport, ok := cityAirports[full]; ok {
			return AirportMatch{
				Airport:     airport,
				MatchedCity: full,
				Confidence:  ConfidenceHigh,
			}, true
		}
	}

	// map iteration order is random; scan sorted keys so repeated lookups
	// resolve the same way
	for _, key := range sortedCityKeys() {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return AirportMatch{
				Airport:     cityAirports[key],
				MatchedCity: key,
				Confidence:  ConfidenceMedium,
			}, true
		}
	}

	if len(name) >= 3 {
		return AirportMatch{
			Airport: Airport{
				Code:    strings.ToUpper(name[:3]),
				Name:    city + " Airport (estimated)",
				City:    city,
				Country: "Unknown",
			},
			Confidence: ConfidenceLow,
		}, true
	}

	return AirportMatch{}, false
}

func sortedCityKeys() []string {
	keys := make([]string, 0, len(cityAirports))
	for key := range cityAirports {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SuggestCities offers table entries starting with the same letter as the
// failed input, falling back to a handful of popular destinations.
func SuggestCities(city string) []string {
	name := strings.ToLower(strings.TrimSpace(city))
	suggestions := make([]string, 0, 5)
	if name != "" {
		for _, key := range sortedCityKeys() {
			if strings.HasPrefix(key, name[:1]) {
				suggestions = append(suggestions, key)
				if len(suggestions) == 5 {
					return suggestions
				}
			}
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{"new york", "london", "paris", "tokyo", "sydney"}
	}
	return suggestions
}
