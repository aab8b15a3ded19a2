package schema

import "time"

// Budget is a per-category cost breakdown. After reconciliation the invariant
// Total == Accommodation+Activities+Transportation+Food+Miscellaneous holds.
type Budget struct {
	Accommodation  float64 `json:"accommodation"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Miscellaneous  float64 `json:"miscellaneous"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
}

// CategoryTotal sums the category amounts, excluding Total itself.
func (b *Budget) CategoryTotal() float64 {
	return b.Accommodation + b.Activities + b.Transportation + b.Food + b.Miscellaneous
}

// Activity is a single itinerary entry. Duration stays a human-readable
// estimate, never a machine duration. Location falls back to "Location TBD".
type Activity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Cost        string   `json:"cost,omitempty"`
	Location    string   `json:"location"`
	Tips        []string `json:"tips"`
}

// DayPlan holds one day's activities. The date is synthetic (today + day
// index); consumers that need real trip dates must re-map by position in the
// itinerary slice, not by this field.
type DayPlan struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// LocalRecommendations is the fixed ten-bucket output of the local expert.
// Buckets are filled positionally from the numbered sections of the model
// response; the order here is a versioned contract with the prompt.
type LocalRecommendations struct {
	HiddenGems     []string `json:"hiddenGems"`
	Customs        []string `json:"customs"`
	Transportation []string `json:"transportation"`
	Dining         []string `json:"dining"`
	Safety         []string `json:"safety"`
	Seasonal       []string `json:"seasonal"`
	Events         []string `json:"events"`
	Timing         []string `json:"timing"`
	Language       []string `json:"language"`
	Shopping       []string `json:"shopping"`
}

// Temperature is a daily min/max pair.
type Temperature struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit"`
}

// WeatherData is one calendar day aggregated from sub-daily provider samples.
type WeatherData struct {
	Date          string      `json:"date"`
	Temperature   Temperature `json:"temperature"`
	Condition     string      `json:"condition"`
	Description   string      `json:"description"`
	Humidity      int         `json:"humidity"`
	WindSpeed     int         `json:"windSpeed"`
	Precipitation float64     `json:"precipitation"`
	Icon          string      `json:"icon"`
}

// WeatherInfo is the weather agent's full result.
type WeatherInfo struct {
	Location        string        `json:"location"`
	Forecast        []WeatherData `json:"forecast"`
	Summary         string        `json:"summary"`
	Recommendations []string      `json:"recommendations"`
}

// Price is an amount with its currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// FlightStop is one end of a flight segment.
type FlightStop struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

// FlightSegment is a single leg of a journey.
type FlightSegment struct {
	Departure    FlightStop `json:"departure"`
	Arrival      FlightStop `json:"arrival"`
	Airline      string     `json:"airline"`
	FlightNumber string     `json:"flightNumber"`
	Duration     string     `json:"duration"`
	Aircraft     string     `json:"aircraft"`
}

// Baggage describes a fare's baggage allowance.
type Baggage struct {
	CarryOn bool   `json:"carry_on"`
	Checked string `json:"checked"`
}

// FlightOption is one bookable flight, outbound plus optional return legs.
type FlightOption struct {
	ID            string          `json:"id"`
	Price         Price           `json:"price"`
	Outbound      []FlightSegment `json:"outbound"`
	Return        []FlightSegment `json:"return,omitempty"`
	TotalDuration string          `json:"totalDuration"`
	Stops         int             `json:"stops"`
	Class         string          `json:"class"`
	Airline       string          `json:"airline"`
	Baggage       Baggage         `json:"baggage"`
}

// FlightSearchResults is the flight agent's full result.
type FlightSearchResults struct {
	Origin          string         `json:"origin"`
	Destination     string         `json:"destination"`
	DepartureDate   string         `json:"departureDate"`
	ReturnDate      string         `json:"returnDate,omitempty"`
	Passengers      int            `json:"passengers"`
	Flights         []FlightOption `json:"flights"`
	SearchSummary   string         `json:"searchSummary"`
	Recommendations []string       `json:"recommendations"`
	LastUpdated     string         `json:"lastUpdated"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AccommodationLocation describes where a property is.
type AccommodationLocation struct {
	Address            string      `json:"address"`
	DistanceFromCenter string      `json:"distanceFromCenter"`
	Coordinates        Coordinates `json:"coordinates"`
}

// AccommodationOption is one stay choice. Type is one of hotel, hostel,
// apartment, resort, guesthouse, bnb.
type AccommodationOption struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Type               string                `json:"type"`
	Rating             float64               `json:"rating"`
	PricePerNight      Price                 `json:"pricePerNight"`
	TotalPrice         Price                 `json:"totalPrice"`
	Location           AccommodationLocation `json:"location"`
	Amenities          []string              `json:"amenities"`
	Description        string                `json:"description"`
	CancellationPolicy string                `json:"cancellationPolicy"`
	RoomType           string                `json:"roomType"`
	GuestCapacity      int                   `json:"guestCapacity"`
	BreakfastIncluded  bool                  `json:"breakfastIncluded"`
}

// AccommodationSearchResults is the accommodation agent's full result.
type AccommodationSearchResults struct {
	Destination       string                `json:"destination"`
	CheckInDate       string                `json:"checkInDate"`
	CheckOutDate      string                `json:"checkOutDate"`
	Nights            int                   `json:"nights"`
	AccommodationType string                `json:"accommodationType"`
	Accommodations    []AccommodationOption `json:"accommodations"`
	SearchSummary     string                `json:"searchSummary"`
	Recommendations   []string              `json:"recommendations"`
	LastUpdated       string                `json:"lastUpdated"`
}

// TravelPlan is the coordinator's aggregate. Weather, flight and accommodation
// sections are best-effort and may be nil when those agents fail.
type TravelPlan struct {
	Destination          string                      `json:"destination"`
	StartDate            time.Time                   `json:"startDate"`
	EndDate              time.Time                   `json:"endDate"`
	Itinerary            []DayPlan                   `json:"itinerary"`
	Budget               *Budget                     `json:"budget"`
	GeneralTips          []string                    `json:"generalTips"`
	LocalRecommendations []string                    `json:"localRecommendations"`
	WeatherInfo          *WeatherInfo                `json:"weatherInfo,omitempty"`
	FlightInfo           *FlightSearchResults        `json:"flightInfo,omitempty"`
	AccommodationInfo    *AccommodationSearchResults `json:"accommodationInfo,omitempty"`
	LanguageTips         []string                    `json:"languageTips"`
}
