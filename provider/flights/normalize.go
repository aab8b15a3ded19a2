package flights

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/tripweave/tripweave/schema"
)

// rawOffer mirrors one SerpApi flight offer. Every field is optional in the
// wire format; defaults are applied during mapping.
type rawOffer struct {
	Price         float64                  `mapstructure:"price"`
	Flights       []rawSegment             `mapstructure:"flights"`
	ReturnFlights []rawSegment             `mapstructure:"return_flights"`
	Layovers      []map[string]interface{} `mapstructure:"layovers"`
	TotalDuration interface{}              `mapstructure:"total_duration"`
	Airline       string                   `mapstructure:"airline"`
	Baggage       string                   `mapstructure:"baggage"`
}

type rawSegment struct {
	DepartureAirport rawAirport  `mapstructure:"departure_airport"`
	ArrivalAirport   rawAirport  `mapstructure:"arrival_airport"`
	Airline          string      `mapstructure:"airline"`
	FlightNumber     string      `mapstructure:"flight_number"`
	Duration         interface{} `mapstructure:"duration"`
	Airplane         string      `mapstructure:"airplane"`
}

type rawAirport struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
	Time string `mapstructure:"time"`
	Date string `mapstructure:"date"`
}

// Normalize maps raw offers into FlightOptions, truncated to limit. Order is
// the provider's relevance order (best offers first); no re-sorting by price
// or duration happens here. Offers that fail to decode are skipped rather
// than failing the batch.
func Normalize(offers []map[string]interface{}, limit int) []schema.FlightOption {
	options := make([]schema.FlightOption, 0, len(offers))
	for i, offer := range offers {
		if limit > 0 && len(options) >= limit {
			break
		}
		var raw rawOffer
		if err := mapstructure.WeakDecode(offer, &raw); err != nil {
			continue
		}
		options = append(options, mapOffer(i, raw))
	}
	return options
}

func mapOffer(index int, raw rawOffer) schema.FlightOption {
	option := schema.FlightOption{
		ID:            fmt.Sprintf("serp_flight_%d", index),
		Price:         schema.Price{Amount: raw.Price, Currency: "USD"},
		Outbound:      mapSegments(raw.Flights),
		TotalDuration: durationString(raw.TotalDuration),
		Stops:         len(raw.Layovers),
		Class:         "economy",
		Airline:       defaultString(raw.Airline, "Unknown"),
		Baggage: schema.Baggage{
			CarryOn: true,
			Checked: defaultString(raw.Baggage, "Check with airline"),
		},
	}
	if len(raw.ReturnFlights) > 0 {
		option.Return = mapSegments(raw.ReturnFlights)
	}
	return option
}

func mapSegments(segments []rawSegment) []schema.FlightSegment {
	out := make([]schema.FlightSegment, 0, len(segments))
	for _, s := range segments {
		out = append(out, schema.FlightSegment{
			Departure:    mapStop(s.DepartureAirport),
			Arrival:      mapStop(s.ArrivalAirport),
			Airline:      defaultString(s.Airline, "Unknown"),
			FlightNumber: defaultString(s.FlightNumber, "N/A"),
			Duration:     durationString(s.Duration),
			Aircraft:     defaultString(s.Airplane, "N/A"),
		})
	}
	return out
}

func mapStop(a rawAirport) schema.FlightStop {
	return schema.FlightStop{
		Airport: defaultString(a.ID, "N/A"),
		City:    defaultString(a.Name, "N/A"),
		Time:    defaultString(a.Time, "N/A"),
		Date:    defaultString(a.Date, "N/A"),
	}
}

// durationString renders the provider's duration, which arrives either as a
// minute count or a preformatted string.
func durationString(v interface{}) string {
	switch d := v.(type) {
	case nil:
		return "N/A"
	case string:
		return defaultString(d, "N/A")
	case float64:
		return fmt.Sprintf("%dh %02dm", int(d)/60, int(d)%60)
	case int:
		return fmt.Sprintf("%dh %02dm", d/60, d%60)
	}
	return "N/A"
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
