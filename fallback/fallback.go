// Package fallback synthesizes substitute domain data for when a provider
// credential is absent, a call fails, or a call succeeds with zero usable
// records. Fallback output satisfies the same contracts as normalized live
// data so callers cannot distinguish the two structurally.
package fallback

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/tripweave/tripweave/schema"
)

const _dateLayout = "2006-01-02"

// Flights returns the fixed two-option mock set parameterized by origin,
// destination and dates. Airport codes are guessed from the city names.
func Flights(origin, destination string, departure, ret time.Time) []schema.FlightOption {
	originCode := guessCode(origin)
	destCode := guessCode(destination)
	departureDate := departure.Format(_dateLayout)
	returnDate := ret.Format(_dateLayout)

	return []schema.FlightOption{
		{
			ID:    "mock_flight_1",
			Price: schema.Price{Amount: 650, Currency: "USD"},
			Outbound: []schema.FlightSegment{{
				Departure:    schema.FlightStop{Airport: originCode, City: origin, Time: "08:30", Date: departureDate},
				Arrival:      schema.FlightStop{Airport: destCode, City: destination, Time: "14:45", Date: departureDate},
				Airline:      "Delta Airlines",
				FlightNumber: "DL123",
				Duration:     "6h 15m",
				Aircraft:     "Boeing 737",
			}},
			Return: []schema.FlightSegment{{
				Departure:    schema.FlightStop{Airport: destCode, City: destination, Time: "16:20", Date: returnDate},
				Arrival:      schema.FlightStop{Airport: originCode, City: origin, Time: "22:35", Date: returnDate},
				Airline:      "Delta Airlines",
				FlightNumber: "DL124",
				Duration:     "6h 15m",
				Aircraft:     "Boeing 737",
			}},
			TotalDuration: "12h 30m",
			Stops:         0,
			Class:         "economy",
			Airline:       "Delta Airlines",
			Baggage:       schema.Baggage{CarryOn: true, Checked: "23kg included"},
		},
		{
			ID:    "mock_flight_2",
			Price: schema.Price{Amount: 520, Currency: "USD"},
			Outbound: []schema.FlightSegment{{
				Departure:    schema.FlightStop{Airport: originCode, City: origin, Time: "12:15", Date: departureDate},
				Arrival:      schema.FlightStop{Airport: destCode, City: destination, Time: "20:30", Date: departureDate},
				Airline:      "United Airlines",
				FlightNumber: "UA456",
				Duration:     "8h 15m",
				Aircraft:     "Airbus A320",
			}},
			Return: []schema.FlightSegment{{
				Departure:    schema.FlightStop{Airport: destCode, City: destination, Time: "09:45", Date: returnDate},
				Arrival:      schema.FlightStop{Airport: originCode, City: origin, Time: "18:00", Date: returnDate},
				Airline:      "United Airlines",
				FlightNumber: "UA457",
				Duration:     "8h 15m",
				Aircraft:     "Airbus A320",
			}},
			TotalDuration: "16h 30m",
			Stops:         1,
			Class:         "economy",
			Airline:       "United Airlines",
			Baggage:       schema.Baggage{CarryOn: true, Checked: "20kg included"},
		},
	}
}

// FlightRecommendations are the canned booking tips attached when no model
// advice is available.
func FlightRecommendations() []string {
	return []string{
		"Compare prices across different airlines",
		"Book flights 6-8 weeks in advance for best prices",
		"Consider nearby airports for potentially lower fares",
		"Check airline baggage policies before booking",
	}
}

// Weather generates one record per calendar day in [start, end] with bounded
// randomness for a touch of realism: min 20-24°C, max 28-34°C, humidity
// 45-64%, wind 5-14 km/h, always clear, never any precipitation.
func Weather(start, end time.Time) []schema.WeatherData {
	forecast := make([]schema.WeatherData, 0)
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		forecast = append(forecast, schema.WeatherData{
			Date: d.Format(_dateLayout),
			Temperature: schema.Temperature{
				Min:  20 + rand.Intn(5),
				Max:  28 + rand.Intn(7),
				Unit: "°C",
			},
			Condition:     "Clear",
			Description:   "Clear sky",
			Humidity:      45 + rand.Intn(20),
			WindSpeed:     5 + rand.Intn(10),
			Precipitation: 0,
			Icon:          "01d",
		})
	}
	return forecast
}

// WeatherInfo wraps the mock forecast with a canned summary and packing
// advice, shaped exactly like a live result.
func WeatherInfo(destination string, start, end time.Time) *schema.WeatherInfo {
	return &schema.WeatherInfo{
		Location: destination,
		Forecast: Weather(start, end),
		Summary: fmt.Sprintf("Generally pleasant weather expected in %s "+
			"with clear skies and comfortable temperatures.", destination),
		Recommendations: []string{
			"Pack light, breathable clothing for warm days",
			"Bring a light jacket for cooler evenings",
			"Don't forget sunscreen and sunglasses",
			"Perfect weather for outdoor activities and sightseeing",
		},
	}
}

// Accommodations produces the mock option set for the requested type.
// Unrecognized types get a single generic hotel.
func Accommodations(destination, accommodationType string, nights int) []schema.AccommodationOption {
	if nights < 1 {
		nights = 1
	}
	switch strings.ToLower(accommodationType) {
	case "hotel":
		return []schema.AccommodationOption{
			{
				ID:            "hotel-1",
				Name:          fmt.Sprintf("Grand %s Hotel", destination),
				Type:          "hotel",
				Rating:        4.5,
				PricePerNight: schema.Price{Amount: 150, Currency: "USD"},
				TotalPrice:    schema.Price{Amount: 150 * float64(nights), Currency: "USD"},
				Location: schema.AccommodationLocation{
					Address:            fmt.Sprintf("123 Main Street, %s", destination),
					DistanceFromCenter: "0.5 km",
				},
				Amenities:          []string{"Free WiFi", "Pool", "Gym", "Restaurant", "Room Service", "Concierge"},
				Description:        fmt.Sprintf("Luxury hotel in the heart of %s with modern amenities and excellent service.", destination),
				CancellationPolicy: "Free cancellation until 24 hours before check-in",
				RoomType:           "Deluxe Double Room",
				GuestCapacity:      2,
				BreakfastIncluded:  true,
			},
			{
				ID:            "hotel-2",
				Name:          fmt.Sprintf("%s Business Hotel", destination),
				Type:          "hotel",
				Rating:        4.0,
				PricePerNight: schema.Price{Amount: 120, Currency: "USD"},
				TotalPrice:    schema.Price{Amount: 120 * float64(nights), Currency: "USD"},
				Location: schema.AccommodationLocation{
					Address:            fmt.Sprintf("456 Business District, %s", destination),
					DistanceFromCenter: "1.2 km",
				},
				Amenities:          []string{"Free WiFi", "Business Center", "Meeting Rooms", "Airport Shuttle"},
				Description:        "Modern business hotel perfect for both leisure and business travelers.",
				CancellationPolicy: "Free cancellation until 48 hours before check-in",
				RoomType:           "Standard Double Room",
				GuestCapacity:      2,
				BreakfastIncluded:  false,
			},
		}
	case "hostel":
		return []schema.AccommodationOption{
			{
				ID:            "hostel-1",
				Name:          fmt.Sprintf("%s Backpackers Hostel", destination),
				Type:          "hostel",
				Rating:        4.2,
				PricePerNight: schema.Price{Amount: 35, Currency: "USD"},
				TotalPrice:    schema.Price{Amount: 35 * float64(nights), Currency: "USD"},
				Location: schema.AccommodationLocation{
					Address:            fmt.Sprintf("789 Backpacker Street, %s", destination),
					DistanceFromCenter: "0.8 km",
				},
				Amenities:          []string{"Free WiFi", "Shared Kitchen", "Common Room", "Luggage Storage", "Laundry"},
				Description:        "Friendly hostel with great atmosphere, perfect for budget travelers and meeting other travelers.",
				CancellationPolicy: "Free cancellation until 24 hours before check-in",
				RoomType:           "Shared Dormitory (6 beds)",
				GuestCapacity:      1,
				BreakfastIncluded:  true,
			},
			{
				ID:            "hostel-2",
				Name:          fmt.Sprintf("Central %s Hostel", destination),
				Type:          "hostel",
				Rating:        4.0,
				PricePerNight: schema.Price{Amount: 45, Currency: "USD"},
				TotalPrice:    schema.Price{Amount: 45 * float64(nights), Currency: "USD"},
				Location: schema.AccommodationLocation{
					Address:            fmt.Sprintf("321 Central Plaza, %s", destination),
					DistanceFromCenter: "0.3 km",
				},
				Amenities:          []string{"Free WiFi", "Shared Kitchen", "Bar", "Tours Desk", "24/7 Reception"},
				Description:        "Modern hostel in prime location with excellent facilities and social atmosphere.",
				CancellationPolicy: "Free cancellation until 48 hours before check-in",
				RoomType:           "Private Double Room",
				GuestCapacity:      2,
				BreakfastIncluded:  false,
			},
		}
	case "apartment", "airbnb", "bnb":
		return []schema.AccommodationOption{
			{
				ID:            "apartment-1",
				Name:          fmt.Sprintf("Cozy %s Apartment", destination),
				Type:          "apartment",
				Rating:        4.7,
				PricePerNight: schema.Price{Amount: 85, Currency: "USD"},
				TotalPrice:    schema.Price{Amount: 85 * float64(nights), Currency: "USD"},
				Location: schema.AccommodationLocation{
					Address:            fmt.Sprintf("567 Residential Area, %s", destination),
					DistanceFromCenter: "1.5 km",
				},
				Amenities:          []string{"Free WiFi", "Full Kitchen", "Washing Machine", "Balcony", "Parking"},
				Description:        "Charming apartment with all amenities, perfect for a home-away-from-home experience.",
				CancellationPolicy: "Moderate cancellation policy",
				RoomType:           "Entire Apartment (1 bedroom)",
				GuestCapacity:      4,
				BreakfastIncluded:  false,
			},
			{
				ID:            "apartment-2",
				Name:          fmt.Sprintf("Modern %s Loft", destination),
				Type:          "apartment",
				Rating:        4.8,
				PricePerNight: schema.Price{Amount: 110, Currency: "USD"},
				TotalPrice:    schema.Price{Amount: 110 * float64(nights), Currency: "USD"},
				Location: schema.AccommodationLocation{
					Address:            fmt.Sprintf("890 Trendy District, %s", destination),
					DistanceFromCenter: "0.7 km",
				},
				Amenities:          []string{"Free WiFi", "Full Kitchen", "Rooftop Terrace", "Gym Access", "Concierge"},
				Description:        "Stylish modern loft in trendy neighborhood with amazing city views.",
				CancellationPolicy: "Strict cancellation policy",
				RoomType:           "Entire Loft (2 bedrooms)",
				GuestCapacity:      6,
				BreakfastIncluded:  false,
			},
		}
	}
	return []schema.AccommodationOption{
		{
			ID:            "default-1",
			Name:          fmt.Sprintf("%s Comfort Inn", destination),
			Type:          "hotel",
			Rating:        4.0,
			PricePerNight: schema.Price{Amount: 100, Currency: "USD"},
			TotalPrice:    schema.Price{Amount: 100 * float64(nights), Currency: "USD"},
			Location: schema.AccommodationLocation{
				Address:            fmt.Sprintf("100 Comfort Street, %s", destination),
				DistanceFromCenter: "1.0 km",
			},
			Amenities:          []string{"Free WiFi", "Breakfast", "Parking"},
			Description:        "Comfortable accommodation with essential amenities at a great value.",
			CancellationPolicy: "Free cancellation until 24 hours before check-in",
			RoomType:           "Standard Room",
			GuestCapacity:      2,
			BreakfastIncluded:  true,
		},
	}
}

// guessCode uppercases the first three letters of a city name, the same
// last-resort heuristic the airport table uses.
func guessCode(city string) string {
	city = strings.TrimSpace(city)
	if len(city) < 3 {
		return strings.ToUpper(city)
	}
	return strings.ToUpper(city[:3])
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
