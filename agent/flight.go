package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tripweave/tripweave/fallback"
	"github.com/tripweave/tripweave/provider/flights"
	"github.com/tripweave/tripweave/schema"
)

const _defaultOrigin = "New York"

const _flightPrompt = `You are a flight search expert helping travelers find and compare flight options.

Route: %s (%s) to %s (%s)
Departure: %s
Return: %s

Flight options found:
%s

Based on these options, provide:
1. A brief summary of the search results
2. Specific recommendations on which flights offer the best value
3. Booking tips for this route

Format your response as practical advice for travelers.`

var _flightKeywords = []string{"recommend", "suggest", "tip", "consider"}

// FlightAgent resolves both cities to airport codes, runs the live search,
// and normalizes the offers. Unknown airports, search failures and empty
// result sets all land on the documented mock flight set.
type FlightAgent struct {
	base
}

func NewFlightAgent(opts ...Option) *FlightAgent {
	return &FlightAgent{base: newBase("flight", opts...)}
}

func (a *FlightAgent) Process(ctx context.Context, request *schema.TravelPlanRequest) (*schema.FlightSearchResults, error) {
	a.onStart(ctx)
	if err := request.Validate(); err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	origin := request.Preferences.Origin
	if origin == "" {
		origin = _defaultOrigin
	}

	results, err := a.search(ctx, origin, request)
	if err != nil {
		a.onFallback(ctx, err.Error())
		results = a.mockResults(origin, request)
	}
	a.onEnd(ctx, nil)
	return results, nil
}

func (a *FlightAgent) search(ctx context.Context, origin string, request *schema.TravelPlanRequest) (*schema.FlightSearchResults, error) {
	if a.opts.FlightClient == nil {
		return nil, fmt.Errorf("flight API key not configured")
	}

	originMatch, ok := flights.LookupAirport(origin)
	if !ok {
		return nil, fmt.Errorf("no airport found for origin %q", origin)
	}
	destMatch, ok := flights.LookupAirport(request.Destination)
	if !ok {
		return nil, fmt.Errorf("no airport found for destination %q", request.Destination)
	}

	departureDate := request.StartDate.Format(_dateLayout)
	returnDate := request.EndDate.Format(_dateLayout)

	offers, err := a.opts.FlightClient.Search(ctx, flights.SearchParams{
		Origin:        originMatch.Code,
		Destination:   destMatch.Code,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Adults:        1,
		Class:         "economy",
	})
	if err != nil {
		return nil, err
	}
	if len(offers) > a.opts.FlightOfferBudget {
		offers = offers[:a.opts.FlightOfferBudget]
	}

	options := flights.Normalize(offers, a.opts.FlightLimit)
	if len(options) == 0 {
		return nil, fmt.Errorf("no usable flight offers returned")
	}

	results := &schema.FlightSearchResults{
		Origin:        origin,
		Destination:   request.Destination,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Passengers:    1,
		Flights:       options,
		LastUpdated:   time.Now().Format(time.RFC3339),
	}
	a.advise(ctx, originMatch, destMatch, results)
	return results, nil
}

// advise fills summary and recommendations from the model, keeping the live
// offers if the model is unavailable.
func (a *FlightAgent) advise(ctx context.Context, origin, dest flights.AirportMatch, results *schema.FlightSearchResults) {
	optionsJSON, _ := json.Marshal(results.Flights)
	prompt := fmt.Sprintf(_flightPrompt,
		results.Origin, origin.Code,
		results.Destination, dest.Code,
		results.DepartureDate, results.ReturnDate,
		string(optionsJSON))

	response, err := a.generate(ctx, prompt)
	if err != nil {
		response = ""
	}

	results.SearchSummary = firstLines(response, 2)
	if results.SearchSummary == "" {
		results.SearchSummary = fmt.Sprintf("Found %d flight options from %s to %s",
			len(results.Flights), results.Origin, results.Destination)
	}
	results.Recommendations = keywordLines(response, _flightKeywords, 5)
	if len(results.Recommendations) == 0 {
		results.Recommendations = fallback.FlightRecommendations()
	}
}

func (a *FlightAgent) mockResults(origin string, request *schema.TravelPlanRequest) *schema.FlightSearchResults {
	options := fallback.Flights(origin, request.Destination, request.StartDate, request.EndDate)

	minPrice, maxPrice := options[0].Price.Amount, options[0].Price.Amount
	for _, o := range options {
		if o.Price.Amount < minPrice {
			minPrice = o.Price.Amount
		}
		if o.Price.Amount > maxPrice {
			maxPrice = o.Price.Amount
		}
	}

	return &schema.FlightSearchResults{
		Origin:        origin,
		Destination:   request.Destination,
		DepartureDate: request.StartDate.Format(_dateLayout),
		ReturnDate:    request.EndDate.Format(_dateLayout),
		Passengers:    1,
		Flights:       options,
		SearchSummary: fmt.Sprintf("Found %d flight options from %s to %s. Prices range from $%.0f to $%.0f.",
			len(options), origin, request.Destination, minPrice, maxPrice),
		Recommendations: []string{
			"Book early for better prices - prices tend to increase closer to departure",
			"Consider flights with one stop for significant savings",
			"Check baggage policies before booking",
			"Tuesday and Wednesday departures are often cheaper",
			"Clear your browser cookies before booking to avoid price increases",
		},
		LastUpdated: time.Now().Format(time.RFC3339),
	}
}
