package agent

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tripweave/tripweave/schema"
	"github.com/tripweave/tripweave/utils/parallel"
)

// Coordinator fans one request out to the six agents and assembles the
// aggregate plan. Local expert, itinerary and budget run sequentially because
// each feeds the next; weather, flight and accommodation are independent and
// run concurrently, and their failures degrade to nil sections instead of
// failing the plan.
type Coordinator struct {
	localExpert   *LocalExpertAgent
	itinerary     *ItineraryAgent
	budget        *BudgetAgent
	weather       *WeatherAgent
	flight        *FlightAgent
	accommodation *AccommodationAgent
}

func NewCoordinator(opts ...Option) *Coordinator {
	return &Coordinator{
		localExpert:   NewLocalExpertAgent(opts...),
		itinerary:     NewItineraryAgent(opts...),
		budget:        NewBudgetAgent(opts...),
		weather:       NewWeatherAgent(opts...),
		flight:        NewFlightAgent(opts...),
		accommodation: NewAccommodationAgent(opts...),
	}
}

func (c *Coordinator) CreateTravelPlan(ctx context.Context, request *schema.TravelPlanRequest) (*schema.TravelPlan, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	local, err := c.localExpert.Process(ctx, request)
	if err != nil {
		return nil, errors.Wrap(err, "local expert failed")
	}

	// thread the expert's output into the itinerary request
	itineraryRequest := *request
	itineraryRequest.Preferences.LocalRecommendations = local
	itinerary, err := c.itinerary.Process(ctx, &itineraryRequest)
	if err != nil {
		return nil, errors.Wrap(err, "itinerary failed")
	}

	// and the itinerary into the budget request
	budgetRequest := *request
	budgetRequest.Preferences.PlannedActivities = itinerary
	budget, err := c.budget.Process(ctx, &budgetRequest)
	if err != nil {
		return nil, errors.Wrap(err, "budget failed")
	}

	var (
		weatherInfo       *schema.WeatherInfo
		flightInfo        *schema.FlightSearchResults
		accommodationInfo *schema.AccommodationSearchResults
	)
	parallel.Run(ctx, []func(context.Context) error{
		func(ctx context.Context) error {
			weatherInfo, _ = c.weather.Process(ctx, request)
			return nil
		},
		func(ctx context.Context) error {
			flightInfo, _ = c.flight.Process(ctx, request)
			return nil
		},
		func(ctx context.Context) error {
			accommodationInfo, _ = c.accommodation.Process(ctx, request)
			return nil
		},
	}, 3)

	plan := &schema.TravelPlan{
		Destination: request.Destination,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Itinerary:   itinerary,
		Budget:      budget,
		GeneralTips: concat(
			local.Customs, local.Safety, local.Timing, local.Seasonal),
		LocalRecommendations: concat(
			local.HiddenGems, local.Dining, local.Shopping, local.Events),
		WeatherInfo:       weatherInfo,
		FlightInfo:        flightInfo,
		AccommodationInfo: accommodationInfo,
		LanguageTips:      local.Language,
	}
	return plan, nil
}

func concat(lists ...[]string) []string {
	out := make([]string, 0)
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
