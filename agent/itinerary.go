package agent

import (
	"context"
	"fmt"

	"github.com/tripweave/tripweave/extract"
	"github.com/tripweave/tripweave/schema"
)

const _itineraryPrompt = `You are an expert travel itinerary planner. Create a detailed day-by-day itinerary for the following trip:
Destination: %s
Start Date: %s
End Date: %s
Preferences: %s

Consider the following:
1. Time of year and weather
2. Popular attractions and hidden gems
3. Logical flow of activities
4. Travel time between locations
5. Meal times and restaurant suggestions
6. Rest periods
7. Local events or seasonal activities

Provide a detailed itinerary with specific times, locations, and activity durations.`

// ItineraryAgent prompts the model for a day-by-day plan and segments the
// response into typed day plans. When day segmentation finds nothing it
// degrades to a single catch-all day rather than failing.
type ItineraryAgent struct {
	base
}

func NewItineraryAgent(opts ...Option) *ItineraryAgent {
	return &ItineraryAgent{base: newBase("itinerary", opts...)}
}

func (a *ItineraryAgent) Process(ctx context.Context, request *schema.TravelPlanRequest) ([]schema.DayPlan, error) {
	a.onStart(ctx)
	if err := request.Validate(); err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	prompt := fmt.Sprintf(_itineraryPrompt,
		request.Destination,
		request.StartDate.Format(_dateLayout),
		request.EndDate.Format(_dateLayout),
		preferencesJSON(request.Preferences))

	response, err := a.generate(ctx, prompt)
	if err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	itinerary := extract.Itinerary(response)
	a.onEnd(ctx, nil)
	return itinerary, nil
}
