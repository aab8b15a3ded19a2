package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tripweave/tripweave/fallback"
	"github.com/tripweave/tripweave/schema"
)

const _accommodationPrompt = `You are an expert travel accommodation advisor. Based on the following accommodation search results and travel request, provide helpful recommendations and insights.

Travel Request:
- Destination: %s
- Dates: %s to %s
- Accommodation Type: %s
- Budget: %s
- Travel Style: %s

Accommodation Options Found:
%s

Please provide:
1. A brief summary of the accommodation search results (2-3 sentences)
2. 3-5 specific recommendations for choosing accommodations, considering:
   - Value for money
   - Location advantages
   - Amenities that match the travel style
   - Booking tips and timing
   - Local neighborhood insights

Format your response as:
SUMMARY: [Your summary here]

RECOMMENDATIONS:
• [Recommendation 1]
• [Recommendation 2]
• [Recommendation 3]
• [Recommendation 4]
• [Recommendation 5]`

var (
	_summaryPattern         = regexp.MustCompile(`(?s)SUMMARY:\s*(.*?)(?:\n\n|\nRECOMMENDATIONS:|$)`)
	_recommendationsPattern = regexp.MustCompile(`(?s)RECOMMENDATIONS:\s*(.+)`)
)

// AccommodationAgent builds the option set for the requested accommodation
// type and asks the model to advise on choosing between them. No live booking
// provider is integrated; the option set is the curated per-type catalogue.
type AccommodationAgent struct {
	base
}

func NewAccommodationAgent(opts ...Option) *AccommodationAgent {
	return &AccommodationAgent{base: newBase("accommodation", opts...)}
}

func (a *AccommodationAgent) Process(ctx context.Context, request *schema.TravelPlanRequest) (*schema.AccommodationSearchResults, error) {
	a.onStart(ctx)
	if err := request.Validate(); err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	accommodationType := request.Preferences.AccommodationType
	if accommodationType == "" {
		accommodationType = "hotel"
	}
	nights := request.Nights()

	results := &schema.AccommodationSearchResults{
		Destination:       request.Destination,
		CheckInDate:       request.StartDate.Format(_dateLayout),
		CheckOutDate:      request.EndDate.Format(_dateLayout),
		Nights:            nights,
		AccommodationType: accommodationType,
		Accommodations:    fallback.Accommodations(request.Destination, accommodationType, nights),
		LastUpdated:       time.Now().Format(time.RFC3339),
	}
	a.advise(ctx, request, results)

	a.onEnd(ctx, nil)
	return results, nil
}

func (a *AccommodationAgent) advise(ctx context.Context, request *schema.TravelPlanRequest, results *schema.AccommodationSearchResults) {
	optionLines := make([]string, 0, len(results.Accommodations))
	for _, acc := range results.Accommodations {
		optionLines = append(optionLines, fmt.Sprintf(
			"%s (%s): $%.0f/night, Rating: %.1f, Location: %s from center",
			acc.Name, acc.Type, acc.PricePerNight.Amount, acc.Rating,
			acc.Location.DistanceFromCenter))
	}

	budgetPref := request.Preferences.Budget
	if budgetPref == "" {
		budgetPref = "moderate"
	}
	travelStyle := request.Preferences.TravelStyle
	if travelStyle == "" {
		travelStyle = "balanced"
	}

	prompt := fmt.Sprintf(_accommodationPrompt,
		request.Destination,
		request.StartDate.Format(_dateLayout),
		request.EndDate.Format(_dateLayout),
		results.AccommodationType,
		budgetPref,
		travelStyle,
		strings.Join(optionLines, "\n"))

	response, err := a.generate(ctx, prompt)
	if err != nil {
		response = ""
	}

	results.SearchSummary = extractSummary(response)
	results.Recommendations = extractBullets(response)
}

func extractSummary(response string) string {
	if m := _summaryPattern.FindStringSubmatch(response); m != nil {
		if s := strings.TrimSpace(m[1]); s != "" {
			return s
		}
	}
	return "Accommodation search completed successfully."
}

// extractBullets pulls the • items under the RECOMMENDATIONS heading.
func extractBullets(response string) []string {
	m := _recommendationsPattern.FindStringSubmatch(response)
	if m == nil {
		return []string{}
	}
	bullets := make([]string, 0)
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "•") {
			continue
		}
		if item := strings.TrimSpace(strings.TrimPrefix(line, "•")); item != "" {
			bullets = append(bullets, item)
		}
	}
	return bullets
}
