package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripweave/tripweave/llm"
	"github.com/tripweave/tripweave/schema"
)

// stubLLM answers by sniffing the prompt for each agent's role line.
type stubLLM struct {
	byRole map[string]string
	err    error
}

var _ llm.LLM = (*stubLLM)(nil)

func (s *stubLLM) Generate(_ context.Context, prompt string, _ ...llm.GenerateOption) (*llm.Generation, error) {
	if s.err != nil {
		return nil, s.err
	}
	for marker, response := range s.byRole {
		if strings.Contains(prompt, marker) {
			return &llm.Generation{Content: response}, nil
		}
	}
	return &llm.Generation{Content: ""}, nil
}

func (s *stubLLM) GenerateContent(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (*llm.Generation, error) {
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Content)
	}
	return s.Generate(ctx, sb.String(), opts...)
}

func testRequest() *schema.TravelPlanRequest {
	start := time.Now().AddDate(0, 0, 14)
	return &schema.TravelPlanRequest{
		Destination: "Cairo",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Preferences: schema.Preferences{
			Budget:            "moderate",
			AccommodationType: "hotel",
			Origin:            "New York",
		},
	}
}

const _localExpertResponse = `1. Hidden gems
Rooftop cafe with citadel views
2. Customs
Dress modestly at religious sites
3. Transportation
Use the metro to cross the city
4. Dining
Try koshary at a street stall
5. Safety
Keep valuables out of sight
6. Seasonal
October evenings can be cool
7. Events
Cairo Jazz Festival in October
8. Timing
Visit the pyramids right at opening
9. Language
Learn the greeting salam alaikum
10. Shopping
Haggle at Khan el-Khalili`

func TestBudgetAgent(t *testing.T) {
	t.Parallel()

	model := &stubLLM{byRole: map[string]string{
		"budget planner": "Accommodation: $300\nFood: $150\nTotal: $1000",
	}}
	a := NewBudgetAgent(WithLLM(model))

	b, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, b.Total)
	assert.Equal(t, 400.0, b.Accommodation)
	assert.Equal(t, b.Total, b.CategoryTotal())
}

func TestBudgetAgentFallbackOnUnusableText(t *testing.T) {
	t.Parallel()

	model := &stubLLM{byRole: map[string]string{
		"budget planner": "I cannot estimate costs for this trip.",
	}}
	a := NewBudgetAgent(WithLLM(model))

	b, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1050.0, b.Total)
}

func TestBudgetAgentRejectsInvalidDates(t *testing.T) {
	t.Parallel()

	a := NewBudgetAgent(WithLLM(&stubLLM{}))
	request := testRequest()
	request.EndDate = request.StartDate.AddDate(0, 0, -3)

	_, err := a.Process(context.Background(), request)
	assert.ErrorIs(t, err, schema.ErrEndBeforeStart)
}

func TestItineraryAgent(t *testing.T) {
	t.Parallel()

	model := &stubLLM{byRole: map[string]string{
		"itinerary planner": "Day 1: 9:00 Visit the Museum - Explore ancient artifacts\nDay 2: 10:00 Walking tour of Old Cairo",
	}}
	a := NewItineraryAgent(WithLLM(model))

	days, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Visit the Museum", days[0].Activities[0].Name)
}

func TestLocalExpertAgentPositionalBuckets(t *testing.T) {
	t.Parallel()

	model := &stubLLM{byRole: map[string]string{
		"local expert": _localExpertResponse,
	}}
	a := NewLocalExpertAgent(WithLLM(model))

	recs, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Contains(t, recs.HiddenGems, "Rooftop cafe with citadel views")
	assert.Contains(t, recs.Customs, "Dress modestly at religious sites")
	assert.Contains(t, recs.Language, "Learn the greeting salam alaikum")
	assert.Contains(t, recs.Shopping, "Haggle at Khan el-Khalili")
}

func TestWeatherAgentFallsBackWithoutCredential(t *testing.T) {
	t.Parallel()

	a := NewWeatherAgent(WithLLM(&stubLLM{}))
	request := testRequest()

	info, err := a.Process(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "Cairo", info.Location)
	assert.Len(t, info.Forecast, 8)
	assert.NotEmpty(t, info.Summary)
	assert.NotEmpty(t, info.Recommendations)
}

func TestFlightAgentFallsBackWithoutCredential(t *testing.T) {
	t.Parallel()

	a := NewFlightAgent(WithLLM(&stubLLM{}))
	results, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, results.Flights, 2)
	assert.Equal(t, "Delta Airlines", results.Flights[0].Airline)
	assert.Equal(t, "United Airlines", results.Flights[1].Airline)
	assert.Equal(t, "New York", results.Origin)
	assert.Equal(t, "Cairo", results.Destination)
	assert.NotEmpty(t, results.SearchSummary)
	assert.NotEmpty(t, results.Recommendations)
}

func TestFlightAgentDefaultsOrigin(t *testing.T) {
	t.Parallel()

	a := NewFlightAgent(WithLLM(&stubLLM{}))
	request := testRequest()
	request.Preferences.Origin = ""

	results, err := a.Process(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "New York", results.Origin)
}

func TestAccommodationAgentParsesAdvice(t *testing.T) {
	t.Parallel()

	model := &stubLLM{byRole: map[string]string{
		"accommodation advisor": `SUMMARY: Two solid hotel options close to the center.

RECOMMENDATIONS:
• Pick the Grand for the pool and breakfast
• The business hotel is better value midweek`,
	}}
	a := NewAccommodationAgent(WithLLM(model))

	results, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Two solid hotel options close to the center.", results.SearchSummary)
	require.Len(t, results.Recommendations, 2)
	assert.Equal(t, "Pick the Grand for the pool and breakfast", results.Recommendations[0])
	assert.Equal(t, 7, results.Nights)
	require.Len(t, results.Accommodations, 2)
	assert.Equal(t, "Grand Cairo Hotel", results.Accommodations[0].Name)
}

func TestAccommodationAgentDefaultsOnModelFailure(t *testing.T) {
	t.Parallel()

	a := NewAccommodationAgent(WithLLM(&stubLLM{err: context.DeadlineExceeded}))
	results, err := a.Process(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Accommodation search completed successfully.", results.SearchSummary)
	assert.Empty(t, results.Recommendations)
}

func TestCoordinator(t *testing.T) {
	t.Parallel()

	model := &stubLLM{byRole: map[string]string{
		"local expert":          _localExpertResponse,
		"itinerary planner":     "Day 1: 9:00 Visit the Museum - Explore ancient artifacts",
		"budget planner":        "Accommodation: $300\nFood: $150\nTotal: $1000",
		"accommodation advisor": "SUMMARY: ok\n\nRECOMMENDATIONS:\n• book early",
	}}
	c := NewCoordinator(WithLLM(model))

	plan, err := c.CreateTravelPlan(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Cairo", plan.Destination)
	require.Len(t, plan.Itinerary, 1)
	assert.Equal(t, 1000.0, plan.Budget.Total)
	assert.Contains(t, plan.GeneralTips, "Dress modestly at religious sites")
	assert.Contains(t, plan.LocalRecommendations, "Haggle at Khan el-Khalili")
	assert.Equal(t, []string{"Language", "Learn the greeting salam alaikum"}, plan.LanguageTips)

	// best-effort sections are fallbacks, never nil, when no providers exist
	require.NotNil(t, plan.WeatherInfo)
	require.NotNil(t, plan.FlightInfo)
	require.NotNil(t, plan.AccommodationInfo)
	assert.Len(t, plan.FlightInfo.Flights, 2)
}

func TestCoordinatorFailsOnFatalAgent(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(WithLLM(&stubLLM{err: context.DeadlineExceeded}))
	_, err := c.CreateTravelPlan(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local expert failed")
}
