package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tripweave/tripweave/fallback"
	"github.com/tripweave/tripweave/provider/weather"
	"github.com/tripweave/tripweave/schema"
)

const _weatherPrompt = `You are a weather expert providing travel advice based on weather conditions.

Location: %s
Travel Dates: %s to %s
Weather Data: %s

Based on the weather forecast, provide:
1. A brief summary of the weather conditions during the trip
2. Clothing recommendations
3. Activity suggestions based on weather
4. Any weather-related travel tips or warnings

Format your response as practical advice for travelers.`

var _weatherKeywords = []string{"recommend", "suggest", "tip"}

// WeatherAgent fetches and aggregates the forecast for the trip window, then
// asks the model for packing and activity advice. Any provider problem, from
// a missing key to an empty forecast, routes to synthesized weather shaped
// like the live result.
type WeatherAgent struct {
	base
}

func NewWeatherAgent(opts ...Option) *WeatherAgent {
	return &WeatherAgent{base: newBase("weather", opts...)}
}

func (a *WeatherAgent) Process(ctx context.Context, request *schema.TravelPlanRequest) (*schema.WeatherInfo, error) {
	a.onStart(ctx)
	if a.opts.WeatherClient == nil {
		a.onFallback(ctx, "weather API key not configured")
		info := fallback.WeatherInfo(request.Destination, request.StartDate, request.EndDate)
		a.onEnd(ctx, nil)
		return info, nil
	}

	if err := request.Validate(); err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	info, err := a.liveForecast(ctx, request)
	if err != nil {
		a.onFallback(ctx, err.Error())
		info = fallback.WeatherInfo(request.Destination, request.StartDate, request.EndDate)
	}
	a.onEnd(ctx, nil)
	return info, nil
}

func (a *WeatherAgent) liveForecast(ctx context.Context, request *schema.TravelPlanRequest) (*schema.WeatherInfo, error) {
	lat, lon, err := a.opts.WeatherClient.Geocode(ctx, request.Destination)
	if err != nil {
		return nil, err
	}

	city, samples, err := a.opts.WeatherClient.Forecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	forecast := weather.Aggregate(samples, request.StartDate, request.EndDate)
	if len(forecast) == 0 {
		return nil, fmt.Errorf("no forecast data for travel dates")
	}

	info := &schema.WeatherInfo{
		Location: city,
		Forecast: forecast,
	}
	a.advise(ctx, request, info)
	return info, nil
}

// advise fills summary and recommendations from the model. Advice is a
// garnish on live data; a model failure keeps the forecast and falls back to
// canned text rather than discarding it.
func (a *WeatherAgent) advise(ctx context.Context, request *schema.TravelPlanRequest, info *schema.WeatherInfo) {
	forecastJSON, _ := json.Marshal(info.Forecast)
	prompt := fmt.Sprintf(_weatherPrompt,
		request.Destination,
		request.StartDate.Format(_dateLayout),
		request.EndDate.Format(_dateLayout),
		string(forecastJSON))

	response, err := a.generate(ctx, prompt)
	if err != nil {
		response = ""
	}

	info.Summary = firstLines(response, 2)
	if info.Summary == "" {
		info.Summary = "Weather information processed successfully."
	}
	info.Recommendations = keywordLines(response, _weatherKeywords, 4)
	if len(info.Recommendations) == 0 {
		info.Recommendations = []string{
			"Check weather conditions before outdoor activities",
			"Pack appropriate clothing for the expected weather",
			"Stay hydrated and use sun protection",
		}
	}
}
