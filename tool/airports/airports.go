// Package airports exposes the static city-to-airport lookup as a callable
// tool.
package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tripweave/tripweave/provider/flights"
	"github.com/tripweave/tripweave/tool"
)

type Tool struct{}

var _ tool.Tool = &Tool{}

func New() *Tool {
	return &Tool{}
}

func (t *Tool) Name() string {
	return "AirportLookup"
}

func (t *Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Resolve a city name to its primary airport code.
Input must be json schema: ` + string(bytes) + `
Example Input: {"city": "Paris"}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"city": {
				Type:        tool.TypeString,
				Description: "The name of the city whose airport you need",
			},
		},
		Required: []string{"city"},
	}
}

func (t *Tool) Strict() bool {
	return true
}

func (t *Tool) Call(_ context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}
	city, ok := params["city"].(string)
	if !ok || strings.TrimSpace(city) == "" {
		return "city parameter is required", nil
	}

	match, ok := flights.LookupAirport(city)
	if !ok {
		suggestions := flights.SuggestCities(city)
		return fmt.Sprintf("No airport found for %q. Did you mean: %s?",
			city, strings.Join(suggestions, ", ")), nil
	}

	bytes, err := json.Marshal(match)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
