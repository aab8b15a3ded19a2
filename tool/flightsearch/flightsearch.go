// Package flightsearch exposes live flight search as a callable tool.
package flightsearch

import (
	"context"
	"encoding/json"

	"github.com/tripweave/tripweave/provider/flights"
	"github.com/tripweave/tripweave/tool"
)

const _defaultLimit = 5

type Tool struct {
	client *flights.Client
	limit  int
}

var _ tool.Tool = &Tool{}

type Option func(*Tool)

// WithLimit caps how many normalized offers a call returns.
func WithLimit(limit int) Option {
	return func(t *Tool) {
		t.limit = limit
	}
}

func New(client *flights.Client, opts ...Option) *Tool {
	t := &Tool{
		client: client,
		limit:  _defaultLimit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tool) Name() string {
	return "FlightSearch"
}

func (t *Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Search for flights between two airports on given dates.
Input must be json schema: ` + string(bytes) + `
Example Input: {"origin": "JFK", "destination": "CDG", "departure_date": "2026-10-01", "return_date": "2026-10-08"}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"origin": {
				Type:        tool.TypeString,
				Description: "Departure airport IATA code",
			},
			"destination": {
				Type:        tool.TypeString,
				Description: "Arrival airport IATA code",
			},
			"departure_date": {
				Type:        tool.TypeString,
				Description: "Outbound date, YYYY-MM-DD",
			},
			"return_date": {
				Type:        tool.TypeString,
				Description: "Return date, YYYY-MM-DD; omit for one-way",
			},
		},
		Required: []string{"origin", "destination", "departure_date"},
	}
}

func (t *Tool) Strict() bool {
	return true
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var params struct {
		Origin        string `json:"origin"`
		Destination   string `json:"destination"`
		DepartureDate string `json:"departure_date"`
		ReturnDate    string `json:"return_date"`
	}
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}
	if params.Origin == "" || params.Destination == "" || params.DepartureDate == "" {
		return "origin, destination and departure_date parameters are required", nil
	}

	offers, err := t.client.Search(ctx, flights.SearchParams{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
		Adults:        1,
		Class:         "economy",
	})
	if err != nil {
		return "", err
	}

	options := flights.Normalize(offers, t.limit)
	if len(options) == 0 {
		return "No flights found for this route and dates.", nil
	}

	bytes, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
