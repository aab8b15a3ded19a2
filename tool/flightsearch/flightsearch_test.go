package flightsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripweave/tripweave/provider/flights"
	"github.com/tripweave/tripweave/schema"
)

func testClient(t *testing.T, payload string) *flights.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	client, err := flights.NewClient("test-key", flights.WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestCall(t *testing.T) {
	t.Parallel()

	client := testClient(t, `{"best_flights": [{"price": 650, "airline": "Air France"}]}`)
	tool := New(client)

	result, err := tool.Call(context.Background(),
		`{"origin": "JFK", "destination": "CDG", "departure_date": "2026-10-01"}`)
	require.NoError(t, err)

	var options []schema.FlightOption
	require.NoError(t, json.Unmarshal([]byte(result), &options))
	require.Len(t, options, 1)
	assert.Equal(t, 650.0, options[0].Price.Amount)
	assert.Equal(t, "Air France", options[0].Airline)
}

func TestCallNoFlights(t *testing.T) {
	t.Parallel()

	tool := New(testClient(t, `{}`))
	result, err := tool.Call(context.Background(),
		`{"origin": "JFK", "destination": "CDG", "departure_date": "2026-10-01"}`)
	require.NoError(t, err)
	assert.Contains(t, result, "No flights found")
}

func TestCallMissingParams(t *testing.T) {
	t.Parallel()

	tool := New(testClient(t, `{}`))
	result, err := tool.Call(context.Background(), `{"origin": "JFK"}`)
	require.NoError(t, err)
	assert.Contains(t, result, "required")
}

func TestCallLimit(t *testing.T) {
	t.Parallel()

	client := testClient(t,
		`{"best_flights": [{"price": 1}, {"price": 2}, {"price": 3}]}`)
	tool := New(client, WithLimit(2))

	result, err := tool.Call(context.Background(),
		`{"origin": "JFK", "destination": "CDG", "departure_date": "2026-10-01"}`)
	require.NoError(t, err)

	var options []schema.FlightOption
	require.NoError(t, json.Unmarshal([]byte(result), &options))
	assert.Len(t, options, 2)
}
