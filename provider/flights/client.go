// Package flights wraps the SerpApi Google Flights engine and maps its
// heterogeneous offer lists into the canonical flight shapes. It also owns the
// static city→airport-code lookup the flight agent depends on.
package flights

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tripweave/tripweave/utils/request"
)

const _defaultBaseURL = "https://serpapi.com/search"

// SearchParams describes one flight search. ReturnDate empty means one-way.
type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Class         string
}

// travel_class values the engine accepts.
var classCodes = map[string]string{
	"economy":  "1",
	"premium":  "2",
	"business": "3",
	"first":    "4",
}

// Client calls SerpApi. The API key is injected at construction.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the http client used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("missing SerpApi key")
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: _defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// searchResponse keeps the offer lists loosely typed; offers mix shapes and
// optional fields, so decoding happens per-offer in normalize.go.
type searchResponse struct {
	BestFlights  []map[string]interface{} `json:"best_flights"`
	OtherFlights []map[string]interface{} `json:"other_flights"`
	Error        string                   `json:"error"`
}

// Search runs one Google Flights search and returns the raw offers, best
// offers first, preserving provider relevance order.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]map[string]interface{}, error) {
	adults := p.Adults
	if adults < 1 {
		adults = 1
	}
	class, ok := classCodes[p.Class]
	if !ok {
		class = classCodes["economy"]
	}

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", p.Origin)
	params.Set("arrival_id", p.Destination)
	params.Set("outbound_date", p.DepartureDate)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("travel_class", class)
	params.Set("currency", "USD")
	params.Set("api_key", c.apiKey)
	if p.ReturnDate != "" {
		params.Set("return_date", p.ReturnDate)
	}

	var resp searchResponse
	if err := request.Get(ctx, c.httpClient, c.baseURL, params, &resp); err != nil {
		return nil, errors.Wrap(err, "flight search failed")
	}
	if resp.Error != "" {
		return nil, errors.Errorf("flight search failed: %s", resp.Error)
	}

	offers := make([]map[string]interface{}, 0, len(resp.BestFlights)+len(resp.OtherFlights))
	offers = append(offers, resp.BestFlights...)
	offers = append(offers, resp.OtherFlights...)
	return offers, nil
}
