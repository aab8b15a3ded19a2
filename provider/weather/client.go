// Package weather wraps the OpenWeather geocoding and 5-day forecast APIs and
// normalizes sub-daily forecast samples into one record per calendar day.
package weather

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/tripweave/tripweave/utils/request"
)

const (
	_defaultBaseURL = "https://api.openweathermap.org"
	_geocodePath    = "/geo/1.0/direct"
	_forecastPath   = "/data/2.5/forecast"
)

var ErrLocationNotFound = errors.New("location not found")

// Client calls OpenWeather. The API key is injected at construction; the
// client never consults the environment.
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
		return nil, errors.New("missing OpenWeather API key")
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

type geocodeEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocode resolves a location name to coordinates, taking the provider's best
// match.
func (c *Client) Geocode(ctx context.Context, location string) (lat, lon float64, err error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("limit", "1")
	params.Set("appid", c.apiKey)

	var entries []geocodeEntry
	if err := request.Get(ctx, c.httpClient, c.baseURL+_geocodePath, params, &entries); err != nil {
		return 0, 0, errors.Wrap(err, "geocoding failed")
	}
	if len(entries) == 0 {
		return 0, 0, ErrLocationNotFound
	}
	return entries[0].Lat, entries[0].Lon, nil
}

type forecastResponse struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
}

// Forecast fetches the 5-day/3-hour forecast for the coordinates and returns
// the resolved city name plus the raw samples in provider order.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (string, []Sample, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	var resp forecastResponse
	if err := request.Get(ctx, c.httpClient, c.baseURL+_forecastPath, params, &resp); err != nil {
		return "", nil, errors.Wrap(err, "forecast failed")
	}

	samples := make([]Sample, 0, len(resp.List))
	for _, item := range resp.List {
		s := Sample{
			Time:      time.Unix(item.Dt, 0).UTC(),
			Temp:      item.Main.Temp,
			Humidity:  item.Main.Humidity,
			WindSpeed: item.Wind.Speed,
			// the 3-hour accumulation is the only rain field this endpoint returns
			Precipitation: item.Rain["3h"],
		}
		if len(item.Weather) > 0 {
			s.Condition = item.Weather[0].Main
			s.Description = item.Weather[0].Description
			s.Icon = item.Weather[0].Icon
		}
		samples = append(samples, s)
	}
	return resp.City.Name, samples, nil
}
