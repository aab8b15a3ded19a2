package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient("")
	assert.Error(t, err)
}

func TestGeocode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
		assert.Equal(t, "Cairo", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(`[{"lat": 30.04, "lon": 31.24}]`))
	}))
	defer server.Close()

	c, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	lat, lon, err := c.Geocode(context.Background(), "Cairo")
	require.NoError(t, err)
	assert.Equal(t, 30.04, lat)
	assert.Equal(t, 31.24, lon)
}

func TestGeocodeNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, _, err = c.Geocode(context.Background(), "Nowhereville")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestForecast(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{
			"city": {"name": "Cairo"},
			"list": [
				{
					"dt": 1790812800,
					"main": {"temp": 24.5, "humidity": 40},
					"weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}],
					"wind": {"speed": 5.2},
					"rain": {"3h": 0.4}
				},
				{
					"dt": 1790823600,
					"main": {"temp": 29.1, "humidity": 35},
					"weather": [],
					"wind": {"speed": 3.0}
				}
			]
		}`))
	}))
	defer server.Close()

	c, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	city, samples, err := c.Forecast(context.Background(), 30.04, 31.24)
	require.NoError(t, err)
	assert.Equal(t, "Cairo", city)
	require.Len(t, samples, 2)

	assert.Equal(t, 24.5, samples[0].Temp)
	assert.Equal(t, "Clear", samples[0].Condition)
	assert.Equal(t, "clear sky", samples[0].Description)
	assert.Equal(t, 0.4, samples[0].Precipitation)

	// missing weather array leaves condition fields empty, not panicking
	assert.Empty(t, samples[1].Condition)
	assert.Zero(t, samples[1].Precipitation)
}

func TestForecastServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	c, err := NewClient("bad-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, _, err = c.Forecast(context.Background(), 0, 0)
	assert.Error(t, err)
}
