package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAirportExact(t *testing.T) {
	t.Parallel()

	match, ok := LookupAirport("Paris")
	require.True(t, ok)
	assert.Equal(t, "CDG", match.Code)
	assert.Equal(t, ConfidenceHigh, match.Confidence)
}

func TestLookupAirportAlias(t *testing.T) {
	t.Parallel()

	// alias resolution runs before substring matching, so NYC is a
	// high-confidence hit, not a fuzzy one
	match, ok := LookupAirport("NYC")
	require.True(t, ok)
	assert.Equal(t, "JFK", match.Code)
	assert.Equal(t, "new york", match.MatchedCity)
	assert.Equal(t, ConfidenceHigh, match.Confidence)
}

func TestLookupAirportSubstring(t *testing.T) {
	t.Parallel()

	match, ok := LookupAirport("york")
	require.True(t, ok)
	assert.Equal(t, "JFK", match.Code)
	assert.Equal(t, ConfidenceMedium, match.Confidence)
}

func TestLookupAirportGuess(t *testing.T) {
	t.Parallel()

	match, ok := LookupAirport("Zanzibar City")
	require.True(t, ok)
	assert.Equal(t, "ZAN", match.Code)
	assert.Equal(t, ConfidenceLow, match.Confidence)
	assert.Equal(t, "Unknown", match.Country)
}

func TestLookupAirportTooShort(t *testing.T) {
	t.Parallel()

	_, ok := LookupAirport("xy")
	assert.False(t, ok)
}

func TestLookupAirportDeterministic(t *testing.T) {
	t.Parallel()

	first, ok := LookupAirport("san")
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		match, ok := LookupAirport("san")
		require.True(t, ok)
		assert.Equal(t, first.Code, match.Code)
	}
}

func TestSuggestCities(t *testing.T) {
	t.Parallel()

	suggestions := SuggestCities("m")
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 5)
	for _, s := range suggestions {
		assert.Equal(t, byte('m'), s[0])
	}

	assert.Equal(t, []string{"new york", "london", "paris", "tokyo", "sydney"},
		SuggestCities("qqq"))
}
