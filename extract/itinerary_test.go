package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryDayMarkers(t *testing.T) {
	t.Parallel()

	text := "Day 1: 9:00 Visit the Museum - Explore ancient artifacts\n9:00 AM Lunch at Cafe Nile"
	days := Itinerary(text)
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 2)

	first := days[0].Activities[0]
	assert.Equal(t, "Visit the Museum", first.Name)
	assert.Equal(t, "Explore ancient artifacts", first.Description)
	assert.Equal(t, "2-3 hours", first.Duration)
	assert.Contains(t, first.Location, "Museum")

	second := days[0].Activities[1]
	assert.Equal(t, "Lunch at Cafe Nile", second.Name)
	assert.Equal(t, "1-2 hours", second.Duration)
	assert.Equal(t, "Cafe Nile", second.Location)
}

func TestItineraryDayContiguity(t *testing.T) {
	t.Parallel()

	text := `Day 1: 9:00 - Morning walk through the old town
Day 2: 10:00 - Tour of the castle grounds
Day 3: 12:00 - Lunch at the harbor market`

	days := Itinerary(text)
	require.Len(t, days, 3)
	// one entry per marker in source order, never reordered or deduplicated
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Date.After(days[i-1].Date))
	}
}

func TestItinerarySingleDayFallback(t *testing.T) {
	t.Parallel()

	text := "10:00 Walking tour of the historic center\nVisit the local food market in the afternoon"
	days := Itinerary(text)
	require.Len(t, days, 1)
	assert.NotEmpty(t, days[0].Activities)
}

func TestItineraryPlaceholderWhenNothingExtractable(t *testing.T) {
	t.Parallel()

	days := Itinerary("enjoy!")
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	placeholder := days[0].Activities[0]
	assert.Equal(t, "Explore destination", placeholder.Name)
	assert.Equal(t, "Full day", placeholder.Duration)
	assert.Equal(t, "Various locations", placeholder.Location)
}

func TestItineraryNeverFails(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Itinerary(""))
	assert.NotEmpty(t, Itinerary(strings.Repeat("-", 50)))
}

func TestActivitiesSkipsDayPartHeadings(t *testing.T) {
	t.Parallel()

	activities := Activities("Morning: relax at the hotel before heading out")
	assert.Empty(t, activities, "day-part headings are structure, not activities")
}

func TestActivitiesUntimedLines(t *testing.T) {
	t.Parallel()

	activities := Activities("Explore the Grand Bazaar and nearby shops")
	require.Len(t, activities, 1)
	assert.Equal(t, "1-2 hours", activities[0].Duration)
	assert.Equal(t, "Explore the Grand Bazaar and nearby shops", activities[0].Description)
}

func TestLocation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Central Park", Location("A stroll at Central Park, then coffee"))
	assert.Equal(t, "Location TBD", Location("a quiet rest before dinner"))
}

func TestEstimateDuration(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"guided tour of the palace": "2-3 hours",
		"dinner by the river":       "1-2 hours",
		"souvenir shopping":         "1-3 hours",
		"evening stroll":            "30-60 minutes",
		"free time":                 "1-2 hours",
	}
	for description, want := range cases {
		assert.Equal(t, want, estimateDuration(description), description)
	}
}
