package weather

import (
	"math"
	"time"

	"github.com/tripweave/tripweave/schema"
)

// Sample is one timestamped forecast observation, typically a 3-hour slot.
type Sample struct {
	Time          time.Time
	Temp          float64
	Condition     string
	Description   string
	Icon          string
	Humidity      float64
	WindSpeed     float64
	Precipitation float64
}

// Aggregate buckets samples by calendar date, keeps only dates within
// [start, end], and reduces each bucket to one WeatherData: min/max
// temperature rounded to whole degrees, mean humidity and wind speed, summed
// precipitation, and the dominant condition — the condition seen in the most
// samples that day, ties broken by whichever was encountered first in input
// order. Description and icon come from the first sample matching the
// dominant condition. Output is ordered by date.
func Aggregate(samples []Sample, start, end time.Time) []schema.WeatherData {
	start = dateOnly(start)
	end = dateOnly(end)

	buckets := make(map[string][]Sample)
	order := make([]string, 0)
	for _, s := range samples {
		day := dateOnly(s.Time)
		if day.Before(start) || day.After(end) {
			continue
		}
		key := day.Format("2006-01-02")
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], s)
	}

	forecast := make([]schema.WeatherData, 0, len(order))
	for _, key := range order {
		forecast = append(forecast, reduceDay(key, buckets[key]))
	}
	return forecast
}

func reduceDay(date string, samples []Sample) schema.WeatherData {
	minTemp, maxTemp := samples[0].Temp, samples[0].Temp
	var humidity, wind, rain float64
	for _, s := range samples {
		minTemp = math.Min(minTemp, s.Temp)
		maxTemp = math.Max(maxTemp, s.Temp)
		humidity += s.Humidity
		wind += s.WindSpeed
		rain += s.Precipitation
	}

	dominant := dominantCondition(samples)
	description, icon := "", "01d"
	for _, s := range samples {
		if s.Condition == dominant {
			description, icon = s.Description, s.Icon
			break
		}
	}

	n := float64(len(samples))
	return schema.WeatherData{
		Date: date,
		Temperature: schema.Temperature{
			Min:  int(math.Round(minTemp)),
			Max:  int(math.Round(maxTemp)),
			Unit: "°C",
		},
		Condition:     dominant,
		Description:   description,
		Humidity:      int(math.Round(humidity / n)),
		WindSpeed:     int(math.Round(wind / n)),
		Precipitation: rain,
		Icon:          icon,
	}
}

// dominantCondition picks the most frequent condition; on a tie the condition
// first encountered while scanning wins, so the choice is stable with respect
// to input order.
func dominantCondition(samples []Sample) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, s := range samples {
		if _, ok := firstSeen[s.Condition]; !ok {
			firstSeen[s.Condition] = i
		}
		counts[s.Condition]++
	}

	best := samples[0].Condition
	for condition, count := range counts {
		if count > counts[best] ||
			(count == counts[best] && firstSeen[condition] < firstSeen[best]) {
			best = condition
		}
	}
	return best
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
