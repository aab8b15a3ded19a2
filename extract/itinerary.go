package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tripweave/tripweave/schema"
)

var (
	dayPattern      = regexp.MustCompile(`(?i)day\s*(\d+)[:\-]?\s*`)
	timePattern     = regexp.MustCompile(`^(\d{1,2}:\d{2}(?:\s*[AaPp][Mm])?)`)
	dayPartPattern  = regexp.MustCompile(`(?i)^(morning|afternoon|evening|night)`)
	separatorSplit  = regexp.MustCompile(`[\-–—.:;]`)
	nameSplit       = regexp.MustCompile(`[\-–—.]`)
	locationPattern = regexp.MustCompile(`(?:at|in|to|visit)\s+([A-Z][a-zA-Z\s]+?)(?:[,.]|$)`)
	capitalPattern  = regexp.MustCompile(`\b[A-Z][a-zA-Z\s]{2,20}\b`)
)

// Itinerary parses free text with repeated "Day N" markers into ordered day
// plans, one entry per marker in source order. The date assigned to day N is
// today + (N - 1) days; the parser never sees the real trip start, so callers
// needing accurate dates must re-map by position, not by the date field. When
// no markers are found at all, the whole text becomes one synthetic day; when
// that day has no extractable activities either, a single generic placeholder
// is emitted. Itinerary never fails.
func Itinerary(text string) []schema.DayPlan {
	matches := dayPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return singleDayFallback(text)
	}

	days := make([]schema.DayPlan, 0, len(matches))
	for i, m := range matches {
		number, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || number == 0 {
			number = i + 1
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := text[m[1]:end]

		days = append(days, schema.DayPlan{
			Date:       dayDate(number),
			Activities: Activities(content),
		})
	}
	return days
}

// Activities pulls individual activities out of one day's worth of text.
// Lines starting with a clock time become timed activities; other lines long
// enough to carry meaning become untimed ones; everything else is ignored.
func Activities(content string) []schema.Activity {
	activities := make([]schema.Activity, 0)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := timePattern.FindString(line); m != "" {
			rest := strings.TrimLeft(line[len(m):], " \t-:")
			if rest == "" {
				continue
			}
			name, description := splitNameDescription(rest)
			// duration and location keywords may sit in the name part, so
			// infer both from the whole remainder
			activities = append(activities, schema.Activity{
				Name:        name,
				Description: description,
				Duration:    estimateDuration(rest),
				Location:    Location(rest),
				Tips:        []string{},
			})
			continue
		}

		if len(line) > 10 && !dayPartPattern.MatchString(line) {
			activities = append(activities, schema.Activity{
				Name:        firstSegment(line),
				Description: line,
				Duration:    "1-2 hours",
				Location:    Location(line),
				Tips:        []string{},
			})
		}
	}
	return activities
}

// Location guesses a place name from an activity description, preferring
// "at/in/to/visit <Name>" phrasing, then any capitalized phrase, then the
// "Location TBD" sentinel.
func Location(description string) string {
	if m := locationPattern.FindStringSubmatch(description); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := capitalPattern.FindString(description); m != "" {
		return strings.TrimSpace(m)
	}
	return "Location TBD"
}

func splitNameDescription(rest string) (string, string) {
	parts := nonEmptyTrimmed(separatorSplit.Split(rest, -1))
	name := "Activity"
	if len(parts) > 0 {
		name = parts[0]
	}
	description := rest
	if len(parts) > 1 {
		description = strings.Join(parts[1:], ". ")
	}
	return name, description
}

func firstSegment(line string) string {
	parts := nonEmptyTrimmed(nameSplit.Split(line, -1))
	if len(parts) > 0 {
		return parts[0]
	}
	return "Activity"
}

func nonEmptyTrimmed(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func estimateDuration(description string) string {
	lower := strings.ToLower(description)
	switch {
	case strings.Contains(lower, "museum") || strings.Contains(lower, "tour"):
		return "2-3 hours"
	case strings.Contains(lower, "meal") || strings.Contains(lower, "lunch") ||
		strings.Contains(lower, "dinner"):
		return "1-2 hours"
	case strings.Contains(lower, "shopping") || strings.Contains(lower, "market"):
		return "1-3 hours"
	case strings.Contains(lower, "walk") || strings.Contains(lower, "stroll"):
		return "30-60 minutes"
	}
	return "1-2 hours"
}

func singleDayFallback(text string) []schema.DayPlan {
	activities := Activities(text)
	if len(activities) == 0 {
		activities = []schema.Activity{{
			Name:        "Explore destination",
			Description: "General exploration and sightseeing",
			Duration:    "Full day",
			Location:    "Various locations",
			Tips:        []string{},
		}}
	}
	return []schema.DayPlan{{
		Date:       dayDate(1),
		Activities: activities,
	}}
}

func dayDate(number int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day()+number-1, 0, 0, 0, 0, now.Location())
}
