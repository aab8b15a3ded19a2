package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thoas/go-funk"
)

// AmountCategory defines one keyword-matched amount category. A line is
// attributed to the category when it contains any keyword (case-insensitive)
// together with a currency token. Values at or below MinPlausible are treated
// as noise, e.g. a stray "$5" inside a tip.
type AmountCategory struct {
	Name         string
	Keywords     []string
	MinPlausible float64
}

var amountPattern = regexp.MustCompile(`\$([\d,]+(?:\.\d{2})?)`)

// Amounts scans free text line by line and extracts the best currency amount
// per category. When several lines match the same category the maximum value
// wins, which favors totals and headline figures over itemized sub-costs
// mentioned in prose. Categories with no plausible amount are absent from the
// result, not zero; defaulting is the caller's decision. Amounts never fails:
// unusable text yields an empty map.
func Amounts(text string, categories []AmountCategory) map[string]float64 {
	found := make(map[string]float64)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, cat := range categories {
			if !containsAny(lower, cat.Keywords) {
				continue
			}
			// one category per line, first match in declaration order wins
			value, ok := parseAmount(line)
			if ok && value > cat.MinPlausible && value > found[cat.Name] {
				found[cat.Name] = value
			}
			break
		}
	}
	return found
}

func parseAmount(line string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func containsAny(line string, keywords []string) bool {
	return funk.Contains(keywords, func(keyword string) bool {
		return strings.Contains(line, keyword)
	})
}
