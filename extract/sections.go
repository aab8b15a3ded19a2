package extract

import (
	"regexp"
	"strings"

	"github.com/thoas/go-funk"
)

var numberedMarker = regexp.MustCompile(`\d+\.`)

// NumberedSections splits free text on numbered-list markers ("1.", "2.", ...)
// and returns each non-empty fragment as its trimmed, non-empty lines. The
// mapping of section index to meaning is strictly positional: the caller's
// category order must stay in lockstep with the prompt that enumerated the
// sections. No content-based matching is attempted.
func NumberedSections(text string) [][]string {
	fragments := numberedMarker.Split(text, -1)
	sections := make([][]string, 0, len(fragments))
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		lines := funk.FilterString(
			funk.Map(strings.Split(fragment, "\n"), strings.TrimSpace).([]string),
			func(line string) bool { return line != "" },
		)
		sections = append(sections, lines)
	}
	return sections
}

// Section returns the nth section, or an empty list when fewer sections
// exist. Sections beyond the caller's category list are silently dropped by
// never being asked for.
func Section(sections [][]string, n int) []string {
	if n < 0 || n >= len(sections) {
		return []string{}
	}
	return sections[n]
}
