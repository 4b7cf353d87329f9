package ai

import (
	"fmt"
	"strings"

	"github.com/smartecommerce/insight-api/pkg/models"
)

// ParseInsights splits a raw completion into the fixed insight
// categories. Parsing is line-oriented and best-effort: headers match
// case-insensitively with markdown decoration stripped, unanswered
// categories stay empty, and nothing here ever returns an error.
func ParseInsights(text string) *models.EnrichmentResult {
	result := models.NewEnrichmentResult()

	var current models.InsightCategory
	bodies := make(map[models.InsightCategory][]string)
	matched := false

	for _, line := range strings.Split(text, "\n") {
		if category, ok := matchHeader(line); ok {
			current = category
			matched = true
			continue
		}
		if current != "" {
			bodies[current] = append(bodies[current], line)
		}
	}

	for category, lines := range bodies {
		result.Insights[category] = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	if !matched {
		result.Warnings = append(result.Warnings, "no recognizable sections in model response")
		return result
	}

	for _, category := range models.Categories() {
		if result.Insights[category] == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("missing section: %s", category))
		}
	}

	return result
}

// matchHeader reports whether a line is one of the expected section
// headers. The whole normalized line must equal a known header or alias;
// bullet text that merely mentions a header keeps belonging to the
// current section.
func matchHeader(line string) (models.InsightCategory, bool) {
	normalized := normalizeHeader(line)
	if normalized == "" {
		return "", false
	}

	for _, s := range sections {
		if normalized == s.header {
			return s.category, true
		}
		for _, alias := range s.aliases {
			if normalized == alias {
				return s.category, true
			}
		}
	}

	return "", false
}

// normalizeHeader strips markdown decoration, list numbering, and the
// trailing colon, then uppercases for case-insensitive comparison.
func normalizeHeader(line string) string {
	s := strings.TrimSpace(line)
	s = strings.Trim(s, "*_#->• \t")

	// Drop list numbering like "1." or "2)".
	if len(s) > 1 && (s[0] >= '0' && s[0] <= '9') {
		if rest, ok := strings.CutPrefix(s[1:], "."); ok {
			s = rest
		} else if rest, ok := strings.CutPrefix(s[1:], ")"); ok {
			s = rest
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":")
	s = strings.Trim(s, "*_ \t")

	return strings.ToUpper(strings.TrimSpace(s))
}
