// Package parser turns the model's free-text analysis into a typed finding.
// The model output is the data contract here and it is not reliable: reasoning
// tags, markup, conversational filler and missing fields all show up in
// practice, so everything is validated on this side of the boundary.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

var (
	thinkTagPattern  = regexp.MustCompile(`(?is)<think>.*?</think>`)
	anyTagPattern    = regexp.MustCompile(`<[^>]+>`)
	blankRunPattern  = regexp.MustCompile(`\n\s*\n+`)
	fieldPatternByKey = map[string]*regexp.Regexp{}

	fillerPhrases = []string{
		"okay, so i need to analyze",
		"sure, i can help",
		"here is the analysis",
		"i have analyzed the text",
	}
)

const (
	keyIsConcern      = "Is Concern"
	keyCategory       = "Category"
	keySeverity       = "Severity"
	keySummary        = "Summary"
	keyRecommendation = "Recommendation"
)

func init() {
	for _, key := range []string{keyIsConcern, keyCategory, keySeverity, keySummary, keyRecommendation} {
		fieldPatternByKey[key] = regexp.MustCompile(`(?im)^` + key + `\s*:\s*(.*)$`)
	}
}

// Parse extracts a Finding from a raw completion. The error path means no
// finding could be produced at all - callers treat it the same as a chunk
// with nothing to report, never as a fatal condition.
func Parse(raw string) (docModel.Finding, error) {
	cleaned := clean(raw)
	if cleaned == "" {
		return docModel.Finding{}, errors.New("empty response after cleaning")
	}

	result := docModel.NewFinding()

	if value, ok := extractField(cleaned, keyIsConcern); ok {
		result.IsConcern = strings.Contains(strings.ToLower(value), "true")
	}

	// No concern means the remaining fields are noise, defaults stand.
	if !result.IsConcern {
		return result, nil
	}

	if value, ok := extractField(cleaned, keyCategory); ok {
		result.Category = matchCategory(value)
	}
	if value, ok := extractField(cleaned, keySeverity); ok {
		result.Severity = matchSeverity(value)
	}
	if value, ok := extractField(cleaned, keySummary); ok && value != "" {
		result.Summary = value
	}
	if value, ok := extractField(cleaned, keyRecommendation); ok && value != "" {
		result.Recommendation = value
	}

	// A flagged concern with no usable summary gets a best-effort one: the
	// first cleaned line that is not a key-value pair.
	if result.Summary == "" || result.Summary == docModel.DefaultSummary {
		if line, ok := firstProseLine(cleaned); ok {
			result.Summary = line
		}
	}

	return result, nil
}

func clean(raw string) string {
	cleaned := thinkTagPattern.ReplaceAllString(raw, "")
	cleaned = anyTagPattern.ReplaceAllString(cleaned, "")

	var kept []string
	for _, line := range strings.Split(cleaned, "\n") {
		if !isFillerLine(line) {
			kept = append(kept, line)
		}
	}
	cleaned = strings.Join(kept, "\n")

	return blankRunPattern.ReplaceAllString(strings.TrimSpace(cleaned), "\n")
}

func isFillerLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, phrase := range fillerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// extractField does an independent per-key lookup so the parser never depends
// on the order the model happened to emit the fields in.
func extractField(cleaned string, key string) (string, bool) {
	match := fieldPatternByKey[key].FindStringSubmatch(cleaned)
	if match == nil {
		return "", false
	}
	value := strings.TrimSpace(match[1])
	value = strings.ReplaceAll(value, "[", "")
	value = strings.ReplaceAll(value, "]", "")
	return strings.TrimSpace(value), true
}

func matchCategory(value string) docModel.Category {
	lower := strings.ToLower(value)
	for _, category := range docModel.KnownCategories {
		name := strings.ToLower(strings.ReplaceAll(string(category), "_", " "))
		if strings.Contains(lower, name) {
			return category
		}
	}
	return docModel.CategoryUncategorized
}

func matchSeverity(value string) docModel.Severity {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "high"):
		return docModel.SeverityHigh
	case strings.Contains(lower, "medium"):
		return docModel.SeverityMedium
	case strings.Contains(lower, "low"):
		return docModel.SeverityLow
	default:
		return docModel.SeverityUnknown
	}
}

func firstProseLine(cleaned string) (string, bool) {
	for _, line := range strings.Split(cleaned, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.Contains(trimmed, ":") {
			return trimmed, true
		}
	}
	return "", false
}
