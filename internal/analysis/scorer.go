package analysis

import "github.com/akolanti/PolicyAPI/internal/domain/docModel"

// ScoreConfidence derives a quality score for a finding from how much of the
// structured response the model actually filled in. Pure and deterministic.
func ScoreConfidence(finding docModel.Finding) float64 {
	score := 0.5

	if finding.Category != docModel.CategoryUncategorized {
		score += 0.2
	}

	switch finding.Severity {
	case docModel.SeverityHigh, docModel.SeverityMedium, docModel.SeverityLow:
		score += 0.1
	}

	if len(finding.Summary) > 20 && finding.Summary != docModel.DefaultSummary {
		score += 0.1
	}

	if len(finding.Recommendation) > 10 {
		score += 0.1
	}

	return min(1.0, max(0.0, score))
}
