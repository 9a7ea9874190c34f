package analysis

import (
	"math"
	"testing"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name    string
		finding docModel.Finding
		want    float64
	}{
		{
			name:    "Bare_Defaults",
			finding: docModel.NewFinding(),
			want:    0.5,
		},
		{
			name: "Fully_Populated",
			finding: docModel.Finding{
				IsConcern:      true,
				Category:       docModel.CategoryExclusion,
				Severity:       docModel.SeverityHigh,
				Summary:        "Cosmetic procedures are permanently excluded from all tiers.",
				Recommendation: "Ask the insurer about a reconstructive rider.",
			},
			want: 1.0,
		},
		{
			name: "Category_Only",
			finding: docModel.Finding{
				IsConcern: true,
				Category:  docModel.CategoryDeductible,
				Severity:  docModel.SeverityUnknown,
				Summary:   docModel.DefaultSummary,
			},
			want: 0.7,
		},
		{
			name: "Short_Summary_Not_Counted",
			finding: docModel.Finding{
				IsConcern:      true,
				Category:       docModel.CategoryLimitation,
				Severity:       docModel.SeverityMedium,
				Summary:        "Too short.",
				Recommendation: "no",
			},
			want: 0.8,
		},
		{
			name: "Default_Summary_Not_Counted_Even_When_Long",
			finding: docModel.Finding{
				IsConcern: true,
				Category:  docModel.CategoryUncategorized,
				Severity:  docModel.SeverityLow,
				Summary:   docModel.DefaultSummary,
			},
			want: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreConfidence(tt.finding)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScoreConfidence got %v, want %v", got, tt.want)
			}
		})
	}
}
