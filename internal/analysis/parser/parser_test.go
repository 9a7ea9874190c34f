package parser

import (
	"testing"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want docModel.Finding
	}{
		{
			name: "Structured_Concern",
			raw: "Is Concern: true\n" +
				"Category: [EXCLUSION]\n" +
				"Severity: [High]\n" +
				"Summary: Pre-existing conditions are excluded from coverage entirely.\n" +
				"Recommendation: Review the exclusion list with your broker before renewal.",
			want: docModel.Finding{
				IsConcern:      true,
				Category:       docModel.CategoryExclusion,
				Severity:       docModel.SeverityHigh,
				Summary:        "Pre-existing conditions are excluded from coverage entirely.",
				Recommendation: "Review the exclusion list with your broker before renewal.",
			},
		},
		{
			name: "No_Concern_Ignores_Other_Fields",
			raw:  "Is Concern: false\nCategory: EXCLUSION\nSeverity: HIGH",
			want: docModel.NewFinding(),
		},
		{
			name: "Reasoning_Tags_Stripped",
			raw:  "<think>Is Concern: true, wait, no, this clause is standard</think>Is Concern: false",
			want: docModel.NewFinding(),
		},
		{
			name: "Category_Spelled_With_Spaces",
			raw:  "Is Concern: true\nCategory: this is a waiting period restriction\nSeverity: Medium",
			want: docModel.Finding{
				IsConcern: true,
				Category:  docModel.CategoryWaitingPeriod,
				Severity:  docModel.SeverityMedium,
				Summary:   docModel.DefaultSummary,
			},
		},
		{
			name: "Fallback_Prose_Summary",
			raw:  "Is Concern: true\nThe policy imposes a 24 month waiting period on major dental work",
			want: docModel.Finding{
				IsConcern: true,
				Category:  docModel.CategoryUncategorized,
				Severity:  docModel.SeverityUnknown,
				Summary:   "The policy imposes a 24 month waiting period on major dental work",
			},
		},
		{
			name: "Case_Insensitive_Keys_And_Values",
			raw:  "is concern: TRUE\nseverity: LOW\nsummary: Coinsurance of 30 percent applies to out of network care.",
			want: docModel.Finding{
				IsConcern: true,
				Category:  docModel.CategoryUncategorized,
				Severity:  docModel.SeverityLow,
				Summary:   "Coinsurance of 30 percent applies to out of network care.",
			},
		},
		{
			name: "Filler_Line_Never_Becomes_Summary",
			raw:  "Sure, I can help with that!\nIs Concern: true\nCategory: DEDUCTIBLE\nSeverity: high",
			want: docModel.Finding{
				IsConcern: true,
				Category:  docModel.CategoryDeductible,
				Severity:  docModel.SeverityHigh,
				Summary:   docModel.DefaultSummary,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got.IsConcern != tt.want.IsConcern {
				t.Errorf("IsConcern got %v, want %v", got.IsConcern, tt.want.IsConcern)
			}
			if got.Category != tt.want.Category {
				t.Errorf("Category got %s, want %s", got.Category, tt.want.Category)
			}
			if got.Severity != tt.want.Severity {
				t.Errorf("Severity got %s, want %s", got.Severity, tt.want.Severity)
			}
			if got.Summary != tt.want.Summary {
				t.Errorf("Summary got %q, want %q", got.Summary, tt.want.Summary)
			}
			if got.Recommendation != tt.want.Recommendation {
				t.Errorf("Recommendation got %q, want %q", got.Recommendation, tt.want.Recommendation)
			}
		})
	}
}

func TestParse_EmptyAfterCleaning(t *testing.T) {
	for _, raw := range []string{"", "   \n\n  ", "<think>pure reasoning, nothing else</think>"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Expected error for unusable input %q", raw)
		}
	}
}
