package extract

import (
	"testing"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path     string
		expected DocType
	}{
		{"policy.pdf", PDF},
		{"POLICY.PDF", PDF},
		{"terms.DOCX", DOCX},
		{"notes.txt", DOCX},
		{"legacy.rtf", DOCX},
		{"image.png", ERR},
		{"no_extension", ERR},
	}

	for _, tt := range tests {
		if got := GetDocType(tt.path); got != tt.expected {
			t.Errorf("GetDocType(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestPageCount(t *testing.T) {
	spans := []docModel.TextSpan{
		{Text: "a", PageNum: 1},
		{Text: "b", PageNum: 3},
		{Text: "c", PageNum: 2},
	}
	if got := PageCount(spans); got != 3 {
		t.Errorf("PageCount = %d; want 3", got)
	}
	if got := PageCount(nil); got != 0 {
		t.Errorf("PageCount(nil) = %d; want 0", got)
	}
}
