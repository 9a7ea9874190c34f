// Package extract turns raw document bytes into ordered, positioned text
// spans. It is a collaborator boundary: the pipeline only depends on the
// Extractor interface and never on how coordinates were recovered.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

type DocType string

var (
	PDF  DocType = "PDF"
	DOCX DocType = "DOCX"
	ERR  DocType = "ERROR"
)

type Extractor interface {
	// Extract returns spans in page order, then visual order within the page.
	// Deterministic for identical bytes.
	Extract(raw []byte, docType DocType) ([]docModel.TextSpan, error)
}

func GetDocType(filename string) DocType {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx", ".txt", ".rtf":
		return DOCX
	default:
		return ERR
	}
}

// PageCount is the page of the last span; extraction emits pages in order.
func PageCount(spans []docModel.TextSpan) int {
	pages := 0
	for _, span := range spans {
		if span.PageNum > pages {
			pages = span.PageNum
		}
	}
	return pages
}

type extractor struct{}

func NewExtractor() Extractor {
	return extractor{}
}

func (extractor) Extract(raw []byte, docType DocType) ([]docModel.TextSpan, error) {
	switch docType {
	case PDF:
		return extractPDF(raw)
	case DOCX:
		return extractdocxTxtRtf(raw)
	default:
		return nil, fmt.Errorf("unsupported content type: %s", docType)
	}
}
