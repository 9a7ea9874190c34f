package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
)

var logger = logger_i.NewLogger("Extraction")

func extractPDF(raw []byte) ([]docModel.TextSpan, error) {
	f, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		logger.Error("failed opening of pdf bytes")
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var spans []docModel.TextSpan
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Log warning but continue with other pages
			logger.Error("Error parsing page content", "Error", err)
			continue
		}

		spans = append(spans, pageSpans(content, i, len(spans))...)
	}
	return spans, nil
}

// pageSpans folds the per-glyph draw operations into line level spans.
// Fragments sharing a baseline merge into one span whose bbox covers the
// whole line.
func pageSpans(content pdf.Content, pageNum int, offset int) []docModel.TextSpan {
	var spans []docModel.TextSpan

	var lineText strings.Builder
	var x0, y0, x1, y1 float64
	flush := func() {
		text := strings.TrimSpace(lineText.String())
		if text != "" {
			spans = append(spans, docModel.TextSpan{
				Text:       text,
				PageNum:    pageNum,
				BBox:       [4]float64{x0, y0, x1, y1},
				SequenceId: fmt.Sprintf("p%db%d", pageNum, offset+len(spans)),
			})
		}
		lineText.Reset()
	}

	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		sameLine := lineText.Len() > 0 && t.Y == y0
		if !sameLine {
			flush()
			x0, y0 = t.X, t.Y
			x1 = t.X + t.W
			y1 = t.Y + t.FontSize
		}
		lineText.WriteString(t.S)
		if t.X+t.W > x1 {
			x1 = t.X + t.W
		}
	}
	flush()

	return spans
}

// protectExtract guards against malformed pages that make the parser hang.
func protectExtract(page pdf.Page) (pdf.Content, error) {
	type result struct {
		content pdf.Content
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{pdf.Content{}, fmt.Errorf("page content panic: %v", r)}
			}
		}()
		resChan <- result{page.Content(), nil}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		logger.Error("pageExtract", "timeout")
		return pdf.Content{}, errors.New("timeout")
	}
}
