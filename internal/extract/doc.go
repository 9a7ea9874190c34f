package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/lu4p/cat"
)

// extractdocxTxtRtf reads .docx, .rtf and plaintext content. These formats
// carry no page geometry, so every paragraph lands on a synthetic page 1
// with an empty bounding box.
func extractdocxTxtRtf(raw []byte) ([]docModel.TextSpan, error) {
	tmp, err := os.CreateTemp("", "policy-extract-*")
	if err != nil {
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}
	tmp.Close()

	text, err := cat.File(tmp.Name())
	if err != nil {
		logger.Error("Error extracting content from doc")
		return nil, fmt.Errorf("failed to extract docx: %w", err)
	}

	var spans []docModel.TextSpan
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		spans = append(spans, docModel.TextSpan{
			Text:       trimmed,
			PageNum:    1,
			SequenceId: fmt.Sprintf("p1b%d", len(spans)),
		})
	}
	return spans, nil
}
