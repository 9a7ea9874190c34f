package chunker

import (
	"fmt"
	"strings"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/pkoukk/tiktoken-go"
)

// Chunker folds positioned text spans into token-bounded chunks while keeping
// page numbers and bounding boxes so findings can point back into the PDF.
type Chunker struct {
	enc            *tiktoken.Tiktoken
	maxChunkTokens int
	minChunkChars  int
}

func NewChunker() (*Chunker, error) {
	enc, err := tiktoken.GetEncoding(config.TokenizerEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s encoding: %w", config.TokenizerEncoding, err)
	}
	return &Chunker{
		enc:            enc,
		maxChunkTokens: config.ChunkSizeTokens,
		minChunkChars:  config.MinChunkChars,
	}, nil
}

func (c *Chunker) CountTokens(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// Chunk walks the spans in extraction order, accumulating span texts until
// adding the next span would push the accumulator past the token budget.
// The budget check only fires once the accumulator already holds enough
// characters to stand on its own, so a single oversized span still comes out
// as one overlong chunk rather than being split mid-span.
//
// A trailing accumulator under the character minimum is dropped silently.
func (c *Chunker) Chunk(spans []docModel.TextSpan) []docModel.Chunk {
	var chunks []docModel.Chunk
	var accText string
	var accSpans []docModel.TextSpan

	for _, span := range spans {
		combined := joinSpanText(accText, span.Text)

		if c.CountTokens(combined) > c.maxChunkTokens && len(accText) >= c.minChunkChars {
			chunks = append(chunks, c.closeChunk(len(chunks), accText, accSpans))
			accText = ""
			accSpans = nil
		}

		accText = joinSpanText(accText, span.Text)
		accSpans = append(accSpans, span)
	}

	if len(accText) >= c.minChunkChars {
		chunks = append(chunks, c.closeChunk(len(chunks), accText, accSpans))
	}

	return chunks
}

func (c *Chunker) closeChunk(index int, text string, spans []docModel.TextSpan) docModel.Chunk {
	final := strings.TrimSpace(text)

	coordinates := make([][4]float64, len(spans))
	for i, s := range spans {
		coordinates[i] = s.BBox
	}

	return docModel.Chunk{
		Id:          fmt.Sprintf("chunk_%d", index),
		Text:        final,
		PageNum:     spans[0].PageNum,
		Coordinates: coordinates,
		TokenCount:  c.CountTokens(final),
	}
}

func joinSpanText(acc string, next string) string {
	if acc == "" {
		return next
	}
	return acc + " " + next
}
