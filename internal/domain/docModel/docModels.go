package docModel

import (
	"context"
	"time"
)

type AnalysisStatus string

const (
	StatusPending   AnalysisStatus = "pending"
	StatusAnalyzing AnalysisStatus = "analyzing"
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// Document identity is the sha256 of the raw bytes, so re-uploading the same
// file always lands on the same row.
type Document struct {
	Id          string         `json:"id"`
	Filename    string         `json:"filename"`
	TotalPages  int            `json:"total_pages"`
	Status      AnalysisStatus `json:"analysis_status"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	CompletedAt time.Time      `json:"analysis_completed_at,omitempty"`
}

// TextSpan is one positioned piece of extracted text. Produced once per
// document by the extractor and never mutated.
type TextSpan struct {
	Text       string     `json:"text"`
	PageNum    int        `json:"page_num"`
	BBox       [4]float64 `json:"coordinates"`
	SequenceId string     `json:"block_id"`
}

// Chunk is the unit of analysis: token bounded, provenance tagged.
type Chunk struct {
	Id          string       `json:"id"`
	Text        string       `json:"text"`
	PageNum     int          `json:"page_num"`
	Coordinates [][4]float64 `json:"coordinates"`
	TokenCount  int          `json:"token_count"`
}

type DocumentStore interface {
	GetDocument(ctx context.Context, docId string) (Document, bool)
	SaveDocument(ctx context.Context, doc Document) error
	SetStatus(ctx context.Context, docId string, status AnalysisStatus, completedAt time.Time) error
}

type FindingStore interface {
	SaveFinding(ctx context.Context, docId string, finding StoredFinding) error
	// GetFindings returns the document's findings sorted by severity rank then
	// page number, deduplicated on summary.
	GetFindings(ctx context.Context, docId string) ([]StoredFinding, error)
	// GetFinding resolves a single finding by its own id, no document needed.
	GetFinding(ctx context.Context, findingId string) (StoredFinding, bool, error)
	CountFindings(ctx context.Context, docId string) (int, error)
	DeleteFindings(ctx context.Context, docId string) error
}

// CacheStore backs both the cross-document analysis memo and the per-document
// span cache. Best effort: callers treat every error as a miss.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
