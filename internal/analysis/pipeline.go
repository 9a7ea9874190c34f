package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akolanti/PolicyAPI/internal/adapter/utils"
	"github.com/akolanti/PolicyAPI/internal/analysis/chunker"
	"github.com/akolanti/PolicyAPI/internal/analysis/llm"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/internal/extract"
	"github.com/akolanti/PolicyAPI/internal/indexer"
	"github.com/akolanti/PolicyAPI/internal/metrics"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

/*
Opaque interface pattern, same as everywhere else in this codebase:

  - Service is the PUBLIC contract - what the handlers and workers may do.
  - service is the PRIVATE implementation holding the store and capability
    handles, so nothing upstream can reach around the pipeline.
  - NewService is the only way to wire it, which is also what lets the tests
    swap every collaborator for a mock.
*/

// ErrFindingNotFound signals a finding id with no persisted record behind it.
var ErrFindingNotFound = errors.New("finding not found")

// Service runs the document analysis pipeline. IngestDocument registers the
// upload and caches its spans; AnalyzeDocument is the worker-side half that
// drives pending -> analyzing -> completed|failed. ChatAboutFinding answers
// follow-up questions grounded in one persisted finding.
type Service interface {
	IngestDocument(ctx context.Context, filename string, raw []byte) (docModel.Document, error)
	AnalyzeDocument(ctx context.Context, docId string) error
	ChatAboutFinding(ctx context.Context, findingId string, question string) (string, docModel.StoredFinding, error)
	ReasoningAvailable() bool
}

type service struct {
	documents docModel.DocumentStore
	findings  docModel.FindingStore
	cache     docModel.CacheStore
	extractor extract.Extractor
	chunker   *chunker.Chunker
	analyzer  *ChunkAnalyzer
	provider  llm.Provider
	indexQ    indexer.Queue
	logger    *logger_i.Logger
}

// NewService constructor. A nil provider leaves the reasoning capability
// unavailable: ingestion still works, analysis fails the document loudly.
func NewService(
	documents docModel.DocumentStore,
	findings docModel.FindingStore,
	cache docModel.CacheStore,
	ex extract.Extractor,
	ck *chunker.Chunker,
	provider llm.Provider,
	indexQ indexer.Queue,
) Service {
	s := &service{
		documents: documents,
		findings:  findings,
		cache:     cache,
		extractor: ex,
		chunker:   ck,
		provider:  provider,
		indexQ:    indexQ,
		logger:    logger_i.NewLogger("Analysis Pipeline"),
	}
	if provider != nil {
		s.analyzer = NewChunkAnalyzer(provider, cache)
	}
	return s
}

func (s *service) ReasoningAvailable() bool {
	return s.analyzer != nil
}

// DocumentId is the sha256 of the raw bytes - identity and idempotency key in
// one. Uploading the same file twice can never duplicate a document row.
func DocumentId(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func (s *service) IngestDocument(ctx context.Context, filename string, raw []byte) (docModel.Document, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "filename", filename)

	docType := extract.GetDocType(filename)
	if docType == extract.ERR {
		return docModel.Document{}, fmt.Errorf("unsupported document type: %s", filename)
	}

	docId := DocumentId(raw)
	log = log.With("documentId", docId)

	start := time.Now()
	spans, err := s.extractor.Extract(raw, docType)
	metrics.CaptureExecutionMetrics("extraction", time.Since(start))
	if err != nil {
		log.Error("Extraction failed", "error", err)
		return docModel.Document{}, fmt.Errorf("extracting %s: %w", filename, err)
	}

	doc := docModel.Document{
		Id:         docId,
		Filename:   filename,
		TotalPages: extract.PageCount(spans),
		Status:     docModel.StatusPending,
		UploadedAt: time.Now(),
	}

	// Re-ingestion of known bytes: wipe the old findings and start over so
	// repeated analyses never stack duplicates.
	if existing, found := s.documents.GetDocument(ctx, docId); found {
		log.Warn("Document already known, resetting for re-analysis")
		doc.UploadedAt = existing.UploadedAt
		if err := s.findings.DeleteFindings(ctx, docId); err != nil {
			log.Error("Could not delete stale findings", "error", err)
		}
	}

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		log.Error("Could not save document metadata", "error", err)
		return docModel.Document{}, err
	}

	s.cacheSpans(ctx, docId, spans, log)
	return doc, nil
}

func (s *service) AnalyzeDocument(ctx context.Context, docId string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", docId)
	log.Info("Starting full analysis")

	s.setStatus(ctx, docId, docModel.StatusAnalyzing, log)

	spans, err := s.loadSpans(ctx, docId)
	if err != nil {
		return s.failDocument(ctx, docId, err, log)
	}

	chunks := s.chunker.Chunk(spans)
	log.Debug("Chunked document", "spans", len(spans), "chunks", len(chunks))

	// Index population is off the critical path: submit and move on.
	traceId, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	s.indexQ.Submit(indexer.Task{TraceId: traceId, DocumentId: docId, Chunks: chunks})

	if s.analyzer == nil {
		return s.failDocument(ctx, docId, fmt.Errorf("no reasoning capability configured"), log)
	}

	findings := s.analyzeChunks(ctx, chunks)

	saved := 0
	for i, finding := range findings {
		if finding == nil || !finding.IsConcern {
			continue
		}
		if err := s.saveFinding(ctx, docId, chunks[i], *finding); err != nil {
			log.Error("Could not persist finding", "chunkId", chunks[i].Id, "error", err)
			continue
		}
		saved++
	}

	log.Info("Analysis complete", "concerns", saved)
	s.setStatus(ctx, docId, docModel.StatusCompleted, log)
	return nil
}

// ChatAboutFinding loads the finding and hands its full context (source text,
// summary, category, severity, recommendation) to the model together with the
// user's question. The finding is the entire grounding; the document itself is
// never re-read.
func (s *service) ChatAboutFinding(ctx context.Context, findingId string, question string) (string, docModel.StoredFinding, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "findingId", findingId)

	if s.provider == nil {
		return "", docModel.StoredFinding{}, fmt.Errorf("no reasoning capability configured")
	}

	finding, found, err := s.findings.GetFinding(ctx, findingId)
	if err != nil {
		log.Error("Finding lookup failed", "error", err)
		return "", docModel.StoredFinding{}, fmt.Errorf("finding lookup: %w", err)
	}
	if !found {
		return "", docModel.StoredFinding{}, ErrFindingNotFound
	}

	prompt := fmt.Sprintf(config.FindingChatPrompt,
		finding.TextContent, finding.Summary, finding.Category, finding.Severity, finding.Recommendation, question)

	callCtx, cancel := context.WithTimeout(ctx, config.LLMCallTimeout)
	defer cancel()

	start := time.Now()
	answer, err := s.provider.Complete(callCtx, prompt)
	metrics.CaptureExecutionMetrics("finding_chat", time.Since(start))
	if err != nil {
		log.Error("Finding chat call failed", "error", err)
		return "", docModel.StoredFinding{}, err
	}

	log.Info("Answered finding question")
	return answer, finding, nil
}

// analyzeChunks fans every chunk out at once and waits for all of them. A
// chunk that fails or times out just leaves a nil slot; siblings keep going.
func (s *service) analyzeChunks(ctx context.Context, chunks []docModel.Chunk) []*docModel.Finding {
	results := make([]*docModel.Finding, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk docModel.Chunk) {
			defer wg.Done()
			metrics.IncrementChunksAnalyzed()
			results[i] = s.analyzer.Analyze(ctx, chunk)
		}(i, chunk)
	}
	wg.Wait()

	return results
}

func (s *service) saveFinding(ctx context.Context, docId string, chunk docModel.Chunk, finding docModel.Finding) error {
	return s.findings.SaveFinding(ctx, docId, docModel.StoredFinding{
		Id:             utils.GetNewUUID(),
		DocumentId:     docId,
		PageNum:        chunk.PageNum,
		Coordinates:    chunk.Coordinates,
		TextContent:    chunk.Text,
		Category:       finding.Category,
		Severity:       finding.Severity,
		Summary:        finding.Summary,
		Recommendation: finding.Recommendation,
		Confidence:     finding.Confidence,
	})
}

func (s *service) cacheSpans(ctx context.Context, docId string, spans []docModel.TextSpan, log *logger_i.Logger) {
	data, err := json.Marshal(spans)
	if err != nil {
		log.Error("Could not serialize spans", "error", err)
		return
	}
	if err := s.cache.Put(ctx, config.SpanCacheKeyPrefix+docId, data); err != nil {
		// Analysis will fail this document later when the load misses;
		// ingestion itself stays accepted.
		log.Warn("Failed to cache text spans", "error", err)
	}
}

func (s *service) loadSpans(ctx context.Context, docId string) ([]docModel.TextSpan, error) {
	value, found, err := s.cache.Get(ctx, config.SpanCacheKeyPrefix+docId)
	if err != nil {
		return nil, fmt.Errorf("span cache lookup: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("text spans not found in cache for %s", docId)
	}

	var spans []docModel.TextSpan
	if err := json.Unmarshal(value, &spans); err != nil {
		return nil, fmt.Errorf("span cache corrupt for %s: %w", docId, err)
	}
	return spans, nil
}

func (s *service) setStatus(ctx context.Context, docId string, status docModel.AnalysisStatus, log *logger_i.Logger) {
	completedAt := time.Time{}
	if status == docModel.StatusCompleted {
		completedAt = time.Now()
	}
	if err := s.documents.SetStatus(ctx, docId, status, completedAt); err != nil {
		log.Error("Could not update document status", "status", status, "error", err)
		return
	}
	log.Info("Document status updated", "status", status)
}

// failDocument marks the document failed and hands the cause back. Findings
// persisted before the failure stay queryable - they are only discarded on an
// explicit re-ingestion.
func (s *service) failDocument(ctx context.Context, docId string, err error, log *logger_i.Logger) error {
	log.Error("Analysis failed", "error", err)
	s.setStatus(ctx, docId, docModel.StatusFailed, log)
	return err
}
