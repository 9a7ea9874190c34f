package analysis_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/PolicyAPI/internal/analysis"
	"github.com/akolanti/PolicyAPI/internal/analysis/chunker"
	"github.com/akolanti/PolicyAPI/internal/analysis/llm"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/data/store"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/internal/extract"
)

const concernResponse = "Is Concern: true\n" +
	"Category: EXCLUSION\n" +
	"Severity: HIGH\n" +
	"Summary: Cosmetic procedures are permanently excluded from all coverage tiers.\n" +
	"Recommendation: Ask the insurer for a rider covering reconstructive procedures."

var testSpans = []docModel.TextSpan{
	{
		Text:    "This policy permanently excludes all cosmetic procedures from every coverage tier.",
		PageNum: 3,
		BBox:    [4]float64{50, 100, 500, 112},
	},
}

type testHarness struct {
	pipeline  analysis.Service
	documents *store.InMemoryDocumentStore
	findings  *store.InMemoryFindingStore
	cache     *store.InMemoryCacheStore
	queue     *MockQueue
}

func newHarness(t *testing.T, provider llm.Provider, ex extract.Extractor) *testHarness {
	t.Helper()
	ck, err := chunker.NewChunker()
	if err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}

	h := &testHarness{
		documents: store.InitInMemoryDocumentStore(),
		findings:  store.InitInMemoryFindingStore(),
		cache:     store.InitInMemoryCacheStore(),
		queue:     &MockQueue{},
	}
	h.pipeline = analysis.NewService(h.documents, h.findings, h.cache, ex, ck, provider, h.queue)
	return h
}

func testContext() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestPipeline_FullFlow(t *testing.T) {
	provider := &MockProvider{
		OnComplete: func(ctx context.Context, prompt string) (string, error) {
			return concernResponse, nil
		},
	}
	extractor := &MockExtractor{
		OnExtract: func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
			return testSpans, nil
		},
	}
	h := newHarness(t, provider, extractor)
	ctx := testContext()

	doc, err := h.pipeline.IngestDocument(ctx, "policy.pdf", []byte("raw pdf bytes"))
	if err != nil {
		t.Fatalf("IngestDocument failed: %v", err)
	}
	if doc.Status != docModel.StatusPending {
		t.Errorf("Status after ingest got %s, want %s", doc.Status, docModel.StatusPending)
	}
	if doc.TotalPages != 3 {
		t.Errorf("TotalPages got %d, want 3", doc.TotalPages)
	}

	if err := h.pipeline.AnalyzeDocument(ctx, doc.Id); err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	stored, found := h.documents.GetDocument(ctx, doc.Id)
	if !found {
		t.Fatal("Document disappeared after analysis")
	}
	if stored.Status != docModel.StatusCompleted {
		t.Errorf("Status got %s, want %s", stored.Status, docModel.StatusCompleted)
	}
	if stored.CompletedAt.IsZero() {
		t.Error("CompletedAt should be set after completion")
	}

	findings, _ := h.findings.GetFindings(ctx, doc.Id)
	if len(findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(findings))
	}
	finding := findings[0]
	if finding.Category != docModel.CategoryExclusion || finding.Severity != docModel.SeverityHigh {
		t.Errorf("Finding typed wrong: %s/%s", finding.Category, finding.Severity)
	}
	if finding.PageNum != 3 || len(finding.Coordinates) != 1 {
		t.Errorf("Finding lost provenance: page %d, %d boxes", finding.PageNum, len(finding.Coordinates))
	}
	if finding.Confidence != 1.0 {
		t.Errorf("Fully populated response should score 1.0, got %v", finding.Confidence)
	}

	tasks := h.queue.Submitted()
	if len(tasks) != 1 || tasks[0].DocumentId != doc.Id {
		t.Errorf("Expected one index task for %s, got %v", doc.Id, tasks)
	}
}

func TestPipeline_CacheShortCircuitsReanalysis(t *testing.T) {
	provider := &MockProvider{
		OnComplete: func(ctx context.Context, prompt string) (string, error) {
			return concernResponse, nil
		},
	}
	extractor := &MockExtractor{
		OnExtract: func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
			return testSpans, nil
		},
	}
	h := newHarness(t, provider, extractor)
	ctx := testContext()

	doc, err := h.pipeline.IngestDocument(ctx, "policy.pdf", []byte("same bytes"))
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if err := h.pipeline.AnalyzeDocument(ctx, doc.Id); err != nil {
		t.Fatalf("first analysis: %v", err)
	}
	firstCalls := provider.Calls()
	if firstCalls == 0 {
		t.Fatal("First analysis should call the provider")
	}

	// Same bytes again: old findings are wiped, chunks hit the analysis cache
	doc2, err := h.pipeline.IngestDocument(ctx, "policy.pdf", []byte("same bytes"))
	if err != nil {
		t.Fatalf("re-ingest: %v", err)
	}
	if doc2.Id != doc.Id {
		t.Fatalf("Identical bytes must map to the same document id")
	}
	if err := h.pipeline.AnalyzeDocument(ctx, doc2.Id); err != nil {
		t.Fatalf("second analysis: %v", err)
	}

	if provider.Calls() != firstCalls {
		t.Errorf("Cached chunks should skip the provider: %d calls before, %d after", firstCalls, provider.Calls())
	}

	findings, _ := h.findings.GetFindings(ctx, doc.Id)
	if len(findings) != 1 {
		t.Errorf("Re-analysis must not stack duplicate findings, got %d", len(findings))
	}
}

func TestPipeline_ChatAboutFinding(t *testing.T) {
	var lastPrompt string
	provider := &MockProvider{
		OnComplete: func(ctx context.Context, prompt string) (string, error) {
			lastPrompt = prompt
			if strings.Contains(prompt, "Question:") {
				return "The exclusion is absolute, no tier covers cosmetic work.", nil
			}
			return concernResponse, nil
		},
	}
	extractor := &MockExtractor{
		OnExtract: func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
			return testSpans, nil
		},
	}
	h := newHarness(t, provider, extractor)
	ctx := testContext()

	doc, _ := h.pipeline.IngestDocument(ctx, "policy.pdf", []byte("chat fixture"))
	if err := h.pipeline.AnalyzeDocument(ctx, doc.Id); err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}
	findings, _ := h.findings.GetFindings(ctx, doc.Id)
	if len(findings) != 1 {
		t.Fatalf("Need exactly 1 finding to chat about, got %d", len(findings))
	}

	answer, finding, err := h.pipeline.ChatAboutFinding(ctx, findings[0].Id, "Does any tier cover it?")
	if err != nil {
		t.Fatalf("ChatAboutFinding failed: %v", err)
	}
	if answer != "The exclusion is absolute, no tier covers cosmetic work." {
		t.Errorf("Unexpected answer: %s", answer)
	}
	if finding.Id != findings[0].Id {
		t.Errorf("Answer grounded in wrong finding: %s", finding.Id)
	}
	if !strings.Contains(lastPrompt, "Does any tier cover it?") {
		t.Error("Prompt lost the user's question")
	}
	if !strings.Contains(lastPrompt, findings[0].Summary) || !strings.Contains(lastPrompt, findings[0].TextContent) {
		t.Error("Prompt lost the finding context")
	}

	t.Run("Unknown Finding", func(t *testing.T) {
		if _, _, err := h.pipeline.ChatAboutFinding(ctx, "no-such-finding", "Hello?"); !errors.Is(err, analysis.ErrFindingNotFound) {
			t.Errorf("Expected ErrFindingNotFound, got %v", err)
		}
	})

	t.Run("No Reasoning Capability", func(t *testing.T) {
		dark := newHarness(t, nil, extractor)
		if _, _, err := dark.pipeline.ChatAboutFinding(ctx, findings[0].Id, "Hello?"); err == nil {
			t.Error("Expected chat to fail without a provider")
		}
	})
}

func TestPipeline_NoConcernLeavesNoFindings(t *testing.T) {
	provider := &MockProvider{} // defaults to "Is Concern: false"
	extractor := &MockExtractor{
		OnExtract: func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
			return testSpans, nil
		},
	}
	h := newHarness(t, provider, extractor)
	ctx := testContext()

	doc, _ := h.pipeline.IngestDocument(ctx, "policy.pdf", []byte("benign document"))
	if err := h.pipeline.AnalyzeDocument(ctx, doc.Id); err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	stored, _ := h.documents.GetDocument(ctx, doc.Id)
	if stored.Status != docModel.StatusCompleted {
		t.Errorf("Benign document should still complete, got %s", stored.Status)
	}
	if count, _ := h.findings.CountFindings(ctx, doc.Id); count != 0 {
		t.Errorf("Expected no findings, got %d", count)
	}
}

func TestPipeline_FailurePaths(t *testing.T) {
	extractor := &MockExtractor{
		OnExtract: func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
			return testSpans, nil
		},
	}

	t.Run("Unsupported_Extension", func(t *testing.T) {
		h := newHarness(t, &MockProvider{}, extractor)
		if _, err := h.pipeline.IngestDocument(testContext(), "policy.exe", []byte("x")); err == nil {
			t.Error("Expected rejection of unsupported document type")
		}
	})

	t.Run("Extraction_Error", func(t *testing.T) {
		broken := &MockExtractor{
			OnExtract: func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
				return nil, errors.New("corrupt file")
			},
		}
		h := newHarness(t, &MockProvider{}, broken)
		if _, err := h.pipeline.IngestDocument(testContext(), "policy.pdf", []byte("x")); err == nil {
			t.Error("Expected extraction failure to surface")
		}
	})

	t.Run("No_Reasoning_Capability", func(t *testing.T) {
		h := newHarness(t, nil, extractor)
		ctx := testContext()
		if h.pipeline.ReasoningAvailable() {
			t.Error("Nil provider should report reasoning unavailable")
		}

		doc, _ := h.pipeline.IngestDocument(ctx, "policy.pdf", []byte("y"))
		if err := h.pipeline.AnalyzeDocument(ctx, doc.Id); err == nil {
			t.Fatal("Expected analysis to fail without a provider")
		}
		stored, _ := h.documents.GetDocument(ctx, doc.Id)
		if stored.Status != docModel.StatusFailed {
			t.Errorf("Status got %s, want %s", stored.Status, docModel.StatusFailed)
		}
	})

	t.Run("Missing_Spans", func(t *testing.T) {
		h := newHarness(t, &MockProvider{}, extractor)
		if err := h.pipeline.AnalyzeDocument(testContext(), "no-such-document"); err == nil {
			t.Error("Expected failure when spans are not cached")
		}
	})
}
