package analysis_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/internal/extract"
	"github.com/akolanti/PolicyAPI/internal/indexer"
)

// MockExtractor swaps real PDF parsing for canned spans.
type MockExtractor struct {
	OnExtract func(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error)
}

func (m *MockExtractor) Extract(raw []byte, docType extract.DocType) ([]docModel.TextSpan, error) {
	if m.OnExtract != nil {
		return m.OnExtract(raw, docType)
	}
	return nil, nil
}

// MockProvider counts completions so tests can prove the cache short-circuits
// repeat analyses.
type MockProvider struct {
	OnComplete func(ctx context.Context, prompt string) (string, error)
	CallCount  int32
}

func (m *MockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.OnComplete != nil {
		return m.OnComplete(ctx, prompt)
	}
	return "Is Concern: false", nil
}

func (m *MockProvider) Calls() int32 {
	return atomic.LoadInt32(&m.CallCount)
}

// MockQueue records submitted index tasks.
type MockQueue struct {
	mu    sync.Mutex
	tasks []indexer.Task
}

func (m *MockQueue) Submit(task indexer.Task) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
	return true
}

func (m *MockQueue) Submitted() []indexer.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]indexer.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}
