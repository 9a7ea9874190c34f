// Package indexer populates the vector index in the background. It is an
// explicit task queue rather than ad hoc goroutines spawned mid-request:
// the pipeline submits and moves on, failures surface on a drained error
// channel, and a document's status never depends on its index task.
package indexer

import (
	"context"
	"fmt"

	"github.com/akolanti/PolicyAPI/internal/analysis/embedding"
	"github.com/akolanti/PolicyAPI/internal/analysis/vectorDB"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

type Task struct {
	TraceId    string
	DocumentId string
	Chunks     []docModel.Chunk
}

// Queue is what the pipeline sees: submit-and-forget.
type Queue interface {
	Submit(task Task) bool
}

type Indexer struct {
	tasks    chan Task
	errs     chan error
	embedder embedding.Embedder
	vector   vectorDB.DataIndexer
	logger   *logger_i.Logger
}

func New(embedder embedding.Embedder, vector vectorDB.DataIndexer) *Indexer {
	return &Indexer{
		tasks:    make(chan Task, config.IndexQueueLimit),
		errs:     make(chan error, config.IndexQueueLimit),
		embedder: embedder,
		vector:   vector,
		logger:   logger_i.NewLogger("Indexer"),
	}
}

// Start runs the task loop until the context is cancelled. Call once.
func (ix *Indexer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				ix.logger.Info("Indexer stopped")
				return
			case task := <-ix.tasks:
				if err := ix.process(ctx, task); err != nil {
					select {
					case ix.errs <- err:
					default: //error channel full, the log line is all we get
					}
					ix.logger.Error("Index task failed", "documentId", task.DocumentId, "error", err)
				}
			}
		}
	}()
}

// Errors exposes index failures for whoever wants to watch them. Nothing in
// the analysis path blocks on this.
func (ix *Indexer) Errors() <-chan error {
	return ix.errs
}

// Submit is non-blocking. A full queue drops the task, the document still
// completes - the index just stays behind for that upload.
func (ix *Indexer) Submit(task Task) bool {
	if ix.vector == nil {
		ix.logger.Debug("Vector index unavailable, skipping task", "documentId", task.DocumentId)
		return false
	}
	select {
	case ix.tasks <- task:
		return true
	default:
		ix.logger.Warn("Index queue full, dropping task", "documentId", task.DocumentId)
		return false
	}
}

func (ix *Indexer) process(ctx context.Context, task Task) error {
	if len(task.Chunks) == 0 {
		return nil
	}

	texts := make([]string, len(task.Chunks))
	for i, chunk := range task.Chunks {
		texts[i] = chunk.Text
	}

	vectors := ix.embedTexts(ctx, texts)
	for i := range vectors {
		vectors[i] = embedding.FitDimension(vectors[i])
	}

	if err := ix.vector.UpsertChunks(ctx, config.VectorCollectionName, task.DocumentId, task.Chunks, vectors); err != nil {
		return fmt.Errorf("upserting document %s: %w", task.DocumentId, err)
	}
	ix.logger.Info("Indexed document chunks", "documentId", task.DocumentId, "chunks", len(task.Chunks))
	return nil
}

// embedTexts falls back to deterministic hash vectors when the embedding
// capability is missing or failing, so the index keeps receiving points.
func (ix *Indexer) embedTexts(ctx context.Context, texts []string) [][]float32 {
	if ix.embedder != nil {
		vectors, err := ix.embedder.BatchEmbedding(ctx, texts)
		if err == nil && len(vectors) == len(texts) {
			return vectors
		}
		ix.logger.Warn("Batch embedding failed, using fallback vectors", "error", err)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = embedding.FallbackEmbedding(text)
	}
	return vectors
}
