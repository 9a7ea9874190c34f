package indexer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

type mockDataIndexer struct {
	upserts chan upsertCall
	fail    bool
}

type upsertCall struct {
	collection string
	docId      string
	chunks     []docModel.Chunk
	vectors    [][]float32
}

func (m *mockDataIndexer) EnsureCollection(ctx context.Context, name string) error {
	return nil
}

func (m *mockDataIndexer) UpsertChunks(ctx context.Context, collection string, docId string, chunks []docModel.Chunk, vectors [][]float32) error {
	m.upserts <- upsertCall{collection: collection, docId: docId, chunks: chunks, vectors: vectors}
	if m.fail {
		return errors.New("index offline")
	}
	return nil
}

func testChunks() []docModel.Chunk {
	return []docModel.Chunk{
		{Id: "chunk_0", Text: "first chunk of the policy", PageNum: 1},
		{Id: "chunk_1", Text: "second chunk of the policy", PageNum: 2},
	}
}

func TestIndexer_ProcessesTaskWithFallbackVectors(t *testing.T) {
	mock := &mockDataIndexer{upserts: make(chan upsertCall, 1)}
	ix := New(nil, mock) // no embedder, fallback vectors expected

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ix.Start(ctx)

	if ok := ix.Submit(Task{TraceId: "t1", DocumentId: "doc-1", Chunks: testChunks()}); !ok {
		t.Fatal("Submit should accept the task")
	}

	select {
	case call := <-mock.upserts:
		if call.collection != config.VectorCollectionName {
			t.Errorf("Collection got %s, want %s", call.collection, config.VectorCollectionName)
		}
		if call.docId != "doc-1" || len(call.chunks) != 2 {
			t.Errorf("Unexpected upsert payload: %s, %d chunks", call.docId, len(call.chunks))
		}
		for i, vector := range call.vectors {
			if len(vector) != int(config.EmbeddingOutputDimensionality) {
				t.Errorf("Vector %d has dimension %d, want %d", i, len(vector), config.EmbeddingOutputDimensionality)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Index task was never processed")
	}
}

func TestIndexer_SurfacesFailures(t *testing.T) {
	mock := &mockDataIndexer{upserts: make(chan upsertCall, 1), fail: true}
	ix := New(nil, mock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ix.Start(ctx)

	ix.Submit(Task{DocumentId: "doc-err", Chunks: testChunks()})
	<-mock.upserts

	select {
	case err := <-ix.Errors():
		if err == nil {
			t.Fatal("Expected a non-nil error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Failure never surfaced on the error channel")
	}
}

func TestIndexer_SkipsWithoutVectorIndex(t *testing.T) {
	ix := New(nil, nil)
	if ok := ix.Submit(Task{DocumentId: "doc-x", Chunks: testChunks()}); ok {
		t.Error("Submit should report false when no vector index is wired")
	}
}
