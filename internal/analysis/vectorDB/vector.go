package vectorDB

import (
	"context"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

type DataIndexer interface {
	EnsureCollection(ctx context.Context, collectionName string) error
	UpsertChunks(ctx context.Context, collectionName string, docId string, chunks []docModel.Chunk, vectors [][]float32) error
}
