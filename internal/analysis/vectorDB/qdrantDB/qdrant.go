package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/akolanti/PolicyAPI/internal/adapter/utils"
	"github.com/akolanti/PolicyAPI/internal/analysis/vectorDB"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

var dimension = uint64(config.EmbeddingOutputDimensionality)

type ClientHolder struct {
	QObj   *qdrant.Client
	logger *logger_i.Logger
}

// NewQdrantIndexer connects and makes sure the chunk collection exists.
// Returns nil when the index is unreachable - indexing is off the critical
// path, so the pipeline keeps going without it.
func NewQdrantIndexer(ctx context.Context) vectorDB.DataIndexer {
	logger := logger_i.NewLogger("Qdrant")

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	holder := &ClientHolder{QObj: client, logger: logger}
	if err := holder.EnsureCollection(ctx, config.VectorCollectionName); err != nil {
		logger.Error("could not create collection: ", "collectionName", config.VectorCollectionName, "error:", err)
		return nil
	}

	go closeQdrant(ctx, holder)
	return holder
}

func closeQdrant(ctx context.Context, holder *ClientHolder) {
	<-ctx.Done()
	holder.logger.Info("Shutting down Qdrant")
	if err := holder.QObj.Close(); err != nil {
		holder.logger.Error("could not close Qdrant: ", "error:", err)
	}
	holder.logger.Info("Closed Qdrant")
}

func (db *ClientHolder) EnsureCollection(ctx context.Context, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := db.QObj.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return db.QObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}

func (db *ClientHolder) UpsertChunks(ctx context.Context, collectionName string, docId string, chunks []docModel.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		qdrantPoints[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(utils.GetNewUUID()),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"content":       chunk.Text,
				"page_num":      chunk.PageNum,
				"source_doc_id": docId,
				"chunk_id":      chunk.Id,
				"token_count":   chunk.TokenCount,
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}
	return nil
}
