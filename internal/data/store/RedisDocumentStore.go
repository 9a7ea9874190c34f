package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/data/redisStore"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisDocumentStore returns nil when Redis is offline; main falls back to
// the in-memory store in that case.
func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	base := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if base == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  base,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", doc.Id)
	log.Debug("saving document")
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, doc.Id, data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("Saved document to Redis")
	}
	return err
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, docId string) (docModel.Document, bool) {
	var doc docModel.Document
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", docId)
	val, err := s.store.Get(ctx, docId)
	if s.store.IsNil(err) {
		return doc, false
	} else if err != nil {
		log.Error("Failed to read document", "error", err)
		return doc, false
	}

	if err = json.Unmarshal([]byte(val), &doc); err != nil {
		log.Error("Corrupt document record", "error", err)
		return doc, false
	}
	return doc, true
}

// SetStatus is a read-modify-write on the whole record. The only writers are
// the ingest handler and the single worker that owns the document's job, so
// there is no competing update to lose.
func (s *RedisDocumentStore) SetStatus(ctx context.Context, docId string, status docModel.AnalysisStatus, completedAt time.Time) error {
	doc, found := s.GetDocument(ctx, docId)
	if !found {
		return errors.New("document not found: " + docId)
	}
	doc.Status = status
	doc.CompletedAt = completedAt
	return s.SaveDocument(ctx, doc)
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test document store"),
	}
}
