package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem Store")

type InMemoryDocumentStore struct {
	docMutex *sync.RWMutex
	docMap   map[string]docModel.Document
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		docMutex: new(sync.RWMutex),
		docMap:   make(map[string]docModel.Document),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	store.docMap[doc.Id] = doc
	inMemLogger.Debug(doc.Id, " : Saved document to store")
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, docId string) (docModel.Document, bool) {
	store.docMutex.RLock()
	defer store.docMutex.RUnlock()
	result, found := store.docMap[docId]
	return result, found
}

func (store *InMemoryDocumentStore) SetStatus(ctx context.Context, docId string, status docModel.AnalysisStatus, completedAt time.Time) error {
	store.docMutex.Lock()
	defer store.docMutex.Unlock()
	doc, found := store.docMap[docId]
	if !found {
		return errors.New("document not found: " + docId)
	}
	doc.Status = status
	doc.CompletedAt = completedAt
	store.docMap[docId] = doc
	return nil
}
