package store

import (
	"context"
	"sync"

	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

type InMemoryFindingStore struct {
	findingMutex *sync.RWMutex
	findingMap   map[string][]docModel.StoredFinding
	findingById  map[string]docModel.StoredFinding
}

func InitInMemoryFindingStore() *InMemoryFindingStore {
	return &InMemoryFindingStore{
		findingMutex: new(sync.RWMutex),
		findingMap:   make(map[string][]docModel.StoredFinding),
		findingById:  make(map[string]docModel.StoredFinding),
	}
}

func (store *InMemoryFindingStore) SaveFinding(ctx context.Context, docId string, finding docModel.StoredFinding) error {
	store.findingMutex.Lock()
	defer store.findingMutex.Unlock()
	store.findingMap[docId] = append(store.findingMap[docId], finding)
	store.findingById[finding.Id] = finding
	return nil
}

func (store *InMemoryFindingStore) GetFindings(ctx context.Context, docId string) ([]docModel.StoredFinding, error) {
	store.findingMutex.RLock()
	stored := store.findingMap[docId]
	findings := make([]docModel.StoredFinding, len(stored))
	copy(findings, stored)
	store.findingMutex.RUnlock()

	return SortFindings(DedupFindings(findings)), nil
}

func (store *InMemoryFindingStore) GetFinding(ctx context.Context, findingId string) (docModel.StoredFinding, bool, error) {
	store.findingMutex.RLock()
	defer store.findingMutex.RUnlock()
	finding, found := store.findingById[findingId]
	return finding, found, nil
}

func (store *InMemoryFindingStore) CountFindings(ctx context.Context, docId string) (int, error) {
	findings, err := store.GetFindings(ctx, docId)
	if err != nil {
		return 0, err
	}
	return len(findings), nil
}

func (store *InMemoryFindingStore) DeleteFindings(ctx context.Context, docId string) error {
	store.findingMutex.Lock()
	defer store.findingMutex.Unlock()
	for _, finding := range store.findingMap[docId] {
		delete(store.findingById, finding.Id)
	}
	delete(store.findingMap, docId)
	return nil
}
