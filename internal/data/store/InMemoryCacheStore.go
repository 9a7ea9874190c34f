package store

import (
	"context"
	"sync"
)

type InMemoryCacheStore struct {
	cacheMutex *sync.RWMutex
	cacheMap   map[string][]byte
}

func InitInMemoryCacheStore() *InMemoryCacheStore {
	return &InMemoryCacheStore{
		cacheMutex: new(sync.RWMutex),
		cacheMap:   make(map[string][]byte),
	}
}

func (store *InMemoryCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	store.cacheMutex.RLock()
	defer store.cacheMutex.RUnlock()
	value, found := store.cacheMap[key]
	return value, found, nil
}

func (store *InMemoryCacheStore) Put(ctx context.Context, key string, value []byte) error {
	store.cacheMutex.Lock()
	defer store.cacheMutex.Unlock()
	store.cacheMap[key] = value
	return nil
}
