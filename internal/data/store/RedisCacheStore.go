package store

import (
	"context"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/data/redisStore"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

// RedisCacheStore holds the content-addressed analysis memo and the span
// cache. Keys carry their own prefixes, the store does not care.
type RedisCacheStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisCacheStore(ctx context.Context) *RedisCacheStore {
	base := redisStore.GetRedisStore(ctx, config.RedisCacheStore)
	if base == nil {
		return nil
	}
	return &RedisCacheStore{
		store:  base,
		logger: logger_i.NewLogger("CacheStore"),
	}
}

func (s *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.store.Get(ctx, key)
	if s.store.IsNil(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return []byte(val), true, nil
}

func (s *RedisCacheStore) Put(ctx context.Context, key string, value []byte) error {
	return s.store.Set(ctx, key, value, config.RedisCacheStoreTTL)
}

func TestCacheStore(store *redisStore.Store) *RedisCacheStore {
	return &RedisCacheStore{
		store:  store,
		logger: logger_i.NewLogger("test cache store"),
	}
}
