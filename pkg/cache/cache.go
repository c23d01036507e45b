package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is a byte-oriented response cache shared by the read services
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Purge invalidates every entry
	Purge(ctx context.Context) error
}

// Key joins the parts of a cache key with ':'
func Key(parts ...any) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return strings.Join(s, ":")
}

// Fetch returns the cached value for key, or calls load and caches its result.
// A nil store disables caching. Cache failures never fail the request; errors from load are not cached.
func Fetch[T any](ctx context.Context, store Store, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if store == nil {
		return load(ctx)
	}

	if raw, ok, err := store.Get(ctx, key); err == nil && ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err == nil {
		_ = store.Set(ctx, key, raw)
	}
	return value, nil
}

// MemoryStore is an in-process LRU with per-entry expiry
type MemoryStore struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryStore creates an LRU holding at most size entries for ttl each
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := m.lru.Get(key)
	return value, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.lru.Add(key, value)
	return nil
}

func (m *MemoryStore) Purge(_ context.Context) error {
	m.lru.Purge()
	return nil
}

// Len returns the number of live entries
func (m *MemoryStore) Len() int {
	return m.lru.Len()
}
