package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "movie-dialogue"

// RedisStore keeps entries in Redis so every API instance shares them.
// Keys embed a generation counter; Purge bumps the counter, which orphans
// all earlier entries until their TTL removes them.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisClient builds a client from a redis:// URL or a bare host:port address
func NewRedisClient(url string) (*redis.Client, error) {
	if url == "" {
		url = "localhost:6379"
	}
	if !strings.Contains(url, "://") {
		return redis.NewClient(&redis.Options{Addr: url}), nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: defaultRedisPrefix, ttl: ttl}
}

func (r *RedisStore) generationKey() string {
	return r.prefix + ":generation"
}

func (r *RedisStore) entryKey(generation int64, key string) string {
	return entryKey(r.prefix, generation, key)
}

func entryKey(prefix string, generation int64, key string) string {
	return prefix + ":" + strconv.FormatInt(generation, 10) + ":" + key
}

func (r *RedisStore) generation(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, r.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	gen, err := r.generation(ctx)
	if err != nil {
		return nil, false, err
	}
	value, err := r.client.Get(ctx, r.entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	gen, err := r.generation(ctx)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.entryKey(gen, key), value, r.ttl).Err()
}

func (r *RedisStore) Purge(ctx context.Context) error {
	return r.client.Incr(ctx, r.generationKey()).Err()
}

// Ping reports whether Redis answers, for the health checker
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
