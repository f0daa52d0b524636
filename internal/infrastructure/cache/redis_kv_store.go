package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shipdesk/backend/internal/domain/picking"
)

// RedisKVStore implements picking.KVStore using Redis.
// This is suitable for distributed deployments where multiple instances
// need to share picking progress.
type RedisKVStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisKVStore creates a new Redis-backed KV store and verifies the
// connection before returning.
func NewRedisKVStore(cfg RedisConfig) (*RedisKVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisKVStore{client: client, keyPrefix: "picking:"}, nil
}

// NewRedisKVStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisKVStoreWithClient(client *redis.Client, keyPrefix string) *RedisKVStore {
	if keyPrefix == "" {
		keyPrefix = "picking:"
	}
	return &RedisKVStore{client: client, keyPrefix: keyPrefix}
}

// Get reads a value; the second return reports whether the key existed
func (s *RedisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes a value with no expiration; progress lives until cleared
func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisKVStore) Close() error {
	return s.client.Close()
}

// Ensure RedisKVStore implements picking.KVStore
var _ picking.KVStore = (*RedisKVStore)(nil)
