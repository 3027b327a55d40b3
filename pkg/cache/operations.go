package cache

import (
	"context"
	"encoding/json"
	"time"

	"homeinsight-listings/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisCache stores JSON values in Redis.
type RedisCache struct {
	client *redis.Client
}

var _ CacheOperations = (*RedisCache)(nil)

// NewRedisCache wraps client. A nil client falls back to RedisClient.
func NewRedisCache(client *redis.Client) *RedisCache {
	if client == nil {
		client = RedisClient
	}
	return &RedisCache{client: client}
}

// store a value in the cache with the given key and expiration time.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.client == nil {
		return NewCacheError("set", ErrNotInitialized, true)
	}
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		IncrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, false)
	}
	err = c.client.Set(ctx, key, data, expiration).Err()
	RecordOperationDuration("set", time.Since(start).Seconds())
	if err != nil {
		IncrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// retrieve a value and unmarshal it into dest. A missing key is a CacheError
// wrapping redis.Nil; see IsMiss.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return NewCacheError("get", ErrNotInitialized, true)
	}
	start := time.Now()
	val, err := c.client.Get(ctx, key).Result()
	RecordOperationDuration("get", time.Since(start).Seconds())
	if err == redis.Nil {
		return NewCacheError("get", err, false)
	}
	if err != nil {
		IncrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, true)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		IncrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// remove a key from the cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return NewCacheError("delete", ErrNotInitialized, true)
	}
	start := time.Now()
	err := c.client.Del(ctx, key).Err()
	RecordOperationDuration("delete", time.Since(start).Seconds())
	if err != nil {
		IncrementError("delete")
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", err, true)
	}
	return nil
}

// check if a key exists in the cache.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, NewCacheError("exists", ErrNotInitialized, true)
	}
	start := time.Now()
	count, err := c.client.Exists(ctx, key).Result()
	RecordOperationDuration("exists", time.Since(start).Seconds())
	if err != nil {
		IncrementError("exists")
		logger.GlobalLogger.Errorf("failed to check existence of key %s: %v", key, err)
		return false, NewCacheError("exists", err, true)
	}
	return count > 0, nil
}
