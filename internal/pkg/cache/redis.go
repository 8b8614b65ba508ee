package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// RedisCache is a Redis-backed response cache
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis cache and verifies the connection
func NewRedisCache(config models.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.RedisHost, config.RedisPort),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
		PoolSize: config.RedisPoolSize,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    time.Duration(config.TTLSeconds) * time.Second,
	}, nil
}

// Get retrieves a cached value by key
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("redis cache read failed", logger.String("key", key), logger.Err(err))
		}
		return "", false
	}
	return value, true
}

// Set stores a value with the configured TTL
func (r *RedisCache) Set(ctx context.Context, key string, value string) {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		logger.Warn("redis cache write failed", logger.String("key", key), logger.Err(err))
	}
}

// Close releases the underlying connection pool
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Ping reports connection health
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
