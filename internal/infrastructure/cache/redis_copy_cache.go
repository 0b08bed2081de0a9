package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crown/backend/internal/domain/marketing"
	"github.com/redis/go-redis/v9"
)

// DefaultCopyKeyPrefix namespaces copy entries in Redis
const DefaultCopyKeyPrefix = "crown:copy:"

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisCopyCache implements marketing.CopyCache on Redis so that
// several instances share generated copy
type RedisCopyCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCopyCache connects to Redis and verifies the connection
func NewRedisCopyCache(cfg RedisConfig, keyPrefix string) (*RedisCopyCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCopyCacheWithClient(client, keyPrefix), nil
}

// NewRedisCopyCacheWithClient creates a cache on an existing client
func NewRedisCopyCacheWithClient(client *redis.Client, keyPrefix string) *RedisCopyCache {
	if keyPrefix == "" {
		keyPrefix = DefaultCopyKeyPrefix
	}
	return &RedisCopyCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached text for key
func (c *RedisCopyCache) Get(ctx context.Context, key string) (string, bool, error) {
	text, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached copy: %w", err)
	}
	return text, true, nil
}

// Set stores text under key for ttl
func (c *RedisCopyCache) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, text, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache copy: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisCopyCache) Close() error {
	return c.client.Close()
}

// KeyPrefix returns the namespace used for keys
func (c *RedisCopyCache) KeyPrefix() string {
	return c.keyPrefix
}

var _ marketing.CopyCache = (*RedisCopyCache)(nil)
