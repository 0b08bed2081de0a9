package cache

import (
	"fmt"
	"io"

	"github.com/crown/backend/internal/domain/marketing"
	"github.com/crown/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// CopyCache is a marketing.CopyCache that owns resources
type CopyCache interface {
	marketing.CopyCache
	io.Closer
}

// CopyCacheFactory creates copy caches based on configuration
type CopyCacheFactory struct {
	redisConfig           config.RedisConfig
	cacheConfig           config.CopyCacheConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// CopyCacheFactoryOption is a functional option for configuring the factory
type CopyCacheFactoryOption func(*CopyCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) CopyCacheFactoryOption {
	return func(f *CopyCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to memory.
// Fallback is allowed by default.
func WithInMemoryFallback(allow bool) CopyCacheFactoryOption {
	return func(f *CopyCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewCopyCacheFactory creates a new factory
func NewCopyCacheFactory(redisCfg config.RedisConfig, cacheCfg config.CopyCacheConfig, opts ...CopyCacheFactoryOption) *CopyCacheFactory {
	f := &CopyCacheFactory{
		redisConfig:           redisCfg,
		cacheConfig:           cacheCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed copy cache
func (f *CopyCacheFactory) CreateRedisCache() (CopyCache, error) {
	c, err := NewRedisCopyCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}, f.redisConfig.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis copy cache: %w", err)
	}
	return c, nil
}

// CreateInMemoryCache creates an in-memory copy cache
func (f *CopyCacheFactory) CreateInMemoryCache() CopyCache {
	return NewInMemoryCopyCache(f.cacheConfig.CleanupInterval)
}

// CreateCache picks Redis when it is enabled and reachable, memory otherwise
func (f *CopyCacheFactory) CreateCache() (CopyCache, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-memory copy cache")
		return f.CreateInMemoryCache(), nil
	}

	c, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis copy cache", zap.String("addr", f.redisConfig.Addr()))
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required for copy cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory copy cache", zap.Error(err))
	return f.CreateInMemoryCache(), nil
}
