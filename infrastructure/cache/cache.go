// ABOUTME: Cache backend selection from configuration
// ABOUTME: Builds the redis cache when configured and falls back to memory when redis is unreachable

package cache

import (
	"time"

	"pricewatch-api/core/interfaces"
	"pricewatch-api/infrastructure/cache/memory"
	"pricewatch-api/infrastructure/cache/redis"
	"pricewatch-api/pkg/config"
)

// Closer is implemented by backends holding a connection
type Closer interface {
	Close() error
}

// New returns the cache backend named by cfg.Type. A redis backend that
// cannot be reached is logged and replaced with the memory backend.
// logger may be nil.
func New(cfg config.CacheConfig, logger interfaces.Logger) interfaces.Cache {
	if cfg.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logInfo(logger, "Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache
		}
		if logger != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	expiration := time.Duration(cfg.Memory.DefaultExpiration) * time.Second
	logInfo(logger, "Using memory cache", map[string]interface{}{
		"default_expiration": expiration.String(),
	})
	return memory.NewMemoryCache(expiration, memory.DefaultCleanupInterval)
}

func logInfo(logger interfaces.Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		logger.Info(msg, fields)
	}
}
