// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with optional retries and a logging transport
// - logger/logrus: Structured logger backed by logrus with optional file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "search:page:carrier:1", pageJSON, 5*time.Minute)
//	value, err := cache.Get(ctx, "search:page:carrier:1")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// Retries are off unless requested:
//
//	client := standard.NewStandardHTTPClient(10*time.Second,
//	    standard.WithMaxRetries(2),
//	    standard.WithLogger(logger),
//	)
//	resp, err := client.Get(ctx, url, map[string]string{"X-Naver-Client-Id": id})
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := logrus.NewLogger(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Search completed", map[string]interface{}{
//	    "query": "carrier",
//	    "total": 250,
//	})
package infrastructure
