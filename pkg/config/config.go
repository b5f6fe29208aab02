// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, upstream search, notifications, cache and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultSearchEndpoint is the Naver Shopping search API
const DefaultSearchEndpoint = "https://openapi.naver.com/v1/search/shop.json"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Search contains upstream search provider configuration
	Search SearchConfig

	// Notify contains the outbound notification configuration
	Notify NotifyConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per window (0 disables)
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration

	// HistoryCapacity is the number of recent searches kept
	HistoryCapacity int
}

// SearchConfig holds upstream search provider configuration
type SearchConfig struct {
	// Endpoint is the shopping search URL
	Endpoint string

	// ClientID and ClientSecret are sent as request headers on every page fetch
	ClientID     string
	ClientSecret string

	// PageTimeout bounds a single page request
	PageTimeout time.Duration

	// CacheTTL is how long a fetched page may be served from cache
	CacheTTL time.Duration
}

// HasCredentials reports whether both upstream credentials are set
func (s SearchConfig) HasCredentials() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// NotifyConfig holds the outbound notification configuration
type NotifyConfig struct {
	// WebhookURL is the Slack incoming webhook reports are posted to
	WebhookURL string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// Timeout is the overall client timeout
	Timeout time.Duration

	// MaxRetries is the number of extra attempts on 5xx or transport errors
	MaxRetries int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, receives logs through a rotating writer
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			RateLimit:       getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow:      getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
			HistoryCapacity: getEnvAsIntOrDefault("HISTORY_CAPACITY", 10),
		},
		Search: SearchConfig{
			Endpoint:     getEnvOrDefault("NAVER_SEARCH_ENDPOINT", DefaultSearchEndpoint),
			ClientID:     os.Getenv("NAVER_CLIENT_ID"),
			ClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
			PageTimeout:  getEnvAsDurationOrDefault("SEARCH_PAGE_TIMEOUT", 5*time.Second),
			CacheTTL:     getEnvAsDurationOrDefault("SEARCH_CACHE_TTL", 5*time.Minute),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		HTTP: HTTPConfig{
			Timeout:    getEnvAsDurationOrDefault("HTTP_TIMEOUT", 10*time.Second),
			MaxRetries: getEnvAsIntOrDefault("HTTP_MAX_RETRIES", 0),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   os.Getenv("LOG_FILE"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go duration strings ("5s") or plain seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
// Missing upstream credentials or webhook URL are not startup errors; the
// endpoints that need them report a configuration error per request.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HistoryCapacity < 1 {
		return errors.New("history capacity must be at least 1")
	}

	if c.Search.Endpoint == "" {
		return errors.New("search endpoint cannot be empty")
	}

	if c.Search.PageTimeout <= 0 {
		return errors.New("search page timeout must be positive")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
