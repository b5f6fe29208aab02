// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"pricewatch-api/api/middleware"
	"pricewatch-api/core/interfaces"
	"pricewatch-api/pkg/requestid"
)

const (
	apiTitle       = "Pricewatch API"
	apiVersion     = "1.0.0"
	apiDescription = "Aggregates Naver Shopping price results for a query, keeps a short search history and reports items to Slack"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestid.Header},
		ExposedHeaders:   []string{requestid.Header, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance without logging or rate limiting
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions()))

	// /openapi.json and /docs are registered by huma
	api := humachi.New(router, humaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured. The
// returned limiter is nil when rate limiting is disabled; callers stop it on
// shutdown.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, *middleware.RateLimiter) {
	router := chi.NewRouter()

	// CORS first so preflight requests are never rate limited
	router.Use(cors.Handler(corsOptions()))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := humachi.New(router, humaConfig())

	return api, router, limiter
}
