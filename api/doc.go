// Package api provides the HTTP API layer for the Pricewatch service.
// It uses the Huma framework for OpenAPI documentation, request validation
// and problem+json errors, mounted on a chi router.
//
// # Layout
//
// - server.go: Huma API configuration and middleware chain
// - handlers/: operations for /search, /history and /report
// - dto/: request and response shapes plus domain mappers
// - middleware/: request logging and per-client rate limiting
//
// # Endpoints
//
// - GET /search?query=&threshold= aggregates up to ten result pages
// - GET /history lists recent searches, newest first
// - POST /history records a search explicitly
// - POST /report posts one item to the Slack webhook
// - GET /openapi.json and GET /docs are served by Huma
//
// # Usage Example
//
//	humaAPI, router, limiter := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	defer limiter.Stop()
//
//	handlers.NewSearchHandler(searchService, ledger).RegisterRoutes(humaAPI)
//	handlers.NewHistoryHandler(ledger).RegisterRoutes(humaAPI)
//	handlers.NewReportHandler(reportService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'threshold': price threshold must be an integer"
//	}
//
// Validation errors map to 400; configuration, upstream and delivery
// failures map to 500.
package api
