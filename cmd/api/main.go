// ABOUTME: Main entry point for the Pricewatch API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"pricewatch-api/api"
	"pricewatch-api/api/handlers"
	"pricewatch-api/core/history"
	"pricewatch-api/core/interfaces"
	"pricewatch-api/core/report"
	"pricewatch-api/core/search"
	"pricewatch-api/infrastructure/cache"
	stdhttp "pricewatch-api/infrastructure/http/standard"
	logruslogger "pricewatch-api/infrastructure/logger/logrus"
	"pricewatch-api/pkg/config"
	"pricewatch-api/pkg/featureflags"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Pricewatch API stopped: %v", err)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. Deferred cleanup
// runs on both paths before it returns.
func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logruslogger.NewLogger(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	logger.Info("Starting Pricewatch API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"cache_type":       cfg.Cache.Type,
		"history_capacity": cfg.Server.HistoryCapacity,
		"flags":            flags.GetAllFlags(),
	})

	if !cfg.Search.HasCredentials() {
		logger.Warn("Search credentials are not set, /search will fail", nil)
	}
	if cfg.Notify.WebhookURL == "" {
		logger.Warn("Slack webhook is not set, /report will fail", nil)
	}

	pageCache := cache.New(cfg.Cache, logger)
	if closer, ok := pageCache.(cache.Closer); ok {
		defer closer.Close()
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.HTTP.Timeout,
		stdhttp.WithMaxRetries(cfg.HTTP.MaxRetries),
		stdhttp.WithLogger(logger),
	)

	deps := interfaces.Dependencies{
		Cache:      pageCache,
		HTTPClient: httpClient,
		Logger:     logger,
		Flags:      flags,
	}

	searchService := search.NewSearchService(deps, search.Options{
		Endpoint:     cfg.Search.Endpoint,
		ClientID:     cfg.Search.ClientID,
		ClientSecret: cfg.Search.ClientSecret,
		PageTimeout:  cfg.Search.PageTimeout,
		CacheTTL:     cfg.Search.CacheTTL,
	})
	reportService := report.NewReportService(deps, cfg.Notify.WebhookURL)
	ledger := history.NewLedger(history.WithCapacity(cfg.Server.HistoryCapacity))

	humaAPI, router, limiter := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	})
	if limiter != nil {
		defer limiter.Stop()
	}

	handlers.NewSearchHandler(searchService, ledger).RegisterRoutes(humaAPI)
	handlers.NewHistoryHandler(ledger).RegisterRoutes(humaAPI)
	handlers.NewReportHandler(reportService).RegisterRoutes(humaAPI)

	errorLog := logger.Writer(logrus.ErrorLevel)
	defer errorLog.Close()

	// WriteTimeout covers page 1 plus the concurrent fan-out, each bounded by the page timeout
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Search.PageTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errorLog, "", 0),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	case <-quit:
	}

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}

func init() {
	fmt.Println(`
    ____       _                        __       __
   / __ \_____(_)_______ _      ______ _/ /______/ /_
  / /_/ / ___/ / ___/ _ \ | /| / / __ '/ __/ ___/ __ \
 / ____/ /  / / /__/  __/ |/ |/ / /_/ / /_/ /__/ / / /
/_/   /_/  /_/\___/\___/|__/|__/\__,_/\__/\___/_/ /_/
	`)
}
