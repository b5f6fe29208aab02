// ABOUTME: Root cobra command and service wiring for the pricewatch CLI
// ABOUTME: Builds the same search and report services the API server uses from environment config

package main

import (
	"io"

	"github.com/spf13/cobra"

	"pricewatch-api/core/interfaces"
	"pricewatch-api/core/report"
	"pricewatch-api/core/search"
	"pricewatch-api/infrastructure/cache"
	stdhttp "pricewatch-api/infrastructure/http/standard"
	logruslogger "pricewatch-api/infrastructure/logger/logrus"
	"pricewatch-api/pkg/config"
	"pricewatch-api/pkg/featureflags"
)

// app holds the services a command runs against
type app struct {
	search      interfaces.SearchService
	report      interfaces.ReportService
	formatPrice func(int) string
}

// appFactory builds the services once flags are parsed
type appFactory func(opts *rootOptions, stderr io.Writer) (*app, error)

type rootOptions struct {
	logLevel string
}

// NewRootCmd returns the pricewatch command tree
func NewRootCmd(build appFactory) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pricewatch",
		Short: "Search Naver Shopping prices and report deals to Slack",
		Long: "pricewatch queries the Naver Shopping search API across up to ten result pages,\n" +
			"classifies every item against a price threshold and can post a single item to Slack.\n" +
			"Credentials are read from NAVER_CLIENT_ID, NAVER_CLIENT_SECRET and SLACK_WEBHOOK_URL.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error)")

	cmd.AddCommand(newSearchCmd(opts, build))
	cmd.AddCommand(newReportCmd(opts, build))

	return cmd
}

// newApp wires the production services from the environment
func newApp(opts *rootOptions, stderr io.Writer) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logruslogger.NewLogger(logruslogger.Options{
		Level:  opts.logLevel,
		Format: "text",
		Output: stderr,
	})
	if err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache: cache.New(cfg.Cache, logger),
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTP.Timeout,
			stdhttp.WithMaxRetries(cfg.HTTP.MaxRetries),
			stdhttp.WithLogger(logger),
		),
		Logger: logger,
		Flags:  featureflags.NewEnvManager(""),
	}

	reportService := report.NewReportService(deps, cfg.Notify.WebhookURL)

	return &app{
		search: search.NewSearchService(deps, search.Options{
			Endpoint:     cfg.Search.Endpoint,
			ClientID:     cfg.Search.ClientID,
			ClientSecret: cfg.Search.ClientSecret,
			PageTimeout:  cfg.Search.PageTimeout,
			CacheTTL:     cfg.Search.CacheTTL,
		}),
		report:      reportService,
		formatPrice: reportService.FormatPrice,
	}, nil
}
