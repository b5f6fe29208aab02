// ABOUTME: Search service aggregates paginated shopping results for a product query
// ABOUTME: Fetches the first page, fans out the remaining pages concurrently and merges them in page order

package search

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pricewatch-api/core/domain"
	coreerrors "pricewatch-api/core/errors"
	"pricewatch-api/core/interfaces"
	"pricewatch-api/pkg/featureflags"
)

// Options configures the upstream side of a SearchService
type Options struct {
	// Endpoint is the shopping search URL
	Endpoint string

	// ClientID and ClientSecret authenticate every page request
	ClientID     string
	ClientSecret string

	// PageTimeout bounds each page request; defaults to DefaultPageTimeout
	PageTimeout time.Duration

	// CacheTTL is how long fetched pages stay cached when caching is enabled
	CacheTTL time.Duration

	// Now overrides the clock used for SearchedAt
	Now func() time.Time
}

// DefaultPageTimeout is used when Options.PageTimeout is not set
const DefaultPageTimeout = 5 * time.Second

// SearchService handles shopping search aggregation
type SearchService struct {
	deps    interfaces.Dependencies
	fetcher *pageFetcher
	now     func() time.Time
}

// pageOutcome is the result of fetching one page beyond the first
type pageOutcome struct {
	page  int
	start int
	raw   *domain.RawPage
	err   error
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, opts Options) *SearchService {
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = DefaultPageTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SearchService{
		deps: deps,
		fetcher: &pageFetcher{
			deps:         deps,
			endpoint:     opts.Endpoint,
			clientID:     opts.ClientID,
			clientSecret: opts.ClientSecret,
			timeout:      opts.PageTimeout,
			cacheTTL:     opts.CacheTTL,
		},
		now: opts.Now,
	}
}

// validateRequest checks the raw query and threshold and returns their parsed forms
func validateRequest(query, threshold string) (string, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", 0, &coreerrors.ValidationError{Field: "query", Message: "search query is required"}
	}

	threshold = strings.TrimSpace(threshold)
	if threshold == "" {
		return "", 0, &coreerrors.ValidationError{Field: "threshold", Message: "price threshold is required"}
	}

	value, err := strconv.Atoi(threshold)
	if err != nil {
		return "", 0, &coreerrors.ValidationError{Field: "threshold", Message: "price threshold must be an integer"}
	}

	return query, value, nil
}

// checkConfig ensures credentials are present before any network call
func (s *SearchService) checkConfig() error {
	if s.fetcher.clientID == "" {
		return &coreerrors.ConfigError{Key: "NAVER_CLIENT_ID"}
	}
	if s.fetcher.clientSecret == "" {
		return &coreerrors.ConfigError{Key: "NAVER_CLIENT_SECRET"}
	}
	if s.fetcher.endpoint == "" {
		return &coreerrors.ConfigError{Key: "NAVER_SEARCH_ENDPOINT"}
	}
	if s.deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}
	return nil
}

// Search aggregates up to MaxPages pages of results for query and classifies
// every item against threshold. Only a first-page failure is fatal.
func (s *SearchService) Search(ctx context.Context, query, threshold string) (*domain.SearchResult, error) {
	q, limit, err := validateRequest(query, threshold)
	if err != nil {
		return nil, err
	}

	if err := s.checkConfig(); err != nil {
		return nil, err
	}

	first, err := s.fetcher.fetchPage(ctx, q, 1)
	if err != nil {
		s.logError("First page fetch failed", map[string]interface{}{
			"query": q,
			"error": err.Error(),
		})
		return nil, err
	}

	pageCount := PageCount(first.Total)
	outcomes := s.fetchRemaining(ctx, q, pageCount)

	pages, rawItems, dropped := mergePages(first, outcomes)
	for _, o := range outcomes {
		if o.err != nil {
			s.logWarn("Page dropped", map[string]interface{}{
				"query": q,
				"page":  o.page,
				"start": o.start,
				"error": o.err.Error(),
			})
		}
	}

	result := &domain.SearchResult{
		Query:        q,
		Threshold:    limit,
		Total:        first.Total,
		Items:        NormalizeAll(rawItems, limit),
		Raw:          pages,
		SearchedAt:   s.now(),
		DroppedPages: dropped,
	}

	s.logInfo("Search completed", map[string]interface{}{
		"query":     q,
		"threshold": limit,
		"total":     result.Total,
		"pages":     pageCount,
		"retrieved": result.Retrieved(),
		"dropped":   len(dropped),
	})

	return result, nil
}

// fetchRemaining fetches pages 2..pageCount concurrently. The returned slice
// is indexed by page-2 so order never depends on completion order.
func (s *SearchService) fetchRemaining(ctx context.Context, query string, pageCount int) []pageOutcome {
	if pageCount <= 1 {
		return nil
	}

	retry := featureflags.Enabled(ctx, s.deps.Flags, featureflags.PageRetry)
	outcomes := make([]pageOutcome, pageCount-1)

	var g errgroup.Group
	g.SetLimit(MaxPages - 1)

	for page := 2; page <= pageCount; page++ {
		page := page
		g.Go(func() error {
			raw, err := s.fetcher.fetchPage(ctx, query, page)
			if err != nil && retry && ctx.Err() == nil {
				s.logDebug("Retrying page", map[string]interface{}{
					"query": query,
					"page":  page,
					"error": err.Error(),
				})
				raw, err = s.fetcher.fetchPage(ctx, query, page)
			}
			outcomes[page-2] = pageOutcome{
				page:  page,
				start: StartFor(page),
				raw:   raw,
				err:   err,
			}
			// page failures are recorded in the outcome, never propagated
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// mergePages concatenates the first page and every successful outcome in page
// order, keeping provider order within each page and capping at MaxItems.
func mergePages(first *domain.RawPage, outcomes []pageOutcome) ([]domain.RawPage, []domain.RawItem, []int) {
	pages := make([]domain.RawPage, 0, len(outcomes)+1)
	pages = append(pages, *first)

	items := make([]domain.RawItem, 0, len(first.Items))
	items = append(items, first.Items...)

	var dropped []int
	for _, o := range outcomes {
		if o.err != nil || o.raw == nil {
			dropped = append(dropped, o.page)
			continue
		}
		pages = append(pages, *o.raw)
		items = append(items, o.raw.Items...)
	}

	if len(items) > MaxItems {
		items = items[:MaxItems]
	}

	return pages, items, dropped
}

func (s *SearchService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *SearchService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *SearchService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *SearchService) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
