// ABOUTME: Page fetcher issues one bounded request per result page to the shopping search API
// ABOUTME: Adds credential headers, applies the per-page timeout and optionally serves pages from cache

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"pricewatch-api/core/domain"
	coreerrors "pricewatch-api/core/errors"
	"pricewatch-api/core/interfaces"
	"pricewatch-api/pkg/featureflags"
)

const (
	// PageSize is the number of items requested per page
	PageSize = 100

	// MaxPages caps the fan-out regardless of the reported total
	MaxPages = 10

	// MaxItems is the most items a single search can merge
	MaxItems = PageSize * MaxPages

	// excludedCategories drops used, rental and cross-border listings
	excludedCategories = "used:rental:cbshop"

	upstreamAPI = "naver"

	headerClientID     = "X-Naver-Client-Id"
	headerClientSecret = "X-Naver-Client-Secret"
)

// StartFor returns the 1-based item offset of a 1-based page number
func StartFor(page int) int {
	return (page-1)*PageSize + 1
}

// PageCount returns how many pages are needed for total, capped at MaxPages.
// At least one page is always fetched.
func PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	count := (total + PageSize - 1) / PageSize
	if count > MaxPages {
		return MaxPages
	}
	return count
}

// pageFetcher performs single page requests
type pageFetcher struct {
	deps         interfaces.Dependencies
	endpoint     string
	clientID     string
	clientSecret string
	timeout      time.Duration
	cacheTTL     time.Duration
}

// pageURL builds the request URL for one page
func (f *pageFetcher) pageURL(query string, start int) string {
	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(PageSize))
	params.Set("sort", "asc")
	params.Set("exclude", excludedCategories)
	params.Set("start", strconv.Itoa(start))
	return f.endpoint + "?" + params.Encode()
}

func (f *pageFetcher) cacheKey(query string, start int) string {
	return fmt.Sprintf("search:page:%s:%d", query, start)
}

func (f *pageFetcher) cacheEnabled(ctx context.Context) bool {
	return f.deps.Cache != nil && f.cacheTTL > 0 &&
		featureflags.Enabled(ctx, f.deps.Flags, featureflags.SearchCache)
}

// fetchPage requests one page. Any failure is returned as an UpstreamError.
func (f *pageFetcher) fetchPage(ctx context.Context, query string, page int) (*domain.RawPage, error) {
	start := StartFor(page)

	useCache := f.cacheEnabled(ctx)
	if useCache {
		if data, err := f.deps.Cache.Get(ctx, f.cacheKey(query, start)); err == nil && data != nil {
			var cached domain.RawPage
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	headers := map[string]string{
		headerClientID:     f.clientID,
		headerClientSecret: f.clientSecret,
	}

	resp, err := f.deps.HTTPClient.Get(ctx, f.pageURL(query, start), headers)
	if err != nil {
		return nil, &coreerrors.UpstreamError{API: upstreamAPI, Page: page, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.UpstreamError{API: upstreamAPI, StatusCode: resp.StatusCode(), Page: page}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.UpstreamError{API: upstreamAPI, Page: page, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var raw domain.RawPage
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, &coreerrors.UpstreamError{API: upstreamAPI, Page: page, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if raw.Items == nil {
		raw.Items = []domain.RawItem{}
	}

	if useCache {
		_ = f.deps.Cache.Set(ctx, f.cacheKey(query, start), bodyBytes, f.cacheTTL)
	}

	return &raw, nil
}
