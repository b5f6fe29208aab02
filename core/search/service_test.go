package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch-api/core/domain"
	coreerrors "pricewatch-api/core/errors"
	"pricewatch-api/core/interfaces"
	"pricewatch-api/pkg/featureflags"
)

// fakeUpstream serves pages of synthetic items for a reported total
type fakeUpstream struct {
	total  int
	fail   map[int]int           // start -> status code (0 means transport error)
	delay  map[int]time.Duration // start -> artificial latency
	starts chan int

	// onRequest runs before the response is built; a non-nil error is returned as a transport failure
	onRequest func(ctx context.Context, start int) error
}

func (f *fakeUpstream) client() *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, u string, headers map[string]string) (interfaces.Response, error) {
			parsed, err := url.Parse(u)
			if err != nil {
				return nil, err
			}
			start, _ := strconv.Atoi(parsed.Query().Get("start"))
			if f.starts != nil {
				f.starts <- start
			}
			if f.onRequest != nil {
				if err := f.onRequest(ctx, start); err != nil {
					return nil, err
				}
			}

			if d, ok := f.delay[start]; ok {
				select {
				case <-time.After(d):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}

			if status, ok := f.fail[start]; ok {
				if status == 0 {
					return nil, errors.New("connection reset")
				}
				return &mockResponse{statusCode: status, body: `{"errorMessage":"fail"}`}, nil
			}

			page := domain.RawPage{Total: f.total, Start: start, Display: PageSize}
			for i := 0; i < PageSize && start+i <= f.total; i++ {
				page.Items = append(page.Items, domain.RawItem{
					Title:    fmt.Sprintf("<b>item</b> %d", start+i),
					LPrice:   strconv.Itoa((start + i) * 10),
					MallName: "mall",
				})
			}
			body, _ := json.Marshal(page)
			return &mockResponse{statusCode: 200, body: string(body)}, nil
		},
	}
}

func newTestService(client interfaces.HTTPClient, logger interfaces.Logger, flags featureflags.Manager) *SearchService {
	return NewSearchService(interfaces.Dependencies{
		HTTPClient: client,
		Logger:     logger,
		Flags:      flags,
	}, Options{
		Endpoint:     "https://search.example/shop.json",
		ClientID:     "id",
		ClientSecret: "secret",
		PageTimeout:  time.Second,
		Now:          func() time.Time { return time.Unix(1700000000, 0) },
	})
}

func TestNewSearchService_Defaults(t *testing.T) {
	service := NewSearchService(interfaces.Dependencies{}, Options{})

	require.NotNil(t, service)
	assert.Equal(t, DefaultPageTimeout, service.fetcher.timeout)
	assert.NotNil(t, service.now)
}

func TestSearch_Validation(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		threshold string
		field     string
	}{
		{name: "empty query", query: "", threshold: "1000", field: "query"},
		{name: "blank query", query: "   ", threshold: "1000", field: "query"},
		{name: "missing threshold", query: "carrier", threshold: "", field: "threshold"},
		{name: "non-numeric threshold", query: "carrier", threshold: "abc", field: "threshold"},
		{name: "decimal threshold", query: "carrier", threshold: "10.5", field: "threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := (&fakeUpstream{total: 10}).client()
			service := newTestService(client, nil, nil)

			_, err := service.Search(context.Background(), tt.query, tt.threshold)

			var validationErr *coreerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, 0, client.callCount(), "no upstream request on invalid input")
		})
	}
}

func TestSearch_MissingCredentials(t *testing.T) {
	client := (&fakeUpstream{total: 10}).client()
	service := NewSearchService(interfaces.Dependencies{HTTPClient: client}, Options{
		Endpoint: "https://search.example/shop.json",
	})

	_, err := service.Search(context.Background(), "carrier", "1000")

	assert.True(t, coreerrors.IsConfig(err))
	assert.Equal(t, 0, client.callCount())
}

func TestSearch_ThreePages(t *testing.T) {
	upstream := &fakeUpstream{total: 250, starts: make(chan int, MaxPages)}
	service := newTestService(upstream.client(), nil, nil)

	result, err := service.Search(context.Background(), "  carrier  ", "1000")
	require.NoError(t, err)
	close(upstream.starts)

	var starts []int
	for s := range upstream.starts {
		starts = append(starts, s)
	}
	assert.ElementsMatch(t, []int{1, 101, 201}, starts)

	assert.Equal(t, "carrier", result.Query)
	assert.Equal(t, 1000, result.Threshold)
	assert.Equal(t, 250, result.Total)
	assert.Len(t, result.Items, 250)
	assert.Len(t, result.Raw, 3)
	assert.False(t, result.IsPartial())
	assert.Equal(t, time.Unix(1700000000, 0), result.SearchedAt)

	assert.Equal(t, "item 1", result.Items[0].Name)
	assert.Equal(t, "item 250", result.Items[249].Name)
	assert.Equal(t, domain.PositionBelow, result.Items[98].Position)   // 990
	assert.Equal(t, domain.PositionAtOrAbove, result.Items[99].Position) // 1000
}

func TestSearch_PreservesPageOrder(t *testing.T) {
	upstream := &fakeUpstream{
		total: 500,
		delay: map[int]time.Duration{101: 40 * time.Millisecond, 201: 20 * time.Millisecond},
	}
	service := newTestService(upstream.client(), nil, nil)

	result, err := service.Search(context.Background(), "carrier", "0")
	require.NoError(t, err)

	require.Len(t, result.Items, 500)
	for i, item := range result.Items {
		assert.Equal(t, fmt.Sprintf("item %d", i+1), item.Name)
	}
	for i, page := range result.Raw {
		assert.Equal(t, StartFor(i+1), page.Start)
	}
}

func TestSearch_DropsFailedPage(t *testing.T) {
	logger := &mockLogger{}
	upstream := &fakeUpstream{total: 250, fail: map[int]int{101: 500}}
	service := newTestService(upstream.client(), logger, nil)

	result, err := service.Search(context.Background(), "carrier", "1000")
	require.NoError(t, err)

	assert.Equal(t, 250, result.Total)
	assert.Len(t, result.Items, 150)
	assert.Len(t, result.Raw, 2)
	assert.Equal(t, []int{2}, result.DroppedPages)
	assert.True(t, result.IsPartial())
	assert.Equal(t, 150, result.Retrieved())

	assert.Equal(t, "item 100", result.Items[99].Name)
	assert.Equal(t, "item 201", result.Items[100].Name)
	assert.Len(t, logger.warns, 1)
}

func TestSearch_FirstPageFailureIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "error status", status: 503},
		{name: "transport error", status: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := &fakeUpstream{total: 250, fail: map[int]int{1: tt.status}}
			client := upstream.client()
			service := newTestService(client, nil, nil)

			result, err := service.Search(context.Background(), "carrier", "1000")

			assert.Nil(t, result)
			assert.True(t, coreerrors.IsUpstream(err))
			assert.Equal(t, 1, client.callCount(), "no fan-out after a failed first page")
		})
	}
}

func TestSearch_CapsAtTenPages(t *testing.T) {
	upstream := &fakeUpstream{total: 5000, starts: make(chan int, 20)}
	service := newTestService(upstream.client(), nil, nil)

	result, err := service.Search(context.Background(), "carrier", "1")
	require.NoError(t, err)
	close(upstream.starts)

	count := 0
	for s := range upstream.starts {
		assert.LessOrEqual(t, s, 901)
		count++
	}
	assert.Equal(t, MaxPages, count)
	assert.Len(t, result.Items, MaxItems)
	assert.Equal(t, 5000, result.Total)
}

func TestSearch_ZeroTotal(t *testing.T) {
	upstream := &fakeUpstream{total: 0}
	client := upstream.client()
	service := newTestService(client, nil, nil)

	result, err := service.Search(context.Background(), "nothing", "1000")
	require.NoError(t, err)

	assert.Equal(t, 1, client.callCount())
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Len(t, result.Raw, 1)
}

func TestSearch_PageRetryFlag(t *testing.T) {
	var attempts int32
	base := (&fakeUpstream{total: 150}).client()
	flaky := &mockHTTPClient{
		getFunc: func(ctx context.Context, u string, headers map[string]string) (interfaces.Response, error) {
			parsed, _ := url.Parse(u)
			if parsed.Query().Get("start") == "101" && atomic.AddInt32(&attempts, 1) == 1 {
				return &mockResponse{statusCode: 502, body: `{}`}, nil
			}
			return base.Get(ctx, u, headers)
		},
	}

	t.Run("disabled drops the page", func(t *testing.T) {
		atomic.StoreInt32(&attempts, 0)
		service := newTestService(flaky, nil, nil)

		result, err := service.Search(context.Background(), "carrier", "1")
		require.NoError(t, err)
		assert.Equal(t, []int{2}, result.DroppedPages)
	})

	t.Run("enabled retries once", func(t *testing.T) {
		atomic.StoreInt32(&attempts, 0)
		flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.PageRetry: true})
		service := newTestService(flaky, nil, flags)

		result, err := service.Search(context.Background(), "carrier", "1")
		require.NoError(t, err)
		assert.Empty(t, result.DroppedPages)
		assert.Len(t, result.Items, 150)
		assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	})
}

func TestSearch_PageTimeoutDropsSlowPage(t *testing.T) {
	upstream := &fakeUpstream{total: 200, delay: map[int]time.Duration{101: time.Second}}
	service := NewSearchService(interfaces.Dependencies{HTTPClient: upstream.client()}, Options{
		Endpoint:     "https://search.example/shop.json",
		ClientID:     "id",
		ClientSecret: "secret",
		PageTimeout:  20 * time.Millisecond,
	})

	result, err := service.Search(context.Background(), "carrier", "1")
	require.NoError(t, err)

	assert.Equal(t, []int{2}, result.DroppedPages)
	assert.Len(t, result.Items, 100)
}

func TestSearch_FetchesRemainingPagesConcurrently(t *testing.T) {
	const pages = 5
	var (
		arrived  int32
		inFlight int32
		peak     int32
	)
	release := make(chan struct{})

	upstream := &fakeUpstream{
		total: pages * PageSize,
		// each later page blocks until every later page has been requested
		onRequest: func(ctx context.Context, start int) error {
			if start == 1 {
				return nil
			}
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			if atomic.AddInt32(&arrived, 1) == pages-1 {
				close(release)
			}
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
	service := NewSearchService(interfaces.Dependencies{HTTPClient: upstream.client()}, Options{
		Endpoint:     "https://search.example/shop.json",
		ClientID:     "id",
		ClientSecret: "secret",
		PageTimeout:  2 * time.Second,
	})

	result, err := service.Search(context.Background(), "carrier", "1")
	require.NoError(t, err)

	assert.Empty(t, result.DroppedPages, "later pages were not in flight together")
	assert.Len(t, result.Items, pages*PageSize)
	assert.Equal(t, int32(pages-1), atomic.LoadInt32(&peak))
}

func TestSearch_FirstPageTimeoutIsFatal(t *testing.T) {
	upstream := &fakeUpstream{total: 250, delay: map[int]time.Duration{1: time.Second}}
	client := upstream.client()
	service := NewSearchService(interfaces.Dependencies{HTTPClient: client}, Options{
		Endpoint:     "https://search.example/shop.json",
		ClientID:     "id",
		ClientSecret: "secret",
		PageTimeout:  20 * time.Millisecond,
	})

	result, err := service.Search(context.Background(), "carrier", "1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, coreerrors.IsUpstream(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 1, client.callCount())
}

func TestMergePages(t *testing.T) {
	first := &domain.RawPage{Total: 300, Items: []domain.RawItem{{Title: "1"}}}
	outcomes := []pageOutcome{
		{page: 2, start: 101, err: errors.New("boom")},
		{page: 3, start: 201, raw: &domain.RawPage{Items: []domain.RawItem{{Title: "3"}}}},
	}

	pages, items, dropped := mergePages(first, outcomes)

	assert.Len(t, pages, 2)
	assert.Equal(t, []domain.RawItem{{Title: "1"}, {Title: "3"}}, items)
	assert.Equal(t, []int{2}, dropped)
}
