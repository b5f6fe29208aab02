package handlers

import (
	"context"
	"sync"
	"time"

	"pricewatch-api/core/domain"
)

// mockSearchService is a mock implementation of interfaces.SearchService
type mockSearchService struct {
	searchFunc func(ctx context.Context, query, threshold string) (*domain.SearchResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, query, threshold string) (*domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, threshold)
	}
	return &domain.SearchResult{}, nil
}

// mockReportService is a mock implementation of interfaces.ReportService
type mockReportService struct {
	reportFunc func(ctx context.Context, r *domain.Report) (*domain.ReportReceipt, error)
}

func (m *mockReportService) Report(ctx context.Context, r *domain.Report) (*domain.ReportReceipt, error) {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, r)
	}
	return &domain.ReportReceipt{}, nil
}

// mockHistoryStore records calls and returns a fixed list
type mockHistoryStore struct {
	mu      sync.Mutex
	records []domain.HistoryEntry
	list    []domain.HistoryEntry
}

func (m *mockHistoryStore) Record(query string, threshold int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, domain.HistoryEntry{Query: query, Threshold: threshold, Timestamp: time.Now()})
}

func (m *mockHistoryStore) List() []domain.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list
}
