// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used by the API handlers and the CLI

package interfaces

import (
	"context"

	"pricewatch-api/core/domain"
)

// SearchService aggregates paginated shopping results for a query
type SearchService interface {
	// Search validates the raw query and threshold, fetches every needed page
	// and returns the merged, classified result.
	Search(ctx context.Context, query, threshold string) (*domain.SearchResult, error)
}

// ReportService delivers a single reported item to the notification channel
type ReportService interface {
	Report(ctx context.Context, report *domain.Report) (*domain.ReportReceipt, error)
}
