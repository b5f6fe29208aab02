// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"pricewatch-api/api/dto/requests"
	"pricewatch-api/api/dto/responses"
	"pricewatch-api/core/domain"
)

// ToSearchResponse converts a domain SearchResult to a SearchResponse DTO
func ToSearchResponse(result *domain.SearchResult) *responses.SearchResponse {
	if result == nil {
		return nil
	}

	raw := result.Raw
	if raw == nil {
		raw = []domain.RawPage{}
	}

	return &responses.SearchResponse{
		Total:        result.Total,
		Items:        ToItemResponses(result.Items),
		Raw:          raw,
		SearchedAt:   result.SearchedAt,
		DroppedPages: result.DroppedPages,
	}
}

// ToItemResponses converts normalized items, never returning nil
func ToItemResponses(items []domain.NormalizedItem) []responses.ItemResponse {
	out := make([]responses.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, responses.ItemResponse{
			Name:        item.Name,
			Link:        item.Link,
			Mall:        item.Mall,
			Price:       item.Price,
			Position:    string(item.Position),
			ProductType: item.ProductType,
		})
	}
	return out
}

// ToHistoryResponses converts ledger entries, keeping their order
func ToHistoryResponses(entries []domain.HistoryEntry) []responses.HistoryEntryResponse {
	out := make([]responses.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, responses.HistoryEntryResponse{
			Query:     e.Query,
			Threshold: e.Threshold,
			Timestamp: e.Timestamp.UnixMilli(),
		})
	}
	return out
}

// ToReport converts a report request to the domain model handed to the report service
func ToReport(req requests.ReportRequest) *domain.Report {
	return &domain.Report{
		Name:  req.Name,
		Mall:  req.Mall,
		Price: req.Price,
		Link:  req.Link,
	}
}

// ToReportResponse converts a delivery receipt
func ToReportResponse(receipt *domain.ReportReceipt) *responses.ReportResponse {
	if receipt == nil {
		return nil
	}
	return &responses.ReportResponse{
		Success:    true,
		ID:         receipt.ID,
		ReportedAt: receipt.ReportedAt,
	}
}
