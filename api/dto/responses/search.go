// ABOUTME: Response DTOs for search, history and report endpoints
// ABOUTME: Keeps the wire shape used by the browser client, including unix millisecond history timestamps

package responses

import (
	"time"

	"pricewatch-api/core/domain"
)

// ItemResponse is one classified listing
type ItemResponse struct {
	Name        string `json:"name" doc:"Product name with markup removed"`
	Link        string `json:"link" doc:"Product page URL"`
	Mall        string `json:"mall" doc:"Mall name"`
	Price       int    `json:"price" doc:"Lowest price in won; 0 when unparseable"`
	Position    string `json:"position" enum:"up,down" doc:"up when price is at or above the threshold"`
	ProductType string `json:"productType" doc:"Product type label"`
}

// SearchResponse is the body of GET /search
type SearchResponse struct {
	Total        int              `json:"total" doc:"Provider-reported total, not the number of items returned"`
	Items        []ItemResponse   `json:"items" doc:"Items in page order"`
	Raw          []domain.RawPage `json:"raw" doc:"Every page fetched successfully, first page first"`
	SearchedAt   time.Time        `json:"searchedAt" doc:"When the search finished"`
	DroppedPages []int            `json:"droppedPages,omitempty" doc:"Pages that failed and were skipped"`
}

// HistoryEntryResponse is one remembered search
type HistoryEntryResponse struct {
	Query     string `json:"query"`
	Threshold int    `json:"threshold"`
	Timestamp int64  `json:"timestamp" doc:"Unix milliseconds"`
}

// SuccessResponse acknowledges a write
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ReportResponse is the body of POST /report
type ReportResponse struct {
	Success    bool   `json:"success"`
	ID         string `json:"id" doc:"Report identifier for log correlation"`
	ReportedAt string `json:"reportedAt" doc:"Report time in KST"`
}
