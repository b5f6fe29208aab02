// ABOUTME: Search handler for the Huma API
// ABOUTME: Runs the aggregated shopping search and remembers successful queries in the history ledger

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"pricewatch-api/api/dto/mappers"
	"pricewatch-api/api/dto/responses"
	"pricewatch-api/core/interfaces"
)

// SearchHandler handles GET /search
type SearchHandler struct {
	service interfaces.SearchService
	history interfaces.HistoryStore
}

// NewSearchHandler creates a new search handler. history may be nil.
func NewSearchHandler(service interfaces.SearchService, history interfaces.HistoryStore) *SearchHandler {
	return &SearchHandler{
		service: service,
		history: history,
	}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchProducts",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search lowest prices",
		Description: "Fetches up to 1000 listings for the query, sorted by price per page, and classifies each against the threshold",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for the Search operation.
// Both parameters are strings so that missing or non-numeric values map to 400.
type SearchInput struct {
	Query     string `query:"query" doc:"Product search query"`
	Threshold string `query:"threshold" doc:"Price threshold in won (integer)"`
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	result, err := h.service.Search(ctx, input.Query, input.Threshold)
	if err != nil {
		return nil, toHumaError(err)
	}

	if h.history != nil {
		h.history.Record(result.Query, result.Threshold)
	}

	return &SearchOutput{Body: *mappers.ToSearchResponse(result)}, nil
}
