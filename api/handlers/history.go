// ABOUTME: History handlers for the Huma API
// ABOUTME: Lists and records recent searches in the in-memory ledger

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"pricewatch-api/api/dto/mappers"
	"pricewatch-api/api/dto/requests"
	"pricewatch-api/api/dto/responses"
	coreerrors "pricewatch-api/core/errors"
	"pricewatch-api/core/interfaces"
)

// HistoryHandler handles /history
type HistoryHandler struct {
	store interfaces.HistoryStore
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store interfaces.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// RegisterRoutes registers the history routes
func (h *HistoryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listHistory",
		Method:      http.MethodGet,
		Path:        "/history",
		Summary:     "List recent searches",
		Description: "Returns up to the ledger capacity of recent searches, most recent first",
		Tags:        []string{"History"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "recordHistory",
		Method:      http.MethodPost,
		Path:        "/history",
		Summary:     "Record a search",
		Description: "Moves the query and threshold pair to the front of the history, adding it if new. A missing query or threshold returns 400; a threshold that is not a JSON integer (for example \"100\") fails schema validation with 422",
		Tags:        []string{"History"},
	}, h.Record)
}

// ListHistoryOutput defines the output for the List operation
type ListHistoryOutput struct {
	Body []responses.HistoryEntryResponse
}

// List handles GET /history
func (h *HistoryHandler) List(ctx context.Context, input *struct{}) (*ListHistoryOutput, error) {
	return &ListHistoryOutput{Body: mappers.ToHistoryResponses(h.store.List())}, nil
}

// RecordHistoryInput defines the input for the Record operation
type RecordHistoryInput struct {
	Body requests.RecordHistoryRequest
}

// RecordHistoryOutput defines the output for the Record operation
type RecordHistoryOutput struct {
	Body responses.SuccessResponse
}

// Record handles POST /history
func (h *HistoryHandler) Record(ctx context.Context, input *RecordHistoryInput) (*RecordHistoryOutput, error) {
	if field := input.Body.Missing(); field != "" {
		return nil, toHumaError(&coreerrors.ValidationError{Field: field, Message: "query and threshold are required"})
	}

	h.store.Record(*input.Body.Query, *input.Body.Threshold)

	return &RecordHistoryOutput{Body: responses.SuccessResponse{Success: true}}, nil
}
