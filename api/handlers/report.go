// ABOUTME: Report handler for the Huma API
// ABOUTME: Forwards a single flagged item to the notification channel

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"pricewatch-api/api/dto/mappers"
	"pricewatch-api/api/dto/requests"
	"pricewatch-api/api/dto/responses"
	"pricewatch-api/core/interfaces"
)

// ReportHandler handles POST /report
type ReportHandler struct {
	service interfaces.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service interfaces.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers the report route
func (h *ReportHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reportItem",
		Method:      http.MethodPost,
		Path:        "/report",
		Summary:     "Report a listing",
		Description: "Sends the listing to the configured Slack channel",
		Tags:        []string{"Report"},
	}, h.Report)
}

// ReportInput defines the input for the Report operation
type ReportInput struct {
	Body requests.ReportRequest
}

// ReportOutput defines the output for the Report operation
type ReportOutput struct {
	Body responses.ReportResponse
}

// Report handles POST /report
func (h *ReportHandler) Report(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	receipt, err := h.service.Report(ctx, mappers.ToReport(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ReportOutput{Body: *mappers.ToReportResponse(receipt)}, nil
}
