// ABOUTME: Report service delivers a single flagged item to a Slack incoming webhook
// ABOUTME: Builds the block message, posts it and returns a receipt with the KST report time

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pricewatch-api/core/domain"
	coreerrors "pricewatch-api/core/errors"
	"pricewatch-api/core/interfaces"
)

// ReportedAtLayout is how report times are rendered in messages and receipts
const ReportedAtLayout = "2006-01-02 15:04:05"

// kst is Korea Standard Time; Korea observes no daylight saving
var kst = time.FixedZone("KST", 9*60*60)

// ReportService posts reports to the configured webhook
type ReportService struct {
	deps       interfaces.Dependencies
	webhookURL string
	printer    *message.Printer
	now        func() time.Time
}

// Option configures a ReportService
type Option func(*ReportService)

// WithClock overrides the clock used for the report time
func WithClock(now func() time.Time) Option {
	return func(s *ReportService) {
		s.now = now
	}
}

// NewReportService creates a new report service instance
func NewReportService(deps interfaces.Dependencies, webhookURL string, opts ...Option) *ReportService {
	s := &ReportService{
		deps:       deps,
		webhookURL: webhookURL,
		printer:    message.NewPrinter(language.Korean),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FormatPrice renders a price with thousands separators and the won suffix
func (s *ReportService) FormatPrice(price int) string {
	return s.printer.Sprintf("%d원", price)
}

// Report validates r, posts it to the webhook and returns a receipt.
// Delivery is attempted once.
func (s *ReportService) Report(ctx context.Context, r *domain.Report) (*domain.ReportReceipt, error) {
	if r == nil {
		return nil, &coreerrors.ValidationError{Field: "link", Message: "product link is required"}
	}
	validated, err := domain.NewReport(r.Name, r.Mall, r.Price, r.Link)
	if err != nil {
		return nil, err
	}
	if r.ID != "" {
		validated.ID = r.ID
	}

	if s.webhookURL == "" {
		return nil, &coreerrors.ConfigError{Key: "SLACK_WEBHOOK_URL"}
	}
	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.DeliveryError{Err: fmt.Errorf("HTTP client not configured")}
	}

	reportedAt := s.now().In(kst).Format(ReportedAtLayout)

	payload, err := json.Marshal(s.buildMessage(validated, reportedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		s.logError("Report delivery failed", map[string]interface{}{
			"report_id": validated.ID,
			"error":     err.Error(),
		})
		return nil, &coreerrors.DeliveryError{Err: err}
	}
	defer resp.Body().Close()
	_, _ = io.Copy(io.Discard, resp.Body())

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.logError("Webhook rejected report", map[string]interface{}{
			"report_id": validated.ID,
			"status":    resp.StatusCode(),
		})
		return nil, &coreerrors.DeliveryError{StatusCode: resp.StatusCode()}
	}

	s.logInfo("Report delivered", map[string]interface{}{
		"report_id": validated.ID,
		"mall":      validated.Mall,
		"price":     validated.Price,
	})

	return &domain.ReportReceipt{ID: validated.ID, ReportedAt: reportedAt}, nil
}

func (s *ReportService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *ReportService) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
