// ABOUTME: Report domain model represents a single item reported to the notification channel
// ABOUTME: Provides validation for the fields required before dispatch

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	coreerrors "pricewatch-api/core/errors"
)

// Report is an item a user flagged for notification
type Report struct {
	// ID is the unique identifier (UUID) for the report
	ID string

	Name  string
	Mall  string
	Price int

	// Link is the product page URL and the only required field
	Link string

	// CreatedAt is when the report was created
	CreatedAt time.Time
}

// NewReport creates a new Report instance with validation
func NewReport(name, mall string, price int, link string) (*Report, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, &coreerrors.ValidationError{Field: "link", Message: "product link is required"}
	}

	return &Report{
		ID:        uuid.New().String(),
		Name:      name,
		Mall:      mall,
		Price:     price,
		Link:      link,
		CreatedAt: time.Now(),
	}, nil
}

// ReportReceipt is returned after a report was delivered
type ReportReceipt struct {
	ID         string
	ReportedAt string
}
