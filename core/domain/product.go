// ABOUTME: Shopping search domain models for raw provider pages and normalized items
// ABOUTME: Defines the shapes exchanged between the page fetcher, the aggregator and callers

package domain

import "time"

// RawItem is a single listing as returned by the upstream shopping search API.
// Title may contain markup and LPrice is numeric text.
type RawItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image,omitempty"`
	LPrice      string `json:"lprice"`
	HPrice      string `json:"hprice,omitempty"`
	MallName    string `json:"mallName"`
	ProductID   string `json:"productId,omitempty"`
	ProductType string `json:"productType"`
	Brand       string `json:"brand,omitempty"`
	Maker       string `json:"maker,omitempty"`
	Category1   string `json:"category1,omitempty"`
	Category2   string `json:"category2,omitempty"`
	Category3   string `json:"category3,omitempty"`
	Category4   string `json:"category4,omitempty"`
}

// RawPage is one upstream response
type RawPage struct {
	LastBuildDate string    `json:"lastBuildDate,omitempty"`
	Total         int       `json:"total"`
	Start         int       `json:"start,omitempty"`
	Display       int       `json:"display,omitempty"`
	Items         []RawItem `json:"items"`
}

// Position classifies an item's price relative to the caller's threshold
type Position string

const (
	// PositionAtOrAbove marks items priced at or above the threshold
	PositionAtOrAbove Position = "up"

	// PositionBelow marks items priced below the threshold
	PositionBelow Position = "down"
)

// PositionFor returns the position of price against threshold.
// Equality counts as at-or-above.
func PositionFor(price, threshold int) Position {
	if price >= threshold {
		return PositionAtOrAbove
	}
	return PositionBelow
}

// NormalizedItem is a cleaned and classified listing
type NormalizedItem struct {
	Name        string   `json:"name"`
	Link        string   `json:"link"`
	Mall        string   `json:"mall"`
	Price       int      `json:"price"`
	Position    Position `json:"position"`
	ProductType string   `json:"productType"`
}

// SearchResult is the merged outcome of one search invocation
type SearchResult struct {
	// Query is the trimmed query that was sent upstream
	Query string

	// Threshold is the parsed price threshold items were classified against
	Threshold int

	// Total is the provider-reported total from the first page,
	// not the number of items actually retrieved
	Total int

	// Items are in page order, then provider order within a page
	Items []NormalizedItem

	// Raw holds every page that was fetched successfully, first page first
	Raw []RawPage

	// SearchedAt is when the aggregation finished
	SearchedAt time.Time

	// DroppedPages lists 1-based page numbers that failed and were skipped
	DroppedPages []int
}

// Retrieved returns how many items were actually merged
func (r *SearchResult) Retrieved() int {
	return len(r.Items)
}

// IsPartial reports whether any page beyond the first was dropped
func (r *SearchResult) IsPartial() bool {
	return len(r.DroppedPages) > 0
}
