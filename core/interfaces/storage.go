// ABOUTME: Storage interfaces for process-lifetime state
// ABOUTME: Defines the contract for the recent search history

package interfaces

import "pricewatch-api/core/domain"

// HistoryStore keeps the recent (query, threshold) searches, most recent first
type HistoryStore interface {
	// Record promotes or inserts the pair at the front of the history
	Record(query string, threshold int)

	// List returns a snapshot of the history, most recent first
	List() []domain.HistoryEntry
}
