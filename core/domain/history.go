// ABOUTME: History domain model represents one recent (query, threshold) search
// ABOUTME: Entries are identified by the exact query and threshold pair

package domain

import "time"

// HistoryEntry is one recorded search
type HistoryEntry struct {
	Query     string
	Threshold int
	Timestamp time.Time
}

// SameSearch reports whether the entry was recorded for the given pair
func (h HistoryEntry) SameSearch(query string, threshold int) bool {
	return h.Query == query && h.Threshold == threshold
}
