// ABOUTME: History ledger keeps the most recent (query, threshold) searches in memory
// ABOUTME: Repeated searches are promoted to the front and the oldest entry is evicted past capacity

package history

import (
	"sync"
	"time"

	"pricewatch-api/core/domain"
)

// DefaultCapacity is the number of searches kept when no capacity is given
const DefaultCapacity = 10

// Ledger is a bounded, deduplicated, most-recent-first list of searches.
// It lives for the lifetime of the process and is safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	entries  []domain.HistoryEntry
	capacity int
	now      func() time.Time
}

// Option configures a Ledger
type Option func(*Ledger)

// WithCapacity sets the maximum number of entries; values below 1 are ignored
func WithCapacity(capacity int) Option {
	return func(l *Ledger) {
		if capacity > 0 {
			l.capacity = capacity
		}
	}
}

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLedger creates an empty ledger
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.entries = make([]domain.HistoryEntry, 0, l.capacity+1)
	return l
}

// Record removes any entry for the same pair, inserts a fresh one at the
// front and trims the tail past capacity, all under one lock.
func (l *Ledger) Record(query string, threshold int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, entry := range l.entries {
		if entry.SameSearch(query, threshold) {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			break
		}
	}

	l.entries = append(l.entries, domain.HistoryEntry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = domain.HistoryEntry{
		Query:     query,
		Threshold: threshold,
		Timestamp: l.now(),
	}

	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// List returns a copy of the entries, most recent first
func (l *Ledger) List() []domain.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]domain.HistoryEntry, len(l.entries))
	copy(result, l.entries)
	return result
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Capacity returns the maximum number of entries
func (l *Ledger) Capacity() int {
	return l.capacity
}
