package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch-api/core/domain"
	"pricewatch-api/core/interfaces"
)

var _ interfaces.HistoryStore = (*Ledger)(nil)

// tickingClock returns strictly increasing timestamps
func tickingClock() func() time.Time {
	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	n := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func TestNewLedger_Empty(t *testing.T) {
	ledger := NewLedger()

	assert.Equal(t, 0, ledger.Len())
	assert.Empty(t, ledger.List())
	assert.NotNil(t, ledger.List())
	assert.Equal(t, DefaultCapacity, ledger.Capacity())
}

func TestWithCapacity_IgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewLedger(WithCapacity(0)).Capacity())
	assert.Equal(t, 3, NewLedger(WithCapacity(3)).Capacity())
}

func TestRecord_MostRecentFirst(t *testing.T) {
	ledger := NewLedger(WithClock(tickingClock()))

	ledger.Record("carrier 20in", 129000)
	ledger.Record("backpack", 50000)

	entries := ledger.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "backpack", entries[0].Query)
	assert.Equal(t, 50000, entries[0].Threshold)
	assert.Equal(t, "carrier 20in", entries[1].Query)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
}

func TestRecord_DedupTwiceInARow(t *testing.T) {
	ledger := NewLedger(WithClock(tickingClock()))

	ledger.Record("carrier 20in", 129000)
	ledger.Record("carrier 20in", 129000)

	entries := ledger.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "carrier 20in", entries[0].Query)
	assert.Equal(t, 129000, entries[0].Threshold)
}

func TestRecord_PromotesExistingEntry(t *testing.T) {
	clock := tickingClock()
	ledger := NewLedger(WithClock(clock))

	ledger.Record("a", 1)
	ledger.Record("b", 2)
	ledger.Record("c", 3)
	before := ledger.List()[2].Timestamp

	ledger.Record("a", 1)

	entries := ledger.List()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"a", "c", "b"}, queries(entries))
	assert.True(t, entries[0].Timestamp.After(before), "promoted entry gets a fresh timestamp")
}

func TestRecord_SameQueryDifferentThresholdIsDistinct(t *testing.T) {
	ledger := NewLedger()

	ledger.Record("carrier", 100)
	ledger.Record("carrier", 200)

	entries := ledger.List()
	require.Len(t, entries, 2)
	assert.Equal(t, 200, entries[0].Threshold)
	assert.Equal(t, 100, entries[1].Threshold)
}

func TestRecord_EvictsOldestPastCapacity(t *testing.T) {
	ledger := NewLedger(WithClock(tickingClock()))

	for i := 1; i <= 11; i++ {
		ledger.Record(fmt.Sprintf("q%d", i), i)
	}

	entries := ledger.List()
	require.Len(t, entries, 10)
	assert.Equal(t, "q11", entries[0].Query)
	assert.Equal(t, "q2", entries[9].Query)
	for _, e := range entries {
		assert.NotEqual(t, "q1", e.Query, "oldest entry should have been evicted")
	}
}

func TestRecord_PromotionProtectsFromEviction(t *testing.T) {
	ledger := NewLedger(WithCapacity(3))

	ledger.Record("a", 1)
	ledger.Record("b", 2)
	ledger.Record("c", 3)
	ledger.Record("a", 1)
	ledger.Record("d", 4)

	assert.Equal(t, []string{"d", "a", "c"}, queries(ledger.List()))
}

func TestList_ReturnsSnapshot(t *testing.T) {
	ledger := NewLedger()
	ledger.Record("a", 1)

	snapshot := ledger.List()
	snapshot[0].Query = "mutated"
	ledger.Record("b", 2)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, []string{"b", "a"}, queries(ledger.List()))
}

func TestRecord_Concurrent(t *testing.T) {
	ledger := NewLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ledger.Record(fmt.Sprintf("q%d", n%15), n%15)
			_ = ledger.List()
		}(i)
	}
	wg.Wait()

	entries := ledger.List()
	assert.Len(t, entries, 10)

	seen := make(map[string]bool)
	for _, e := range entries {
		key := fmt.Sprintf("%s/%d", e.Query, e.Threshold)
		assert.False(t, seen[key], "duplicate entry %s", key)
		seen[key] = true
	}
}

func queries(entries []domain.HistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out
}
