package store

import (
	"iter"
	"sync"
	"time"
)

// DefaultCapacity bounds the ledger to the most recent predictions; the
// cumulative counters keep counting past it.
const DefaultCapacity = 1000

// trendHours is the span of the dashboard trend, one bucket per clock hour.
const trendHours = 24

// MemoryStore is the process-lifetime Store implementation. Gin serves
// requests on concurrent goroutines, so every operation takes the mutex;
// Record is atomic with respect to all reads.
type MemoryStore struct {
	mu       sync.RWMutex
	ledger   []Event
	capacity int
	total    int
	byRisk   map[string]int
}

// NewMemoryStore creates an empty store bounded to capacity events.
// Non-positive capacities fall back to DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		byRisk:   map[string]int{"low": 0, "medium": 0, "high": 0},
	}
}

// Record appends e, increments the cumulative counters, and drops the oldest
// entries so at most capacity remain.
func (m *MemoryStore) Record(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ledger = append(m.ledger, e)
	m.total++
	m.byRisk[e.RiskLevel]++

	if len(m.ledger) > m.capacity {
		over := len(m.ledger) - m.capacity
		copy(m.ledger, m.ledger[over:])
		m.ledger = m.ledger[:m.capacity]
	}
}

// RecentWithinWindow yields ledger events newer than now−d, oldest first.
// Each iteration re-reads the ledger, so the sequence can be ranged over
// more than once.
func (m *MemoryStore) RecentWithinWindow(d time.Duration) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		cutoff := time.Now().Add(-d)

		m.mu.RLock()
		defer m.mu.RUnlock()
		for _, e := range m.ledger {
			if !e.Timestamp.After(cutoff) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// HourlyTrend buckets the last 24 hours of events by hour-of-day label.
// Buckets are returned newest first; the dashboard reverses them before
// exposure. Bucketing is by clock-hour label, not by rolling slot, so two
// events a day apart with the same hour merge into one bucket.
//
// Labels follow now's zone; events are stamped in UTC, so each timestamp is
// converted into now's location before formatting or the buckets would
// shift by the zone offset.
func (m *MemoryStore) HourlyTrend(now time.Time) ([]string, []int) {
	labels := make([]string, trendHours)
	index := make(map[string]int, trendHours)
	for i := 0; i < trendHours; i++ {
		label := now.Add(-time.Duration(i) * time.Hour).Format("15:00")
		labels[i] = label
		index[label] = i
	}

	counts := make([]int, trendHours)
	cutoff := now.Add(-trendHours * time.Hour)

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.ledger {
		if !e.Timestamp.After(cutoff) {
			continue
		}
		if i, ok := index[e.Timestamp.In(now.Location()).Format("15:00")]; ok {
			counts[i]++
		}
	}
	return labels, counts
}

// RecentFeed returns up to limit events, most recent first.
func (m *MemoryStore) RecentFeed(limit int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.ledger) {
		limit = len(m.ledger)
	}
	out := make([]Event, 0, limit)
	for i := len(m.ledger) - 1; i >= len(m.ledger)-limit; i-- {
		out = append(out, m.ledger[i])
	}
	return out
}

// Snapshot copies the cumulative counters under one lock acquisition.
func (m *MemoryStore) Snapshot() Totals {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dist := make(map[string]int, len(m.byRisk))
	for k, v := range m.byRisk {
		dist[k] = v
	}
	return Totals{
		TotalPredictions: m.total,
		RiskDistribution: dist,
	}
}

// Len reports the current ledger length.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ledger)
}
