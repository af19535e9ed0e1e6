// Package store keeps the analytics ledger of recent predictions together
// with the cumulative risk counters consumed by the dashboard.
package store

import (
	"iter"
	"time"
)

// Event is one recorded prediction. Events are immutable after Record and
// owned exclusively by the store.
type Event struct {
	ID         string                 `json:"id"`
	Timestamp  time.Time              `json:"timestamp"`
	Input      map[string]interface{} `json:"prediction"`
	RiskLevel  string                 `json:"risk_level"`
	Confidence float64                `json:"confidence"`
	UserAgent  string                 `json:"user_agent"`
}

// Totals is a consistent snapshot of the cumulative counters. The counters
// are all-time values: ledger eviction never decrements them.
type Totals struct {
	TotalPredictions int
	RiskDistribution map[string]int
}

// Store is the mutation/query API over prediction analytics. The in-memory
// implementation is the only one today; the interface keeps callers unaware
// of that so a durable implementation can slot in later.
type Store interface {
	// Record appends the event, bumps the cumulative counters, and evicts
	// the oldest entries once the ledger exceeds its capacity.
	Record(e Event)

	// RecentWithinWindow yields events whose timestamp is strictly after
	// now minus d, oldest first. The sequence is restartable.
	RecentWithinWindow(d time.Duration) iter.Seq[Event]

	// HourlyTrend returns 24 hour-of-day buckets ("HH:00") covering the
	// 24 hours ending at now, newest bucket first. Events from different
	// calendar days that share an hour label share a bucket.
	HourlyTrend(now time.Time) (labels []string, counts []int)

	// RecentFeed returns the last limit events, most recent first.
	RecentFeed(limit int) []Event

	// Snapshot returns the cumulative counters as one consistent pair.
	Snapshot() Totals
}
