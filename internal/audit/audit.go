package audit

import (
	"sync"
	"time"
)

// DefaultCapacity bounds the in-memory audit trail.
const DefaultCapacity = 1000

// Entry is one audit record.
type Entry struct {
	Time    time.Time `json:"time"`
	Actor   string    `json:"actor"`
	Action  string    `json:"action"`
	Details string    `json:"details,omitempty"`
}

// Log is a bounded, thread-safe, in-memory audit trail. Oldest entries
// are evicted on overflow.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int

	driftCount int
}

// New creates an audit log. capacity <= 0 falls back to DefaultCapacity.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Record appends an entry.
func (l *Log) Record(actor, action, details string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		Time:    time.Now().UTC(),
		Actor:   actor,
		Action:  action,
		Details: details,
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// RecordDrift counts and records a post-filter rejection, the signal used
// to monitor how often generation drifts into forbidden territory.
func (l *Log) RecordDrift(actor, details string) {
	l.mu.Lock()
	l.driftCount++
	l.mu.Unlock()
	l.Record(actor, "post_filter_drift", details)
}

// DriftCount reports how many post-filter rejections have occurred.
func (l *Log) DriftCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.driftCount
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
