package store

import "sync/atomic"

// MetricsSnapshot is a point-in-time copy of a store's counters.
type MetricsSnapshot struct {
	Dispatched  int64
	Reduced     int64
	Unhandled   int64
	Subscribers int64
}

// Metrics counts store activity. Safe for concurrent use.
type Metrics struct {
	dispatched  atomic.Int64
	reduced     atomic.Int64
	unhandled   atomic.Int64
	subscribers atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordDispatched() {
	m.dispatched.Add(1)
}

func (m *Metrics) RecordReduced() {
	m.reduced.Add(1)
}

func (m *Metrics) RecordUnhandled() {
	m.unhandled.Add(1)
}

func (m *Metrics) RecordSubscriber(delta int) {
	m.subscribers.Add(int64(delta))
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Dispatched:  m.dispatched.Load(),
		Reduced:     m.reduced.Load(),
		Unhandled:   m.unhandled.Load(),
		Subscribers: m.subscribers.Load(),
	}
}
