package flatstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAppend is called after each append operation.
	RecordAppend(duration time.Duration)

	// RecordSearch is called after each search operation.
	// hit reports whether a matching record was found.
	RecordSearch(duration time.Duration, hit bool)

	// RecordUpdate is called after each update operation.
	RecordUpdate(duration time.Duration)

	// RecordFlush is called after each flush. err is nil if successful.
	RecordFlush(duration time.Duration, err error)

	// RecordLoad is called after each load. count is the number of records
	// loaded, err is nil if successful.
	RecordLoad(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(time.Duration)           {}
func (NoopMetricsCollector) RecordSearch(time.Duration, bool)     {}
func (NoopMetricsCollector) RecordUpdate(time.Duration)           {}
func (NoopMetricsCollector) RecordFlush(time.Duration, error)     {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount      atomic.Int64
	AppendTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchHits       atomic.Int64
	SearchTotalNanos atomic.Int64
	UpdateCount      atomic.Int64
	FlushCount       atomic.Int64
	FlushErrors      atomic.Int64
	FlushTotalNanos  atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadedRecords    atomic.Int64
}

func (m *BasicMetricsCollector) RecordAppend(d time.Duration) {
	m.AppendCount.Add(1)
	m.AppendTotalNanos.Add(int64(d))
}

func (m *BasicMetricsCollector) RecordSearch(d time.Duration, hit bool) {
	m.SearchCount.Add(1)
	if hit {
		m.SearchHits.Add(1)
	}
	m.SearchTotalNanos.Add(int64(d))
}

func (m *BasicMetricsCollector) RecordUpdate(time.Duration) {
	m.UpdateCount.Add(1)
}

func (m *BasicMetricsCollector) RecordFlush(d time.Duration, err error) {
	m.FlushCount.Add(1)
	if err != nil {
		m.FlushErrors.Add(1)
	}
	m.FlushTotalNanos.Add(int64(d))
}

func (m *BasicMetricsCollector) RecordLoad(count int, _ time.Duration, err error) {
	m.LoadCount.Add(1)
	if err != nil {
		m.LoadErrors.Add(1)
		return
	}
	m.LoadedRecords.Add(int64(count))
}
