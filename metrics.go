package colstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIndexBuild is called after an index is built over a column.
	// rows is the number of rows replayed into the index.
	RecordIndexBuild(column string, rows int, duration time.Duration, err error)

	// RecordSelect is called after each selection. candidates is the number
	// of rows left after index fusion, matched the number returned. exact is
	// true when no candidate needed verification.
	RecordSelect(candidates, matched int, exact bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndexBuild(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelect(int, int, bool, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexBuildCount      atomic.Int64
	IndexBuildErrors     atomic.Int64
	IndexBuildRows       atomic.Int64
	IndexBuildTotalNanos atomic.Int64
	SelectCount          atomic.Int64
	SelectErrors         atomic.Int64
	SelectExact          atomic.Int64
	SelectCandidates     atomic.Int64
	SelectMatched        atomic.Int64
	SelectTotalNanos     atomic.Int64
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(_ string, rows int, duration time.Duration, err error) {
	b.IndexBuildCount.Add(1)
	b.IndexBuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexBuildErrors.Add(1)
		return
	}
	b.IndexBuildRows.Add(int64(rows))
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(candidates, matched int, exact bool, duration time.Duration, err error) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SelectErrors.Add(1)
		return
	}
	if exact {
		b.SelectExact.Add(1)
	}
	b.SelectCandidates.Add(int64(candidates))
	b.SelectMatched.Add(int64(matched))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IndexBuildCount:    b.IndexBuildCount.Load(),
		IndexBuildErrors:   b.IndexBuildErrors.Load(),
		IndexBuildRows:     b.IndexBuildRows.Load(),
		IndexBuildAvgNanos: avg(b.IndexBuildTotalNanos.Load(), b.IndexBuildCount.Load()),
		SelectCount:        b.SelectCount.Load(),
		SelectErrors:       b.SelectErrors.Load(),
		SelectExact:        b.SelectExact.Load(),
		SelectCandidates:   b.SelectCandidates.Load(),
		SelectMatched:      b.SelectMatched.Load(),
		SelectAvgNanos:     avg(b.SelectTotalNanos.Load(), b.SelectCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IndexBuildCount    int64
	IndexBuildErrors   int64
	IndexBuildRows     int64
	IndexBuildAvgNanos int64
	SelectCount        int64
	SelectErrors       int64
	SelectExact        int64
	SelectCandidates   int64
	SelectMatched      int64
	SelectAvgNanos     int64
}
