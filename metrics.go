package writer

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runs    *prometheus.CounterVec
//	    latency prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(name string, duration time.Duration, err error) {
//	    p.runs.WithLabelValues(name).Inc()
//	    p.latency.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordRun is called after each run of an instrumented Writer.
	// name identifies the Writer, duration is the time taken and err is a
	// *PanicError if the computation panicked.
	RecordRun(name string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	RunCount      atomic.Int64
	RunErrors     atomic.Int64
	RunTotalNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ string, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.RunCount.Load()
	var avg int64
	if count > 0 {
		avg = b.RunTotalNanos.Load() / count
	}
	return BasicMetricsStats{
		RunCount:    count,
		RunErrors:   b.RunErrors.Load(),
		RunAvgNanos: avg,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	RunCount    int64
	RunErrors   int64
	RunAvgNanos int64
}
