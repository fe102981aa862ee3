package unitgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordConversion is called after each conversion.
	// duration is the total time taken, err is nil if successful.
	RecordConversion(duration time.Duration, err error)

	// RecordPropagation is called after each measurement operation.
	RecordPropagation(op string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConversion(time.Duration, error)           {}
func (NoopMetricsCollector) RecordPropagation(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ConversionCount      atomic.Int64
	ConversionErrors     atomic.Int64
	ConversionTotalNanos atomic.Int64
	PropagationCount     atomic.Int64
	PropagationErrors    atomic.Int64
	PropagationNanos     atomic.Int64

	// Errors by kind, indexed by ErrorKind.
	kinds [KindCatalog + 1]atomic.Int64
}

// RecordConversion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConversion(duration time.Duration, err error) {
	b.ConversionCount.Add(1)
	b.ConversionTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConversionErrors.Add(1)
		b.kinds[KindOf(err)].Add(1)
	}
}

// RecordPropagation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPropagation(_ string, duration time.Duration, err error) {
	b.PropagationCount.Add(1)
	b.PropagationNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PropagationErrors.Add(1)
		b.kinds[KindOf(err)].Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		ConversionCount:     b.ConversionCount.Load(),
		ConversionErrors:    b.ConversionErrors.Load(),
		ConversionAvgNanos:  avg(b.ConversionTotalNanos.Load(), b.ConversionCount.Load()),
		PropagationCount:    b.PropagationCount.Load(),
		PropagationErrors:   b.PropagationErrors.Load(),
		PropagationAvgNanos: avg(b.PropagationNanos.Load(), b.PropagationCount.Load()),
		ErrorsByKind:        make(map[ErrorKind]int64),
	}
	for k := range b.kinds {
		if n := b.kinds[k].Load(); n > 0 {
			s.ErrorsByKind[ErrorKind(k)] = n
		}
	}
	return s
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConversionCount     int64
	ConversionErrors    int64
	ConversionAvgNanos  int64
	PropagationCount    int64
	PropagationErrors   int64
	PropagationAvgNanos int64
	ErrorsByKind        map[ErrorKind]int64
}
