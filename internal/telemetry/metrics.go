// Package telemetry provides OpenTelemetry instrumentation for the sync agent.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncMetricsMeterName is the name used for the sync metrics meter.
const SyncMetricsMeterName = "github.com/MKhiriev/go-sync-keeper/sync"

// Outcomes of a settled queued request.
const (
	OutcomeSynced   = "synced"
	OutcomeRetry    = "retry"
	OutcomeRejected = "rejected"
)

// SyncMetrics holds the OpenTelemetry instruments for queue drains.
type SyncMetrics struct {
	runDuration metric.Float64Histogram
	settled     metric.Int64Counter
	queueDepth  metric.Int64Gauge
}

// NewSyncMetrics creates a new SyncMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	runDuration, err := meter.Float64Histogram(
		"sync_keeper_run_duration_seconds",
		metric.WithDescription("Duration of queue drain runs in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 300),
	)
	if err != nil {
		return nil, err
	}

	settled, err := meter.Int64Counter(
		"sync_keeper_requests_settled_total",
		metric.WithDescription("Queued requests settled by drain runs"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	queueDepth, err := meter.Int64Gauge(
		"sync_keeper_queue_depth",
		metric.WithDescription("Number of records in the request queue"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		runDuration: runDuration,
		settled:     settled,
		queueDepth:  queueDepth,
	}, nil
}

// RecordRun records the duration of a finished drain run with its final status.
func (m *SyncMetrics) RecordRun(ctx context.Context, duration time.Duration, status string) {
	if m == nil || m.runDuration == nil {
		return
	}

	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("status", status)))
}

// RecordSettled counts one settled request.
func (m *SyncMetrics) RecordSettled(ctx context.Context, outcome string) {
	if m == nil || m.settled == nil {
		return
	}

	m.settled.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordQueueDepth records the current queue size.
func (m *SyncMetrics) RecordQueueDepth(ctx context.Context, depth int64) {
	if m == nil || m.queueDepth == nil {
		return
	}

	m.queueDepth.Record(ctx, depth)
}
