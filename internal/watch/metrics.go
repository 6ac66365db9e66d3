package watch

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/yairfalse/ec2model/ec2/client"
)

// Metrics holds the watcher's instruments, named after OTEL semantic
// conventions.
type Metrics struct {
	runs              metric.Int64Counter
	runDuration       metric.Float64Histogram
	checks            metric.Int64Counter
	permission        metric.Int64Gauge
	permissionChanges metric.Int64Counter
	storeOperations   metric.Int64Counter
}

// NewMetrics creates the watcher instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runs, err := meter.Int64Counter(
		"ec2model.watch.runs",
		metric.WithDescription("Number of probe rounds"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"ec2model.watch.run.duration",
		metric.WithDescription("Duration of a probe round"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	checks, err := meter.Int64Counter(
		"ec2model.watch.checks",
		metric.WithDescription("Number of dry-run permission checks"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	permission, err := meter.Int64Gauge(
		"ec2model.watch.permission",
		metric.WithDescription("Latest permission per probe: 1 granted, 0 denied, -1 unknown"),
	)
	if err != nil {
		return nil, err
	}

	permissionChanges, err := meter.Int64Counter(
		"ec2model.watch.permission_changes",
		metric.WithDescription("Number of times a probe's permission changed"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, err
	}

	storeOperations, err := meter.Int64Counter(
		"ec2model.store.operations",
		metric.WithDescription("Number of check store operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		runs:              runs,
		runDuration:       runDuration,
		checks:            checks,
		permission:        permission,
		permissionChanges: permissionChanges,
		storeOperations:   storeOperations,
	}, nil
}

// RecordRun records a finished probe round.
func (m *Metrics) RecordRun(ctx context.Context, status string, durationSeconds float64) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.runs.Add(ctx, 1, attrs)
	m.runDuration.Record(ctx, durationSeconds, attrs)
}

// RecordCheck records one permission check and the probe's current state.
func (m *Metrics) RecordCheck(ctx context.Context, probe, operation string, perm client.Permission) {
	m.checks.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("probe", probe),
			attribute.String("ec2.operation", operation),
			attribute.String("permission", perm.String()),
		),
	)
	m.permission.Record(ctx, permissionValue(perm),
		metric.WithAttributes(attribute.String("probe", probe)),
	)
}

// RecordPermissionChange records a probe whose permission flipped.
func (m *Metrics) RecordPermissionChange(ctx context.Context, probe string, to client.Permission) {
	m.permissionChanges.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("probe", probe),
			attribute.String("permission", to.String()),
		),
	)
}

// RecordStoreOperation records a store operation
func (m *Metrics) RecordStoreOperation(ctx context.Context, operation string, status string, errorType string) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.String("status", status),
	}
	if errorType != "" {
		attrs = append(attrs, attribute.String("error.type", errorType))
	}

	m.storeOperations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func permissionValue(p client.Permission) int64 {
	switch p {
	case client.PermissionGranted:
		return 1
	case client.PermissionDenied:
		return 0
	default:
		return -1
	}
}
