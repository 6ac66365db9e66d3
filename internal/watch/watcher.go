// Package watch runs dry-run permission probes on an interval and records
// each result.
package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/yairfalse/ec2model/ec2/client"
	"github.com/yairfalse/ec2model/internal/config"
	"github.com/yairfalse/ec2model/internal/probe"
	"github.com/yairfalse/ec2model/internal/store"
	"github.com/yairfalse/ec2model/internal/telemetry"
	"github.com/yairfalse/ec2model/pkg/request"
)

// Checker runs a dry-run permission check. *client.Client implements it.
type Checker interface {
	CheckPermission(ctx context.Context, in request.DryRunSupported) (client.Permission, error)
}

// Recorder persists check results. *store.Store implements it.
type Recorder interface {
	Record(c store.Check) (rev int64, changed bool, err error)
}

// Probe is a named permission check.
type Probe struct {
	Name  string
	Input request.DryRunSupported
}

// ProbesFromConfig builds the inputs of the configured probes.
func ProbesFromConfig(cfgs []config.ProbeConfig) ([]Probe, error) {
	probes := make([]Probe, 0, len(cfgs))
	for _, c := range cfgs {
		in, err := probe.Build(c.Operation, c.Params)
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", c.Name, err)
		}
		probes = append(probes, Probe{Name: c.Name, Input: in})
	}
	return probes, nil
}

// Config holds watcher configuration
type Config struct {
	Interval time.Duration
	Probes   []Probe
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger.
func WithLogger(l *telemetry.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithMeter sets the meter the watcher's instruments are created on.
func WithMeter(m metric.Meter) Option {
	return func(w *Watcher) { w.meter = m }
}

// Summary counts the outcomes of one probe round.
type Summary struct {
	Granted int
	Denied  int
	Failed  int
	Changed int
}

// Watcher runs every probe once per interval.
type Watcher struct {
	interval time.Duration
	probes   []Probe
	checker  Checker
	recorder Recorder
	logger   *telemetry.Logger
	meter    metric.Meter
	metrics  *Metrics

	startTime time.Time
	runCount  atomic.Int64

	mu      sync.Mutex
	lastRun time.Time
	last    Summary
}

// New creates a watcher. It needs at least one probe.
func New(cfg Config, checker Checker, recorder Recorder, opts ...Option) (*Watcher, error) {
	if len(cfg.Probes) == 0 {
		return nil, errors.New("watch: no probes configured")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("watch: interval must be positive (got %v)", cfg.Interval)
	}

	w := &Watcher{
		interval:  cfg.Interval,
		probes:    cfg.Probes,
		checker:   checker,
		recorder:  recorder,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = &telemetry.Logger{Logger: log.Logger}
	}
	if w.meter == nil {
		w.meter = otel.Meter("ec2model.watch")
	}

	metrics, err := NewMetrics(w.meter)
	if err != nil {
		return nil, fmt.Errorf("create watch metrics: %w", err)
	}
	w.metrics = metrics

	return w, nil
}

// Start runs a round immediately and then once per interval until ctx is
// done.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info().
		Int("probes", len(w.probes)).
		Dur("interval", w.interval).
		Msg("permission watch started")

	w.RunOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Int64("runs", w.RunCount()).Msg("permission watch stopped")
			return nil
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce checks every probe in order and records the results.
func (w *Watcher) RunOnce(ctx context.Context) Summary {
	start := time.Now()
	var sum Summary

	for _, p := range w.probes {
		if ctx.Err() != nil {
			break
		}
		w.check(ctx, p, &sum)
	}

	status := "success"
	if sum.Failed > 0 {
		status = "partial"
	}
	w.metrics.RecordRun(ctx, status, time.Since(start).Seconds())
	w.runCount.Add(1)

	w.mu.Lock()
	w.lastRun = time.Now()
	w.last = sum
	w.mu.Unlock()

	w.logger.Debug().
		Int("granted", sum.Granted).
		Int("denied", sum.Denied).
		Int("failed", sum.Failed).
		Int("changed", sum.Changed).
		Msg("probe round completed")

	return sum
}

func (w *Watcher) check(ctx context.Context, p Probe, sum *Summary) {
	op := p.Input.OperationName()
	w.logger.LogCheckStart(ctx, p.Name, attribute.String("ec2.operation", op))

	perm, checkErr := w.checker.CheckPermission(ctx, p.Input)
	w.logger.LogCheckEnd(ctx, p.Name, perm.String(), checkErr)

	switch {
	case checkErr != nil:
		sum.Failed++
	case perm == client.PermissionGranted:
		sum.Granted++
	case perm == client.PermissionDenied:
		sum.Denied++
	}
	w.metrics.RecordCheck(ctx, p.Name, op, perm)

	c := store.Check{Probe: p.Name, Operation: op, Permission: perm.String()}
	if checkErr != nil {
		c.Error = checkErr.Error()
	}

	_, changed, err := w.recorder.Record(c)
	if err != nil {
		w.metrics.RecordStoreOperation(ctx, "record", "error", fmt.Sprintf("%T", err))
		w.logger.WithContext(ctx).Error().Err(err).Str("probe", p.Name).Msg("failed to record check")
		return
	}
	w.metrics.RecordStoreOperation(ctx, "record", "success", "")

	// A failed check leaves the known permission in place.
	if changed && checkErr == nil {
		sum.Changed++
		w.metrics.RecordPermissionChange(ctx, p.Name, perm)
		w.logger.WithContext(ctx).Warn().
			Str("probe", p.Name).
			Str("ec2.operation", op).
			Str("permission", perm.String()).
			Msg("permission changed")
	}
}

// HealthStatus represents watcher health
type HealthStatus struct {
	Status  string    `json:"status"`
	Uptime  int64     `json:"uptime_seconds"`
	Runs    int64     `json:"runs"`
	LastRun time.Time `json:"last_run,omitempty"`
	Failed  int       `json:"last_run_failed"`
}

// Health reports "starting" before the first round, "degraded" when the
// last round had failed checks and "healthy" otherwise.
func (w *Watcher) Health() HealthStatus {
	w.mu.Lock()
	lastRun, last := w.lastRun, w.last
	w.mu.Unlock()

	status := "healthy"
	switch {
	case lastRun.IsZero():
		status = "starting"
	case last.Failed > 0:
		status = "degraded"
	}

	return HealthStatus{
		Status:  status,
		Uptime:  int64(time.Since(w.startTime).Seconds()),
		Runs:    w.RunCount(),
		LastRun: lastRun,
		Failed:  last.Failed,
	}
}

// RunCount returns total probe rounds run
func (w *Watcher) RunCount() int64 {
	return w.runCount.Load()
}
