package watch

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/yairfalse/ec2model/ec2"
	"github.com/yairfalse/ec2model/ec2/client"
	"github.com/yairfalse/ec2model/internal/config"
	"github.com/yairfalse/ec2model/internal/store"
	"github.com/yairfalse/ec2model/internal/telemetry"
	"github.com/yairfalse/ec2model/pkg/request"
)

type fakeChecker struct {
	mu      sync.Mutex
	results map[string][]result
	calls   []string
}

type result struct {
	perm client.Permission
	err  error
}

// CheckPermission pops the next scripted result for the operation and
// repeats the last one once the script runs out.
func (f *fakeChecker) CheckPermission(ctx context.Context, in request.DryRunSupported) (client.Permission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	op := in.OperationName()
	f.calls = append(f.calls, op)
	script := f.results[op]
	if len(script) == 0 {
		return client.PermissionUnknown, errors.New("no result scripted")
	}
	r := script[0]
	if len(script) > 1 {
		f.results[op] = script[1:]
	}
	return r.perm, r.err
}

type failingRecorder struct{}

func (failingRecorder) Record(store.Check) (int64, bool, error) {
	return 0, false, errors.New("disk full")
}

type fixture struct {
	watcher *Watcher
	store   *store.Store
	checker *fakeChecker
	reader  *sdkmetric.ManualReader
	logs    *bytes.Buffer
}

func newFixture(t *testing.T, checker *fakeChecker, probes ...Probe) *fixture {
	t.Helper()

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	var logs bytes.Buffer
	logger := &telemetry.Logger{Logger: zerolog.New(&logs)}

	w, err := New(Config{Interval: time.Hour, Probes: probes}, checker, st,
		WithLogger(logger), WithMeter(provider.Meter("test")))
	require.NoError(t, err)

	return &fixture{watcher: w, store: st, checker: checker, reader: reader, logs: &logs}
}

func (f *fixture) counter(t *testing.T, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, f.reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func deleteProbe() Probe {
	return Probe{Name: "delete-scratch", Input: new(ec2.DeleteVolumeInput).WithVolumeId("vol-1")}
}

func stopProbe() Probe {
	return Probe{Name: "stop-web", Input: new(ec2.StopInstancesInput).WithInstanceIds("i-1")}
}

func TestNew(t *testing.T) {
	_, err := New(Config{Interval: time.Minute}, &fakeChecker{}, failingRecorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no probes")

	_, err = New(Config{Probes: []Probe{deleteProbe()}}, &fakeChecker{}, failingRecorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be positive")

	w, err := New(Config{Interval: time.Minute, Probes: []Probe{deleteProbe()}}, &fakeChecker{}, failingRecorder{})
	require.NoError(t, err)
	assert.NotNil(t, w.logger)
	assert.NotNil(t, w.metrics)
}

func TestWatcher_RunOnce(t *testing.T) {
	checker := &fakeChecker{results: map[string][]result{
		"DeleteVolume":  {{perm: client.PermissionGranted}},
		"StopInstances": {{perm: client.PermissionDenied}},
	}}
	f := newFixture(t, checker, deleteProbe(), stopProbe())

	sum := f.watcher.RunOnce(context.Background())
	assert.Equal(t, Summary{Granted: 1, Denied: 1}, sum)
	assert.Equal(t, []string{"DeleteVolume", "StopInstances"}, checker.calls)

	state, err := f.store.Latest("delete-scratch")
	require.NoError(t, err)
	assert.Equal(t, "granted", state.Permission)
	assert.Equal(t, "DeleteVolume", state.Operation)

	state, err = f.store.Latest("stop-web")
	require.NoError(t, err)
	assert.Equal(t, "denied", state.Permission)

	assert.Equal(t, int64(2), f.counter(t, "ec2model.watch.checks"))
	assert.Equal(t, int64(1), f.counter(t, "ec2model.watch.runs"))
	assert.Equal(t, int64(2), f.counter(t, "ec2model.store.operations"))
	assert.Equal(t, int64(1), f.watcher.RunCount())
	assert.Contains(t, f.logs.String(), "permission check completed")
}

func TestWatcher_DetectsChange(t *testing.T) {
	checker := &fakeChecker{results: map[string][]result{
		"DeleteVolume": {
			{perm: client.PermissionGranted},
			{perm: client.PermissionGranted},
			{perm: client.PermissionDenied},
		},
	}}
	f := newFixture(t, checker, deleteProbe())

	assert.Equal(t, 0, f.watcher.RunOnce(context.Background()).Changed)
	assert.Equal(t, 0, f.watcher.RunOnce(context.Background()).Changed)
	assert.Equal(t, 1, f.watcher.RunOnce(context.Background()).Changed)

	assert.Equal(t, int64(1), f.counter(t, "ec2model.watch.permission_changes"))
	assert.Contains(t, f.logs.String(), "permission changed")

	history, err := f.store.History("delete-scratch", 0)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestWatcher_CheckFailure(t *testing.T) {
	checker := &fakeChecker{results: map[string][]result{
		"DeleteVolume": {{perm: client.PermissionUnknown, err: errors.New("throttled")}},
	}}
	f := newFixture(t, checker, deleteProbe())

	sum := f.watcher.RunOnce(context.Background())
	assert.Equal(t, 1, sum.Failed)

	state, err := f.store.Latest("delete-scratch")
	require.NoError(t, err)
	assert.Equal(t, "unknown", state.Permission)
	assert.Equal(t, "throttled", state.Error)

	health := f.watcher.Health()
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, 1, health.Failed)
	assert.Contains(t, f.logs.String(), "permission check failed")
}

func TestWatcher_TransientFailureIsNotAChange(t *testing.T) {
	checker := &fakeChecker{results: map[string][]result{
		"DeleteVolume": {
			{perm: client.PermissionGranted},
			{perm: client.PermissionUnknown, err: errors.New("throttled")},
			{perm: client.PermissionGranted},
		},
	}}
	f := newFixture(t, checker, deleteProbe())

	var changed []int
	for i := 0; i < 3; i++ {
		changed = append(changed, f.watcher.RunOnce(context.Background()).Changed)
	}
	assert.Equal(t, []int{0, 0, 0}, changed)

	assert.Zero(t, f.counter(t, "ec2model.watch.permission_changes"))
	assert.NotContains(t, f.logs.String(), "permission changed")

	state, err := f.store.Latest("delete-scratch")
	require.NoError(t, err)
	assert.Equal(t, "granted", state.Permission)
	assert.Equal(t, int64(1), state.SinceRev)
	assert.Equal(t, int64(3), state.LastRev)
	assert.Zero(t, state.Changes)
	assert.Empty(t, state.Error)
	assert.Equal(t, "healthy", f.watcher.Health().Status)
}

func TestWatcher_RecordFailure(t *testing.T) {
	checker := &fakeChecker{results: map[string][]result{
		"DeleteVolume": {{perm: client.PermissionGranted}},
	}}

	var logs bytes.Buffer
	w, err := New(Config{Interval: time.Hour, Probes: []Probe{deleteProbe()}}, checker, failingRecorder{},
		WithLogger(&telemetry.Logger{Logger: zerolog.New(&logs)}))
	require.NoError(t, err)

	sum := w.RunOnce(context.Background())
	assert.Equal(t, 1, sum.Granted)
	assert.Zero(t, sum.Changed)
	assert.Contains(t, logs.String(), "failed to record check")
	assert.Contains(t, logs.String(), "disk full")
}

func TestWatcher_CancelledContextSkipsProbes(t *testing.T) {
	checker := &fakeChecker{}
	f := newFixture(t, checker, deleteProbe(), stopProbe())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, Summary{}, f.watcher.RunOnce(ctx))
	assert.Empty(t, checker.calls)
}

func TestWatcher_Start(t *testing.T) {
	checker := &fakeChecker{results: map[string][]result{
		"DeleteVolume": {{perm: client.PermissionGranted}},
	}}
	f := newFixture(t, checker, deleteProbe())
	assert.Equal(t, "starting", f.watcher.Health().Status)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.watcher.Start(ctx)
	}()

	// The first round runs without waiting for the ticker.
	require.Eventually(t, func() bool {
		return f.watcher.RunCount() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)

	health := f.watcher.Health()
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, int64(1), health.Runs)
	assert.False(t, health.LastRun.IsZero())
}

func TestProbesFromConfig(t *testing.T) {
	probes, err := ProbesFromConfig([]config.ProbeConfig{
		{Name: "delete-scratch", Operation: "DeleteVolume", Params: map[string]string{"VolumeId": "vol-1"}},
		{Name: "describe", Operation: "DescribeVolumes"},
	})
	require.NoError(t, err)
	require.Len(t, probes, 2)
	assert.Equal(t, "delete-scratch", probes[0].Name)
	assert.Equal(t, "DeleteVolume", probes[0].Input.OperationName())
	assert.Equal(t, "DescribeVolumes", probes[1].Input.OperationName())

	_, err = ProbesFromConfig([]config.ProbeConfig{{Name: "bad", Operation: "DeleteVolume", Params: map[string]string{"Nope": "1"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe bad")
}

func TestPermissionValue(t *testing.T) {
	assert.Equal(t, int64(1), permissionValue(client.PermissionGranted))
	assert.Equal(t, int64(0), permissionValue(client.PermissionDenied))
	assert.Equal(t, int64(-1), permissionValue(client.PermissionUnknown))
}
