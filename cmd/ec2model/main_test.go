package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/ec2model/ec2/client"
	"github.com/yairfalse/ec2model/internal/watch"
	"github.com/yairfalse/ec2model/pkg/request"
)

type stubChecker struct {
	perms map[string]client.Permission
	seen  []request.DryRunSupported
}

func (s *stubChecker) CheckPermission(ctx context.Context, in request.DryRunSupported) (client.Permission, error) {
	s.seen = append(s.seen, in)
	return s.perms[in.OperationName()], nil
}

func useChecker(t *testing.T, c watch.Checker) {
	t.Helper()
	orig := newChecker
	newChecker = func(context.Context) (watch.Checker, error) { return c, nil }
	t.Cleanup(func() { newChecker = orig })
}

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, logLevel, logFormat, region, profile, endpoint = "", "", "", "", "", ""
	dryRunSend, dryRunHeaders, dryRunQuery = false, nil, nil
	watchInterval, watchStateDir, watchListen, watchOnce = 0, "", "", false
	historyLimit, historyOutput, historyDir = 10, "table", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestEnums(t *testing.T) {
	out, err := execute(t, "enums")
	require.NoError(t, err)
	assert.Contains(t, out, "VolumeType")
	assert.Contains(t, out, "TransitGatewayRouteState")

	out, err = execute(t, "enums", "VolumeType")
	require.NoError(t, err)
	assert.Contains(t, out, "gp3\n")

	_, err = execute(t, "enums", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown enum Nope")
}

func TestEnumsParse(t *testing.T) {
	out, err := execute(t, "enums", "parse", "VolumeType", "gp3")
	require.NoError(t, err)
	assert.Equal(t, "VolumeType.gp3\n", out)

	_, err = execute(t, "enums", "parse", "VolumeType", "GP3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized value "GP3"`)
}

func TestShapes(t *testing.T) {
	out, err := execute(t, "shapes")
	require.NoError(t, err)
	assert.Contains(t, out, "DeleteVolumeInput\n")
	assert.Contains(t, out, "TagSpecification\n")

	out, err = execute(t, "shapes", "show", "Tag")
	require.NoError(t, err)
	assert.Contains(t, out, "shape: Tag")
	assert.Contains(t, out, "hash:")

	_, err = execute(t, "shapes", "show", "Nope")
	require.Error(t, err)
}

func TestOperations(t *testing.T) {
	out, err := execute(t, "operations")
	require.NoError(t, err)
	assert.Regexp(t, `DeleteVolume\s+dry-run\n`, out)
	assert.Contains(t, out, "DescribeClientVpnEndpoints\n")
}

func TestDryRun_Print(t *testing.T) {
	out, err := execute(t, "dry-run", "DeleteVolume", "VolumeId=vol-1",
		"--header", "X-Trace=abc", "--query", "Extra=1")
	require.NoError(t, err)

	assert.Contains(t, out, "POST /\n")
	assert.Contains(t, out, "X-Trace: abc\n")
	assert.Contains(t, out, "Action=DeleteVolume")
	assert.Contains(t, out, "DryRun=true")
	assert.Contains(t, out, "Extra=1")
	assert.Contains(t, out, "VolumeId=vol-1")
}

func TestDryRun_Send(t *testing.T) {
	checker := &stubChecker{perms: map[string]client.Permission{"StopInstances": client.PermissionDenied}}
	useChecker(t, checker)

	out, err := execute(t, "dry-run", "StopInstances", "InstanceIds=i-1,i-2", "--send")
	require.NoError(t, err)
	assert.Equal(t, "StopInstances: denied\n", out)

	require.Len(t, checker.seen, 1)
	assert.Equal(t, "StopInstances", checker.seen[0].OperationName())
}

func TestDryRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unsupported operation", []string{"dry-run", "CreateKeyPair"}, "does not support dry run"},
		{"bad parameter", []string{"dry-run", "DeleteVolume", "VolumeId"}, `invalid parameter "VolumeId"`},
		{"unknown parameter", []string{"dry-run", "DeleteVolume", "Size=1"}, "unknown parameters: Size"},
		{"bad header", []string{"dry-run", "DeleteVolume", "--header", "nope"}, `invalid header "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRoot_ConfigErrors(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "enums")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")

	_, err = execute(t, "--log-level", "loud", "enums")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown level "loud"`)
}

func TestWatchOnceAndHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ec2model.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
log:
  level: debug
  format: json
watch:
  state_dir: `+filepath.Join(dir, "state")+`
  probes:
    - name: delete-scratch
      operation: DeleteVolume
      params:
        VolumeId: vol-1
    - operation: StopInstances
      params:
        InstanceIds: i-1
`), 0o600))

	useChecker(t, &stubChecker{perms: map[string]client.Permission{
		"DeleteVolume":  client.PermissionGranted,
		"StopInstances": client.PermissionDenied,
	}})

	out, err := execute(t, "--config", cfgPath, "watch", "--once")
	require.NoError(t, err)
	assert.Equal(t, "granted=1 denied=1 failed=0 changed=0\n", out)

	out, err = execute(t, "--config", cfgPath, "history")
	require.NoError(t, err)
	assert.Regexp(t, `delete-scratch\s+DeleteVolume\s+granted`, out)
	assert.Regexp(t, `StopInstances\s+StopInstances\s+denied`, out)

	out, err = execute(t, "--config", cfgPath, "history", "delete-scratch", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "probe: delete-scratch")
	assert.Contains(t, out, "permission: granted")
	assert.Contains(t, out, "revision: 1")

	_, err = execute(t, "--config", cfgPath, "history", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe not found")

	_, err = execute(t, "--config", cfgPath, "history", "-o", "xml")
	require.Error(t, err)
}

type stubHealth struct{ status watch.HealthStatus }

func (s stubHealth) Health() watch.HealthStatus { return s.status }

func TestNewServeMux(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ec2model_watch_runs_total 1\n"))
	})

	tests := []struct {
		name     string
		metrics  http.Handler
		status   string
		wantCode int
	}{
		{"healthy", metrics, "healthy", http.StatusOK},
		{"starting", metrics, "starting", http.StatusOK},
		{"degraded", nil, "degraded", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newServeMux(tt.metrics, stubHealth{watch.HealthStatus{Status: tt.status, Runs: 3}})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body watch.HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, int64(3), body.Runs)

			rec = httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			if tt.metrics == nil {
				assert.Equal(t, http.StatusNotFound, rec.Code)
			} else {
				assert.Contains(t, rec.Body.String(), "ec2model_watch_runs_total")
			}
		})
	}
}
