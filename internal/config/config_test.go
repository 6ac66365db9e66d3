package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
aws:
  region: eu-west-1
  profile: production
  endpoint: http://localhost:4566
log:
  level: debug
  format: json
otel:
  endpoint: localhost:4317
  insecure: true
  service_name: ec2model-ci
  traces:
    enabled: true
    sample_rate: 0.5
  metrics:
    enabled: true
    prometheus_addr: ":9090"
watch:
  interval: 30s
  state_dir: /var/lib/ec2model
  probes:
    - name: delete-scratch
      operation: DeleteVolume
      params:
        VolumeId: vol-1234
    - operation: DescribeVolumes
`
	path := writeTempConfig(t, content)
	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "production", cfg.AWS.Profile)
	assert.Equal(t, "http://localhost:4566", cfg.AWS.Endpoint)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "localhost:4317", cfg.OTEL.Endpoint)
	assert.True(t, cfg.OTEL.Insecure)
	assert.Equal(t, "ec2model-ci", cfg.OTEL.ServiceName)
	assert.True(t, cfg.OTEL.Traces.Enabled)
	assert.Equal(t, 0.5, cfg.OTEL.Traces.SampleRate)
	assert.True(t, cfg.OTEL.Metrics.Enabled)
	assert.Equal(t, ":9090", cfg.OTEL.Metrics.PrometheusAddr)
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
	assert.Equal(t, "/var/lib/ec2model", cfg.Watch.StateDir)

	require.Len(t, cfg.Watch.Probes, 2)
	assert.Equal(t, "delete-scratch", cfg.Watch.Probes[0].Name)
	assert.Equal(t, map[string]string{"VolumeId": "vol-1234"}, cfg.Watch.Probes[0].Params)
	assert.Equal(t, "DescribeVolumes", cfg.Watch.Probes[1].Name)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, "aws: {}\n")
	cfg, err := Load(path)

	require.NoError(t, err)
	// Check defaults are applied
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "ec2model", cfg.OTEL.ServiceName)
	assert.Equal(t, 1.0, cfg.OTEL.Traces.SampleRate)
	assert.Equal(t, 5*time.Minute, cfg.Watch.Interval)
	assert.Equal(t, ".ec2model", cfg.Watch.StateDir)
	assert.Equal(t, cfg, Default())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `
aws:
  region: [us-east-1
`
	path := writeTempConfig(t, content)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidDuration(t *testing.T) {
	content := `
watch:
  interval: not-a-duration
`
	path := writeTempConfig(t, content)
	_, err := Load(path)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no region", func(c *Config) { c.AWS.Region = "" }, "region required"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, `unknown level "verbose"`},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, `unknown format "xml"`},
		{"sample rate", func(c *Config) { c.OTEL.Traces.SampleRate = 1.5 }, "sample_rate must be between"},
		{"short interval", func(c *Config) { c.Watch.Interval = time.Millisecond }, "at least 1s"},
		{
			"probe without operation",
			func(c *Config) { c.Watch.Probes = []ProbeConfig{{Name: "x"}} },
			"probes[0]: operation required",
		},
		{
			"duplicate probe",
			func(c *Config) {
				c.Watch.Probes = []ProbeConfig{
					{Name: "a", Operation: "DeleteVolume"},
					{Name: "a", Operation: "CreateVolume"},
				}
			},
			`probes[1]: duplicate name "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}
