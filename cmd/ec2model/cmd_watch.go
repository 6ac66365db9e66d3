package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/spf13/cobra"

	"github.com/yairfalse/ec2model/internal/store"
	"github.com/yairfalse/ec2model/internal/telemetry"
	"github.com/yairfalse/ec2model/internal/watch"
)

var (
	watchInterval time.Duration
	watchStateDir string
	watchListen   string
	watchOnce     bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the configured permission probes on an interval",
	Long: `Run every probe in the watch section of the config as a DryRun
request, record the result in the state directory and log when a
permission changes.

Metrics are served on /metrics and health on /healthz at --listen.`,
	Example: `  ec2model watch --config ec2model.yaml
  ec2model watch --config ec2model.yaml --interval 1m --listen :9090
  ec2model watch --config ec2model.yaml --once`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Probe interval (overrides config)")
	watchCmd.Flags().StringVar(&watchStateDir, "state-dir", "", "State directory (overrides config)")
	watchCmd.Flags().StringVar(&watchListen, "listen", "", "Metrics and health address (overrides otel.metrics.prometheus_addr)")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "Run the probes once and exit")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInterval > 0 {
		cfg.Watch.Interval = watchInterval
	}
	override(&cfg.Watch.StateDir, watchStateDir)
	override(&cfg.OTEL.Metrics.PrometheusAddr, watchListen)

	probes, err := watch.ProbesFromConfig(cfg.Watch.Probes)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	provider, err := telemetry.NewProvider(ctx, cfg.OTEL)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	st, err := store.Open(cfg.Watch.StateDir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	checker, err := newChecker(ctx)
	if err != nil {
		return err
	}

	w, err := watch.New(watch.Config{Interval: cfg.Watch.Interval, Probes: probes}, checker, st,
		watch.WithLogger(logger), watch.WithMeter(provider.Meter()))
	if err != nil {
		return err
	}

	if watchOnce {
		sum := w.RunOnce(ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "granted=%d denied=%d failed=%d changed=%d\n",
			sum.Granted, sum.Denied, sum.Failed, sum.Changed)
		return nil
	}

	var routines run.Group

	routines.Add(
		func() error { return w.Start(ctx) },
		func(error) { cancel() },
	)

	if addr := cfg.OTEL.Metrics.PrometheusAddr; addr != "" {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		srv := &http.Server{
			Handler:           newServeMux(provider.MetricsHandler(), w),
			ReadHeaderTimeout: 5 * time.Second,
		}
		routines.Add(
			func() error {
				logger.Info().Str("addr", ln.Addr().String()).Msg("starting metrics server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			},
			func(error) {
				shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
				defer done()
				_ = srv.Shutdown(shutdownCtx)
			},
		)
	}

	return routines.Run()
}

// healthReporter is implemented by *watch.Watcher.
type healthReporter interface {
	Health() watch.HealthStatus
}

func newServeMux(metrics http.Handler, health healthReporter) *http.ServeMux {
	mux := http.NewServeMux()
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		status := health.Health()
		w.Header().Set("Content-Type", "application/json")
		if status.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(status)
	})
	return mux
}
