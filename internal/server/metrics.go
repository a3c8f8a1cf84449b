// Package server exposes a Prometheus metrics endpoint for a piracer run.
// Unlike the request-serving HTTP API this package's teacher implementation
// provided, a batch engine has no requests to count — what's worth
// exporting here is leaf-level progress through the current computation and
// the wall-clock cost of completed runs.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for the running computation.
var (
	leavesDone = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "piracer_leaves_done",
		Help: "Number of binary-splitting leaves evaluated in the current or most recent run",
	})
	leavesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "piracer_leaves_total",
		Help: "Total number of binary-splitting leaves the current or most recent run will evaluate",
	})
	computeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "piracer_compute_duration_seconds",
		Help:    "Duration of completed π computations",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
	})
)

// MetricsSink is a pi.ProgressSink that mirrors leaf-completion ticks onto
// the leavesDone/leavesTotal gauges, so the current run's progress is
// visible on the /metrics endpoint without a separate push path.
type MetricsSink struct{}

// Tick implements pi.ProgressSink.
func (MetricsSink) Tick(done, total uint64) {
	leavesDone.Set(float64(done))
	leavesTotal.Set(float64(total))
}

// ObserveComputeDuration records the wall-clock duration of a completed run
// in the compute duration histogram.
func ObserveComputeDuration(d time.Duration) {
	computeDuration.Observe(d.Seconds())
}

// StartMetricsServer starts an HTTP server exposing /metrics on addr and
// returns a function that shuts it down. Startup failures are reported to
// errOut rather than treated as fatal: a broken metrics endpoint should
// never prevent the underlying π computation from running.
func StartMetricsServer(addr string, errOut io.Writer) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(errOut, "metrics server error: %v\n", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
