// Package metrics exposes prometheus collectors for the pow-gated server.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Verification results used as the "result" label.
const (
	ResultOK          = "ok"
	ResultInvalid     = "invalid"
	ResultMalformed   = "malformed"
	ResultExpired     = "expired"
	ResultUnsupported = "unsupported"
	ResultBadJSON     = "bad_json"
	ResultIO          = "io"
)

type Metrics struct {
	challengesIssued prometheus.Counter
	verifications    *prometheus.CounterVec
	verifyDuration   prometheus.Histogram
	activeConns      prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		challengesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wow",
			Subsystem: "pow",
			Name:      "challenges_issued_total",
			Help:      "Total number of challenges sent to clients",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wow",
			Subsystem: "pow",
			Name:      "verifications_total",
			Help:      "Total number of solution verifications by result",
		}, []string{"result"}),
		verifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wow",
			Subsystem: "pow",
			Name:      "verify_duration_seconds",
			Help:      "Time spent checking a solution",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs ~ 0.8s
		}),
		activeConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wow",
			Subsystem: "tcp",
			Name:      "active_connections",
			Help:      "Number of connections being served",
		}),
	}
	reg.MustRegister(m.challengesIssued, m.verifications, m.verifyDuration, m.activeConns)
	return m
}

// Nop returns collectors that are not registered anywhere.
func Nop() *Metrics { return New(prometheus.NewRegistry()) }

func (m *Metrics) ChallengeIssued() { m.challengesIssued.Inc() }

func (m *Metrics) Verified(result string, took time.Duration) {
	m.verifications.WithLabelValues(result).Inc()
	if took > 0 {
		m.verifyDuration.Observe(took.Seconds())
	}
}

func (m *Metrics) ConnOpened() { m.activeConns.Inc() }
func (m *Metrics) ConnClosed() { m.activeConns.Dec() }

// Serve exposes g on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("metrics listening", "addr", addr)

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics listen: %w", err)
	}
}
