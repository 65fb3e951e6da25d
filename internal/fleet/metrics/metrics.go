package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	regOK atomic.Bool

	serviceChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "health",
			Name:      "service_checks_total",
			Help:      "Service checks by service type and resulting status.",
		}, []string{"service_type", "status"},
	)
	connectionProbes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "health",
			Name:      "connection_probes_total",
			Help:      "Connectivity probes by resulting connection status.",
		}, []string{"status"},
	)
	renewalRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "renewal",
			Name:      "runs_total",
			Help:      "Renewal executions by final status.",
		}, []string{"status"},
	)
	renewalDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fleet",
			Subsystem: "renewal",
			Name:      "run_duration_seconds",
			Help:      "Wall time of renewal executions.",
			Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"status"},
	)
	busySkips = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fleet",
			Subsystem: "jobs",
			Name:      "busy_skips_total",
			Help:      "Jobs skipped because another worker held the entity lock.",
		}, []string{"kind"},
	)
)

// Register registers the collectors. Calls after the first success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{serviceChecks, connectionProbes, renewalRuns, renewalDuration, busySkips}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

func Handler() http.Handler { return promhttp.Handler() }

// HandlerFor serves the given gatherer, for registries other than the default.
func HandlerFor(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func IncServiceCheck(serviceType string, status string) {
	if regOK.Load() {
		serviceChecks.WithLabelValues(serviceType, status).Inc()
	}
}

func IncConnectionProbe(status string) {
	if regOK.Load() {
		connectionProbes.WithLabelValues(status).Inc()
	}
}

func ObserveRenewalRun(status string, d time.Duration) {
	if regOK.Load() {
		renewalRuns.WithLabelValues(status).Inc()
		renewalDuration.WithLabelValues(status).Observe(d.Seconds())
	}
}

func IncBusySkip(kind string) {
	if regOK.Load() {
		busySkips.WithLabelValues(kind).Inc()
	}
}
