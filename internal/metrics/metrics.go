// Package metrics records run statistics for surfbot and pushes them to a
// Prometheus Pushgateway. A batch job is gone before any scrape could reach
// it, so the collectors live on a private registry that is pushed once at the
// end of the run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const subsystem = "surfbot"

// Metrics holds the run collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	fetchAttempts       *prometheus.CounterVec
	windows             prometheus.Gauge
	worthyWindows       prometheus.Gauge
	notificationsFailed *prometheus.CounterVec
	runDuration         prometheus.Gauge
	lastSuccess         prometheus.Gauge
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "fetch_attempts_total",
				Help:      "Forecast API requests by dataset and outcome.",
			},
			[]string{"dataset", "outcome"},
		),
		windows: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "windows",
			Help:      "Surf windows found in the last run.",
		}),
		worthyWindows: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "worthy_windows",
			Help:      "Surf windows that passed the notification gate in the last run.",
		}),
		notificationsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "notification_failures_total",
				Help:      "Failed notification deliveries by sink.",
			},
			[]string{"sink"},
		),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that produced a report.",
		}),
	}
	m.registry.MustRegister(
		m.fetchAttempts,
		m.windows,
		m.worthyWindows,
		m.notificationsFailed,
		m.runDuration,
		m.lastSuccess,
	)
	return m
}

// ObserveFetch counts one forecast request.
func (m *Metrics) ObserveFetch(dataset, outcome string) {
	if m == nil {
		return
	}
	m.fetchAttempts.With(prometheus.Labels{"dataset": dataset, "outcome": outcome}).Inc()
}

// ObserveReport records the window counts of a finished report.
func (m *Metrics) ObserveReport(windows, worthy int) {
	if m == nil {
		return
	}
	m.windows.Set(float64(windows))
	m.worthyWindows.Set(float64(worthy))
}

// ObserveNotificationFailure counts a failed delivery to sink.
func (m *Metrics) ObserveNotificationFailure(sink string) {
	if m == nil {
		return
	}
	m.notificationsFailed.With(prometheus.Labels{"sink": sink}).Inc()
}

// ObserveRun records the run duration and, on success, the completion time.
func (m *Metrics) ObserveRun(duration time.Duration, success bool, at time.Time) {
	if m == nil {
		return
	}
	m.runDuration.Set(duration.Seconds())
	if success {
		m.lastSuccess.Set(float64(at.Unix()))
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push sends every collector to the Pushgateway at url, grouped by job and
// spot, replacing the previous push for that group.
func (m *Metrics) Push(url, job, spot string) error {
	if m == nil {
		return nil
	}
	err := push.New(url, job).
		Gatherer(m.registry).
		Grouping("spot", spot).
		Push()
	if err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
