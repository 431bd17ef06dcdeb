package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "satmon_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	readingsIngested *prometheus.CounterVec

	alertsRaised     *prometheus.CounterVec
	alertsSuppressed *prometheus.CounterVec

	scanRequests *prometheus.CounterVec
	scanLatency  *prometheus.HistogramVec
)

// Init registers monitor metrics. Safe to call more than once; when never
// called, the observation helpers are no-ops.
func Init() {
	registerOnce.Do(func() {
		readingsIngested = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "readings_ingested_total",
				Help: "Total telemetry readings ingested by component",
			},
			[]string{"component"},
		)
		alertsRaised = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "alerts_raised_total",
				Help: "Total alerts raised by severity",
			},
			[]string{"severity"},
		)
		alertsSuppressed = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "alerts_suppressed_total",
				Help: "Total duplicate alerts suppressed by severity",
			},
			[]string{"severity"},
		)
		scanRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "scan_requests_total",
				Help: "Total telemetry scan requests by result",
			},
			[]string{"result"},
		)
		scanLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "scan_latency_seconds",
				Help:    "Telemetry scan latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			readingsIngested,
			alertsRaised,
			alertsSuppressed,
			scanRequests,
			scanLatency,
		)
	})
}

// ReadingIngested counts one ingested reading.
func ReadingIngested(component string) {
	if readingsIngested != nil {
		readingsIngested.WithLabelValues(component).Inc()
	}
}

// AlertRaised counts one newly raised alert.
func AlertRaised(severity string) {
	if alertsRaised != nil {
		alertsRaised.WithLabelValues(severity).Inc()
	}
}

// AlertSuppressed counts one duplicate alert discarded by dedup.
func AlertSuppressed(severity string) {
	if alertsSuppressed != nil {
		alertsSuppressed.WithLabelValues(severity).Inc()
	}
}

// ObserveScan records scan request duration and result.
func ObserveScan(err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if scanRequests != nil {
		scanRequests.WithLabelValues(result).Inc()
	}
	if scanLatency != nil {
		scanLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}
