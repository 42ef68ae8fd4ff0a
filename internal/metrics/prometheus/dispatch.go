// Package prometheus is the concrete Prometheus backend for
// internal/metrics's interfaces, split out from the interface package
// itself so that callers who never enable metrics never link
// Prometheus's registration machinery into their instrumentation call
// sites.
package prometheus

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/sdp/internal/metrics"
)

func init() {
	metrics.RegisterDispatchMetricsConstructor(NewDispatchMetrics)
}

// dispatchMetrics is the Prometheus implementation of
// metrics.DispatchMetrics.
type dispatchMetrics struct {
	dispatchTotal  *prometheus.CounterVec
	decodeDuration *prometheus.HistogramVec
}

// NewDispatchMetrics creates a new Prometheus-backed DispatchMetrics.
//
// Returns nil if metrics are not enabled (metrics.InitRegistry not
// called).
func NewDispatchMetrics() metrics.DispatchMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &dispatchMetrics{
		dispatchTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdp_dispatch_total",
				Help: "Total number of message.Dispatcher.Dispatch calls by type tag and outcome.",
			},
			[]string{"tag", "outcome"},
		),
		decodeDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sdp_decode_duration_seconds",
				Help:    "Time taken to decode a record by record type.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"record"},
		),
	}
}

// RecordDispatch counts one Dispatch call for tag and outcome.
func (m *dispatchMetrics) RecordDispatch(tag uint32, outcome string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(fmt.Sprintf("%d", tag), outcome).Inc()
}

// ObserveDecodeDuration records how long decoding record took.
func (m *dispatchMetrics) ObserveDecodeDuration(record string, d time.Duration) {
	if m == nil {
		return
	}
	m.decodeDuration.WithLabelValues(record).Observe(d.Seconds())
}
