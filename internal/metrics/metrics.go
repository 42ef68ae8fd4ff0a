// Package metrics defines the interfaces the dispatcher and debug server
// instrument against, and a process-wide Prometheus registry. Core codec
// packages (pkg/wire, pkg/stream, pkg/message, pkg/record) never import
// this package — only internal/dispatchaudit and internal/debugserver wire
// instrumentation around them, keeping the codec itself free of any
// metrics dependency.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DispatchMetrics observes pkg/message.Dispatcher activity. Passing nil to
// anything that accepts a DispatchMetrics disables instrumentation with
// zero overhead.
type DispatchMetrics interface {
	// RecordDispatch counts one Dispatch call for a type tag and outcome
	// ("ok" or "error").
	RecordDispatch(tag uint32, outcome string)
	// ObserveDecodeDuration records how long decoding a named record type
	// took.
	ObserveDecodeDuration(record string, d time.Duration)
}

var (
	mu       sync.Mutex
	registry *prometheus.Registry
	enabled  bool
)

// InitRegistry enables metrics collection and returns the process-wide
// registry. Safe to call more than once; later calls return the existing
// registry.
func InitRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	enabled = true
	return registry
}

// GetRegistry returns the process-wide registry, initializing it if
// necessary.
func GetRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return registry
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// newPrometheusDispatchMetrics is implemented in
// internal/metrics/prometheus/dispatch.go. This indirection avoids an
// import cycle: the prometheus-backed implementation depends on this
// package for IsEnabled/GetRegistry, so this package cannot import it back
// directly.
var newPrometheusDispatchMetrics func() DispatchMetrics

// RegisterDispatchMetricsConstructor is called by
// internal/metrics/prometheus's package init to install the concrete
// constructor.
func RegisterDispatchMetricsConstructor(constructor func() DispatchMetrics) {
	newPrometheusDispatchMetrics = constructor
}

// NewDispatchMetrics returns a Prometheus-backed DispatchMetrics, or nil if
// metrics are not enabled or the prometheus subpackage was never imported.
func NewDispatchMetrics() DispatchMetrics {
	if !IsEnabled() || newPrometheusDispatchMetrics == nil {
		return nil
	}
	return newPrometheusDispatchMetrics()
}
