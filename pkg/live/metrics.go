package live

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "weft").
	Namespace string

	// Subsystem is the metrics subsystem (default: "live").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "weft",
		Subsystem: "live",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the live transport.
type metrics struct {
	activeSessions   prometheus.Gauge
	framesSent       prometheus.Counter
	frameBytesSent   prometheus.Counter
	mutationsSent    prometheus.Counter
	eventsDispatched *prometheus.CounterVec
	eventsDropped    *prometheus.CounterVec
}

var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frames_sent_total",
			Help:        "Total number of mutation frames sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		frameBytesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frame_bytes_sent_total",
			Help:        "Total encoded mutation frame bytes sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		mutationsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mutations_sent_total",
			Help:        "Total number of mutations sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		eventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_dispatched_total",
			Help:        "Total events delivered to a mounted listener",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),

		eventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_dropped_total",
			Help:        "Total events dropped before reaching a listener",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),
	}
}

// EnableMetrics initializes the Prometheus metrics. Safe to call more
// than once; the first call wins.
func EnableMetrics(opts ...MetricsOption) {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
}

func recordSessionOpen() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Inc()
	}
}

func recordSessionClose() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Dec()
	}
}

func recordFrameSent(mutations, bytes int) {
	if globalMetrics != nil {
		globalMetrics.framesSent.Inc()
		globalMetrics.frameBytesSent.Add(float64(bytes))
		globalMetrics.mutationsSent.Add(float64(mutations))
	}
}

func recordEventDispatched(name string) {
	if globalMetrics != nil {
		globalMetrics.eventsDispatched.WithLabelValues(name).Inc()
	}
}

func recordEventDropped(reason string) {
	if globalMetrics != nil {
		globalMetrics.eventsDropped.WithLabelValues(reason).Inc()
	}
}
