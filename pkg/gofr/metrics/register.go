package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Manager defines and updates the metrics of the service. Misuse, such as an unknown name or odd
// labels, is logged instead of returned.
type Manager interface {
	NewCounter(name, desc string)
	NewHistogram(name, desc string, buckets ...float64)
	NewGauge(name, desc string)

	IncrementCounter(ctx context.Context, name string, labels ...string)
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
	SetGauge(name string, value float64, labels ...string)
}

type Logger interface {
	Error(args ...any)
	Errorf(format string, args ...any)
	Warn(args ...any)
}

type metricsManager struct {
	registry *prometheus.Registry
	store    *store
	logger   Logger
}

// NewMetricsManager creates a Manager backed by its own prometheus registry. The registry also
// carries the Go runtime and process collectors.
func NewMetricsManager(logger Logger) Manager {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &metricsManager{
		registry: registry,
		store:    newStore(registry),
		logger:   logger,
	}
}

// NewCounter defines a counter, for example m.NewCounter("app_requests_total", "Requests served.").
func (m *metricsManager) NewCounter(name, desc string) {
	m.define(name, definition{kind: counterKind, desc: desc})
}

// NewHistogram defines a histogram. Without buckets the prometheus defaults apply.
func (m *metricsManager) NewHistogram(name, desc string, buckets ...float64) {
	m.define(name, definition{kind: histogramKind, desc: desc, buckets: buckets})
}

func (m *metricsManager) NewGauge(name, desc string) {
	m.define(name, definition{kind: gaugeKind, desc: desc})
}

func (m *metricsManager) define(name string, d definition) {
	if err := m.store.define(name, d); err != nil {
		m.logger.Warn(err)
	}
}

// IncrementCounter adds one to the series of the counter selected by labels, given as name, value
// pairs.
func (m *metricsManager) IncrementCounter(_ context.Context, name string, labels ...string) {
	vec, l, ok := m.lookup(name, counterKind, labels)
	if !ok {
		return
	}

	c, err := vec.(*prometheus.CounterVec).GetMetricWith(l)
	if err != nil {
		m.logger.Error(err)

		return
	}

	c.Inc()
}

// RecordHistogram records the value in the specified registered histogram metric.
func (m *metricsManager) RecordHistogram(_ context.Context, name string, value float64, labels ...string) {
	vec, l, ok := m.lookup(name, histogramKind, labels)
	if !ok {
		return
	}

	h, err := vec.(*prometheus.HistogramVec).GetMetricWith(l)
	if err != nil {
		m.logger.Error(err)

		return
	}

	h.Observe(value)
}

// SetGauge sets the value of the specified registered gauge metric.
func (m *metricsManager) SetGauge(name string, value float64, labels ...string) {
	vec, l, ok := m.lookup(name, gaugeKind, labels)
	if !ok {
		return
	}

	g, err := vec.(*prometheus.GaugeVec).GetMetricWith(l)
	if err != nil {
		m.logger.Error(err)

		return
	}

	g.Set(value)
}

func (m *metricsManager) lookup(name string, k kind, labels []string) (prometheus.Collector, prometheus.Labels, bool) {
	l, err := toLabels(labels)
	if err != nil {
		m.logger.Errorf("metrics %v: %v", name, err)

		return nil, nil, false
	}

	vec, err := m.store.vector(name, k, l)
	if err != nil {
		m.logger.Error(err)

		return nil, nil, false
	}

	return vec, l, true
}

func toLabels(labels []string) (prometheus.Labels, error) {
	if len(labels)%2 != 0 {
		return nil, errInvalidLabels
	}

	l := make(prometheus.Labels, len(labels)/2)

	for i := 0; i < len(labels); i += 2 {
		l[labels[i]] = labels[i+1]
	}

	return l, nil
}
