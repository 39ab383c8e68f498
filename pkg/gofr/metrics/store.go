package metrics

import (
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type kind int

const (
	counterKind kind = iota + 1
	histogramKind
	gaugeKind
)

func (k kind) String() string {
	switch k {
	case counterKind:
		return "counter"
	case histogramKind:
		return "histogram"
	case gaugeKind:
		return "gauge"
	default:
		return "unknown"
	}
}

type definition struct {
	kind    kind
	desc    string
	buckets []float64
}

// store keeps metric definitions and creates the prometheus vector for a metric the first
// time it is recorded, using the label names of that first recording.
type store struct {
	mu         sync.Mutex
	registerer prometheus.Registerer
	defs       map[string]definition
	vecs       map[string]prometheus.Collector
	labelNames map[string][]string
}

func newStore(registerer prometheus.Registerer) *store {
	return &store{
		registerer: registerer,
		defs:       make(map[string]definition),
		vecs:       make(map[string]prometheus.Collector),
		labelNames: make(map[string][]string),
	}
}

func (s *store) define(name string, d definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.defs[name]; ok {
		return metricsAlreadyRegistered{metricsName: name}
	}

	s.defs[name] = d

	return nil
}

func (s *store) vector(name string, k kind, labels prometheus.Labels) (prometheus.Collector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.defs[name]
	if !ok {
		return nil, metricsNotRegistered{metricsName: name}
	}

	if d.kind != k {
		return nil, metricsTypeMismatch{metricsName: name, expected: k.String()}
	}

	names := make([]string, 0, len(labels))
	for key := range labels {
		names = append(names, key)
	}

	slices.Sort(names)

	if vec, ok := s.vecs[name]; ok {
		if !slices.Equal(names, s.labelNames[name]) {
			return nil, errLabelsMismatch
		}

		return vec, nil
	}

	var vec prometheus.Collector

	switch k {
	case counterKind:
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: d.desc}, names)
	case histogramKind:
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: d.desc, Buckets: d.buckets}, names)
	case gaugeKind:
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: d.desc}, names)
	}

	if err := s.registerer.Register(vec); err != nil {
		return nil, err
	}

	s.vecs[name] = vec
	s.labelNames[name] = names

	return vec, nil
}
