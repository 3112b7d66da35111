package metrics

import (
	"sync"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
)

func (t MetricType) String() string {
	switch t {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	default:
		return "unknown"
	}
}

// Metric describes a single registered metric
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// Registry stores and manages metrics. Counters accumulate, gauges keep the
// last recorded value. Values for unregistered names are dropped.
type Registry struct {
	metrics map[string]Metric
	values  map[string]float64
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string]float64),
	}
}

// Register adds metric to the registry. Registering a name twice keeps the
// accumulated value.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
	if _, ok := r.values[metric.Name]; !ok {
		r.values[metric.Name] = 0
	}
}

func (r *Registry) RecordCounter(name string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Counter {
		r.values[name] += delta
	}
}

func (r *Registry) RecordGauge(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if metric, ok := r.metrics[name]; ok && metric.Type == Gauge {
		r.values[name] = value
	}
}

// Value returns the current value of a registered metric.
func (r *Registry) Value(name string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[name]
	return v, ok
}

// Describe returns the registered metric with the given name.
func (r *Registry) Describe(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.metrics[name]
	return m, ok
}

// GetMetrics returns a copy of every registered metric's current value.
func (r *Registry) GetMetrics() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]float64, len(r.values))
	for k, v := range r.values {
		result[k] = v
	}
	return result
}
