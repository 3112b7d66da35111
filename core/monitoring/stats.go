package monitoring

import (
	"github.com/davidvella/pq/core/metrics"
)

const (
	MetricPushTotal     = "queue_push_total"
	MetricPopTotal      = "queue_pop_total"
	MetricReleasedTotal = "queue_released_total"
	MetricLen           = "queue_len"
)

// Stats records queue activity.
type Stats interface {
	RecordPush()
	RecordPop()
	RecordReleased(n int)
	SetLen(n int)
}

type stats struct {
	registry *metrics.Registry
}

// NewStats registers the queue metrics on registry and returns a recorder
// for them.
func NewStats(registry *metrics.Registry) Stats {
	registry.Register(metrics.Metric{
		Name:        MetricPushTotal,
		Type:        metrics.Counter,
		Description: "Total number of elements pushed",
	})

	registry.Register(metrics.Metric{
		Name:        MetricPopTotal,
		Type:        metrics.Counter,
		Description: "Total number of elements popped",
	})

	registry.Register(metrics.Metric{
		Name:        MetricReleasedTotal,
		Type:        metrics.Counter,
		Description: "Total number of elements released by a clear",
	})

	registry.Register(metrics.Metric{
		Name:        MetricLen,
		Type:        metrics.Gauge,
		Description: "Number of elements currently queued",
	})

	return &stats{
		registry: registry,
	}
}

func (s *stats) RecordPush() {
	s.registry.RecordCounter(MetricPushTotal, 1)
}

func (s *stats) RecordPop() {
	s.registry.RecordCounter(MetricPopTotal, 1)
}

func (s *stats) RecordReleased(n int) {
	s.registry.RecordCounter(MetricReleasedTotal, float64(n))
}

func (s *stats) SetLen(n int) {
	s.registry.RecordGauge(MetricLen, float64(n))
}

type nopStats struct{}

func (nopStats) RecordPush()        {}
func (nopStats) RecordPop()         {}
func (nopStats) RecordReleased(int) {}
func (nopStats) SetLen(int)         {}

// NopStats returns a Stats that records nothing.
func NopStats() Stats { return nopStats{} }
