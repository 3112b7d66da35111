package priority

import (
	"github.com/davidvella/pq/core/metrics"
	"github.com/davidvella/pq/core/monitoring"
)

// DefaultCapacity is the number of slots New reserves up front.
const DefaultCapacity = 128

// options defines all configuration options for a queue.
type options struct {
	capacity int               // Slots reserved before the first reallocation
	logger   monitoring.Logger // Receives growth and teardown events
	registry *metrics.Registry // Optional; nil disables metrics
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithCapacity sets the number of slots reserved by New. Negative values
// fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = DefaultCapacity
		}
		o.capacity = n
	}
}

// WithLogger sets the logger for queue lifecycle events.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records push, pop and release counts and the queue length on r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		logger:   monitoring.Nop(),
		registry: nil,
	}
}
