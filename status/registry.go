// Package status publishes frame metrics for readers on other goroutines.
package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry groups metrics by value type
// Writers cache the metric pointer once, then store without locking
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Fields snapshots every metric for structured logging: ints, then floats, then
// strings, each in key order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.Len())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		fields = append(fields, zap.Float64(k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		fields = append(fields, zap.String(k, v.Load()))
	})
	return fields
}
