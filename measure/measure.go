// Package measure provides a basic in-memory implementation of the
// counter.MeasuredData result sink.
package measure

import (
	"github.com/labkit/go-counter/counter"
	"github.com/labkit/go-counter/internal/util"
)

// Sample is one measured value, optionally paired with a host-side timestamp.
type Sample struct {
	// Timestamp is the host-side HHMMSS capture time, empty when the
	// measurement was taken without timestamps.
	Timestamp string
	Value     float64
}

// Set is an append-only, ordered collection of samples.
// Samples are appended in call order and never mutated or removed.
//
// Set is not safe for concurrent use; a single driver instance appends to it
// during one measurement at a time.
type Set struct {
	samples []Sample
}

var _ counter.MeasuredData = (*Set)(nil)

// NewSet creates an empty sample set.
func NewSet() *Set {
	return &Set{}
}

// AddMeasure appends a measured value.
func (s *Set) AddMeasure(value float64) {
	s.samples = append(s.samples, Sample{Value: value})
}

// AddTimedMeasure appends a measured value paired with a host-side timestamp.
func (s *Set) AddTimedMeasure(timestamp string, value float64) {
	s.samples = append(s.samples, Sample{Timestamp: timestamp, Value: value})
}

// Len returns the number of collected samples.
func (s *Set) Len() int {
	return len(s.samples)
}

// Samples returns a copy of the collected samples in append order.
func (s *Set) Samples() []Sample {
	return util.CloneSlice(s.samples, 0)
}

// Values returns the collected values in append order, without timestamps.
func (s *Set) Values() []float64 {
	values := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		values[i] = sample.Value
	}

	return values
}
