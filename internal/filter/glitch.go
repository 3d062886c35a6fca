// internal/filter/glitch.go
package filter

import "github.com/tamzrod/tristar-monitor/internal/tristar"

// DefaultCurrentThreshold is the scaled battery current at or above which a
// reading is treated as the controller's ~159 A glitch.
const DefaultCurrentThreshold = 150.0

// GlitchFilter replaces implausible battery current readings with the last
// accepted one. One-sided: there is no lower bound.
type GlitchFilter struct {
	threshold float64
	last      float64
}

// NewGlitchFilter returns a filter holding zero as its last good value.
// A non-positive threshold selects DefaultCurrentThreshold.
func NewGlitchFilter(threshold float64) *GlitchFilter {
	if threshold <= 0 {
		threshold = DefaultCurrentThreshold
	}
	return &GlitchFilter{threshold: threshold}
}

// WithLast seeds the carried value.
func (f *GlitchFilter) WithLast(v float64) *GlitchFilter {
	f.last = v
	return f
}

// Threshold returns the rejection threshold.
func (f *GlitchFilter) Threshold() float64 { return f.threshold }

// Last returns the carried value.
func (f *GlitchFilter) Last() float64 { return f.last }

// Apply accepts m.BatteryCurrent if it is below the threshold, otherwise
// overwrites it with the carried value. It reports whether the reading was rejected.
func (f *GlitchFilter) Apply(m *tristar.Measurement) bool {
	if m.BatteryCurrent < f.threshold {
		f.last = m.BatteryCurrent
		return false
	}
	m.BatteryCurrent = f.last
	return true
}
