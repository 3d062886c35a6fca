// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// Dispatcher fans one measurement out to every sink in a Plan.
// Sinks run sequentially and independently: a failing sink never stops
// the ones after it, and nothing is rolled back.
type Dispatcher struct {
	plan Plan
}

func New(plan Plan) *Dispatcher {
	return &Dispatcher{plan: plan}
}

// Write delivers a per-cycle sample.
func (d *Dispatcher) Write(at time.Time, m tristar.Measurement) error {
	return fanOut(d.plan.Samples, at, m)
}

// WriteRollup delivers a daily rollup.
func (d *Dispatcher) WriteRollup(at time.Time, m tristar.Measurement) error {
	return fanOut(d.plan.Rollups, at, m)
}

func fanOut(sinks []Sink, at time.Time, m tristar.Measurement) error {
	var errs []error

	for _, s := range sinks {
		if err := s.Write(at, m); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrSinkFailure, s.Name(), err))
		}
	}

	return errors.Join(errs...)
}
