// internal/writer/types.go
package writer

import (
	"errors"
	"time"

	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// ErrSinkFailure wraps every error a sink returns through the Dispatcher.
var ErrSinkFailure = errors.New("sink failure")

// Sink is one persistence or transmission destination.
// A Write failure must leave the sink usable for the next cycle.
type Sink interface {
	Name() string
	Write(at time.Time, m tristar.Measurement) error
}

// Plan lists the sinks fed on every cycle and on every rollup.
// An unconfigured sink is simply absent.
type Plan struct {
	Samples []Sink
	Rollups []Sink
}
