// internal/poller/types.go
package poller

import (
	"errors"
	"time"
)

// Failure taxonomy for one poll cycle.
// Both mean "skip the cycle and try again next interval".
var (
	ErrTransportUnavailable = errors.New("transport unavailable")
	ErrReadFailure          = errors.New("register read failed")
)

// ReadBlock describes the holding-register geometry read each cycle.
type ReadBlock struct {
	Address  uint16
	Quantity uint16
}

// PollResult is the raw outcome of one poll cycle.
type PollResult struct {
	At time.Time

	// Registers is nil unless the cycle succeeded.
	Registers []uint16
	Err       error // non-nil means the cycle must be skipped
}
