// internal/status/snapshot.go
package status

import "time"

// Snapshot is the current link state.
// It contains no memory of the past beyond the current streak.
type Snapshot struct {
	Health        uint16
	LastErrorCode uint16

	// FailedCycles counts consecutive skipped cycles; reset on recovery.
	FailedCycles int

	// Since is when Health last changed.
	Since time.Time
}
