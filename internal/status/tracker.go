// internal/status/tracker.go
package status

import "time"

// Tracker folds cycle outcomes into a Snapshot.
// Owned by the poll loop; not safe for concurrent use.
type Tracker struct {
	snap Snapshot
}

// NewTracker starts in HealthUnknown.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot { return t.snap }

// Observe records one cycle outcome and reports whether health or the
// error code changed. A nil err is a successful cycle.
func (t *Tracker) Observe(err error, at time.Time) (Snapshot, bool) {
	changed := false

	if err == nil {
		// Recovery / OK
		if t.snap.Health != HealthOK {
			t.snap.Health = HealthOK
			t.snap.Since = at
			changed = true
		}
		if t.snap.LastErrorCode != CodeNone {
			t.snap.LastErrorCode = CodeNone
			changed = true
		}
		t.snap.FailedCycles = 0
		return t.snap, changed
	}

	// Error
	if t.snap.Health != HealthError {
		t.snap.Health = HealthError
		t.snap.Since = at
		changed = true
	}
	code := Code(err)
	if t.snap.LastErrorCode != code {
		t.snap.LastErrorCode = code
		changed = true
	}
	t.snap.FailedCycles++

	return t.snap, changed
}
