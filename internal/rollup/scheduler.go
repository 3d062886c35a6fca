// internal/rollup/scheduler.go
package rollup

import (
	"fmt"
	"time"
)

// Cutoff is a time of day.
type Cutoff struct {
	Hour   int
	Minute int
}

// DefaultCutoff is 23:55, just before the controller resets its daily counters.
var DefaultCutoff = Cutoff{Hour: 23, Minute: 55}

// ParseCutoff parses "HH:MM".
func ParseCutoff(s string) (Cutoff, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Cutoff{}, fmt.Errorf("rollup: invalid cutoff %q: %w", s, err)
	}
	return Cutoff{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Cutoff) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Scheduler decides when a daily rollup is due.
// Its only state is the next cutoff instant.
type Scheduler struct {
	at   Cutoff
	next time.Time
}

// New schedules the first cutoff on the calendar day after now.
func New(now time.Time, at Cutoff) *Scheduler {
	return &Scheduler{
		at:   at,
		next: at.tomorrow(now),
	}
}

// Next returns the pending cutoff instant.
func (s *Scheduler) Next() time.Time { return s.next }

// Due reports whether now has reached the cutoff. When it has, the next
// cutoff is moved to the following day counted from now, so a long gap
// yields exactly one rollup instead of a burst.
func (s *Scheduler) Due(now time.Time) bool {
	if now.Before(s.next) {
		return false
	}
	s.next = s.at.tomorrow(now)
	return true
}

// tomorrow returns the cutoff on now's date + 1, in now's location.
func (c Cutoff) tomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, c.Hour, c.Minute, 0, 0, now.Location())
}
