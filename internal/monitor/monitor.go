// internal/monitor/monitor.go
package monitor

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/tristar-monitor/internal/filter"
	"github.com/tamzrod/tristar-monitor/internal/poller"
	"github.com/tamzrod/tristar-monitor/internal/rollup"
	"github.com/tamzrod/tristar-monitor/internal/status"
	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// Dispatcher is the sink fan-out the monitor feeds.
type Dispatcher interface {
	Write(at time.Time, m tristar.Measurement) error
	WriteRollup(at time.Time, m tristar.Measurement) error
}

// Monitor owns all cross-cycle state and runs the per-cycle chain:
// decode, filter, dispatch, rollup. It never returns an error to the loop.
type Monitor struct {
	glitch   *filter.GlitchFilter
	rollups  *rollup.Scheduler
	link     *status.Tracker
	dispatch Dispatcher
	log      logrus.FieldLogger
}

func New(
	glitch *filter.GlitchFilter,
	rollups *rollup.Scheduler,
	dispatch Dispatcher,
	log logrus.FieldLogger,
) *Monitor {
	return &Monitor{
		glitch:   glitch,
		rollups:  rollups,
		link:     status.NewTracker(),
		dispatch: dispatch,
		log:      log,
	}
}

// Link returns the current transport health.
func (mo *Monitor) Link() status.Snapshot { return mo.link.Snapshot() }

// Handle processes one poll result.
func (mo *Monitor) Handle(res poller.PollResult) {
	if res.Err != nil {
		mo.observe(res.Err, res.At)
		mo.log.WithError(res.Err).Error("poll cycle skipped")
		return
	}

	m, err := tristar.Decode(res.Registers)
	if err != nil {
		mo.observe(err, res.At)
		mo.log.WithError(err).Error("snapshot rejected")
		return
	}
	mo.observe(nil, res.At)

	raw := m.BatteryCurrent
	if mo.glitch.Apply(&m) {
		mo.log.WithFields(logrus.Fields{
			"raw":       tristar.FormatValue(raw),
			"threshold": mo.glitch.Threshold(),
			"kept":      tristar.FormatValue(m.BatteryCurrent),
		}).Debug("battery current glitch rejected")
	}

	mo.log.Infof("Bat V: %s, Bat I: %s, Ary V: %s",
		tristar.FormatValue(m.BatteryVoltage),
		tristar.FormatValue(m.BatteryCurrent),
		tristar.FormatValue(m.ArrayVoltage))

	if err := mo.dispatch.Write(res.At, m); err != nil {
		mo.log.WithError(err).Warn("sample sinks failed")
	}

	if mo.rollups.Due(res.At) {
		mo.log.WithField("next", mo.rollups.Next().Format(time.RFC3339)).Info("daily rollup")
		if err := mo.dispatch.WriteRollup(res.At, m); err != nil {
			mo.log.WithError(err).Warn("rollup sinks failed")
		}
	}
}

func (mo *Monitor) observe(err error, at time.Time) {
	prev := mo.link.Snapshot()
	snap, changed := mo.link.Observe(err, at)
	if !changed {
		return
	}

	entry := mo.log.WithFields(status.Fields(snap))
	switch {
	case snap.Health == status.HealthOK && prev.Health == status.HealthError:
		entry.WithField("after_cycles", prev.FailedCycles).Warn("controller link recovered")
	case snap.Health == status.HealthOK:
		entry.Info("controller link up")
	default:
		entry.Warn("controller link degraded")
	}
}
