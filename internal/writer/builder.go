// internal/writer/builder.go
package writer

import (
	"time"

	"github.com/sirupsen/logrus"

	cfg "github.com/tamzrod/tristar-monitor/internal/config"
	"github.com/tamzrod/tristar-monitor/internal/writer/csvlog"
	"github.com/tamzrod/tristar-monitor/internal/writer/history"
	"github.com/tamzrod/tristar-monitor/internal/writer/telemetry"
)

// BuildPlan creates one sink per enabled config section.
// Assumes config has already passed validation.
// The returned closer releases every sink that holds a resource.
func BuildPlan(m cfg.MonitorConfig, log logrus.FieldLogger) (Plan, func() error, error) {
	var plan Plan
	var closers []func() error

	closeAll := func() error {
		var last error
		for _, fn := range closers {
			if err := fn(); err != nil {
				last = err
			}
		}
		return last
	}

	// ---- remote telemetry ----
	if m.Telemetry.Enabled {
		bindings := make([]telemetry.Binding, 0, len(m.Telemetry.Metrics))
		for _, mc := range m.Telemetry.Metrics {
			bindings = append(bindings, telemetry.Binding{Metric: mc.Metric, Idx: mc.Idx})
		}

		tc, err := telemetry.New(telemetry.Config{
			BaseURL:  m.Telemetry.BaseURL,
			Timeout:  time.Duration(m.Telemetry.TimeoutMs) * time.Millisecond,
			Bindings: bindings,
		}, log.WithField("sink", "telemetry"))
		if err != nil {
			return Plan{}, nil, err
		}
		plan.Samples = append(plan.Samples, tc)
	}

	// ---- per-sample CSV ----
	if m.SampleLog.Enabled {
		plan.Samples = append(plan.Samples, csvlog.NewSampleLog(m.SampleLog.Path, log.WithField("sink", "sample_log")))
	}

	// ---- daily rollup CSV ----
	if m.DailyLog.Enabled {
		plan.Rollups = append(plan.Rollups, csvlog.NewDailyLog(m.DailyLog.Path))
	}

	// ---- SQLite history ----
	if m.History.Enabled {
		st, err := history.Open(m.History.Path)
		if err != nil {
			_ = closeAll()
			return Plan{}, nil, err
		}
		closers = append(closers, st.Close)
		plan.Samples = append(plan.Samples, history.SampleSink{Store: st})
		plan.Rollups = append(plan.Rollups, history.RollupSink{Store: st})
	}

	return plan, closeAll, nil
}
