// internal/writer/csvlog/sample.go
package csvlog

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/tristar-monitor/internal/filter"
	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// SampleHeader is the first line of the per-sample log.
var SampleHeader = []string{"Time", "Bat V", "Bat I", "Pwr In", "AHr", "State"}

// SampleLog appends one row per cycle unless every non-timestamp column
// matches the last row written (the controller idles at night).
type SampleLog struct {
	path string
	gate filter.ChangeGate
	log  logrus.FieldLogger
}

func NewSampleLog(path string, log logrus.FieldLogger) *SampleLog {
	return &SampleLog{path: path, log: log}
}

func (s *SampleLog) Name() string { return "sample_log" }

func (s *SampleLog) Write(at time.Time, m tristar.Measurement) error {
	fields := []string{
		tristar.FormatValue(m.BatteryVoltage),
		tristar.FormatValue(m.BatteryCurrent),
		tristar.FormatValue(m.PowerIn),
		tristar.FormatValue(m.AmpHours),
		m.State.String(),
	}

	key := strings.Join(fields, ",")
	if !s.gate.Changed(key) {
		s.log.Debug("sample unchanged, not logged")
		return nil
	}

	row := append([]string{at.Format(TimeLayout)}, fields...)
	if err := appendRow(s.path, SampleHeader, row); err != nil {
		return err
	}

	// Commit only after a successful write so a failed row is retried.
	s.gate.Commit(key)
	return nil
}
