// internal/writer/csvlog/daily.go
package csvlog

import (
	"time"

	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// DailyHeader is the first line of the daily rollup log.
// Rows carry min before max under this header, as existing files do.
var DailyHeader = []string{"Date-Time", "Bat V max", "Bat V min", "AHr", "WHr", "Abs T", "Equ T", "Flt T"}

// DailyLog appends one summary row per rollup.
type DailyLog struct {
	path string
}

func NewDailyLog(path string) *DailyLog {
	return &DailyLog{path: path}
}

func (d *DailyLog) Name() string { return "daily_log" }

// Write appends the rollup row: timestamp, min, max, AHr, WHr, temps.
func (d *DailyLog) Write(at time.Time, m tristar.Measurement) error {
	row := []string{
		at.Format(TimeLayout),
		tristar.FormatValue(m.BatteryVoltageMin),
		tristar.FormatValue(m.BatteryVoltageMax),
		tristar.FormatValue(m.AmpHours),
		tristar.FormatValue(m.WattHours),
		tristar.FormatValue(m.AbsorbTemp),
		tristar.FormatValue(m.EqualizeTemp),
		tristar.FormatValue(m.FloatTemp),
	}
	return appendRow(d.path, DailyHeader, row)
}
