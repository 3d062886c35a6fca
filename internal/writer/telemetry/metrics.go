// internal/writer/telemetry/metrics.go
package telemetry

import "github.com/tamzrod/tristar-monitor/internal/tristar"

// accessor renders one measurement field as the value sent upstream.
type accessor func(m tristar.Measurement) string

func value(f func(m tristar.Measurement) float64) accessor {
	return func(m tristar.Measurement) string { return tristar.FormatValue(f(m)) }
}

// accessors is the closed set of metrics that can be bound to a device index.
var accessors = map[string]accessor{
	"battery_voltage":     value(func(m tristar.Measurement) float64 { return m.BatteryVoltage }),
	"battery_current":     value(func(m tristar.Measurement) float64 { return m.BatteryCurrent }),
	"array_voltage":       value(func(m tristar.Measurement) float64 { return m.ArrayVoltage }),
	"array_current":       value(func(m tristar.Measurement) float64 { return m.ArrayCurrent }),
	"charge_state":        func(m tristar.Measurement) string { return m.State.String() },
	"power_out":           value(func(m tristar.Measurement) float64 { return m.PowerOut }),
	"power_in":            value(func(m tristar.Measurement) float64 { return m.PowerIn }),
	"battery_voltage_min": value(func(m tristar.Measurement) float64 { return m.BatteryVoltageMin }),
	"battery_voltage_max": value(func(m tristar.Measurement) float64 { return m.BatteryVoltageMax }),
	"amp_hours":           value(func(m tristar.Measurement) float64 { return m.AmpHours }),
	"watt_hours":          value(func(m tristar.Measurement) float64 { return m.WattHours }),
	"heatsink_temp":       value(func(m tristar.Measurement) float64 { return m.HeatsinkTemp }),
	"rts_temp":            value(func(m tristar.Measurement) float64 { return m.RTSTemp }),
}

// Binding maps a metric name to a remote device index.
type Binding struct {
	Metric string
	Idx    int
}

type boundMetric struct {
	Binding
	value accessor
}

func resolve(bs []Binding) ([]boundMetric, error) {
	out := make([]boundMetric, 0, len(bs))
	for _, b := range bs {
		fn, ok := accessors[b.Metric]
		if !ok {
			return nil, &UnknownMetricError{Metric: b.Metric}
		}
		out = append(out, boundMetric{Binding: b, value: fn})
	}
	return out, nil
}

// UnknownMetricError reports a binding to a metric with no accessor.
type UnknownMetricError struct {
	Metric string
}

func (e *UnknownMetricError) Error() string {
	return "telemetry: unknown metric " + e.Metric
}
