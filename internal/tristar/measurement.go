// internal/tristar/measurement.go
package tristar

import "strconv"

// Measurement is one decoded snapshot.
// Every float field holds a value already rounded to two decimals.
type Measurement struct {
	BatteryVoltage float64
	BatteryCurrent float64
	ArrayVoltage   float64
	ArrayCurrent   float64

	State ChargeState

	HeatsinkTemp float64
	RTSTemp      float64

	PowerOut float64
	PowerIn  float64

	BatteryVoltageMin float64
	BatteryVoltageMax float64

	AmpHours  float64
	WattHours float64

	AbsorbTemp   float64
	EqualizeTemp float64
	FloatTemp    float64
}

// Round2 rounds v to two decimal places. Ties in the exact binary value
// round half to even, so 0.625 becomes 0.62.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(FormatValue(v), 64)
	return r
}

// FormatValue renders v with exactly two decimals.
// This is the representation persisted and transmitted by every sink.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
