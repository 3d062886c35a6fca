// internal/tristar/scale.go
package tristar

import "math"

// ScaleFactors convert raw counts into volts, amps and watts.
// They are derived from the first four words of every snapshot.
type ScaleFactors struct {
	VoltagePU float64
	CurrentPU float64

	Voltage float64
	Current float64
	Power   float64
}

// NewScaleFactors derives scale factors from the PU words.
// Each PU is the plain sum of its hi and lo words.
func NewScaleFactors(vHi, vLo, iHi, iLo uint16) ScaleFactors {
	vpu := float64(vHi) + float64(vLo)
	ipu := float64(iHi) + float64(iLo)

	return ScaleFactors{
		VoltagePU: vpu,
		CurrentPU: ipu,
		Voltage:   vpu * math.Exp2(-15),
		Current:   ipu * math.Exp2(-15),
		Power:     vpu * ipu * math.Exp2(-17),
	}
}
