// internal/tristar/decode.go
package tristar

import (
	"errors"
	"fmt"
)

// ErrMalformedSnapshot marks a register block that does not match the
// expected device layout. It is fatal to the cycle, never to the process.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Snapshot is one atomic read of the register block from address 0.
type Snapshot []uint16

// Decode turns a snapshot into a Measurement.
// Pure: the same snapshot always yields the same Measurement.
func Decode(s Snapshot) (Measurement, error) {
	if len(s) < SnapshotLen {
		return Measurement{}, fmt.Errorf("%w: got %d registers, want %d",
			ErrMalformedSnapshot, len(s), SnapshotLen)
	}

	state, err := ParseChargeState(s[OffsetChargeState])
	if err != nil {
		return Measurement{}, err
	}

	sf := NewScaleFactors(
		s[OffsetVoltagePUHi], s[OffsetVoltagePULo],
		s[OffsetCurrentPUHi], s[OffsetCurrentPULo],
	)

	volts := func(off int) float64 { return Round2(float64(s[off]) * sf.Voltage) }
	amps := func(off int) float64 { return Round2(float64(s[off]) * sf.Current) }
	watts := func(off int) float64 { return Round2(float64(s[off]) * sf.Power) }
	raw := func(off int) float64 { return Round2(float64(s[off])) }

	return Measurement{
		BatteryVoltage: volts(OffsetBatteryVoltage),
		BatteryCurrent: amps(OffsetBatteryCurrent),
		ArrayVoltage:   volts(OffsetArrayVoltage),
		ArrayCurrent:   amps(OffsetArrayCurrent),

		State: state,

		HeatsinkTemp: raw(OffsetHeatsinkTemp),
		RTSTemp:      raw(OffsetRTSTemp),

		PowerOut: watts(OffsetPowerOut),
		PowerIn:  watts(OffsetPowerIn),

		BatteryVoltageMin: volts(OffsetBatteryVoltageMin),
		BatteryVoltageMax: volts(OffsetBatteryVoltageMax),

		AmpHours:  Round2(float64(s[OffsetAmpHours]) * ampHoursPerCount),
		WattHours: raw(OffsetWattHours),

		AbsorbTemp:   raw(OffsetAbsorbTemp),
		EqualizeTemp: raw(OffsetEqualizeTemp),
		FloatTemp:    raw(OffsetFloatTemp),
	}, nil
}
