// internal/tristar/registers.go
package tristar

// Register offsets into the holding register block read from address 0.
// Offsets are 0-based: the device manual numbers registers from 1.

// SnapshotLen is the number of words read per poll cycle.
const SnapshotLen = 92

// ---- SCALE WORDS ----

const (
	OffsetVoltagePUHi = 0
	OffsetVoltagePULo = 1
	OffsetCurrentPUHi = 2
	OffsetCurrentPULo = 3
)

// ---- SCALED BY VOLTAGE / CURRENT / POWER ----

const (
	OffsetBatteryVoltage    = 24
	OffsetArrayVoltage      = 27
	OffsetBatteryCurrent    = 28
	OffsetArrayCurrent      = 29
	OffsetPowerOut          = 58
	OffsetPowerIn           = 59
	OffsetBatteryVoltageMin = 64
	OffsetBatteryVoltageMax = 65
)

// ---- UNSCALED ----

const (
	OffsetHeatsinkTemp = 35
	OffsetRTSTemp      = 36
	OffsetChargeState  = 50
	OffsetAmpHours     = 67 // 0.1 Ah per count
	OffsetWattHours    = 68
	OffsetAbsorbTemp   = 77
	OffsetEqualizeTemp = 78
	OffsetFloatTemp    = 79
)

// ampHoursPerCount converts the amp-hour counter to Ah.
const ampHoursPerCount = 0.1
