// internal/tristar/state.go
package tristar

import "fmt"

// ChargeState is the controller's charging state.
// The numeric value equals the register value.
type ChargeState uint16

const (
	StateStart ChargeState = iota
	StateNightCheck
	StateDisconnected
	StateNight
	StateFault
	StateBulkCharge
	StateAbsorption
	StateFloatCharge
	StateEqualizing
)

// stateNames are the labels written to the sinks.
var stateNames = [...]string{
	StateStart:        "Start",
	StateNightCheck:   "Night Check",
	StateDisconnected: "Disconnected",
	StateNight:        "Night",
	StateFault:        "Fault!",
	StateBulkCharge:   "BulkCharge",
	StateAbsorption:   "Absorption",
	StateFloatCharge:  "FloatCharge",
	StateEqualizing:   "Equalizing",
}

// ParseChargeState maps a raw register value onto a ChargeState.
func ParseChargeState(raw uint16) (ChargeState, error) {
	if int(raw) >= len(stateNames) {
		return 0, fmt.Errorf("%w: charge state %d out of range (offset %d)",
			ErrMalformedSnapshot, raw, OffsetChargeState)
	}
	return ChargeState(raw), nil
}

func (s ChargeState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("ChargeState(%d)", uint16(s))
}
