// internal/status/constants.go
package status

// Link health and error codes.
// These values appear in logs and MUST stay stable.

// ---- HEALTH CODES ----

// HealthUnknown is the boot state before the first cycle.
const HealthUnknown uint16 = 0

// HealthOK means the last cycle read and decoded a snapshot.
const HealthOK uint16 = 1

// HealthError means the last cycle was skipped.
const HealthError uint16 = 2

// ---- ERROR CODES ----

// CodeNone means no error.
const CodeNone uint16 = 0

// CodeGeneric is any error outside the taxonomy below.
const CodeGeneric uint16 = 1

// CodeTransportUnavailable means the port could not be opened.
const CodeTransportUnavailable uint16 = 2

// CodeReadFailure means the register block read returned no data.
const CodeReadFailure uint16 = 3

// CodeMalformedSnapshot means the block did not decode.
const CodeMalformedSnapshot uint16 = 4

// healthNames are used for log output.
var healthNames = map[uint16]string{
	HealthUnknown: "unknown",
	HealthOK:      "ok",
	HealthError:   "error",
}

// HealthName returns a printable health label.
func HealthName(h uint16) string {
	if n, ok := healthNames[h]; ok {
		return n
	}
	return "invalid"
}
