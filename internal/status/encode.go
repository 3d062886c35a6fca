// internal/status/encode.go
package status

import "github.com/sirupsen/logrus"

// Fields converts a Snapshot into structured log fields.
// No IO. No side effects.
func Fields(s Snapshot) logrus.Fields {
	f := logrus.Fields{
		"health": HealthName(s.Health),
	}
	if s.LastErrorCode != CodeNone {
		f["code"] = s.LastErrorCode
	}
	if s.FailedCycles > 0 {
		f["failed_cycles"] = s.FailedCycles
	}
	if !s.Since.IsZero() {
		f["since"] = s.Since.Format("2006-01-02 15:04:05")
	}
	return f
}
