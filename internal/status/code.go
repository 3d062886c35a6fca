// internal/status/code.go
package status

import (
	"errors"

	"github.com/tamzrod/tristar-monitor/internal/poller"
	"github.com/tamzrod/tristar-monitor/internal/tristar"
)

// Code maps an error onto a stable code without assuming concrete types.
// Errors outside the taxonomy return CodeGeneric.
func Code(err error) uint16 {
	switch {
	case err == nil:
		return CodeNone
	case errors.Is(err, poller.ErrTransportUnavailable):
		return CodeTransportUnavailable
	case errors.Is(err, poller.ErrReadFailure):
		return CodeReadFailure
	case errors.Is(err, tristar.ErrMalformedSnapshot):
		return CodeMalformedSnapshot
	}

	return CodeGeneric
}
