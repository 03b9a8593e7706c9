// internal/status/code.go
package status

import (
	"errors"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/tracer-bridge/internal/poller"
)

// ErrorCode maps a cycle error to a stable code.
// Modbus exceptions keep their device code in the low byte.
func ErrorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return CodeException | uint16(me.ExceptionCode)
	}

	type coder interface{ Code() uint16 }
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	switch {
	case errors.Is(err, poller.ErrSchemaMismatch):
		return CodeSchemaMismatch
	case errors.Is(err, poller.ErrMalformedResponse):
		return CodeMalformed
	case errors.Is(err, poller.ErrSessionState):
		return CodeSessionState
	}
	return CodeReadFailed
}
