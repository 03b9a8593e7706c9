// internal/poller/errors.go
package poller

import (
	"errors"

	"github.com/tamzrod/tracer-bridge/internal/registers"
)

var (
	// ErrReadFailed covers timeouts, port failures and empty responses.
	ErrReadFailed = errors.New("poller: read failed")

	// ErrMalformedResponse means the raw buffer does not fit the group layout.
	ErrMalformedResponse = registers.ErrMalformed

	// ErrSchemaMismatch means the decoded count differs from the published count.
	// This points at firmware or register map drift, not at the line.
	ErrSchemaMismatch = errors.New("poller: schema mismatch")

	// ErrSessionState is returned for cycles outside the Ready state.
	ErrSessionState = errors.New("poller: session not ready")
)
