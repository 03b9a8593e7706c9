// internal/poller/port.go
package poller

import "time"

// Port is the half-duplex line to the controller.
// Receive returns the data payload of one response with framing removed.
type Port interface {
	SendFrame(frame []byte) error
	Receive(timeout time.Duration) ([]byte, error)
	Close() error
}
