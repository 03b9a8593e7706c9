// internal/poller/session.go
package poller

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// State is the session lifecycle position.
type State int

const (
	StateOpened State = iota // port acquired
	StateReady               // cycles allowed
	StateClosed              // port released
)

func (s State) String() string {
	switch s {
	case StateOpened:
		return "opened"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session owns the port and serializes access to it.
// A closed session cannot be reopened; build a new one.
type Session struct {
	mu      sync.Mutex
	port    Port
	timeout time.Duration
	state   State
	log     logrus.FieldLogger
}

// NewSession takes ownership of an already opened port.
func NewSession(port Port, timeout time.Duration, log logrus.FieldLogger) (*Session, error) {
	if port == nil {
		return nil, errors.New("poller: port required")
	}
	if timeout <= 0 {
		return nil, errors.New("poller: timeout must be > 0")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{port: port, timeout: timeout, state: StateOpened, log: log}, nil
}

// Ready moves an opened session into the Ready state.
func (s *Session) Ready() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpened {
		return fmt.Errorf("%w: cannot become ready from %s", ErrSessionState, s.state)
	}
	s.state = StateReady
	s.log.Debug("session ready")
	return nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close releases the port. Closing twice is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	s.log.Debug("session closed")
	return s.port.Close()
}

// exchange sends every frame in order and concatenates the payloads.
// The lock is held for the whole group so frames of two groups never interleave.
func (s *Session) exchange(group string, frames [][]byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return nil, fmt.Errorf("%w: %s", ErrSessionState, s.state)
	}

	var raw []byte
	for i, f := range frames {
		if err := s.port.SendFrame(f); err != nil {
			return nil, fmt.Errorf("%w: %s frame %d send: %w", ErrReadFailed, group, i, err)
		}
		payload, err := s.port.Receive(s.timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %s frame %d receive: %w", ErrReadFailed, group, i, err)
		}
		if len(payload) == 0 {
			return nil, fmt.Errorf("%w: %s frame %d: empty response", ErrReadFailed, group, i)
		}
		raw = append(raw, payload...)
	}
	return raw, nil
}
