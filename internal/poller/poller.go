// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tamzrod/tracer-bridge/internal/schema"
)

// Reader polls one group over a shared session.
// It keeps only its own last good Result.
type Reader struct {
	sess  *Session
	group *schema.Group
	last  atomic.Pointer[Result]
	now   func() time.Time
}

// NewReader binds a group to a session.
func NewReader(sess *Session, g *schema.Group) (*Reader, error) {
	if sess == nil {
		return nil, errors.New("poller: session required")
	}
	if g == nil || len(g.Frames) == 0 {
		return nil, errors.New("poller: group with frames required")
	}
	return &Reader{sess: sess, group: g, now: time.Now}, nil
}

// Group returns the group name.
func (r *Reader) Group() string { return r.group.Name }

// Last returns the last good Result, or nil before the first success.
func (r *Reader) Last() *Result { return r.last.Load() }

// Poll performs exactly one cycle.
// All-or-nothing: on any failure the previous Result stays current.
func (r *Reader) Poll() (*Result, error) {
	raw, err := r.sess.exchange(r.group.Name, r.group.Frames)
	if err != nil {
		return nil, err
	}

	var readings []Reading
	switch r.group.Kind {
	case schema.KindRegisters:
		readings, err = decodeRegisters(r.group, raw)
	case schema.KindText:
		readings, err = decodeText(r.group, raw)
	case schema.KindBits:
		readings, err = decodeBits(r.group, raw)
	default:
		err = fmt.Errorf("poller: group %s: unsupported kind %d", r.group.Name, r.group.Kind)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Group: r.group.Name, At: r.now(), Readings: readings}
	r.last.Store(res)
	return res, nil
}

// PollOnce wraps Poll into the emitted form.
func (r *Reader) PollOnce() PollResult {
	res, err := r.Poll()
	out := PollResult{Group: r.group.Name, Result: res, Err: err}
	if res != nil {
		out.At = res.At
	} else {
		out.At = r.now()
	}
	return out
}
