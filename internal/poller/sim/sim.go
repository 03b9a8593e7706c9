// internal/poller/sim/sim.go
package sim

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tamzrod/tracer-bridge/internal/registers"
	"github.com/tamzrod/tracer-bridge/internal/schema"
)

// ErrNoRequest is returned by Receive when nothing was sent.
var ErrNoRequest = errors.New("sim: receive without request")

// Controller answers the literal request frames the way the charge
// controller does, with payloads encoded from raw field values.
type Controller struct {
	mu      sync.Mutex
	raw     map[string][]int64 // one raw value per field, reserved included
	bits    map[string][]byte
	info    []byte
	fail    map[string]error
	pending []byte
	closed  bool
	sent    int
}

// New returns a controller loaded with a plausible daytime profile.
func New() *Controller {
	c := &Controller{
		raw:  make(map[string][]int64),
		bits: make(map[string][]byte),
		fail: make(map[string]error),
		info: []byte("\x00\x15EPsolar Tech co., Ltd\x01\x0CTracer2215BN\x02\x0DV02.13+V07.24"),
	}
	for name, v := range defaultRaw {
		c.raw[name] = append([]int64(nil), v...)
	}
	c.bits[schema.Coil] = []byte{0x01}
	c.bits[schema.Discrete] = []byte{0x00, 0x00}
	return c
}

// SetRaw replaces the raw field values of a register group.
func (c *Controller) SetRaw(group string, values []int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raw[group] = append([]int64(nil), values...)
}

// SetBits replaces the raw response bytes of a bit group, one byte per frame.
func (c *Controller) SetBits(group string, b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bits[group] = append([]byte(nil), b...)
}

// SetInfo replaces the identification payload.
func (c *Controller) SetInfo(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.info = append([]byte(nil), b...)
}

// Fail makes every response of a group return err. A nil err clears it.
func (c *Controller) Fail(group string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.fail, group)
		return
	}
	c.fail[group] = err
}

// Sent reports how many frames were received so far.
func (c *Controller) Sent() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent
}

// Closed reports whether Close was called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// SendFrame records the request.
func (c *Controller) SendFrame(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("sim: port closed")
	}
	c.pending = append([]byte(nil), frame...)
	c.sent++
	return nil
}

// Receive answers the last request.
func (c *Controller) Receive(time.Duration) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return nil, ErrNoRequest
	}
	req := c.pending
	c.pending = nil

	g, part, ok := match(req)
	if !ok {
		return nil, fmt.Errorf("sim: no answer for frame % X", req)
	}
	if err := c.fail[g.Name]; err != nil {
		return nil, err
	}
	return c.answer(g, part)
}

// Close releases the simulated line.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Controller) answer(g *schema.Group, part int) ([]byte, error) {
	switch g.Kind {
	case schema.KindText:
		return append([]byte(nil), c.info...), nil

	case schema.KindBits:
		b := c.bits[g.Name]
		if part >= len(b) {
			return nil, nil
		}
		return []byte{b[part]}, nil
	}

	buf, err := Payload(g, c.raw[g.Name])
	if err != nil {
		return nil, err
	}
	if len(g.Frames) == 1 {
		return buf, nil
	}

	// Two-frame groups: the second frame carries the trailing status registers.
	cut := len(buf) - 2*trailingRegisters
	if part == 0 {
		return buf[:cut], nil
	}
	return buf[cut:], nil
}

// trailingRegisters is how many registers the second realtime frame returns.
const trailingRegisters = 3

// Payload encodes one raw value per field into the group's wire layout.
// Packed pairs are joined low byte first.
func Payload(g *schema.Group, raw []int64) ([]byte, error) {
	if len(raw) != len(g.Fields) {
		return nil, fmt.Errorf("sim: %s: %d raw values for %d fields", g.Name, len(raw), len(g.Fields))
	}

	values := make([]int64, 0, len(raw))
	for i := 0; i < len(g.Fields); i++ {
		if g.Fields[i].Packed && i+1 < len(g.Fields) && g.Fields[i+1].Packed {
			values = append(values, int64(registers.Join8To16(uint8(raw[i]), uint8(raw[i+1]))))
			i++
			continue
		}
		values = append(values, raw[i])
	}

	l := g.Layout()
	return registers.Encode(values, l.DoubleWidth, l.Signed)
}

func match(req []byte) (*schema.Group, int, bool) {
	for _, name := range schema.Names() {
		g, _ := schema.Lookup(name)
		for i, f := range g.Frames {
			if bytes.Equal(f, req) {
				return g, i, true
			}
		}
	}
	return nil, 0, false
}
