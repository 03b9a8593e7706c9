// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	cfg "github.com/tamzrod/tracer-bridge/internal/config"
	pmodbus "github.com/tamzrod/tracer-bridge/internal/poller/modbus"
	"github.com/tamzrod/tracer-bridge/internal/poller/sim"
	"github.com/tamzrod/tracer-bridge/internal/schema"
)

// Schedule is one reader and its poll interval.
type Schedule struct {
	Reader   *Reader
	Interval time.Duration
}

// Build opens the line, checks the literal frames of every configured group
// and returns a Ready session with one reader per group.
// The caller owns the session and must Close it.
func Build(c *cfg.Config, simulate bool, log logrus.FieldLogger) (*Session, []Schedule, error) {
	groups := make([]*schema.Group, 0, len(c.Poll.Groups))
	for _, gc := range c.Poll.Groups {
		g, ok := schema.Lookup(gc.Name)
		if !ok {
			return nil, nil, fmt.Errorf("poller: unknown group %q", gc.Name)
		}
		if err := pmodbus.VerifyFrames(g.Frames); err != nil {
			return nil, nil, fmt.Errorf("poller: group %s: %w", g.Name, err)
		}
		groups = append(groups, g)
	}

	timeout := time.Duration(c.Serial.TimeoutMs) * time.Millisecond

	var port Port
	if simulate {
		port = sim.New()
	} else {
		p, err := pmodbus.Open(pmodbus.Config{
			Address:  c.Serial.Port,
			BaudRate: c.Serial.BaudRate,
			DataBits: c.Serial.DataBits,
			StopBits: c.Serial.StopBits,
			Parity:   c.Serial.Parity,
			Timeout:  timeout,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		port = p
	}

	sess, err := NewSession(port, timeout, log)
	if err != nil {
		_ = port.Close()
		return nil, nil, err
	}

	schedules := make([]Schedule, 0, len(groups))
	for i, g := range groups {
		r, err := NewReader(sess, g)
		if err != nil {
			_ = sess.Close()
			return nil, nil, err
		}
		schedules = append(schedules, Schedule{
			Reader:   r,
			Interval: time.Duration(c.Poll.Groups[i].IntervalMs) * time.Millisecond,
		})
	}

	if err := sess.Ready(); err != nil {
		_ = sess.Close()
		return nil, nil, err
	}
	return sess, schedules, nil
}
