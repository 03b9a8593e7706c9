// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/tracer-bridge/internal/schema"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are allowed where Normalize supplies a default.
func Validate(cfg *Config, simulate bool) error {
	if cfg == nil {
		return fmt.Errorf("config: missing")
	}

	// ------------------------------------------------------------
	// SERIAL LINE
	// ------------------------------------------------------------

	s := cfg.Serial
	if s.Port == "" && !simulate {
		return fmt.Errorf("serial.port is required")
	}
	if s.BaudRate < 0 {
		return fmt.Errorf("serial.baud_rate %d must be > 0", s.BaudRate)
	}
	switch s.DataBits {
	case 0, 7, 8:
	default:
		return fmt.Errorf("serial.data_bits %d must be 7 or 8", s.DataBits)
	}
	switch s.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("serial.parity %q must be N, E or O", s.Parity)
	}
	switch s.StopBits {
	case 0, 1, 2:
	default:
		return fmt.Errorf("serial.stop_bits %d must be 1 or 2", s.StopBits)
	}
	if s.TimeoutMs < 0 {
		return fmt.Errorf("serial.timeout_ms %d must be > 0", s.TimeoutMs)
	}

	// ------------------------------------------------------------
	// POLL GROUPS
	// ------------------------------------------------------------

	seen := make(map[string]bool)
	for i, g := range cfg.Poll.Groups {
		if _, ok := schema.Lookup(g.Name); !ok {
			return fmt.Errorf("poll.groups[%d]: unknown group %q (known: %v)", i, g.Name, schema.Names())
		}
		if seen[g.Name] {
			return fmt.Errorf("poll.groups[%d]: group %q listed twice", i, g.Name)
		}
		seen[g.Name] = true

		if g.IntervalMs <= 0 {
			return fmt.Errorf("poll.groups[%d]: group %q interval_ms must be > 0", i, g.Name)
		}
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if cfg.Log.Level != "" {
		if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	switch cfg.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q must be text or json", cfg.Log.Format)
	}

	return nil
}
