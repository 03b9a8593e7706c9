// internal/config/normalize.go
package config

import "github.com/tamzrod/tracer-bridge/internal/schema"

// Defaults for an unset line or schedule.
const (
	DefaultBaudRate   = 115200
	DefaultDataBits   = 8
	DefaultParity     = "N"
	DefaultStopBits   = 1
	DefaultTimeoutMs  = 1000
	DefaultIntervalMs = 10000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	s := &cfg.Serial
	if s.BaudRate == 0 {
		s.BaudRate = DefaultBaudRate
	}
	if s.DataBits == 0 {
		s.DataBits = DefaultDataBits
	}
	if s.Parity == "" {
		s.Parity = DefaultParity
	}
	if s.StopBits == 0 {
		s.StopBits = DefaultStopBits
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultTimeoutMs
	}

	// No groups listed: poll everything at the default interval.
	if len(cfg.Poll.Groups) == 0 {
		for _, name := range schema.Names() {
			cfg.Poll.Groups = append(cfg.Poll.Groups, GroupConfig{Name: name, IntervalMs: DefaultIntervalMs})
		}
	}

	if cfg.Output.Status == nil {
		on := true
		cfg.Output.Status = &on
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
