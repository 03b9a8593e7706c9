// internal/status/encode.go
package status

// Record is the published form of a group's health.
type Record struct {
	Group          string `json:"group"`
	Health         string `json:"health"`
	HealthCode     uint16 `json:"health_code"`
	LastErrorCode  uint16 `json:"last_error_code"`
	SecondsInError uint16 `json:"seconds_in_error"`
}

// Encode converts a Snapshot into its published record.
// No IO. No side effects.
func Encode(group string, s Snapshot) Record {
	return Record{
		Group:          group,
		Health:         HealthName(s.Health),
		HealthCode:     s.Health,
		LastErrorCode:  s.LastErrorCode,
		SecondsInError: s.SecondsInError,
	}
}

// HealthName returns the label of a health code.
func HealthName(h uint16) string {
	switch h {
	case HealthUnknown:
		return "unknown"
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	}
	return "invalid"
}
