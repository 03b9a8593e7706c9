// internal/poller/types.go
package poller

import "time"

// Reading is one published value of a group.
// Numeric groups fill Raw, Value and Unit; the info group fills Text;
// bit groups carry 0 or 1 in Raw and Value.
type Reading struct {
	Name  string
	Raw   int64
	Value float64
	Unit  string
	Text  string
}

// Result is the validated snapshot of one group. Never mutated after creation.
type Result struct {
	Group    string
	At       time.Time
	Readings []Reading
}

// PollResult is what one poll cycle emits.
type PollResult struct {
	Group  string
	At     time.Time
	Result *Result // nil when Err is set
	Err    error   // non-nil means the poll cycle failed
}
