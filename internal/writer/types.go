// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/tracer-bridge/internal/poller"
	"github.com/tamzrod/tracer-bridge/internal/status"
)

// Writer delivers poll results.
type Writer interface {
	Write(res poller.PollResult) error
}

// StatusWriter is the delivery-only contract for group health.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(group string, s status.Snapshot) error
}

// ReadingRecord is the published form of one reading.
type ReadingRecord struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
	Text  string   `json:"text,omitempty"`
}

// ResultRecord is one line per successful poll.
type ResultRecord struct {
	Type     string          `json:"type"`
	Group    string          `json:"group"`
	At       time.Time       `json:"at"`
	Readings []ReadingRecord `json:"readings"`
}

// StatusRecord is one line per health change.
type StatusRecord struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	status.Record
}

const (
	recordReading = "reading"
	recordStatus  = "status"
)
