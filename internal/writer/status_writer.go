// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/tracer-bridge/internal/status"
)

// groupStatusWriter writes a group's record only when it differs from the
// last delivered one. After a failed write the next call re-asserts.
type groupStatusWriter struct {
	sink lineSink
	now  func() time.Time

	last     map[string]status.Snapshot
	needFull map[string]bool
}

// NewStatusWriter builds a status writer over a sink.
func NewStatusWriter(sink lineSink) StatusWriter {
	return &groupStatusWriter{
		sink:     sink,
		now:      time.Now,
		last:     make(map[string]status.Snapshot),
		needFull: make(map[string]bool),
	}
}

// WriteStatus delivers a group snapshot.
// Not safe for concurrent use; the orchestrator owns it.
func (sw *groupStatusWriter) WriteStatus(group string, s status.Snapshot) error {
	if sw == nil || sw.sink == nil {
		return errors.New("status writer: disabled")
	}

	last, seen := sw.last[group]
	if seen && !sw.needFull[group] && last == s {
		return nil
	}

	rec := StatusRecord{
		Type:   recordStatus,
		At:     sw.now(),
		Record: status.Encode(group, s),
	}
	if err := sw.sink.WriteLine(rec); err != nil {
		sw.needFull[group] = true
		return fmt.Errorf("status writer: group=%s: %w", group, err)
	}

	sw.needFull[group] = false
	sw.last[group] = s
	return nil
}
