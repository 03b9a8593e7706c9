// internal/writer/writer.go
package writer

import (
	"fmt"

	"github.com/tamzrod/tracer-bridge/internal/poller"
	"github.com/tamzrod/tracer-bridge/internal/schema"
)

type writerImpl struct {
	sink lineSink
}

// New returns a Writer that emits one record per successful poll.
// Failed cycles are not written; their trace is the status stream.
func New(sink lineSink) Writer {
	return &writerImpl{sink: sink}
}

func (w *writerImpl) Write(res poller.PollResult) error {
	if res.Err != nil || res.Result == nil {
		return nil
	}

	rec := ResultRecord{
		Type:     recordReading,
		Group:    res.Result.Group,
		At:       res.Result.At,
		Readings: make([]ReadingRecord, 0, len(res.Result.Readings)),
	}

	textual := res.Result.Group == schema.Info
	for _, r := range res.Result.Readings {
		rr := ReadingRecord{Name: r.Name, Unit: r.Unit, Text: r.Text}
		if !textual {
			v := r.Value
			rr.Value = &v
		}
		rec.Readings = append(rec.Readings, rr)
	}

	if err := w.sink.WriteLine(rec); err != nil {
		return fmt.Errorf("writer: group=%s: %w", rec.Group, err)
	}
	return nil
}
