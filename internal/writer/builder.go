// internal/writer/builder.go
package writer

import (
	"fmt"
	"io"
	"os"

	cfg "github.com/tamzrod/tracer-bridge/internal/config"
)

// Build opens the configured output and returns the data writer and, when
// enabled, the status writer. The closer releases the output file.
func Build(o cfg.OutputConfig) (Writer, StatusWriter, func() error, error) {
	var (
		out     io.Writer = os.Stdout
		closeFn           = func() error { return nil }
	)

	if o.Path != "" {
		f, err := os.OpenFile(o.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("writer: open %s: %w", o.Path, err)
		}
		out, closeFn = f, f.Close
	}

	sink := newJSONSink(out)

	var sw StatusWriter
	if o.Status == nil || *o.Status {
		sw = NewStatusWriter(sink)
	}
	return New(sink), sw, closeFn, nil
}
