// internal/writer/sink.go
package writer

import (
	"encoding/json"
	"io"
	"sync"
)

// lineSink is the exact contract both writers use.
type lineSink interface {
	WriteLine(v any) error
}

// jsonSink writes one JSON document per line. Safe for concurrent use.
type jsonSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func newJSONSink(w io.Writer) *jsonSink {
	return &jsonSink{enc: json.NewEncoder(w)}
}

func (s *jsonSink) WriteLine(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(v)
}
