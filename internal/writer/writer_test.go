// internal/writer/writer_test.go
package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cfg "github.com/tamzrod/tracer-bridge/internal/config"
	"github.com/tamzrod/tracer-bridge/internal/poller"
	"github.com/tamzrod/tracer-bridge/internal/status"
)

// ---- fake sink ----

type fakeSink struct {
	lines []any
	fail  bool
}

func (f *fakeSink) WriteLine(v any) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.lines = append(f.lines, v)
	return nil
}

var at = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// ---- data writer ----

func TestWriter_NumericResult(t *testing.T) {
	sink := &fakeSink{}
	w := New(sink)

	err := w.Write(poller.PollResult{
		Group: "rated",
		At:    at,
		Result: &poller.Result{
			Group: "rated",
			At:    at,
			Readings: []poller.Reading{
				{Name: "PV array rated voltage", Raw: 1200, Value: 12, Unit: "V"},
				{Name: "Charging Mode", Raw: 0, Value: 0},
			},
		},
	})
	if err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(sink.lines))
	}

	rec := sink.lines[0].(ResultRecord)
	if rec.Type != "reading" || rec.Group != "rated" || !rec.At.Equal(at) {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.Readings[0].Value == nil || *rec.Readings[0].Value != 12 || rec.Readings[0].Unit != "V" {
		t.Fatalf("unexpected reading %+v", rec.Readings[0])
	}
	// zero is still a value
	if rec.Readings[1].Value == nil || *rec.Readings[1].Value != 0 {
		t.Fatalf("zero value dropped: %+v", rec.Readings[1])
	}
}

func TestWriter_InfoHasTextOnly(t *testing.T) {
	sink := &fakeSink{}
	w := New(sink)

	_ = w.Write(poller.PollResult{
		Group: "info",
		Result: &poller.Result{
			Group:    "info",
			At:       at,
			Readings: []poller.Reading{{Name: "Model", Text: "Tracer2215BN"}},
		},
	})

	rec := sink.lines[0].(ResultRecord)
	if rec.Readings[0].Value != nil || rec.Readings[0].Text != "Tracer2215BN" {
		t.Fatalf("unexpected reading %+v", rec.Readings[0])
	}
}

func TestWriter_FailedCycleWritesNothing(t *testing.T) {
	sink := &fakeSink{}
	w := New(sink)

	if err := w.Write(poller.PollResult{Group: "stat", At: at, Err: poller.ErrReadFailed}); err != nil {
		t.Fatalf("Write err=%v", err)
	}
	if len(sink.lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(sink.lines))
	}
}

func TestWriter_SinkError(t *testing.T) {
	w := New(&fakeSink{fail: true})
	err := w.Write(poller.PollResult{Result: &poller.Result{Group: "coil"}})
	if err == nil || !strings.Contains(err.Error(), "coil") {
		t.Fatalf("expected sink error naming the group, got %v", err)
	}
}

// ---- status writer ----

func TestStatusWriter_OnlyChanges(t *testing.T) {
	sink := &fakeSink{}
	sw := NewStatusWriter(sink)

	ok := status.Snapshot{Health: status.HealthOK}
	bad := status.Snapshot{Health: status.HealthError, LastErrorCode: status.CodeReadFailed}

	steps := []struct {
		group string
		snap  status.Snapshot
		lines int
	}{
		{"realtime", ok, 1},
		{"realtime", ok, 1},
		{"stat", ok, 2},
		{"realtime", bad, 3},
		{"realtime", bad, 3},
		{"realtime", ok, 4},
	}

	for i, s := range steps {
		if err := sw.WriteStatus(s.group, s.snap); err != nil {
			t.Fatalf("step %d: WriteStatus err=%v", i, err)
		}
		if len(sink.lines) != s.lines {
			t.Fatalf("step %d: expected %d lines, got %d", i, s.lines, len(sink.lines))
		}
	}

	rec := sink.lines[2].(StatusRecord)
	if rec.Type != "status" || rec.Group != "realtime" || rec.Health != "error" || rec.LastErrorCode != 1 {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestStatusWriter_ReassertsAfterFailure(t *testing.T) {
	sink := &fakeSink{}
	sw := NewStatusWriter(sink)
	s := status.Snapshot{Health: status.HealthOK}

	_ = sw.WriteStatus("coil", s)

	sink.fail = true
	bad := status.Snapshot{Health: status.HealthError, LastErrorCode: 2}
	if err := sw.WriteStatus("coil", bad); err == nil {
		t.Fatalf("expected error")
	}

	// Same snapshot as the last delivered one, but delivery was in doubt.
	sink.fail = false
	if err := sw.WriteStatus("coil", s); err != nil {
		t.Fatalf("WriteStatus err=%v", err)
	}
	if len(sink.lines) != 2 {
		t.Fatalf("expected re-assert, got %d lines", len(sink.lines))
	}
}

// ---- builder / json sink ----

func TestBuild_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	w, sw, closeFn, err := Build(cfg.OutputConfig{Path: path})
	if err != nil {
		t.Fatalf("Build err=%v", err)
	}
	if sw == nil {
		t.Fatalf("status writer should default on")
	}

	_ = w.Write(poller.PollResult{Result: &poller.Result{
		Group:    "discrete",
		At:       at,
		Readings: []poller.Reading{{Name: "Day/Night", Raw: 1, Value: 1}},
	}})
	_ = sw.WriteStatus("discrete", status.Snapshot{Health: status.HealthOK})
	if err := closeFn(); err != nil {
		t.Fatalf("close err=%v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), b)
	}

	var first map[string]any
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if first["type"] != "reading" || first["group"] != "discrete" {
		t.Fatalf("unexpected line %s", lines[0])
	}

	var second map[string]any
	if err := json.Unmarshal(lines[1], &second); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if second["type"] != "status" || second["health"] != "ok" {
		t.Fatalf("unexpected line %s", lines[1])
	}
}

func TestBuild_StatusDisabled(t *testing.T) {
	off := false
	_, sw, closeFn, err := Build(cfg.OutputConfig{Status: &off})
	if err != nil {
		t.Fatalf("Build err=%v", err)
	}
	defer closeFn()
	if sw != nil {
		t.Fatalf("status writer should be disabled")
	}
}

func TestBuild_BadPath(t *testing.T) {
	if _, _, _, err := Build(cfg.OutputConfig{Path: filepath.Join(t.TempDir(), "missing", "out.jsonl")}); err == nil {
		t.Fatalf("expected error")
	}
}
