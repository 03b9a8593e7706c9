// internal/poller/decode.go
package poller

import (
	"fmt"
	"strings"

	"github.com/tamzrod/tracer-bridge/internal/registers"
	"github.com/tamzrod/tracer-bridge/internal/schema"
)

// decodeRegisters runs decode, split, prune and scaling for a numeric group.
func decodeRegisters(g *schema.Group, raw []byte) ([]Reading, error) {
	if len(raw) != g.ExpectedBytes() {
		return nil, fmt.Errorf("%w: %s: got %d bytes, want %d", ErrMalformedResponse, g.Name, len(raw), g.ExpectedBytes())
	}

	l := g.Layout()
	values, err := registers.Decode(raw, l.DoubleWidth, l.Signed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	if len(l.Split) > 0 {
		values = registers.SplitAt(values, l.Split)
	}
	values = registers.Prune(values, l.Prune)

	fields := g.Published()
	if len(values) != g.Want || len(fields) != g.Want {
		return nil, fmt.Errorf("%w: %s: decoded %d values, %d fields, want %d", ErrSchemaMismatch, g.Name, len(values), len(fields), g.Want)
	}

	out := make([]Reading, len(values))
	for i, v := range values {
		f := fields[i]
		out[i] = Reading{
			Name:  f.Name,
			Raw:   v,
			Value: float64(v) / f.Scale,
			Unit:  f.Unit,
		}
	}
	return out, nil
}

// decodeText walks the identification objects (id, length, value) and turns
// each value into a trimmed string. Bytes outside the printable set are dropped.
func decodeText(g *schema.Group, raw []byte) ([]Reading, error) {
	var parts []string
	for pos := 0; pos < len(raw); {
		if pos+2 > len(raw) {
			return nil, fmt.Errorf("%w: %s: truncated object header at byte %d", ErrMalformedResponse, g.Name, pos)
		}
		id, n := raw[pos], int(raw[pos+1])
		pos += 2
		if pos+n > len(raw) {
			return nil, fmt.Errorf("%w: %s: object %#x needs %d bytes, %d left", ErrMalformedResponse, g.Name, id, n, len(raw)-pos)
		}
		parts = append(parts, cleanText(raw[pos:pos+n]))
		pos += n
	}

	if len(parts) != g.Want {
		return nil, fmt.Errorf("%w: %s: got %d text fields, want %d", ErrSchemaMismatch, g.Name, len(parts), g.Want)
	}

	out := make([]Reading, len(parts))
	for i, p := range parts {
		out[i] = Reading{Name: g.Text[i], Text: p}
	}
	return out, nil
}

func cleanText(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if printable(c) {
			sb.WriteByte(c)
		}
	}
	return strings.TrimSpace(sb.String())
}

func printable(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(" _-+&.,", c) >= 0
}

// decodeBits reads single bits at fixed offsets.
func decodeBits(g *schema.Group, raw []byte) ([]Reading, error) {
	out := make([]Reading, len(g.Bits))
	for i, b := range g.Bits {
		if b.Byte >= len(raw) {
			return nil, fmt.Errorf("%w: %s: bit %q needs byte %d, got %d bytes", ErrMalformedResponse, g.Name, b.Name, b.Byte, len(raw))
		}
		v := int64(raw[b.Byte] >> b.Bit & 1)
		out[i] = Reading{Name: b.Name, Raw: v, Value: float64(v)}
	}
	return out, nil
}
