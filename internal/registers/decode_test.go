// internal/registers/decode_test.go
package registers

import (
	"errors"
	"reflect"
	"testing"
)

// words packs register values big-endian.
func words(regs ...uint16) []byte {
	buf := make([]byte, 0, 2*len(regs))
	for _, r := range regs {
		buf = append(buf, byte(r>>8), byte(r))
	}
	return buf
}

func TestDecode_SignRuleIsNotTwosComplement(t *testing.T) {
	got, err := Decode(words(0x8000), nil, Indices(0))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if got[0] != -32767 {
		t.Fatalf("0x8000 signed: got %d, want -32767", got[0])
	}
}

func TestDecode_SingleRegisters(t *testing.T) {
	tests := []struct {
		name   string
		reg    uint16
		signed bool
		want   int64
	}{
		{"unsigned max", 0xFFFF, false, 65535},
		{"unsigned high bit", 0x8000, false, 32768},
		{"signed positive", 0x7FFF, true, 32767},
		{"signed minus one", 0xFFFE, true, -1},
		{"signed all ones", 0xFFFF, true, 0},
		{"signed zero", 0x0000, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var signed IndexSet
			if tc.signed {
				signed = Indices(0)
			}
			got, err := Decode(words(tc.reg), nil, signed)
			if err != nil {
				t.Fatalf("Decode err=%v", err)
			}
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("got %v, want [%d]", got, tc.want)
			}
		})
	}
}

func TestDecode_DoubleWidthMerge(t *testing.T) {
	got, err := Decode(words(0x0001, 0x0002), Indices(0), nil)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if len(got) != 1 || got[0] != 131073 {
		t.Fatalf("got %v, want [131073]", got)
	}
}

func TestDecode_SignedDoubleWidthUsesHighWord(t *testing.T) {
	// -5 in the controller's convention: both words complemented.
	got, err := Decode(words(0xFFFA, 0xFFFF), Indices(0), Indices(0))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if got[0] != -5 {
		t.Fatalf("got %d, want -5", got[0])
	}

	// low word above 0x7FFF alone does not make the value negative
	got, err = Decode(words(0x8000, 0x0001), Indices(0), Indices(0))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if got[0] != 0x18000 {
		t.Fatalf("got %d, want %d", got[0], 0x18000)
	}
}

func TestDecode_MixedLayout(t *testing.T) {
	buf := words(100, 0x0010, 0x0001, 0xFFF0, 7)
	got, err := Decode(buf, Indices(1), Indices(3))
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	want := []int64{100, 0x10010, -15, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		double IndexSet
		signed IndexSet
	}{
		{"odd length", []byte{0x00, 0x01, 0x02}, nil, nil},
		{"double at last register", words(1, 2), Indices(1), nil},
		{"double overlaps double", words(1, 2, 3), Indices(0, 1), nil},
		{"signed high word", words(1, 2), Indices(0), Indices(1)},
		{"signed out of range", words(1), nil, Indices(4)},
		{"negative index", words(1, 2), Indices(-1), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.buf, tc.double, tc.signed)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestDecode_EmptyBuffer(t *testing.T) {
	got, err := Decode(nil, nil, nil)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	buf := words(0x1234, 0x8001, 0x0002, 0x0003, 0xFFFF)
	double, signed := Indices(2), Indices(1, 4)
	before := append([]byte(nil), buf...)

	first, err := Decode(buf, double, signed)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Decode(buf, double, signed)
		if err != nil {
			t.Fatalf("Decode err=%v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: got %v, want %v", i, again, first)
		}
	}
	if !reflect.DeepEqual(buf, before) {
		t.Fatalf("input buffer mutated")
	}
}

func TestDecode_RatedScenario(t *testing.T) {
	raw := []int64{1200, 800, 960000, 1200, 2000, 2400000, 2, 3000}
	double := Indices(2, 6)

	buf, err := Encode(raw, double, nil)
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}
	if len(buf) != 20 {
		t.Fatalf("expected 20 bytes, got %d", len(buf))
	}

	got, err := Decode(buf, double, nil)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if !reflect.DeepEqual(got, raw) {
		t.Fatalf("got %v, want %v", got, raw)
	}

	divisors := []float64{100, 100, 100, 100, 100, 100, 1, 100}
	want := []float64{12, 8, 9600, 12, 20, 24000, 2, 30}
	for i, v := range got {
		if scaled := float64(v) / divisors[i]; scaled != want[i] {
			t.Fatalf("field %d: got %v, want %v", i, scaled, want[i])
		}
	}
}
