// internal/registers/encode_test.go
package registers

import (
	"errors"
	"reflect"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	double := Indices(1, 4, 7)
	signed := Indices(3, 4, 7, 9)

	values := []int64{
		42,         // r0
		0xFFFFFFFF, // r1-2 unsigned double
		-32767,     // r3
		-123456789, // r4-5 signed double
		65535,      // r6
		0x7FFFFFFF, // r7-8 signed double, positive
		0,          // r9 signed zero
		1,          // r10
	}

	buf, err := Encode(values, double, signed)
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}
	if len(buf) != 22 {
		t.Fatalf("expected 22 bytes, got %d", len(buf))
	}

	got, err := Decode(buf, double, signed)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if !reflect.DeepEqual(got, values) {
		t.Fatalf("got %v, want %v", got, values)
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		value  int64
		double bool
		signed bool
	}{
		{"unsigned negative", -1, false, false},
		{"unsigned overflow", 0x10000, false, false},
		{"signed -32768", -32768, false, true},
		{"signed 32768", 32768, false, true},
		{"double overflow", 0x100000000, true, false},
		{"signed double min", -0x80000000, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var double, signed IndexSet
			if tc.double {
				double = Indices(0)
			}
			if tc.signed {
				signed = Indices(0)
			}
			if _, err := Encode([]int64{tc.value}, double, signed); !errors.Is(err, ErrRange) {
				t.Fatalf("expected ErrRange, got %v", err)
			}
		})
	}
}
