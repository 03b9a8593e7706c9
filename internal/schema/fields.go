// internal/schema/fields.go
package schema

// Table helpers. Every table entry starts from one of these.

func num(name, unit string, scale float64) Field {
	return Field{Name: name, Width: 1, Scale: scale, Unit: unit}
}

func plain(name string) Field { return num(name, "", 1) }

func wide(name, unit string, scale float64) Field {
	f := num(name, unit, scale)
	f.Width = 2
	return f
}

func signed(f Field) Field {
	f.Signed = true
	return f
}

func reserved(width int) Field {
	return Field{Name: "reserved", Width: width, Scale: 1, Reserved: true}
}

// packed returns the low-byte and high-byte halves of one register.
func packed(lo, hi Field) []Field {
	lo.Packed, hi.Packed = true, true
	return []Field{lo, hi}
}

func fieldsOf(parts ...any) []Field {
	var out []Field
	for _, p := range parts {
		switch v := p.(type) {
		case Field:
			out = append(out, v)
		case []Field:
			out = append(out, v...)
		}
	}
	return out
}
