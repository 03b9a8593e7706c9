// internal/schema/schema.go
package schema

import "github.com/tamzrod/tracer-bridge/internal/registers"

// Kind selects the decode path of a group.
type Kind int

const (
	KindRegisters Kind = iota // numeric register block
	KindText                  // device identification strings
	KindBits                  // coils or discrete inputs
)

// Field describes one logical entry of a register block.
// Order inside a group defines decode and output order.
type Field struct {
	Name   string
	Width  int // registers: 1 or 2
	Signed bool
	Scale  float64
	Unit   string

	// Reserved entries exist on the wire but are never published.
	Reserved bool

	// Packed entries come in pairs sharing one register: low byte, then high byte.
	Packed bool
}

// Bit is a single boolean at a fixed byte/bit offset of a response.
type Bit struct {
	Name string
	Byte int
	Bit  uint
}

// Layout is the wire geometry derived from a field list.
type Layout struct {
	Registers   int
	DoubleWidth registers.IndexSet // register indices
	Signed      registers.IndexSet // register indices
	Split       registers.IndexSet // decoded positions, before split
	Prune       registers.IndexSet // positions after split
}

// Group is one query group: its literal frames and how to read the answer.
// Groups are built once and must be treated as read-only.
type Group struct {
	Name   string
	Kind   Kind
	Frames [][]byte

	Fields []Field  // KindRegisters
	Text   []string // KindText
	Bits   []Bit    // KindBits

	// Want is the declared published count, checked against every decode.
	Want int

	layout Layout
}

// NewRegisterGroup builds a numeric group and derives its layout.
func NewRegisterGroup(name string, want int, frames [][]byte, fields []Field) *Group {
	return &Group{
		Name:   name,
		Kind:   KindRegisters,
		Frames: frames,
		Fields: fields,
		Want:   want,
		layout: deriveLayout(fields),
	}
}

// NewTextGroup builds a group decoded as delimited text.
func NewTextGroup(name string, frames [][]byte, names []string) *Group {
	return &Group{
		Name:   name,
		Kind:   KindText,
		Frames: frames,
		Text:   names,
		Want:   len(names),
	}
}

// NewBitGroup builds a group decoded as single bits.
func NewBitGroup(name string, frames [][]byte, bits []Bit) *Group {
	return &Group{
		Name:   name,
		Kind:   KindBits,
		Frames: frames,
		Bits:   bits,
		Want:   len(bits),
	}
}

// Layout returns the derived wire geometry.
func (g *Group) Layout() Layout { return g.layout }

// ExpectedBytes is the raw response length of a register group.
func (g *Group) ExpectedBytes() int { return 2 * g.layout.Registers }

// Published returns the fields that survive pruning, in output order.
func (g *Group) Published() []Field {
	return registers.Prune(g.Fields, g.layout.Prune)
}

// deriveLayout walks fields tracking three cursors: wire register, decoded
// position (before split) and final position (after split).
func deriveLayout(fields []Field) Layout {
	l := Layout{
		DoubleWidth: registers.IndexSet{},
		Signed:      registers.IndexSet{},
		Split:       registers.IndexSet{},
		Prune:       registers.IndexSet{},
	}

	reg, pos := 0, 0
	for i := 0; i < len(fields); i++ {
		f := fields[i]

		if f.Packed && i+1 < len(fields) && fields[i+1].Packed {
			l.Split[pos] = struct{}{}
			if f.Reserved {
				l.Prune[i] = struct{}{}
			}
			if fields[i+1].Reserved {
				l.Prune[i+1] = struct{}{}
			}
			reg++
			pos++
			i++
			continue
		}

		if f.Width == 2 {
			l.DoubleWidth[reg] = struct{}{}
		}
		if f.Signed {
			l.Signed[reg] = struct{}{}
		}
		if f.Reserved {
			l.Prune[i] = struct{}{}
		}
		reg += widthOf(f)
		pos++
	}

	l.Registers = reg
	return l
}

func widthOf(f Field) int {
	if f.Width == 2 {
		return 2
	}
	return 1
}
