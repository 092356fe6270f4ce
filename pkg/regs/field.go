package regs

import "fmt"

// Field is a bitfield inside a register value.
type Field struct {
	Pos   uint8
	Width uint8
}

// Bit returns a one-bit field.
func Bit(n uint8) Field {
	return Field{Pos: n, Width: 1}
}

func (f Field) mask() uint32 {
	if f.Width >= 32 {
		return 0xFFFFFFFF
	}
	return (1 << f.Width) - 1
}

// Get extracts the field from v.
func (f Field) Get(v uint32) uint32 {
	return (v >> f.Pos) & f.mask()
}

// Set returns v with the field replaced by x.
func (f Field) Set(v, x uint32) uint32 {
	m := f.mask() << f.Pos
	return (v &^ m) | ((x << f.Pos) & m)
}

// IsSet reports whether any bit of the field is set in v.
func (f Field) IsSet(v uint32) bool {
	return f.Get(v) != 0
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint32 {
	return f.mask()
}

// Enum maps field values to labels. The index is the field value; an empty
// string marks a reserved encoding.
type Enum []string

// Label returns the label for v. Unlabelled and out-of-range values render
// as reserved(0xN), so a label is never empty.
func (e Enum) Label(v uint32) string {
	if v < uint32(len(e)) && e[v] != "" {
		return e[v]
	}
	return fmt.Sprintf("reserved(0x%X)", v)
}

// Flag names a single bit for flag lists.
type Flag struct {
	Bit  uint8
	Name string
}

// SetFlags returns the names of the flags set in v, in list order.
func SetFlags(v uint32, flags []Flag) []string {
	var names []string
	for _, f := range flags {
		if v&(1<<f.Bit) != 0 {
			names = append(names, f.Name)
		}
	}
	return names
}
