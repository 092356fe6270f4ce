package regs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnaligned is returned for 16/32-bit accesses that are not naturally aligned.
	ErrUnaligned = errors.New("regs: unaligned access")
	// ErrUnmapped is returned by strict buses for addresses with no backing store.
	ErrUnmapped = errors.New("regs: unmapped address")
	// ErrBadWidth is returned for access widths other than 1, 2 or 4 bytes.
	ErrBadWidth = errors.New("regs: invalid access width")
)

// Bus gives access to a target's memory-mapped registers.
//
// The only write ZeroRegs ever performs is the 8-bit selector write of a
// banked register (see Bank), so Write8 is the sole mutator.
type Bus interface {
	Read8(addr uint32) (uint8, error)
	Read16(addr uint32) (uint16, error)
	Read32(addr uint32) (uint32, error)
	Write8(addr uint32, v uint8) error
}

// Read performs a read of the given width (1, 2 or 4 bytes).
func Read(bus Bus, addr uint32, width int) (uint32, error) {
	switch width {
	case 1:
		v, err := bus.Read8(addr)
		return uint32(v), err
	case 2:
		v, err := bus.Read16(addr)
		return uint32(v), err
	case 4:
		return bus.Read32(addr)
	}
	return 0, fmt.Errorf("%w: %d", ErrBadWidth, width)
}

// CheckAlign validates natural alignment for a width.
func CheckAlign(addr uint32, width int) error {
	if width != 1 && width != 2 && width != 4 {
		return fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if addr%uint32(width) != 0 {
		return fmt.Errorf("%w: 0x%08X/%d", ErrUnaligned, addr, width)
	}
	return nil
}

// Block is a handle to one peripheral's register block.
type Block struct {
	Bus  Bus
	Base uint32
}

// Addr returns the absolute address of a register offset.
func (b Block) Addr(off uint32) uint32 {
	return b.Base + off
}

// At returns a block handle for a sub-block at off (e.g. a PORT group).
func (b Block) At(off uint32) Block {
	return Block{Bus: b.Bus, Base: b.Base + off}
}

func (b Block) String() string {
	return fmt.Sprintf("block@0x%08X", b.Base)
}
