// Package snapshot reads and writes register snapshots: text dumps of a
// target's register file that can be replayed through the report printers
// without hardware attached.
//
// The format extends OpenOCD's mdw output with a target line and one line
// per banked register slot:
//
//	# captured by zeroregs
//	target "ATSAMD21G18A"
//	0x40000c00: 00000000 00004303 00000000 00000000
//	bank 0x40000c02[0x03] 0x40000c02: 0x00004303
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// ErrUnknownBank is returned when a bank line names a selector the chip
// does not have.
var ErrUnknownBank = errors.New("snapshot: unknown bank selector")

// Slot holds the data registers of one banked slot.
type Slot struct {
	Select uint32
	Index  uint8
	// Data maps data register address to value.
	Data map[uint32]uint32
}

// Snapshot is a captured register file.
type Snapshot struct {
	Target string
	// Words maps word-aligned addresses to their contents.
	Words map[uint32]uint32
	Slots []Slot
}

// New returns an empty snapshot for target.
func New(target string) *Snapshot {
	return &Snapshot{Target: target, Words: make(map[uint32]uint32)}
}

// Parse reads a snapshot.
func Parse(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}

// ParseString reads a snapshot from a string.
func ParseString(input string) (*Snapshot, error) {
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	tree, err := parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse error: %w", err)
	}

	s := New("")
	for _, e := range tree.Entries {
		switch {
		case e.Target != nil:
			s.Target = *e.Target
		case e.Words != nil:
			if err := s.addWords(e.Words); err != nil {
				return nil, fmt.Errorf("snapshot: line %d: %w", e.Pos.Line, err)
			}
		case e.Bank != nil:
			if err := s.addSlot(e.Bank); err != nil {
				return nil, fmt.Errorf("snapshot: line %d: %w", e.Pos.Line, err)
			}
		}
	}
	return s, nil
}

// ParseFile reads a snapshot from a file.
func ParseFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseHex(s string, bits int) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, bits)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return uint32(v), nil
}

func (s *Snapshot) addWords(l *wordsLine) error {
	addr, err := parseHex(l.Addr, 32)
	if err != nil {
		return err
	}
	if addr%4 != 0 {
		return fmt.Errorf("address 0x%08X is not word aligned", addr)
	}
	for i, w := range l.Words {
		v, err := parseHex(w, 32)
		if err != nil {
			return err
		}
		s.Words[addr+4*uint32(i)] = v
	}
	return nil
}

func (s *Snapshot) addSlot(l *bankLine) error {
	sel, err := parseHex(l.Select, 32)
	if err != nil {
		return err
	}
	idx, err := parseHex(l.Index, 8)
	if err != nil {
		return err
	}
	b, ok := samd21.BankBySelect(sel)
	if !ok {
		return fmt.Errorf("%w: 0x%08X", ErrUnknownBank, sel)
	}
	if int(idx) >= b.Slots {
		return fmt.Errorf("%s: slot %d out of range", b.Name, idx)
	}

	slot := Slot{Select: sel, Index: uint8(idx), Data: make(map[uint32]uint32)}
	for _, d := range l.Data {
		addr, err := parseHex(d.Addr, 32)
		if err != nil {
			return err
		}
		v, err := parseHex(d.Value, 32)
		if err != nil {
			return err
		}
		slot.Data[addr] = v
	}
	s.Slots = append(s.Slots, slot)
	return nil
}

// Bus loads the snapshot into a simulated register file. Addresses the
// snapshot does not cover read as zero.
func (s *Snapshot) Bus() (*regs.MemBus, error) {
	bus := regs.NewMemBus()
	for _, b := range samd21.Banks() {
		bus.AddBank(b, nil)
	}
	for addr, v := range s.Words {
		bus.Poke32(addr, v)
	}
	for _, slot := range s.Slots {
		b, ok := samd21.BankBySelect(slot.Select)
		if !ok {
			return nil, fmt.Errorf("%w: 0x%08X", ErrUnknownBank, slot.Select)
		}
		for addr, v := range slot.Data {
			if err := bus.SetSlot(b, slot.Index, addr, v); err != nil {
				return nil, fmt.Errorf("snapshot: %w", err)
			}
		}
	}
	return bus, nil
}

// Write renders the snapshot. Consecutive words are grouped four to a line.
func (s *Snapshot) Write(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("# zeroregs register snapshot\n")
	if s.Target != "" {
		fmt.Fprintf(&sb, "target %q\n", s.Target)
	}

	addrs := make([]uint32, 0, len(s.Words))
	for a := range s.Words {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	n := 0
	for i, a := range addrs {
		if n == 4 || i == 0 || a != addrs[i-1]+4 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "0x%08x:", a)
			n = 0
		}
		fmt.Fprintf(&sb, " %08x", s.Words[a])
		n++
	}
	if len(addrs) > 0 {
		sb.WriteByte('\n')
	}

	for _, slot := range s.Slots {
		fmt.Fprintf(&sb, "bank 0x%08x[0x%02x]", slot.Select, slot.Index)
		data := make([]uint32, 0, len(slot.Data))
		for a := range slot.Data {
			data = append(data, a)
		}
		sort.Slice(data, func(i, j int) bool { return data[i] < data[j] })
		for _, a := range data {
			fmt.Fprintf(&sb, " 0x%08x: 0x%08x", a, slot.Data[a])
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile writes the snapshot to path.
func (s *Snapshot) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
