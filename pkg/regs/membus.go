package regs

import (
	"fmt"
	"sort"
	"sync"
)

// OpKind distinguishes recorded bus operations.
type OpKind uint8

const (
	OpRead OpKind = iota
	OpWrite
)

func (k OpKind) String() string {
	if k == OpWrite {
		return "W"
	}
	return "R"
}

// Op is one bus access recorded by MemBus.
type Op struct {
	Kind  OpKind
	Addr  uint32
	Width int
	Value uint32
}

func (o Op) String() string {
	return fmt.Sprintf("%s%d 0x%08X=0x%X", o.Kind, o.Width*8, o.Addr, o.Value)
}

// AccessHook lets tests inject faults. A non-nil error fails the access.
type AccessHook func(op Op) error

// MemBus is an in-memory register file. It emulates banked registers,
// including the window during which a selector write has not yet taken
// effect, and records every access for inspection within tests.
type MemBus struct {
	// Strict makes reads of never-written words fail with ErrUnmapped.
	Strict bool
	// Lag is the number of bus reads during which a selector write is still
	// propagating: busy flags read set and the data window holds the
	// previous slot.
	Lag int
	// OnAccess is called before every recorded access.
	OnAccess AccessHook

	mu      sync.Mutex
	words   map[uint32]uint32
	banks   map[uint32]*simBank
	pending *pendingSelect
	ops     []Op
}

type simBank struct {
	bank  *Bank
	slots map[uint8][]uint32
	stuck bool
}

type pendingSelect struct {
	sb        *simBank
	id        uint8
	remaining int
}

// NewMemBus returns an empty register file.
func NewMemBus() *MemBus {
	return &MemBus{
		words: make(map[uint32]uint32),
		banks: make(map[uint32]*simBank),
	}
}

// AddBank registers a banked register. slots maps each index to the values
// of b.Data in order; missing slots read as zero.
func (m *MemBus) AddBank(b *Bank, slots map[uint8][]uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sb := m.bankLocked(b)
	for id, vals := range slots {
		sb.slots[id] = append([]uint32(nil), vals...)
	}
}

func (m *MemBus) bankLocked(b *Bank) *simBank {
	sb, ok := m.banks[b.Select]
	if !ok {
		sb = &simBank{bank: b, slots: make(map[uint8][]uint32)}
		m.banks[b.Select] = sb
	}
	return sb
}

// SetSlot stores the value of one data register for one slot of bank b.
func (m *MemBus) SetSlot(b *Bank, id uint8, dataAddr uint32, v uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, r := range b.Data {
		if r.Addr == dataAddr {
			idx = i
		}
	}
	if idx < 0 {
		return fmt.Errorf("%s: 0x%08X is not a data register", b.Name, dataAddr)
	}
	if int(id) >= b.Slots {
		return fmt.Errorf("%s: slot %d out of range", b.Name, id)
	}

	sb := m.bankLocked(b)
	vals := sb.slots[id]
	for len(vals) < len(b.Data) {
		vals = append(vals, 0)
	}
	vals[idx] = v
	sb.slots[id] = vals
	return nil
}

// Slot returns the stored data values of one slot.
func (m *MemBus) Slot(selectAddr uint32, id uint8) ([]uint32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sb, ok := m.banks[selectAddr]
	if !ok {
		return nil, false
	}
	vals, ok := sb.slots[id]
	return append([]uint32(nil), vals...), ok
}

// Stick makes the bank selected at selectAddr never finish synchronizing.
func (m *MemBus) Stick(selectAddr uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sb, ok := m.banks[selectAddr]; ok {
		sb.stuck = true
	}
}

// Poke8 stores a byte without recording an operation.
func (m *MemBus) Poke8(addr uint32, v uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(addr, 1, uint32(v))
}

// Poke16 stores a halfword without recording an operation.
func (m *MemBus) Poke16(addr uint32, v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(addr, 2, uint32(v))
}

// Poke32 stores a word without recording an operation.
func (m *MemBus) Poke32(addr uint32, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(addr, 4, v)
}

// Peek32 returns the word at addr without recording an operation.
func (m *MemBus) Peek32(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(addr&^3, 4)
}

// Words returns the word-aligned addresses that hold data, sorted.
func (m *MemBus) Words() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	addrs := make([]uint32, 0, len(m.words))
	for a := range m.words {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Ops returns a copy of the recorded operations.
func (m *MemBus) Ops() []Op {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Op(nil), m.ops...)
}

// ResetOps clears the operation log.
func (m *MemBus) ResetOps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = nil
}

func (m *MemBus) Read8(addr uint32) (uint8, error) {
	v, err := m.read(addr, 1)
	return uint8(v), err
}

func (m *MemBus) Read16(addr uint32) (uint16, error) {
	v, err := m.read(addr, 2)
	return uint16(v), err
}

func (m *MemBus) Read32(addr uint32) (uint32, error) {
	return m.read(addr, 4)
}

func (m *MemBus) Write8(addr uint32, v uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	op := Op{Kind: OpWrite, Addr: addr, Width: 1, Value: uint32(v)}
	if m.OnAccess != nil {
		if err := m.OnAccess(op); err != nil {
			return err
		}
	}
	m.ops = append(m.ops, op)

	sb, ok := m.banks[addr]
	if !ok {
		m.store(addr, 1, uint32(v))
		return nil
	}

	m.pending = &pendingSelect{sb: sb, id: v, remaining: m.Lag}
	if m.Lag == 0 && !sb.stuck {
		m.apply(m.pending)
		m.pending = nil
	}
	return nil
}

func (m *MemBus) read(addr uint32, width int) (uint32, error) {
	if err := CheckAlign(addr, width); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Strict {
		if _, ok := m.words[addr&^3]; !ok {
			return 0, fmt.Errorf("%w: 0x%08X", ErrUnmapped, addr)
		}
	}

	busy := false
	if p := m.pending; p != nil {
		if p.remaining > 0 || p.sb.stuck {
			busy = true
			if p.remaining > 0 {
				p.remaining--
			}
		} else {
			m.apply(p)
			m.pending = nil
		}
	}

	v := m.load(addr, width)
	if busy {
		for _, b := range m.pending.sb.bank.Busy {
			if b.Addr == addr && b.Width == width {
				v |= b.Mask
			}
		}
	}

	op := Op{Kind: OpRead, Addr: addr, Width: width, Value: v}
	if m.OnAccess != nil {
		if err := m.OnAccess(op); err != nil {
			return 0, err
		}
	}
	m.ops = append(m.ops, op)
	return v, nil
}

func (m *MemBus) apply(p *pendingSelect) {
	b := p.sb.bank
	vals := p.sb.slots[p.id]
	for i, r := range b.Data {
		var v uint32
		if i < len(vals) {
			v = vals[i]
		}
		m.store(r.Addr, r.Width, v)
	}
	echo := m.load(b.EchoAt, b.EchoWidth)
	m.store(b.EchoAt, b.EchoWidth, b.Echo.Set(echo, uint32(p.id)))
}

func (m *MemBus) load(addr uint32, width int) uint32 {
	shift := 8 * (addr & 3)
	v := m.words[addr&^3] >> shift
	switch width {
	case 1:
		return v & 0xFF
	case 2:
		return v & 0xFFFF
	}
	return v
}

func (m *MemBus) store(addr uint32, width int, v uint32) {
	var mask uint32
	switch width {
	case 1:
		mask = 0xFF
	case 2:
		mask = 0xFFFF
	default:
		mask = 0xFFFFFFFF
	}
	shift := 8 * (addr & 3)
	key := addr &^ 3
	w := m.words[key]
	w = (w &^ (mask << shift)) | ((v & mask) << shift)
	m.words[key] = w
}

var _ Bus = (*MemBus)(nil)
