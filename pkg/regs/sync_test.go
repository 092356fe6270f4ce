package regs

import (
	"context"
	"errors"
	"testing"
	"time"
)

// testBank mimics a clock-control style register: the selector is the low
// byte of a 16-bit register whose ID field echoes the selection, with a
// status register whose bit 7 reads set while synchronizing.
func testBank() *Bank {
	return &Bank{
		Name:      "TEST.CLKCTRL",
		Select:    0x102,
		Slots:     4,
		EchoAt:    0x102,
		EchoWidth: 2,
		Echo:      Field{Pos: 0, Width: 6},
		Busy:      []Busy{{Addr: 0x101, Width: 1, Mask: 0x80}},
		Data:      []Reg{{Addr: 0x102, Width: 2}},
	}
}

func newBankBus(lag int) (*MemBus, *Bank) {
	b := testBank()
	m := NewMemBus()
	m.Lag = lag
	m.AddBank(b, map[uint8][]uint32{
		0: {0x4000},
		1: {0x4301},
		2: {0x0102},
		3: {0x8503},
	})
	return m, b
}

func TestBankReadValues(t *testing.T) {
	for _, lag := range []int{0, 1, 5} {
		m, b := newBankBus(lag)
		got, err := b.ReadAll(context.Background(), m, DefaultSyncPolicy())
		if err != nil {
			t.Fatalf("lag %d: ReadAll: %v", lag, err)
		}
		want := []uint32{0x4000, 0x4301, 0x0102, 0x8503}
		for i := range want {
			if got[i][0] != want[i] {
				t.Errorf("lag %d: slot %d = 0x%04X, want 0x%04X", lag, i, got[i][0], want[i])
			}
		}
	}
}

func TestBankReadOrder(t *testing.T) {
	m, b := newBankBus(2)
	if _, err := b.ReadAll(context.Background(), m, DefaultSyncPolicy()); err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	ops := m.Ops()
	writes := 0
	for i, op := range ops {
		if op.Kind != OpWrite {
			continue
		}
		writes++
		if op.Addr != b.Select || op.Value != uint32(writes-1) {
			t.Fatalf("write %d = %v, want select of slot %d", writes, op, writes-1)
		}
		// After each selector write the status flag must be polled before
		// the data register is read.
		sawStatus := false
		for _, next := range ops[i+1:] {
			if next.Kind == OpWrite {
				break
			}
			if next.Addr == 0x101 {
				sawStatus = true
			}
			if next.Addr == 0x102 && !sawStatus {
				t.Fatalf("slot %d: data read before status poll", writes-1)
			}
		}
		if !sawStatus {
			t.Fatalf("slot %d: status never polled", writes-1)
		}
	}
	if writes != b.Slots {
		t.Fatalf("selector writes = %d, want %d", writes, b.Slots)
	}
}

func TestBankNaiveReadIsStale(t *testing.T) {
	m, b := newBankBus(3)
	if _, err := b.Read(context.Background(), m, DefaultSyncPolicy(), 1); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if err := m.Write8(b.Select, 3); err != nil {
		t.Fatalf("Write8: %v", err)
	}
	v, _ := m.Read16(0x102)
	if v != 0x4301 {
		t.Fatalf("immediate read = 0x%04X, want stale slot 1 value 0x4301", v)
	}
}

func TestBankStuckTimesOut(t *testing.T) {
	m, b := newBankBus(0)
	m.Stick(b.Select)

	policy := SyncPolicy{Timeout: 5 * time.Millisecond}
	_, err := b.Read(context.Background(), m, policy, 2)
	if !errors.Is(err, ErrSyncTimeout) {
		t.Fatalf("got %v, want ErrSyncTimeout", err)
	}
}

func TestBankReadCancelled(t *testing.T) {
	m, b := newBankBus(0)
	m.Stick(b.Select)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Read(ctx, m, SyncPolicy{Timeout: time.Hour}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestBankSlotRange(t *testing.T) {
	m, b := newBankBus(0)
	if _, err := b.Read(context.Background(), m, DefaultSyncPolicy(), 4); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if len(m.Ops()) != 0 {
		t.Fatal("out-of-range read must not touch the bus")
	}
}

func TestWaitFlags(t *testing.T) {
	m := NewMemBus()
	m.Poke8(0x201, 0x80)
	err := DefaultSyncPolicy().Wait(context.Background(), m, Busy{Addr: 0x201, Width: 1, Mask: 0x80})
	if !errors.Is(err, ErrSyncTimeout) {
		t.Fatalf("busy flag: got %v, want ErrSyncTimeout", err)
	}

	m.Poke8(0x201, 0x01)
	if err := DefaultSyncPolicy().Wait(context.Background(), m, Busy{Addr: 0x201, Width: 1, Mask: 0x80}); err != nil {
		t.Fatalf("clear flag: %v", err)
	}
	if err := DefaultSyncPolicy().Wait(context.Background(), m); err != nil {
		t.Fatalf("no flags: %v", err)
	}
}

func TestSetSlot(t *testing.T) {
	m := NewMemBus()
	b := testBank()
	if err := m.SetSlot(b, 2, 0x102, 0x4402); err != nil {
		t.Fatalf("SetSlot: %v", err)
	}
	if err := m.SetSlot(b, 2, 0x104, 1); err == nil {
		t.Fatal("SetSlot on non-data register: expected error")
	}
	if err := m.SetSlot(b, 9, 0x102, 1); err == nil {
		t.Fatal("SetSlot out of range: expected error")
	}
	vals, err := b.Read(context.Background(), m, DefaultSyncPolicy(), 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if vals[0] != 0x4402 {
		t.Fatalf("slot 2 = 0x%X, want 0x4402", vals[0])
	}
}
