package probe

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/report"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

func connectFake(t *testing.T, f *fakeDAP) *SWD {
	t.Helper()
	s, err := NewSWD(context.Background(), f, DefaultPacketSize, Options{})
	if err != nil {
		t.Fatalf("NewSWD: %v", err)
	}
	return s
}

func bootedTarget(t *testing.T) *regs.MemBus {
	t.Helper()
	mem, err := samd21.ArduinoZeroBooted()
	if err != nil {
		t.Fatalf("ArduinoZeroBooted: %v", err)
	}
	return mem
}

func TestSWDConnect(t *testing.T) {
	f := newFakeDAP(regs.NewMemBus())
	s := connectFake(t, f)

	if s.DPIDR() != 0x0BC11477 {
		t.Errorf("DPIDR = 0x%08X, want 0x0BC11477", s.DPIDR())
	}
	info := s.Info()
	if info.Product != "EDBG CMSIS-DAP" || info.Firmware != "03.25.01B6" {
		t.Errorf("Info = %+v", info)
	}
	if f.clockHz != DefaultSpeedHz {
		t.Errorf("SWJ clock = %d, want %d", f.clockHz, DefaultSpeedHz)
	}
	if !f.switched {
		t.Error("JTAG-to-SWD sequence not sent")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if f.connected || !f.closed {
		t.Error("Close did not disconnect and release the transport")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestSWDConnectFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeDAP)
	}{
		{"no power-up ack", func(f *fakeDAP) { f.noPowerUp = true }},
		{"transport closed", func(f *fakeDAP) { f.closed = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeDAP(regs.NewMemBus())
			tt.setup(f)
			_, err := NewSWD(context.Background(), f, DefaultPacketSize, Options{PowerUpTimeout: 5 * time.Millisecond})
			if err == nil {
				t.Fatal("NewSWD succeeded")
			}
		})
	}
}

func TestSWDReadWidths(t *testing.T) {
	mem := regs.NewMemBus()
	mem.Poke32(0x41002018, 0x10010305)
	s := connectFake(t, newFakeDAP(mem))

	tests := []struct {
		addr  uint32
		width int
		want  uint32
	}{
		{0x41002018, 4, 0x10010305},
		{0x41002018, 2, 0x0305},
		{0x4100201A, 2, 0x1001},
		{0x41002018, 1, 0x05},
		{0x41002019, 1, 0x03},
		{0x4100201B, 1, 0x10},
	}
	for _, tt := range tests {
		got, err := regs.Read(s, tt.addr, tt.width)
		if err != nil {
			t.Fatalf("Read(0x%08X, %d): %v", tt.addr, tt.width, err)
		}
		if got != tt.want {
			t.Errorf("Read(0x%08X, %d) = 0x%X, want 0x%X", tt.addr, tt.width, got, tt.want)
		}
	}
}

func TestSWDCSWCached(t *testing.T) {
	mem := regs.NewMemBus()
	f := newFakeDAP(mem)
	s := connectFake(t, f)

	// First word read writes CSW, TAR and reads DRW; the second skips CSW.
	before := len(f.commands)
	if _, err := s.Read32(0x20000000); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Read32(0x20000004); err != nil {
		t.Fatal(err)
	}
	if len(f.commands)-before != 2 {
		t.Fatalf("expected 2 DAP_Transfer commands, got %d", len(f.commands)-before)
	}
	if f.csw != cswBase|cswSize32 {
		t.Errorf("CSW = 0x%08X", f.csw)
	}
	if _, err := s.Read8(0x20000001); err != nil {
		t.Fatal(err)
	}
	if f.csw != cswBase|cswSize8 {
		t.Errorf("CSW after byte read = 0x%08X", f.csw)
	}
}

func TestSWDWrite8(t *testing.T) {
	mem := regs.NewMemBus()
	mem.Poke32(0x20000000, 0xAABBCCDD)
	s := connectFake(t, newFakeDAP(mem))

	if err := s.Write8(0x20000002, 0x11); err != nil {
		t.Fatalf("Write8: %v", err)
	}
	if got := mem.Peek32(0x20000000); got != 0xAA11CCDD {
		t.Errorf("word = 0x%08X, want 0xAA11CCDD", got)
	}
}

func TestSWDUnaligned(t *testing.T) {
	f := newFakeDAP(regs.NewMemBus())
	s := connectFake(t, f)
	before := len(f.commands)

	if _, err := s.Read32(0x20000002); !errors.Is(err, regs.ErrUnaligned) {
		t.Errorf("Read32 unaligned error = %v", err)
	}
	if _, err := s.Read16(0x20000001); !errors.Is(err, regs.ErrUnaligned) {
		t.Errorf("Read16 unaligned error = %v", err)
	}
	if len(f.commands) != before {
		t.Error("unaligned access reached the probe")
	}
}

func TestSWDFaultRecovery(t *testing.T) {
	mem := regs.NewMemBus()
	mem.Poke32(0x20000000, 0x12345678)
	f := newFakeDAP(mem)
	f.faultAddr = 0x60000000
	s := connectFake(t, f)

	if _, err := s.Read32(0x60000000); !errors.Is(err, ErrTransferFault) {
		t.Fatalf("Read32 error = %v, want ErrTransferFault", err)
	}
	if f.sticky {
		t.Error("sticky error not cleared after FAULT")
	}
	v, err := s.Read32(0x20000000)
	if err != nil {
		t.Fatalf("read after fault: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("read after fault = 0x%08X", v)
	}
}

// A full report through the probe matches the report of the target itself,
// including the banked GCLK, EVSYS and DMAC registers.
func TestSWDReportMatchesTarget(t *testing.T) {
	caps, err := samd21.VariantCapabilities(samd21.DefaultVariant)
	if err != nil {
		t.Fatal(err)
	}
	target := &report.Target{Caps: caps}

	render := func(bus regs.Bus) string {
		var buf bytes.Buffer
		opts := &report.Options{Out: &buf, ShowDisabled: true, Sync: regs.DefaultSyncPolicy()}
		if err := report.PrintAll(context.Background(), opts, bus, target); err != nil {
			t.Fatalf("PrintAll: %v", err)
		}
		return buf.String()
	}

	want := render(bootedTarget(t))
	s := connectFake(t, newFakeDAP(bootedTarget(t)))
	got := render(s)
	if got != want {
		t.Errorf("report through probe differs:\n%s\nwant:\n%s", got, want)
	}
}

// Integration test - only runs with real hardware
func TestSWDIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	s, err := Open(context.Background(), Options{})
	if err != nil {
		t.Skipf("No CMSIS-DAP hardware found: %v", err)
	}
	defer s.Close()

	t.Logf("DPIDR: 0x%08X", s.DPIDR())
	did, err := s.Read32(samd21.DSUBase + samd21.DSUDID)
	if err != nil {
		t.Fatalf("read DSU DID: %v", err)
	}
	t.Logf("DSU DID: 0x%08X", did)
}
