package snapshot

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/report"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

func TestParseFile(t *testing.T) {
	s, err := ParseFile(filepath.Join("testdata", "gclk.snap"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if s.Target != "ATSAMD21G18A" {
		t.Errorf("Target = %q", s.Target)
	}
	if len(s.Words) != 3 || s.Words[0x40000C04] != 0x00004303 {
		t.Errorf("Words = %v", s.Words)
	}
	if len(s.Slots) != 3 {
		t.Fatalf("Slots = %d, want 3", len(s.Slots))
	}
	if sl := s.Slots[0]; sl.Select != samd21.GCLKClkCtrlBank.Select || sl.Index != 5 || sl.Data[0x40000C02] != 0x4005 {
		t.Errorf("slot 0 = %+v", sl)
	}

	bus, err := s.Bus()
	if err != nil {
		t.Fatalf("Bus: %v", err)
	}
	vals, err := samd21.GCLKClkCtrlBank.Read(context.Background(), bus, regs.DefaultSyncPolicy(), 5)
	if err != nil {
		t.Fatalf("bank read: %v", err)
	}
	if vals[0] != 0x4005 {
		t.Errorf("CLKCTRL[5] = 0x%X, want 0x4005", vals[0])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown bank", "bank 0x40001000[0x00] 0x40001000: 0x1\n", ErrUnknownBank},
		{"unaligned", "0x40000c02: 00000000\n", nil},
		{"slot range", "bank 0x40000c02[0x40] 0x40000c02: 0x1\n", nil},
		{"syntax", "0x40000c00 00000000\n", nil},
		{"stray token", "target ATSAMD21G18A\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseNoTrailingNewline(t *testing.T) {
	s, err := ParseString(`target "X"` + "\n0x20000000: deadbeef 00000001")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if s.Words[0x20000000] != 0xDEADBEEF || s.Words[0x20000004] != 1 {
		t.Errorf("Words = %v", s.Words)
	}
}

func TestWriteGroupsWords(t *testing.T) {
	s := New("ATSAMD21G18A")
	for i := uint32(0); i < 5; i++ {
		s.Words[0x100+4*i] = i
	}
	s.Words[0x200] = 0xABCD
	s.Slots = append(s.Slots, Slot{
		Select: samd21.DMACChannelBank.Select,
		Index:  2,
		Data:   map[uint32]uint32{samd21.DMACBase + samd21.DMACChCtrlB: 0x1200, samd21.DMACBase + samd21.DMACChCtrlA: 2},
	})

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"# zeroregs register snapshot",
		`target "ATSAMD21G18A"`,
		"0x00000100: 00000000 00000001 00000002 00000003",
		"0x00000110: 00000004",
		"0x00000200: 0000abcd",
		"bank 0x4100483f[0x02] 0x41004840: 0x00000002 0x41004844: 0x00001200",
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != strings.Join(want, "\n") {
		t.Fatalf("Write =\n%s\nwant\n%s", got, strings.Join(want, "\n"))
	}

	back, err := ParseString(buf.String())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(back.Words) != 6 || back.Slots[0].Data[samd21.DMACBase+samd21.DMACChCtrlB] != 0x1200 {
		t.Fatalf("reparse = %+v", back)
	}
}

func dump(t *testing.T, bus regs.Bus, caps samd21.Set) string {
	t.Helper()
	var buf bytes.Buffer
	opts := &report.Options{Out: &buf, ShowDisabled: true, Sync: regs.DefaultSyncPolicy()}
	if err := report.PrintAll(context.Background(), opts, bus, &report.Target{Caps: caps}); err != nil {
		t.Fatalf("PrintAll: %v", err)
	}
	return buf.String()
}

func TestCaptureReproducesReport(t *testing.T) {
	caps, err := samd21.VariantCapabilities(samd21.DefaultVariant)
	if err != nil {
		t.Fatal(err)
	}
	live, err := samd21.ArduinoZeroBooted()
	if err != nil {
		t.Fatal(err)
	}
	want := dump(t, live, caps)

	snap, err := CaptureTarget(context.Background(), live, samd21.DefaultVariant, caps, regs.DefaultSyncPolicy())
	if err != nil {
		t.Fatalf("CaptureTarget: %v", err)
	}
	var buf bytes.Buffer
	if err := snap.Write(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := ParseString(buf.String())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if loaded.Target != samd21.DefaultVariant {
		t.Errorf("Target = %q", loaded.Target)
	}
	bus, err := loaded.Bus()
	if err != nil {
		t.Fatalf("Bus: %v", err)
	}
	if got := dump(t, bus, caps); got != want {
		t.Fatalf("report from snapshot differs:\n%s\nlive:\n%s", got, want)
	}
}

func TestCaptureStuckBank(t *testing.T) {
	live, err := samd21.ArduinoZeroBooted()
	if err != nil {
		t.Fatal(err)
	}
	live.Stick(samd21.EVSYSUserBank.Select)
	caps := samd21.NewSet(samd21.EVSYS)
	_, err = CaptureTarget(context.Background(), live, "", caps, regs.SyncPolicy{Timeout: 1})
	if !errors.Is(err, regs.ErrSyncTimeout) {
		t.Fatalf("got %v, want ErrSyncTimeout", err)
	}
}
