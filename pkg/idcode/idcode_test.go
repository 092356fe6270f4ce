package idcode

import "testing"

func TestParseDPIDR(t *testing.T) {
	// Cortex-M0+ SW-DP as found on SAM D21.
	d := ParseDPIDR(0x0BC11477)
	if !d.Valid {
		t.Fatal("bit 0 should be set")
	}
	if d.DesignerCode != 0x23B {
		t.Errorf("DesignerCode = 0x%03X, want 0x23B", d.DesignerCode)
	}
	if d.Version != 1 || d.PartNumber != 0xBC || !d.MinDP || d.Revision != 0 {
		t.Errorf("unexpected fields: %+v", d)
	}
	m, ok := LookupManufacturer(d.DesignerCode)
	if !ok || m.Abbreviation != "ARM" {
		t.Errorf("designer = %+v, want ARM", m)
	}
}

func TestParseDeviceID(t *testing.T) {
	tests := []struct {
		raw    uint32
		series uint8
		devsel uint8
		rev    string
		proc   string
	}{
		{0x10010305, 1, 0x05, "D", "Cortex-M0+"},
		{0x10010000, 1, 0x00, "A", "Cortex-M0+"},
		{0x1001140A, 1, 0x0A, "E", "Cortex-M0+"},
	}
	for _, tt := range tests {
		id := ParseDeviceID(tt.raw)
		if id.Series != tt.series || id.DevSel != tt.devsel {
			t.Errorf("0x%08X: series/devsel = %d/0x%02X", tt.raw, id.Series, id.DevSel)
		}
		if got := id.RevisionLetter(); got != tt.rev {
			t.Errorf("0x%08X: revision = %s, want %s", tt.raw, got, tt.rev)
		}
		if got := id.ProcessorName(); got != tt.proc {
			t.Errorf("0x%08X: processor = %s, want %s", tt.raw, got, tt.proc)
		}
	}
}

func TestLookupManufacturerUnknown(t *testing.T) {
	m, ok := LookupManufacturer(0x7FF)
	if ok {
		t.Fatal("0x7FF should be unknown")
	}
	if m.Name != "Unknown (0x7FF)" {
		t.Errorf("Name = %q", m.Name)
	}
}

func TestLookupManufacturer(t *testing.T) {
	tests := []struct {
		code uint16
		want string
		ok   bool
	}{
		{0x23B, "ARM", true},
		{0x01F, "Atmel", true},
		{0x029, "Microchip", true},
		{0x493, "RPi", true},
		{0x031, "Unknown", false}, // FPGA vendors never design an SW-DP
	}
	for _, tt := range tests {
		m, ok := LookupManufacturer(tt.code)
		if ok != tt.ok || m.Abbreviation != tt.want || m.Code != tt.code {
			t.Errorf("LookupManufacturer(0x%03X) = %+v, %v", tt.code, m, ok)
		}
	}
}
