package deviceinfo

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		raw   uint32
		name  string
		flash int
		pins  int
	}{
		{0x10010305, "ATSAMD21G18A", 256, 48},
		{0x10010300, "ATSAMD21J18A", 256, 64},
		{0x1001030D, "ATSAMD21E15A", 32, 32},
		{0x10010321, "ATSAMD21J15B", 32, 64},
	}
	for _, tt := range tests {
		info := Lookup(tt.raw)
		if !info.Known {
			t.Fatalf("0x%08X: not found", tt.raw)
		}
		if info.Name != tt.name || info.FlashKB != tt.flash || info.Pins != tt.pins {
			t.Errorf("0x%08X: got %s %dKB %d pins, want %s %dKB %d pins",
				tt.raw, info.Name, info.FlashKB, info.Pins, tt.name, tt.flash, tt.pins)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	info := Lookup(0x100103FE)
	if info.Known {
		t.Fatal("devsel 0xFE should be unknown")
	}
	if info.ID.DevSel != 0xFE {
		t.Errorf("DevSel = 0x%02X", info.ID.DevSel)
	}
}
