package probe

import (
	"context"
	"testing"

	"github.com/google/gousb"
)

func TestClassifyUSBDevice(t *testing.T) {
	tests := []struct {
		name     string
		vid, pid gousb.ID
		wantOK   bool
		wantDesc string
	}{
		{"Arduino Zero EDBG", 0x03eb, 0x2157, true, "Arduino Zero EDBG CMSIS-DAP"},
		{"Debug Probe", 0x2e8a, 0x000c, true, "Raspberry Pi Debug Probe"},
		{"unknown", 0x1234, 0x5678, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := classifyUSBDevice(&gousb.DeviceDesc{Vendor: tt.vid, Product: tt.pid})
			if ok != tt.wantOK {
				t.Fatalf("classify ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (info.Description != tt.wantDesc || info.Kind != InterfaceKindCMSISDAP) {
				t.Errorf("classify = %+v", info)
			}
		})
	}
}

func TestInterfaceLabel(t *testing.T) {
	tests := []struct {
		info InterfaceInfo
		want string
	}{
		{InterfaceInfo{Kind: InterfaceKindSim, Description: "Simulator"}, "Simulator"},
		{InterfaceInfo{Kind: InterfaceKindCMSISDAP, VendorID: 0x03EB, ProductID: 0x2157}, "cmsis-dap (03EB:2157)"},
		{InterfaceInfo{Description: "EDBG", Serial: "ATML1"}, "EDBG [ATML1]"},
	}
	for _, tt := range tests {
		if got := tt.info.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestLookupProbe(t *testing.T) {
	vid, pid, err := LookupProbe("03eb:2157")
	if err != nil || vid != 0x03EB || pid != 0x2157 {
		t.Errorf("LookupProbe(hex) = %04X:%04X, %v", vid, pid, err)
	}
	vid, pid, err = LookupProbe("Atmel-ICE CMSIS-DAP")
	if err != nil || vid != 0x03EB || pid != 0x2141 {
		t.Errorf("LookupProbe(name) = %04X:%04X, %v", vid, pid, err)
	}
	if _, _, err := LookupProbe("nonesuch"); err == nil {
		t.Error("unknown probe accepted")
	}
}

func TestDiscoverInterfaces(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping USB enumeration in short mode")
	}

	ifaces, err := DiscoverInterfaces(context.Background())
	if err != nil {
		t.Skipf("USB enumeration unavailable: %v", err)
	}
	if len(ifaces) == 0 || ifaces[len(ifaces)-1].Kind != InterfaceKindSim {
		t.Fatalf("simulator entry missing: %+v", ifaces)
	}
	for _, i := range ifaces {
		t.Logf("  %s: %s", i.Kind, i.Label())
	}
}
