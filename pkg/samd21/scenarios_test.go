package samd21

import (
	"context"
	"testing"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
)

func TestArduinoZeroBooted(t *testing.T) {
	bus, err := ArduinoZeroBooted()
	if err != nil {
		t.Fatalf("ArduinoZeroBooted: %v", err)
	}
	ctx := context.Background()

	did, _ := bus.Read32(DSUBase + DSUDID)
	if did != 0x10010305 {
		t.Errorf("DID = 0x%08X", did)
	}

	vals, err := GCLKGenCtrlBank.Read(ctx, bus, regs.DefaultSyncPolicy(), 0)
	if err != nil {
		t.Fatalf("GENCTRL[0]: %v", err)
	}
	if src := GCLKGenCtrlSrc.Get(vals[0]); GCLKSources.Label(src) != "DFLL48M" {
		t.Errorf("GEN0 source = %s", GCLKSources.Label(src))
	}

	vals, err = GCLKClkCtrlBank.Read(ctx, bus, regs.DefaultSyncPolicy(), 0x19)
	if err != nil {
		t.Fatalf("CLKCTRL[SERCOM5]: %v", err)
	}
	if !GCLKClkCtrlClkEn.IsSet(vals[0]) || GCLKClkCtrlGen.Get(vals[0]) != 0 {
		t.Errorf("SERCOM5_CORE clock = 0x%04X", vals[0])
	}

	// PB22 (EDBG_TX) on function D, PMUX[11] low nibble
	pmux, _ := bus.Read8(PORTBase + PORTGroupSize + PORTPMux + 11)
	if pmux != 0x33 {
		t.Errorf("PB22/23 PMUX = 0x%02X, want 0x33", pmux)
	}
	cfg, _ := bus.Read8(PORTBase + PORTGroupSize + PORTPinCfg + 22)
	if !PORTPinCfgPMuxEn.IsSet(uint32(cfg)) {
		t.Errorf("PB22 PINCFG = 0x%02X, PMUXEN clear", cfg)
	}

	ctrla, _ := bus.Read32(SERCOMBase(5) + SERCOMCtrlA)
	if SERCOMCtrlAMode.Get(ctrla) != SERCOMModeUSARTInt || !SERCOMCtrlAEnable.IsSet(ctrla) {
		t.Errorf("SERCOM5 CTRLA = 0x%08X", ctrla)
	}
}

func TestScenarioBuilderBadSlot(t *testing.T) {
	sb := NewScenarioBuilder()
	sb.Clock(GCLKNumClocks, 0)
	if _, err := sb.Build(); err == nil {
		t.Fatal("Build accepted an out-of-range clock id")
	}
}

func TestCaptureRegions(t *testing.T) {
	caps, _ := VariantCapabilities("ATSAMD21E18A")
	for _, r := range CaptureRegions(caps) {
		if r.Addr%4 != 0 || r.Words <= 0 {
			t.Errorf("%s: bad region 0x%08X/%d", r.Name, r.Addr, r.Words)
		}
		if r.Name == "SERCOM4" || r.Name == "SBMATRIX.PRS" {
			t.Errorf("region %s present on E variant", r.Name)
		}
	}
	if n := len(CaptureBanks(caps)); n != 6 {
		t.Errorf("CaptureBanks = %d, want 6", n)
	}
}
