package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// GCLK register offsets.
const (
	GCLKCtrl    = 0x00 // 8-bit
	GCLKStatus  = 0x01 // 8-bit
	GCLKClkCtrl = 0x02 // 16-bit, banked by ID
	GCLKGenCtrl = 0x04 // 32-bit, banked by ID
	GCLKGenDiv  = 0x08 // 32-bit, banked by ID
)

// GCLK fields.
var (
	GCLKCtrlSWRST      = regs.Bit(0)
	GCLKStatusSyncBusy = regs.Bit(7)

	GCLKClkCtrlID      = regs.Field{Pos: 0, Width: 6}
	GCLKClkCtrlGen     = regs.Field{Pos: 8, Width: 4}
	GCLKClkCtrlClkEn   = regs.Bit(14)
	GCLKClkCtrlWrtLock = regs.Bit(15)

	GCLKGenCtrlID       = regs.Field{Pos: 0, Width: 4}
	GCLKGenCtrlSrc      = regs.Field{Pos: 8, Width: 5}
	GCLKGenCtrlGenEn    = regs.Bit(16)
	GCLKGenCtrlIDC      = regs.Bit(17)
	GCLKGenCtrlOOV      = regs.Bit(18)
	GCLKGenCtrlOE       = regs.Bit(19)
	GCLKGenCtrlDivSel   = regs.Bit(20)
	GCLKGenCtrlRunStdby = regs.Bit(21)

	GCLKGenDivID  = regs.Field{Pos: 0, Width: 4}
	GCLKGenDivDiv = regs.Field{Pos: 8, Width: 16}
)

const (
	// GCLKNumClocks is the number of generic clock consumers (CLKCTRL.ID).
	GCLKNumClocks = 37
	// GCLKNumGenerators is the number of clock generators.
	GCLKNumGenerators = 9
)

// GCLKClockNames names each CLKCTRL.ID.
var GCLKClockNames = regs.Enum{
	"DFLL48M_REF", "DPLL", "DPLL_32K", "WDT", "RTC", "EIC", "USB",
	"EVSYS_CHANNEL_0", "EVSYS_CHANNEL_1", "EVSYS_CHANNEL_2", "EVSYS_CHANNEL_3",
	"EVSYS_CHANNEL_4", "EVSYS_CHANNEL_5", "EVSYS_CHANNEL_6", "EVSYS_CHANNEL_7",
	"EVSYS_CHANNEL_8", "EVSYS_CHANNEL_9", "EVSYS_CHANNEL_10", "EVSYS_CHANNEL_11",
	"SERCOMx_SLOW", "SERCOM0_CORE", "SERCOM1_CORE", "SERCOM2_CORE",
	"SERCOM3_CORE", "SERCOM4_CORE", "SERCOM5_CORE",
	"TCC0_TCC1", "TCC2_TC3", "TC4_TC5", "TC6_TC7",
	"ADC", "AC_DIG", "AC_ANA", "DAC", "PTC", "I2S_0", "I2S_1",
}

// GCLKSources names GENCTRL.SRC.
var GCLKSources = regs.Enum{
	0x00: "XOSC",
	0x01: "GCLKIN",
	0x02: "GCLKGEN1",
	0x03: "OSCULP32K",
	0x04: "OSC32K",
	0x05: "XOSC32K",
	0x06: "OSC8M",
	0x07: "DFLL48M",
	0x08: "FDPLL96M",
}

// GCLK sync flags.
var (
	GCLKSyncBusy  = regs.Busy{Addr: GCLKBase + GCLKStatus, Width: 1, Mask: 1 << 7}
	GCLKResetBusy = regs.Busy{Addr: GCLKBase + GCLKCtrl, Width: 1, Mask: 1 << 0}
)

// Banked GCLK registers.
var (
	GCLKClkCtrlBank = &regs.Bank{
		Name:      "GCLK.CLKCTRL",
		Select:    GCLKBase + GCLKClkCtrl,
		Slots:     GCLKNumClocks,
		EchoAt:    GCLKBase + GCLKClkCtrl,
		EchoWidth: 2,
		Echo:      GCLKClkCtrlID,
		Busy:      []regs.Busy{GCLKSyncBusy},
		Data:      []regs.Reg{{Addr: GCLKBase + GCLKClkCtrl, Width: 2}},
	}
	GCLKGenCtrlBank = &regs.Bank{
		Name:      "GCLK.GENCTRL",
		Select:    GCLKBase + GCLKGenCtrl,
		Slots:     GCLKNumGenerators,
		EchoAt:    GCLKBase + GCLKGenCtrl,
		EchoWidth: 4,
		Echo:      GCLKGenCtrlID,
		Busy:      []regs.Busy{GCLKSyncBusy},
		Data:      []regs.Reg{{Addr: GCLKBase + GCLKGenCtrl, Width: 4}},
	}
	GCLKGenDivBank = &regs.Bank{
		Name:      "GCLK.GENDIV",
		Select:    GCLKBase + GCLKGenDiv,
		Slots:     GCLKNumGenerators,
		EchoAt:    GCLKBase + GCLKGenDiv,
		EchoWidth: 4,
		Echo:      GCLKGenDivID,
		Busy:      []regs.Busy{GCLKSyncBusy},
		Data:      []regs.Reg{{Addr: GCLKBase + GCLKGenDiv, Width: 4}},
	}
)
