package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// SYSCTRL register offsets.
const (
	SYSCTRLPClkSR     = 0x0C
	SYSCTRLXOSC       = 0x10 // 16-bit
	SYSCTRLXOSC32K    = 0x14 // 16-bit
	SYSCTRLOSC32K     = 0x18
	SYSCTRLOSCULP32K  = 0x1C // 8-bit
	SYSCTRLOSC8M      = 0x20
	SYSCTRLDFLLCtrl   = 0x24 // 16-bit
	SYSCTRLDFLLVal    = 0x28
	SYSCTRLDFLLMul    = 0x2C
	SYSCTRLBOD33      = 0x34
	SYSCTRLVReg       = 0x3C // 16-bit
	SYSCTRLVRef       = 0x40
	SYSCTRLDPLLCtrlA  = 0x44 // 8-bit
	SYSCTRLDPLLRatio  = 0x48
	SYSCTRLDPLLCtrlB  = 0x4C
	SYSCTRLDPLLStatus = 0x50 // 8-bit
)

// Oscillator control bits shared by most SYSCTRL blocks.
var (
	SYSCTRLEnable   = regs.Bit(1)
	SYSCTRLRunStdby = regs.Bit(6)
	SYSCTRLOnDemand = regs.Bit(7)
)

// XOSC fields.
var (
	XOSCXtalEn  = regs.Bit(2)
	XOSCGain    = regs.Field{Pos: 8, Width: 3}
	XOSCAmpGC   = regs.Bit(11)
	XOSCStartup = regs.Field{Pos: 12, Width: 4}
)

// XOSCGains names XOSC.GAIN as the crystal frequency range.
var XOSCGains = regs.Enum{"2MHz", "4MHz", "8MHz", "16MHz", "30MHz"}

// XOSCStartups names XOSC.STARTUP as the start-up time.
var XOSCStartups = regs.Enum{
	"31us", "61us", "122us", "244us", "488us", "977us", "1953us", "3906us",
	"7813us", "15625us", "31250us", "62500us", "125000us", "250000us", "500000us", "1000000us",
}

// XOSC32K fields.
var (
	XOSC32KXtalEn  = regs.Bit(2)
	XOSC32KEn32K   = regs.Bit(3)
	XOSC32KEn1K    = regs.Bit(4)
	XOSC32KAAmpEn  = regs.Bit(5)
	XOSC32KStartup = regs.Field{Pos: 8, Width: 3}
	XOSC32KWrtLock = regs.Bit(12)
)

// XOSC32KStartups names XOSC32K.STARTUP.
var XOSC32KStartups = regs.Enum{
	"122us", "1068us", "62592us", "125092us", "500092us", "1000092us", "2000092us", "4000092us",
}

// OSC32K fields.
var (
	OSC32KEn32K   = regs.Bit(2)
	OSC32KEn1K    = regs.Bit(3)
	OSC32KStartup = regs.Field{Pos: 8, Width: 3}
	OSC32KWrtLock = regs.Bit(12)
	OSC32KCalib   = regs.Field{Pos: 16, Width: 7}
)

// OSC32KStartups names OSC32K.STARTUP.
var OSC32KStartups = regs.Enum{
	"92us", "122us", "183us", "305us", "549us", "1038us", "2014us", "3967us",
}

// OSCULP32K fields.
var (
	OSCULP32KCalib   = regs.Field{Pos: 0, Width: 5}
	OSCULP32KWrtLock = regs.Bit(7)
)

// OSC8M fields.
var (
	OSC8MPresc  = regs.Field{Pos: 8, Width: 2}
	OSC8MCalib  = regs.Field{Pos: 16, Width: 12}
	OSC8MFRange = regs.Field{Pos: 30, Width: 2}
)

// OSC8MFRanges names OSC8M.FRANGE.
var OSC8MFRanges = regs.Enum{"4-6MHz", "6-8MHz", "8-11MHz", "11-15MHz"}

// DFLLCTRL flags after ENABLE.
var DFLLFlags = []regs.Flag{
	{Bit: 2, Name: "MODE"}, {Bit: 3, Name: "STABLE"}, {Bit: 4, Name: "LLAW"},
	{Bit: 5, Name: "USBCRM"}, {Bit: 6, Name: "RUNSTDBY"}, {Bit: 7, Name: "ONDEMAND"},
	{Bit: 8, Name: "CCDIS"}, {Bit: 9, Name: "QLDIS"}, {Bit: 10, Name: "BPLCKC"},
	{Bit: 11, Name: "WAITLOCK"},
}

// DFLL value and multiplier fields.
var (
	DFLLValFine    = regs.Field{Pos: 0, Width: 10}
	DFLLValCoarse  = regs.Field{Pos: 10, Width: 6}
	DFLLMulMul     = regs.Field{Pos: 0, Width: 16}
	DFLLMulFStep   = regs.Field{Pos: 16, Width: 10}
	DFLLMulCStep   = regs.Field{Pos: 26, Width: 6}
	DFLLCtrlMode   = regs.Bit(2)
	DFLLReadyFlag  = uint32(1 << 4) // PCLKSR.DFLLRDY
	DFLLLockedMask = uint32(3 << 6) // PCLKSR.DFLLLCKF|DFLLLCKC
)

// BOD33 fields.
var (
	BOD33Hyst   = regs.Bit(2)
	BOD33Action = regs.Field{Pos: 3, Width: 2}
	BOD33Mode   = regs.Bit(8)
	BOD33CEn    = regs.Bit(9)
	BOD33PSel   = regs.Field{Pos: 12, Width: 4}
	BOD33Level  = regs.Field{Pos: 16, Width: 6}
)

// BOD33Actions names BOD33.ACTION.
var BOD33Actions = regs.Enum{"NONE", "RESET", "INT"}

// VREG and VREF fields.
var (
	VRegForceLDO  = regs.Bit(13)
	VRefTSEn      = regs.Bit(1)
	VRefBGOutEn   = regs.Bit(2)
	VRefCalib     = regs.Field{Pos: 16, Width: 11}
	DPLLRatioLDR  = regs.Field{Pos: 0, Width: 12}
	DPLLRatioFrac = regs.Field{Pos: 16, Width: 4}
	DPLLCtrlBRef  = regs.Field{Pos: 4, Width: 2}
	DPLLCtrlBDiv  = regs.Field{Pos: 16, Width: 11}
	DPLLLock      = regs.Bit(0)
	DPLLClkRdy    = regs.Bit(1)
)

// DPLLRefClocks names DPLLCTRLB.REFCLK.
var DPLLRefClocks = regs.Enum{"XOSC32K", "XOSC", "GCLK_DPLL"}
