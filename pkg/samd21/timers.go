package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// TC register offsets.
const (
	TCCtrlA    = 0x00 // 16-bit
	TCCtrlBSet = 0x05 // 8-bit
	TCCtrlC    = 0x06 // 8-bit
	TCEvCtrl   = 0x0A // 16-bit
	TCStatus   = 0x0F // 8-bit
	TCCount    = 0x10
	TCPer8     = 0x14 // COUNT8 only
	TCCC0      = 0x18
)

// TC fields.
var (
	TCCtrlASWRST     = regs.Bit(0)
	TCCtrlAEnable    = regs.Bit(1)
	TCCtrlAMode      = regs.Field{Pos: 2, Width: 2}
	TCCtrlAWaveGen   = regs.Field{Pos: 5, Width: 2}
	TCCtrlAPrescaler = regs.Field{Pos: 8, Width: 3}
	TCCtrlARunStdby  = regs.Bit(11)
	TCCtrlAPrescSync = regs.Field{Pos: 12, Width: 2}
	TCCtrlBDir       = regs.Bit(0)
	TCCtrlBOneShot   = regs.Bit(2)
	TCEvCtrlEvAct    = regs.Field{Pos: 0, Width: 3}
	TCStatusStop     = regs.Bit(3)
	TCStatusSlave    = regs.Bit(4)
)

// TC counter modes.
const (
	TCModeCount16 = 0
	TCModeCount8  = 1
	TCModeCount32 = 2
)

// TCModes names CTRLA.MODE.
var TCModes = regs.Enum{"COUNT16", "COUNT8", "COUNT32"}

// TCWaveGens names CTRLA.WAVEGEN.
var TCWaveGens = regs.Enum{"NFRQ", "MFRQ", "NPWM", "MPWM"}

// TCPrescalers names CTRLA.PRESCALER.
var TCPrescalers = regs.Enum{"DIV1", "DIV2", "DIV4", "DIV8", "DIV16", "DIV64", "DIV256", "DIV1024"}

// TCPrescSyncs names CTRLA.PRESCSYNC.
var TCPrescSyncs = regs.Enum{"GCLK", "PRESC", "RESYNC"}

// TCEventActions names EVCTRL.EVACT.
var TCEventActions = regs.Enum{"OFF", "RETRIGGER", "COUNT", "START", "", "PPW", "PWP"}

// TCCTRLC flags.
var TCCtrlCFlags = []regs.Flag{
	{Bit: 0, Name: "INVEN0"}, {Bit: 1, Name: "INVEN1"},
	{Bit: 4, Name: "CPTEN0"}, {Bit: 5, Name: "CPTEN1"},
}

// TCEvCtrlFlags lists EVCTRL bits after EVACT.
var TCEvCtrlFlags = []regs.Flag{
	{Bit: 4, Name: "TCINV"}, {Bit: 5, Name: "TCEI"},
	{Bit: 8, Name: "OVFEO"}, {Bit: 12, Name: "MCEO0"}, {Bit: 13, Name: "MCEO1"},
}

// TCSync returns the sync flag of a TC.
func TCSync(base uint32) regs.Busy {
	return regs.Busy{Addr: base + TCStatus, Width: 1, Mask: 1 << 7}
}

// TCC register offsets.
const (
	TCCCtrlA    = 0x00
	TCCCtrlBSet = 0x05 // 8-bit
	TCCSyncBusy = 0x08
	TCCDrvCtrl  = 0x18
	TCCEvCtrl   = 0x20
	TCCStatus   = 0x30
	TCCCount    = 0x34
	TCCWave     = 0x3C
	TCCPer      = 0x40
	TCCCC0      = 0x44 // CCn at 0x44 + 4*n
)

// TCC fields.
var (
	TCCCtrlAEnable     = regs.Bit(1)
	TCCCtrlAResolution = regs.Field{Pos: 5, Width: 2}
	TCCCtrlAPrescaler  = regs.Field{Pos: 8, Width: 3}
	TCCCtrlARunStdby   = regs.Bit(11)
	TCCCtrlAPrescSync  = regs.Field{Pos: 12, Width: 2}
	TCCCtrlAALock      = regs.Bit(14)
	TCCCtrlBDir        = regs.Bit(0)
	TCCCtrlBLUpd       = regs.Bit(1)
	TCCCtrlBOneShot    = regs.Bit(2)
	TCCWaveWaveGen     = regs.Field{Pos: 0, Width: 3}
	TCCWaveRamp        = regs.Field{Pos: 4, Width: 2}
	TCCWaveCIPerEn     = regs.Bit(7)
	TCCWavePol         = regs.Field{Pos: 16, Width: 4}
	TCCWaveSwap        = regs.Field{Pos: 24, Width: 4}
	TCCStatusStop      = regs.Bit(0)
	TCCDrvCtrlInvEn    = regs.Field{Pos: 16, Width: 8}
)

// TCCWaveGens names WAVE.WAVEGEN.
var TCCWaveGens = regs.Enum{"NFRQ", "MFRQ", "NPWM", "", "DSCRITICAL", "DSBOTTOM", "DSBOTH", "DSTOP"}

// TCCRamps names WAVE.RAMP.
var TCCRamps = regs.Enum{"RAMP1", "RAMP2A", "RAMP2"}

// TCCResolutions names CTRLA.RESOLUTION (dithering).
var TCCResolutions = regs.Enum{"NONE", "DITH4", "DITH5", "DITH6"}

// TCCChannels is the number of compare/capture channels of TCCn.
var TCCChannels = [3]int{4, 2, 2}

// TCCCounterBits is the counter width of TCCn.
var TCCCounterBits = [3]int{24, 24, 16}

// TCCSync returns the sync flags of a TCC: SWRST and ENABLE.
func TCCSync(base uint32) regs.Busy {
	return regs.Busy{Addr: base + TCCSyncBusy, Width: 4, Mask: 0x3}
}
