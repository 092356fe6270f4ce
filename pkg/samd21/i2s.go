package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// I2S register offsets.
const (
	I2SCtrlA     = 0x00 // 8-bit
	I2SClkCtrl0  = 0x04 // CLKCTRLn at 0x04 + 4*n
	I2SSyncBusy  = 0x18 // 16-bit
	I2SSerCtrl0  = 0x20 // SERCTRLn at 0x20 + 4*n
	I2SNumUnits  = 2
	I2SNumSerial = 2
)

// I2S fields.
var (
	I2SCtrlAEnable      = regs.Bit(1)
	I2SCtrlACKEn0       = regs.Bit(2)
	I2SCtrlASerEn0      = regs.Bit(4)
	I2SClkSlotSize      = regs.Field{Pos: 0, Width: 2}
	I2SClkNbSlots       = regs.Field{Pos: 2, Width: 3}
	I2SClkFSWidth       = regs.Field{Pos: 5, Width: 2}
	I2SClkMCKDiv        = regs.Field{Pos: 19, Width: 5}
	I2SClkMCKOutDiv     = regs.Field{Pos: 24, Width: 5}
	I2SSerCtrlSerMode   = regs.Field{Pos: 0, Width: 2}
	I2SSerCtrlDataSize  = regs.Field{Pos: 8, Width: 3}
	I2SSerCtrlClkSel    = regs.Bit(5)
	I2SSerCtrlMono      = regs.Bit(15)
	I2SSerCtrlDMA       = regs.Bit(16)
	I2SSerCtrlRxLoopbck = regs.Bit(17)
)

// I2SClkFlags lists CLKCTRL single-bit options.
var I2SClkFlags = []regs.Flag{
	{Bit: 7, Name: "BITDELAY"}, {Bit: 8, Name: "FSSEL"}, {Bit: 9, Name: "FSINV"},
	{Bit: 10, Name: "SCKSEL"}, {Bit: 16, Name: "MCKSEL"}, {Bit: 18, Name: "MCKEN"},
	{Bit: 29, Name: "FSOUTINV"}, {Bit: 30, Name: "SCKOUTINV"}, {Bit: 31, Name: "MCKOUTINV"},
}

// I2SSlotSizes names CLKCTRL.SLOTSIZE.
var I2SSlotSizes = regs.Enum{"8bit", "16bit", "24bit", "32bit"}

// I2SFrameSyncWidths names CLKCTRL.FSWIDTH.
var I2SFrameSyncWidths = regs.Enum{"SLOT", "HALF", "BIT", "BURST"}

// I2SSerModes names SERCTRL.SERMODE.
var I2SSerModes = regs.Enum{"RX", "TX", "PDM2"}

// I2SDataSizes names SERCTRL.DATASIZE.
var I2SDataSizes = regs.Enum{"32bit", "24bit", "20bit", "18bit", "16bit", "16bitC", "8bit", "8bitC"}

// I2SSync is set while SWRST, ENABLE or the clock/serializer enables synchronize.
var I2SSync = regs.Busy{Addr: I2SBase + I2SSyncBusy, Width: 2, Mask: 0x3F}
