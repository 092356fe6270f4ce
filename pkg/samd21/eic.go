package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// EIC register offsets.
const (
	EICCtrl    = 0x00 // 8-bit
	EICStatus  = 0x01 // 8-bit
	EICNMICtrl = 0x02 // 8-bit
	EICEvCtrl  = 0x04
	EICWakeup  = 0x14
	EICConfig0 = 0x18 // CONFIGn at 0x18 + 4*n
)

// EIC fields.
var (
	EICCtrlSWRST     = regs.Bit(0)
	EICCtrlEnable    = regs.Bit(1)
	EICNMICtrlSense  = regs.Field{Pos: 0, Width: 3}
	EICNMICtrlFiltEn = regs.Bit(3)
	EICConfigSense   = regs.Field{Pos: 0, Width: 3}
	EICConfigFiltEn  = regs.Bit(3)
)

// EICNumExtInt is the number of external interrupt lines.
const EICNumExtInt = 16

// EICSenses names NMICTRL.NMISENSE and CONFIG.SENSEn.
var EICSenses = regs.Enum{"none", "RISE", "FALL", "BOTH", "HIGH", "LOW"}

// EICSyncBusy is set while CTRL writes synchronize.
var EICSyncBusy = regs.Busy{Addr: EICBase + EICStatus, Width: 1, Mask: 1 << 7}
