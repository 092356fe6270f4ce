package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// WDT register offsets.
const (
	WDTCtrl   = 0x00 // 8-bit
	WDTConfig = 0x01 // 8-bit
	WDTEWCtrl = 0x02 // 8-bit
	WDTStatus = 0x07 // 8-bit
)

// WDT fields.
var (
	WDTCtrlEnable     = regs.Bit(1)
	WDTCtrlWEN        = regs.Bit(2)
	WDTCtrlAlwaysOn   = regs.Bit(7)
	WDTConfigPer      = regs.Field{Pos: 0, Width: 4}
	WDTConfigWindow   = regs.Field{Pos: 4, Width: 4}
	WDTEWCtrlEWOffset = regs.Field{Pos: 0, Width: 4}
)

// WDTSyncBusy is set while CTRL or CONFIG writes synchronize.
var WDTSyncBusy = regs.Busy{Addr: WDTBase + WDTStatus, Width: 1, Mask: 1 << 7}
