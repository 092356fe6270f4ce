package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// USB register offsets.
const (
	USBCtrlA    = 0x00 // 8-bit
	USBSyncBusy = 0x02 // 8-bit
	USBCtrlB    = 0x08 // 16-bit, device mode
	USBDAdd     = 0x0A // 8-bit, device mode
	USBStatus   = 0x0C // 8-bit
	USBFSMState = 0x0D // 8-bit
	USBDescAdd  = 0x24
	USBPadCal   = 0x28 // 16-bit
)

// USB fields.
var (
	USBCtrlAEnable     = regs.Bit(1)
	USBCtrlARunStdby   = regs.Bit(2)
	USBCtrlAMode       = regs.Bit(7)
	USBCtrlBDetach     = regs.Bit(0)
	USBCtrlBSpdConf    = regs.Field{Pos: 2, Width: 2}
	USBDAddAddr        = regs.Field{Pos: 0, Width: 7}
	USBDAddAddEn       = regs.Bit(7)
	USBStatusSpeed     = regs.Field{Pos: 2, Width: 2}
	USBStatusLineState = regs.Field{Pos: 6, Width: 2}
	USBPadCalTransP    = regs.Field{Pos: 0, Width: 5}
	USBPadCalTransN    = regs.Field{Pos: 6, Width: 5}
	USBPadCalTrim      = regs.Field{Pos: 12, Width: 3}
)

// USBModes names CTRLA.MODE.
var USBModes = regs.Enum{"DEVICE", "HOST"}

// USBSpeeds names CTRLB.SPDCONF and STATUS.SPEED.
var USBSpeeds = regs.Enum{"FS", "LS", "HS", "HSTM"}

// USBLineStates names STATUS.LINESTATE.
var USBLineStates = regs.Enum{"SE0", "FS-J/LS-K", "FS-K/LS-J"}

// USBSync is set while SWRST or ENABLE synchronize.
var USBSync = regs.Busy{Addr: USBBase + USBSyncBusy, Width: 1, Mask: 0x3}
