package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// RTC register offsets (shared by all modes unless noted).
const (
	RTCCtrl     = 0x00 // 16-bit
	RTCReadReq  = 0x02 // 16-bit
	RTCEvCtrl   = 0x04 // 16-bit
	RTCStatus   = 0x0A // 8-bit
	RTCFreqCorr = 0x0C // 8-bit
	RTCCount    = 0x10 // MODE0 32-bit, MODE1 16-bit
	RTCClock    = 0x10 // MODE2 32-bit
	RTCPer      = 0x14 // MODE1 16-bit
	RTCComp0    = 0x18 // MODE0 32-bit, MODE1 16-bit
	RTCComp1    = 0x1A // MODE1 16-bit
	RTCAlarm0   = 0x18 // MODE2 32-bit
	RTCMask0    = 0x1C // MODE2 8-bit
)

// RTC fields.
var (
	RTCCtrlEnable    = regs.Bit(1)
	RTCCtrlMode      = regs.Field{Pos: 2, Width: 2}
	RTCCtrlClkRep    = regs.Bit(6)
	RTCCtrlMatchClr  = regs.Bit(7)
	RTCCtrlPrescaler = regs.Field{Pos: 8, Width: 4}

	RTCReadReqRCont = regs.Bit(14)

	RTCEvCtrlPerEO = regs.Field{Pos: 0, Width: 8}
	RTCEvCtrlOvfEO = regs.Bit(15)

	RTCAlarmSecond = regs.Field{Pos: 0, Width: 6}
	RTCAlarmMinute = regs.Field{Pos: 6, Width: 6}
	RTCAlarmHour   = regs.Field{Pos: 12, Width: 5}
	RTCAlarmDay    = regs.Field{Pos: 17, Width: 5}
	RTCAlarmMonth  = regs.Field{Pos: 22, Width: 4}
	RTCAlarmYear   = regs.Field{Pos: 26, Width: 6}
	RTCMaskSel     = regs.Field{Pos: 0, Width: 3}
)

// RTC modes.
const (
	RTCMode0 = 0 // 32-bit counter
	RTCMode1 = 1 // 16-bit counter
	RTCMode2 = 2 // clock/calendar
)

// RTCModes names CTRL.MODE.
var RTCModes = regs.Enum{"COUNT32", "COUNT16", "CLOCK"}

// RTCMaskSels names MASK.SEL as the alarm fields compared.
var RTCMaskSels = regs.Enum{
	"OFF", "SS", "MM:SS", "HH:MM:SS", "DD HH:MM:SS", "MM-DD HH:MM:SS", "YY-MM-DD HH:MM:SS",
}

// RTCSyncBusy is set while count and control writes synchronize.
var RTCSyncBusy = regs.Busy{Addr: RTCBase + RTCStatus, Width: 1, Mask: 1 << 7}
