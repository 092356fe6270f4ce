package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// EVSYS register offsets.
const (
	EVSYSCtrl     = 0x00 // 8-bit
	EVSYSChannel  = 0x04 // 32-bit, banked by CHANNEL
	EVSYSUser     = 0x08 // 16-bit, banked by USER
	EVSYSChStatus = 0x0C
)

// EVSYS fields.
var (
	EVSYSCtrlSWRST   = regs.Bit(0)
	EVSYSCtrlGCLKReq = regs.Bit(4)

	EVSYSChannelChannel = regs.Field{Pos: 0, Width: 4}
	EVSYSChannelSWEvt   = regs.Bit(8)
	EVSYSChannelEvGen   = regs.Field{Pos: 16, Width: 7}
	EVSYSChannelPath    = regs.Field{Pos: 24, Width: 2}
	EVSYSChannelEdgSel  = regs.Field{Pos: 26, Width: 2}

	EVSYSUserUser    = regs.Field{Pos: 0, Width: 5}
	EVSYSUserChannel = regs.Field{Pos: 8, Width: 5}
)

const (
	EVSYSNumChannels = 12
	EVSYSNumUsers    = 0x1F
)

// EVSYSPaths names CHANNEL.PATH.
var EVSYSPaths = regs.Enum{"SYNC", "RESYNC", "ASYNC"}

// EVSYSEdges names CHANNEL.EDGSEL.
var EVSYSEdges = regs.Enum{"NONE", "RISE", "FALL", "BOTH"}

// EVSYSGenerators names CHANNEL.EVGEN; 0 means no generator.
var EVSYSGenerators = regs.Enum{
	0x00: "NONE",
	0x01: "RTC:CMP0", 0x02: "RTC:CMP1", 0x03: "RTC:OVF",
	0x04: "RTC:PER0", 0x05: "RTC:PER1", 0x06: "RTC:PER2", 0x07: "RTC:PER3",
	0x08: "RTC:PER4", 0x09: "RTC:PER5", 0x0A: "RTC:PER6", 0x0B: "RTC:PER7",
	0x0C: "EIC:0", 0x0D: "EIC:1", 0x0E: "EIC:2", 0x0F: "EIC:3",
	0x10: "EIC:4", 0x11: "EIC:5", 0x12: "EIC:6", 0x13: "EIC:7",
	0x14: "EIC:8", 0x15: "EIC:9", 0x16: "EIC:10", 0x17: "EIC:11",
	0x18: "EIC:12", 0x19: "EIC:13", 0x1A: "EIC:14", 0x1B: "EIC:15",
	0x1E: "DMAC:0", 0x1F: "DMAC:1", 0x20: "DMAC:2", 0x21: "DMAC:3",
	0x22: "TCC0:OVF", 0x23: "TCC0:TRG", 0x24: "TCC0:CNT",
	0x25: "TCC0:MC0", 0x26: "TCC0:MC1", 0x27: "TCC0:MC2", 0x28: "TCC0:MC3",
	0x29: "TCC1:OVF", 0x2A: "TCC1:TRG", 0x2B: "TCC1:CNT", 0x2C: "TCC1:MC0", 0x2D: "TCC1:MC1",
	0x2E: "TCC2:OVF", 0x2F: "TCC2:TRG", 0x30: "TCC2:CNT", 0x31: "TCC2:MC0", 0x32: "TCC2:MC1",
	0x33: "TC3:OVF", 0x34: "TC3:MC0", 0x35: "TC3:MC1",
	0x36: "TC4:OVF", 0x37: "TC4:MC0", 0x38: "TC4:MC1",
	0x39: "TC5:OVF", 0x3A: "TC5:MC0", 0x3B: "TC5:MC1",
	0x3C: "TC6:OVF", 0x3D: "TC6:MC0", 0x3E: "TC6:MC1",
	0x3F: "TC7:OVF", 0x40: "TC7:MC0", 0x41: "TC7:MC1",
	0x42: "ADC:RESRDY", 0x43: "ADC:WINMON",
	0x44: "AC:COMP0", 0x45: "AC:COMP1", 0x46: "AC:WIN0",
	0x47: "DAC:EMPTY",
	0x48: "PTC:EOC", 0x49: "PTC:WCOMP",
	0x4A: "AC1:COMP0", 0x4B: "AC1:COMP1", 0x4C: "AC1:WIN0",
}

// EVSYSUsers names each USER.USER index.
var EVSYSUsers = regs.Enum{
	"DMAC:0", "DMAC:1", "DMAC:2", "DMAC:3",
	"TCC0:EV0", "TCC0:EV1", "TCC0:MC0", "TCC0:MC1", "TCC0:MC2", "TCC0:MC3",
	"TCC1:EV0", "TCC1:EV1", "TCC1:MC0", "TCC1:MC1",
	"TCC2:EV0", "TCC2:EV1", "TCC2:MC0", "TCC2:MC1",
	"TC3", "TC4", "TC5", "TC6", "TC7",
	"ADC:START", "ADC:SYNC",
	"AC:COMP0", "AC:COMP1",
	"DAC:START",
	"PTC:STCONV",
	"AC1:COMP0", "AC1:COMP1",
}

// EVSYSResetBusy is set while a software reset is in progress.
var EVSYSResetBusy = regs.Busy{Addr: EVSYSBase + EVSYSCtrl, Width: 1, Mask: 1 << 0}

// Banked EVSYS registers. Neither has a sync-busy flag; the echoed
// index field alone confirms the selection.
var (
	EVSYSChannelBank = &regs.Bank{
		Name:      "EVSYS.CHANNEL",
		Select:    EVSYSBase + EVSYSChannel,
		Slots:     EVSYSNumChannels,
		EchoAt:    EVSYSBase + EVSYSChannel,
		EchoWidth: 4,
		Echo:      EVSYSChannelChannel,
		Data:      []regs.Reg{{Addr: EVSYSBase + EVSYSChannel, Width: 4}},
	}
	EVSYSUserBank = &regs.Bank{
		Name:      "EVSYS.USER",
		Select:    EVSYSBase + EVSYSUser,
		Slots:     EVSYSNumUsers,
		EchoAt:    EVSYSBase + EVSYSUser,
		EchoWidth: 2,
		Echo:      EVSYSUserUser,
		Data:      []regs.Reg{{Addr: EVSYSBase + EVSYSUser, Width: 2}},
	}
)
