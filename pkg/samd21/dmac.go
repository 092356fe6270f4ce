package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// DMAC register offsets.
const (
	DMACCtrl     = 0x00 // 16-bit
	DMACPriCtrl0 = 0x1C
	DMACBaseAddr = 0x34
	DMACWrbAddr  = 0x38
	DMACChID     = 0x3F // 8-bit channel selector
	DMACChCtrlA  = 0x40 // 8-bit, banked by CHID
	DMACChCtrlB  = 0x44 // 32-bit, banked by CHID
)

// DMAC fields.
var (
	DMACCtrlDMAEnable = regs.Bit(1)
	DMACCtrlCRCEnable = regs.Bit(2)
	DMACCtrlLvlEn     = regs.Field{Pos: 8, Width: 4}
	DMACChIDID        = regs.Field{Pos: 0, Width: 4}
	DMACChCtrlAEnable = regs.Bit(1)
	DMACChCtrlARunStd = regs.Bit(6)
	DMACChCtrlBEvAct  = regs.Field{Pos: 0, Width: 3}
	DMACChCtrlBEvIE   = regs.Bit(3)
	DMACChCtrlBEvOE   = regs.Bit(4)
	DMACChCtrlBLvl    = regs.Field{Pos: 5, Width: 2}
	DMACChCtrlBTrig   = regs.Field{Pos: 8, Width: 6}
	DMACChCtrlBAct    = regs.Field{Pos: 22, Width: 2}
)

// DMACNumChannels is the number of DMA channels.
const DMACNumChannels = 12

// DMACTrigActions names CHCTRLB.TRIGACT.
var DMACTrigActions = regs.Enum{0: "BLOCK", 2: "BEAT", 3: "TRANSACTION"}

// DMACEventActions names CHCTRLB.EVACT.
var DMACEventActions = regs.Enum{"NOACT", "TRIG", "CTRIG", "CBLOCK", "SUSPEND", "RESUME", "SSKIP"}

// DMACTriggers names CHCTRLB.TRIGSRC.
var DMACTriggers = regs.Enum{
	"DISABLE",
	"SERCOM0_RX", "SERCOM0_TX", "SERCOM1_RX", "SERCOM1_TX", "SERCOM2_RX", "SERCOM2_TX",
	"SERCOM3_RX", "SERCOM3_TX", "SERCOM4_RX", "SERCOM4_TX", "SERCOM5_RX", "SERCOM5_TX",
	"TCC0_OVF", "TCC0_MC0", "TCC0_MC1", "TCC0_MC2", "TCC0_MC3",
	"TCC1_OVF", "TCC1_MC0", "TCC1_MC1",
	"TCC2_OVF", "TCC2_MC0", "TCC2_MC1",
	"TC3_OVF", "TC3_MC0", "TC3_MC1",
	"TC4_OVF", "TC4_MC0", "TC4_MC1",
	"TC5_OVF", "TC5_MC0", "TC5_MC1",
	"TC6_OVF", "TC6_MC0", "TC6_MC1",
	"TC7_OVF", "TC7_MC0", "TC7_MC1",
	"ADC_RESRDY", "DAC_EMPTY",
	"I2S_RX_0", "I2S_RX_1", "I2S_TX_0", "I2S_TX_1",
}

// DMACChannelBank selects a channel through CHID. CHID has no sync flag;
// reading it back confirms the selection.
var DMACChannelBank = &regs.Bank{
	Name:      "DMAC.CHID",
	Select:    DMACBase + DMACChID,
	Slots:     DMACNumChannels,
	EchoAt:    DMACBase + DMACChID,
	EchoWidth: 1,
	Echo:      DMACChIDID,
	Data: []regs.Reg{
		{Addr: DMACBase + DMACChCtrlA, Width: 1},
		{Addr: DMACBase + DMACChCtrlB, Width: 4},
	},
}
