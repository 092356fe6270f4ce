package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// PM register offsets.
const (
	PMCtrl     = 0x00
	PMSleep    = 0x01
	PMCPUSel   = 0x08
	PMAPBASel  = 0x09
	PMAPBBSel  = 0x0A
	PMAPBCSel  = 0x0B
	PMAHBMask  = 0x14
	PMAPBAMask = 0x18
	PMAPBBMask = 0x1C
	PMAPBCMask = 0x20
	PMRCause   = 0x38
)

// PM fields.
var (
	PMSleepIdle = regs.Field{Pos: 0, Width: 2}
	PMDiv       = regs.Field{Pos: 0, Width: 3}
)

// PMIdleLevels names SLEEP.IDLE as the clocks stopped.
var PMIdleLevels = regs.Enum{"CPU", "CPU+AHB", "CPU+AHB+APB"}

// Clock mask bit names.
var (
	PMAHBClocks = []regs.Flag{
		{Bit: 0, Name: "CLK_HPBA_AHB"}, {Bit: 1, Name: "CLK_HPBB_AHB"},
		{Bit: 2, Name: "CLK_HPBC_AHB"}, {Bit: 3, Name: "CLK_DSU_AHB"},
		{Bit: 4, Name: "CLK_NVMCTRL_AHB"}, {Bit: 5, Name: "CLK_DMAC_AHB"},
		{Bit: 6, Name: "CLK_USB_AHB"},
	}
	PMAPBAClocks = []regs.Flag{
		{Bit: 0, Name: "CLK_PAC0_APB"}, {Bit: 1, Name: "CLK_PM_APB"},
		{Bit: 2, Name: "CLK_SYSCTRL_APB"}, {Bit: 3, Name: "CLK_GCLK_APB"},
		{Bit: 4, Name: "CLK_WDT_APB"}, {Bit: 5, Name: "CLK_RTC_APB"},
		{Bit: 6, Name: "CLK_EIC_APB"},
	}
	PMAPBBClocks = []regs.Flag{
		{Bit: 0, Name: "CLK_PAC1_APB"}, {Bit: 1, Name: "CLK_DSU_APB"},
		{Bit: 2, Name: "CLK_NVMCTRL_APB"}, {Bit: 3, Name: "CLK_PORT_APB"},
		{Bit: 4, Name: "CLK_DMAC_APB"}, {Bit: 5, Name: "CLK_USB_APB"},
	}
	PMAPBCClocks = []regs.Flag{
		{Bit: 0, Name: "CLK_PAC2_APB"}, {Bit: 1, Name: "CLK_EVSYS_APB"},
		{Bit: 2, Name: "CLK_SERCOM0_APB"}, {Bit: 3, Name: "CLK_SERCOM1_APB"},
		{Bit: 4, Name: "CLK_SERCOM2_APB"}, {Bit: 5, Name: "CLK_SERCOM3_APB"},
		{Bit: 6, Name: "CLK_SERCOM4_APB"}, {Bit: 7, Name: "CLK_SERCOM5_APB"},
		{Bit: 8, Name: "CLK_TCC0_APB"}, {Bit: 9, Name: "CLK_TCC1_APB"},
		{Bit: 10, Name: "CLK_TCC2_APB"}, {Bit: 11, Name: "CLK_TC3_APB"},
		{Bit: 12, Name: "CLK_TC4_APB"}, {Bit: 13, Name: "CLK_TC5_APB"},
		{Bit: 14, Name: "CLK_TC6_APB"}, {Bit: 15, Name: "CLK_TC7_APB"},
		{Bit: 16, Name: "CLK_ADC_APB"}, {Bit: 17, Name: "CLK_AC_APB"},
		{Bit: 18, Name: "CLK_DAC_APB"}, {Bit: 19, Name: "CLK_PTC_APB"},
		{Bit: 20, Name: "CLK_I2S_APB"}, {Bit: 21, Name: "CLK_AC1_APB"},
	}
)

// PMResetCauses names the RCAUSE bits.
var PMResetCauses = []regs.Flag{
	{Bit: 0, Name: "POR"}, {Bit: 1, Name: "BOD12"}, {Bit: 2, Name: "BOD33"},
	{Bit: 4, Name: "EXT"}, {Bit: 5, Name: "WDT"}, {Bit: 6, Name: "SYST"},
}
