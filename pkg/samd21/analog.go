package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// ADC register offsets.
const (
	ADCCtrlA     = 0x00 // 8-bit
	ADCRefCtrl   = 0x01 // 8-bit
	ADCAvgCtrl   = 0x02 // 8-bit
	ADCSampCtrl  = 0x03 // 8-bit
	ADCCtrlB     = 0x04 // 16-bit
	ADCWinCtrl   = 0x08 // 8-bit
	ADCInputCtrl = 0x10
	ADCEvCtrl    = 0x14 // 8-bit
	ADCStatus    = 0x19 // 8-bit
)

// ADC fields.
var (
	ADCCtrlAEnable        = regs.Bit(1)
	ADCCtrlARunStdby      = regs.Bit(2)
	ADCRefCtrlRefSel      = regs.Field{Pos: 0, Width: 4}
	ADCRefCtrlRefComp     = regs.Bit(7)
	ADCAvgCtrlSampleNum   = regs.Field{Pos: 0, Width: 4}
	ADCAvgCtrlAdjRes      = regs.Field{Pos: 4, Width: 3}
	ADCSampCtrlSampLen    = regs.Field{Pos: 0, Width: 6}
	ADCCtrlBResSel        = regs.Field{Pos: 4, Width: 2}
	ADCCtrlBPrescaler     = regs.Field{Pos: 8, Width: 3}
	ADCWinCtrlWinMode     = regs.Field{Pos: 0, Width: 3}
	ADCInputCtrlMuxPos    = regs.Field{Pos: 0, Width: 5}
	ADCInputCtrlMuxNeg    = regs.Field{Pos: 8, Width: 5}
	ADCInputCtrlInputScan = regs.Field{Pos: 16, Width: 4}
	ADCInputCtrlOffset    = regs.Field{Pos: 20, Width: 4}
	ADCInputCtrlGain      = regs.Field{Pos: 24, Width: 4}
)

// ADCCtrlBFlags lists CTRLB single-bit options.
var ADCCtrlBFlags = []regs.Flag{
	{Bit: 0, Name: "DIFFMODE"}, {Bit: 1, Name: "LEFTADJ"},
	{Bit: 2, Name: "FREERUN"}, {Bit: 3, Name: "CORREN"},
}

// ADCRefs names REFCTRL.REFSEL.
var ADCRefs = regs.Enum{"INT1V", "INTVCC0", "INTVCC1", "AREFA", "AREFB"}

// ADCResolutions names CTRLB.RESSEL.
var ADCResolutions = regs.Enum{"12BIT", "16BIT", "10BIT", "8BIT"}

// ADCPrescalers names CTRLB.PRESCALER.
var ADCPrescalers = regs.Enum{"DIV4", "DIV8", "DIV16", "DIV32", "DIV64", "DIV128", "DIV256", "DIV512"}

// ADCGains names INPUTCTRL.GAIN.
var ADCGains = regs.Enum{0x0: "1X", 0x1: "2X", 0x2: "4X", 0x3: "8X", 0x4: "16X", 0xF: "DIV2"}

// ADCWinModes names WINCTRL.WINMODE.
var ADCWinModes = regs.Enum{"DISABLE", "MODE1", "MODE2", "MODE3", "MODE4"}

// ADCMuxPos names INPUTCTRL.MUXPOS.
var ADCMuxPos = regs.Enum{
	"PIN0", "PIN1", "PIN2", "PIN3", "PIN4", "PIN5", "PIN6", "PIN7", "PIN8", "PIN9",
	"PIN10", "PIN11", "PIN12", "PIN13", "PIN14", "PIN15", "PIN16", "PIN17", "PIN18", "PIN19",
	0x18: "TEMP", 0x19: "BANDGAP", 0x1A: "SCALEDCOREVCC", 0x1B: "SCALEDIOVCC", 0x1C: "DAC",
}

// ADCMuxNeg names INPUTCTRL.MUXNEG.
var ADCMuxNeg = regs.Enum{
	"PIN0", "PIN1", "PIN2", "PIN3", "PIN4", "PIN5", "PIN6", "PIN7",
	0x18: "GND", 0x19: "IOGND",
}

// ADCSync returns the ADC sync flag.
func ADCSync() regs.Busy {
	return regs.Busy{Addr: ADCBase + ADCStatus, Width: 1, Mask: 1 << 7}
}

// DAC register offsets.
const (
	DACCtrlA  = 0x00 // 8-bit
	DACCtrlB  = 0x01 // 8-bit
	DACEvCtrl = 0x02 // 8-bit
	DACStatus = 0x07 // 8-bit
	DACData   = 0x08 // 16-bit
)

// DAC fields.
var (
	DACCtrlAEnable   = regs.Bit(1)
	DACCtrlARunStdby = regs.Bit(2)
	DACCtrlBRefSel   = regs.Field{Pos: 6, Width: 2}
	DACData10        = regs.Field{Pos: 0, Width: 10}
)

// DACCtrlBFlags lists CTRLB single-bit options.
var DACCtrlBFlags = []regs.Flag{
	{Bit: 0, Name: "EOEN"}, {Bit: 1, Name: "IOEN"}, {Bit: 2, Name: "LEFTADJ"},
	{Bit: 3, Name: "VPD"}, {Bit: 4, Name: "BDWP"},
}

// DACRefs names CTRLB.REFSEL.
var DACRefs = regs.Enum{"INT1V", "AVCC", "VREFP"}

// DACSync returns the DAC sync flag.
func DACSync() regs.Busy {
	return regs.Busy{Addr: DACBase + DACStatus, Width: 1, Mask: 1 << 7}
}

// AC register offsets.
const (
	ACCtrlA     = 0x00 // 8-bit
	ACEvCtrl    = 0x02 // 16-bit
	ACStatusB   = 0x09 // 8-bit
	ACWinCtrl   = 0x0C // 8-bit
	ACCompCtrl0 = 0x10 // COMPCTRLn at 0x10 + 4*n
	ACScaler0   = 0x20 // 8-bit, SCALERn at 0x20 + n
)

// AC fields.
var (
	ACCtrlAEnable     = regs.Bit(1)
	ACCtrlARunStdby   = regs.Bit(2)
	ACCtrlALPMux      = regs.Bit(7)
	ACCompCtrlEnable  = regs.Bit(0)
	ACCompCtrlSingle  = regs.Bit(1)
	ACCompCtrlSpeed   = regs.Field{Pos: 2, Width: 2}
	ACCompCtrlIntSel  = regs.Field{Pos: 5, Width: 2}
	ACCompCtrlMuxNeg  = regs.Field{Pos: 8, Width: 3}
	ACCompCtrlMuxPos  = regs.Field{Pos: 12, Width: 2}
	ACCompCtrlSwap    = regs.Bit(15)
	ACCompCtrlOut     = regs.Field{Pos: 16, Width: 2}
	ACCompCtrlHyst    = regs.Bit(19)
	ACCompCtrlFLen    = regs.Field{Pos: 24, Width: 3}
	ACScalerValue     = regs.Field{Pos: 0, Width: 6}
	ACWinCtrlWEn0     = regs.Bit(0)
	ACWinCtrlWinTSel0 = regs.Field{Pos: 1, Width: 2}
)

// ACNumComparators is the number of comparators in AC.
const ACNumComparators = 2

// ACSpeeds names COMPCTRL.SPEED.
var ACSpeeds = regs.Enum{"LOW", "HIGH"}

// ACIntSels names COMPCTRL.INTSEL.
var ACIntSels = regs.Enum{"TOGGLE", "RISING", "FALLING", "EOC"}

// ACMuxNeg names COMPCTRL.MUXNEG.
var ACMuxNeg = regs.Enum{"PIN0", "PIN1", "PIN2", "PIN3", "GND", "VSCALE", "BANDGAP", "DAC"}

// ACMuxPos names COMPCTRL.MUXPOS.
var ACMuxPos = regs.Enum{"PIN0", "PIN1", "PIN2", "PIN3"}

// ACOutputs names COMPCTRL.OUT.
var ACOutputs = regs.Enum{"OFF", "ASYNC", "SYNC"}

// ACFilters names COMPCTRL.FLEN.
var ACFilters = regs.Enum{"OFF", "MAJ3", "MAJ5"}

// ACWinTSels names WINCTRL.WINTSEL0.
var ACWinTSels = regs.Enum{"ABOVE", "INSIDE", "BELOW", "OUTSIDE"}

// ACSync returns the AC sync flag.
func ACSync() regs.Busy {
	return regs.Busy{Addr: ACBase + ACStatusB, Width: 1, Mask: 1 << 7}
}
