package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// SERCOM register offsets (shared by USART, SPI and I2C modes).
const (
	SERCOMCtrlA    = 0x00
	SERCOMCtrlB    = 0x04
	SERCOMBaud     = 0x0C // USART/SPI 16/8-bit, I2CM 32-bit
	SERCOMRxPL     = 0x0E // USART 8-bit
	SERCOMSyncBusy = 0x1C
	SERCOMAddr     = 0x24 // SPI, I2CS
)

// SERCOM CTRLA fields common to all modes.
var (
	SERCOMCtrlASWRST    = regs.Bit(0)
	SERCOMCtrlAEnable   = regs.Bit(1)
	SERCOMCtrlAMode     = regs.Field{Pos: 2, Width: 3}
	SERCOMCtrlARunStdby = regs.Bit(7)
)

// SERCOM modes (CTRLA.MODE).
const (
	SERCOMModeUSARTExt = 0
	SERCOMModeUSARTInt = 1
	SERCOMModeSPISlave = 2
	SERCOMModeSPIHost  = 3
	SERCOMModeI2CSlave = 4
	SERCOMModeI2CHost  = 5
)

// SERCOMModes names CTRLA.MODE.
var SERCOMModes = regs.Enum{
	"USART_EXT_CLK", "USART_INT_CLK", "SPI_SLAVE", "SPI_MASTER", "I2C_SLAVE", "I2C_MASTER",
}

// USART fields.
var (
	USARTCtrlAIBON   = regs.Bit(8)
	USARTCtrlASampR  = regs.Field{Pos: 13, Width: 3}
	USARTCtrlATxPO   = regs.Field{Pos: 16, Width: 2}
	USARTCtrlARxPO   = regs.Field{Pos: 20, Width: 2}
	USARTCtrlASampA  = regs.Field{Pos: 22, Width: 2}
	USARTCtrlAForm   = regs.Field{Pos: 24, Width: 4}
	USARTCtrlACMode  = regs.Bit(28)
	USARTCtrlACPol   = regs.Bit(29)
	USARTCtrlADOrd   = regs.Bit(30)
	USARTCtrlBChSize = regs.Field{Pos: 0, Width: 3}
	USARTCtrlBSBMode = regs.Bit(6)
	USARTCtrlBColDen = regs.Bit(8)
	USARTCtrlBSFDE   = regs.Bit(9)
	USARTCtrlBEnc    = regs.Bit(10)
	USARTCtrlBPMode  = regs.Bit(13)
	USARTCtrlBTxEn   = regs.Bit(16)
	USARTCtrlBRxEn   = regs.Bit(17)
)

// USARTForms names CTRLA.FORM.
var USARTForms = regs.Enum{0: "USART", 1: "USART,PARITY", 4: "AUTOBAUD", 5: "AUTOBAUD,PARITY"}

// USARTCharSizes names CTRLB.CHSIZE.
var USARTCharSizes = regs.Enum{0: "8bit", 1: "9bit", 5: "5bit", 6: "6bit", 7: "7bit"}

// USARTSampleRates names CTRLA.SAMPR.
var USARTSampleRates = regs.Enum{
	"16x_ARITH", "16x_FRAC", "8x_ARITH", "8x_FRAC", "3x_ARITH",
}

// SPI fields.
var (
	SPICtrlAIBON    = regs.Bit(8)
	SPICtrlADOPO    = regs.Field{Pos: 16, Width: 2}
	SPICtrlADIPO    = regs.Field{Pos: 20, Width: 2}
	SPICtrlAForm    = regs.Field{Pos: 24, Width: 4}
	SPICtrlACPha    = regs.Bit(28)
	SPICtrlACPol    = regs.Bit(29)
	SPICtrlADOrd    = regs.Bit(30)
	SPICtrlBChSize  = regs.Field{Pos: 0, Width: 3}
	SPICtrlBPLoadEn = regs.Bit(6)
	SPICtrlBSSDE    = regs.Bit(9)
	SPICtrlBMSSEn   = regs.Bit(13)
	SPICtrlBAMode   = regs.Field{Pos: 14, Width: 2}
	SPICtrlBRxEn    = regs.Bit(17)
	SPIAddrAddr     = regs.Field{Pos: 0, Width: 8}
	SPIAddrMask     = regs.Field{Pos: 16, Width: 8}
)

// SPIForms names CTRLA.FORM.
var SPIForms = regs.Enum{0: "SPI", 2: "SPI_ADDR"}

// SPICharSizes names CTRLB.CHSIZE.
var SPICharSizes = regs.Enum{"8bit", "9bit"}

// SPIAddrModes names CTRLB.AMODE.
var SPIAddrModes = regs.Enum{"MASK", "2ADDRS", "RANGE"}

// SPIDataOut names the pads selected by CTRLA.DOPO.
var SPIDataOut = regs.Enum{
	"PAD0 sck=PAD1 ss=PAD2",
	"PAD2 sck=PAD3 ss=PAD1",
	"PAD3 sck=PAD1 ss=PAD2",
	"PAD0 sck=PAD3 ss=PAD1",
}

// I2C fields (host and client share most CTRLA bits).
var (
	I2CCtrlAPinout    = regs.Bit(16)
	I2CCtrlASDAHold   = regs.Field{Pos: 20, Width: 2}
	I2CCtrlAMExtTOEn  = regs.Bit(22)
	I2CCtrlASExtTOEn  = regs.Bit(23)
	I2CCtrlASpeed     = regs.Field{Pos: 24, Width: 2}
	I2CCtrlASCLSM     = regs.Bit(27)
	I2CCtrlAInactOut  = regs.Field{Pos: 28, Width: 2}
	I2CCtrlALowTOutEn = regs.Bit(30)

	I2CMCtrlBSMEn = regs.Bit(8)
	I2CMCtrlBQCEn = regs.Bit(9)

	I2CSCtrlBSMEn   = regs.Bit(8)
	I2CSCtrlBGCMD   = regs.Bit(9)
	I2CSCtrlBAACKEn = regs.Bit(10)
	I2CSCtrlBAMode  = regs.Field{Pos: 14, Width: 2}

	I2CCtrlBAckAct = regs.Bit(18)

	I2CSAddrGenCEn   = regs.Bit(0)
	I2CSAddrAddr     = regs.Field{Pos: 1, Width: 10}
	I2CSAddrTenBitEn = regs.Bit(15)
	I2CSAddrMask     = regs.Field{Pos: 17, Width: 10}
)

// I2CSDAHolds names CTRLA.SDAHOLD.
var I2CSDAHolds = regs.Enum{"DIS", "75NS", "450NS", "600NS"}

// I2CSpeeds names CTRLA.SPEED.
var I2CSpeeds = regs.Enum{"SM<100kHz,FM<400kHz", "FM+<1MHz", "HS<3.4MHz"}

// I2CInactiveTimeouts names CTRLA.INACTOUT.
var I2CInactiveTimeouts = regs.Enum{"DIS", "55US", "105US", "205US"}

// I2CAddrModes names I2CS CTRLB.AMODE.
var I2CAddrModes = regs.Enum{"MASK", "2ADDRS", "RANGE"}

// SERCOMSync returns the sync flags of SERCOMn: SWRST and ENABLE.
func SERCOMSync(base uint32) regs.Busy {
	return regs.Busy{Addr: base + SERCOMSyncBusy, Width: 4, Mask: 0x3}
}
