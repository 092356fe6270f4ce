package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// sercomTitles names each CTRLA.MODE in the section header.
var sercomTitles = regs.Enum{"USART", "USART", "SPI slave", "SPI master", "I2C slave", "I2C master"}

// PrintSERCOM prints SERCOMn in whichever mode it is configured.
func PrintSERCOM(ctx context.Context, opts *Options, blk regs.Block, idx int) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.SERCOMSync(blk.Base))

	name := fmt.Sprintf("SERCOM%d", idx)
	ctrla := p.r32(samd21.SERCOMCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.SERCOMCtrlAEnable.IsSet(ctrla) {
		p.disabled(name)
		return p.err
	}

	mode := samd21.SERCOMCtrlAMode.Get(ctrla)
	p.header(name + " " + sercomTitles.Label(mode))
	switch mode {
	case samd21.SERCOMModeUSARTExt, samd21.SERCOMModeUSARTInt:
		printUSART(p, ctrla)
	case samd21.SERCOMModeSPISlave, samd21.SERCOMModeSPIHost:
		printSPI(p, ctrla, mode == samd21.SERCOMModeSPIHost)
	case samd21.SERCOMModeI2CSlave:
		printI2CClient(p, ctrla)
	case samd21.SERCOMModeI2CHost:
		printI2CHost(p, ctrla)
	}
	return p.err
}

func modeLine(ctrla uint32) *line {
	return newLine("CTRLA").
		kv("mode", samd21.SERCOMModes.Label(samd21.SERCOMCtrlAMode.Get(ctrla))).
		bit(ctrla, samd21.SERCOMCtrlARunStdby, "RUNSTDBY")
}

func choose(set bool, yes, no string) string {
	if set {
		return yes
	}
	return no
}

func printUSART(p *printer, ctrla uint32) {
	l := modeLine(ctrla).
		bit(ctrla, samd21.USARTCtrlAIBON, "IBON").
		kv("cmode", choose(samd21.USARTCtrlACMode.IsSet(ctrla), "SYNC", "ASYNC")).
		kv("cpol", choose(samd21.USARTCtrlACPol.IsSet(ctrla), "FALLING", "RISING")).
		kv("dord", choose(samd21.USARTCtrlADOrd.IsSet(ctrla), "LSB", "MSB")).
		kv("sampr", samd21.USARTSampleRates.Label(samd21.USARTCtrlASampR.Get(ctrla))).
		kv("SAMPA", hex(samd21.USARTCtrlASampA.Get(ctrla))).
		kv("form", samd21.USARTForms.Label(samd21.USARTCtrlAForm.Get(ctrla))).
		kv("rx", fmt.Sprintf("PAD%d", samd21.USARTCtrlARxPO.Get(ctrla)))

	extClock := samd21.SERCOMCtrlAMode.Get(ctrla) == samd21.SERCOMModeUSARTExt
	switch samd21.USARTCtrlATxPO.Get(ctrla) {
	case 0:
		l.kv("tx", "PAD0")
		if extClock {
			l.kv("xck", "PAD1")
		}
	case 1:
		l.kv("tx", "PAD2")
		if extClock {
			l.kv("xck", "PAD3")
		}
	case 2:
		l.kv("tx", "PAD0").kv("rts", "PAD2").kv("cts", "PAD3")
	default:
		l.kv("tx", "reserved(0x3)")
	}
	p.emit(l)

	ctrlb := p.r32(samd21.SERCOMCtrlB)
	p.emit(newLine("CTRLB").
		kv("chsize", samd21.USARTCharSizes.Label(samd21.USARTCtrlBChSize.Get(ctrlb))).
		bit(ctrlb, samd21.USARTCtrlBSBMode, "SBMODE").
		bit(ctrlb, samd21.USARTCtrlBColDen, "COLDEN").
		bit(ctrlb, samd21.USARTCtrlBSFDE, "SFDE").
		bit(ctrlb, samd21.USARTCtrlBEnc, "ENC").
		bit(ctrlb, samd21.USARTCtrlBPMode, "PMODE").
		bit(ctrlb, samd21.USARTCtrlBTxEn, "TXEN").
		bit(ctrlb, samd21.USARTCtrlBRxEn, "RXEN"))

	p.emit(newLine("BAUD").add(hex(p.r16(samd21.SERCOMBaud))))
	if samd21.USARTCtrlBEnc.IsSet(ctrlb) {
		p.emit(newLine("RXPL").add(hex(p.r8(samd21.SERCOMRxPL))))
	}
}

func printSPI(p *printer, ctrla uint32, host bool) {
	dataIn := fmt.Sprintf("PAD%d", samd21.SPICtrlADIPO.Get(ctrla))
	dataOut := samd21.SPIDataOut.Label(samd21.SPICtrlADOPO.Get(ctrla))
	if host {
		// no SS pad in host mode
		dataOut, _, _ = strings.Cut(dataOut, " ss=")
	}

	l := modeLine(ctrla).bit(ctrla, samd21.SPICtrlAIBON, "IBON")
	if host {
		l.kv("miso", dataIn).kv("mosi", dataOut)
	} else {
		l.kv("mosi", dataIn).kv("miso", dataOut)
	}
	form := samd21.SPICtrlAForm.Get(ctrla)
	p.emit(l.kv("form", samd21.SPIForms.Label(form)).
		kv("cpha", choose(samd21.SPICtrlACPha.IsSet(ctrla), "TRAILING", "LEADING")).
		kv("cpol", choose(samd21.SPICtrlACPol.IsSet(ctrla), "HIGH", "LOW")).
		kv("dord", choose(samd21.SPICtrlADOrd.IsSet(ctrla), "LSB", "MSB")))

	ctrlb := p.r32(samd21.SERCOMCtrlB)
	p.emit(newLine("CTRLB").
		kv("chsize", samd21.SPICharSizes.Label(samd21.SPICtrlBChSize.Get(ctrlb))).
		bit(ctrlb, samd21.SPICtrlBPLoadEn, "PLOADEN").
		bit(ctrlb, samd21.SPICtrlBSSDE, "SSDE").
		bit(ctrlb, samd21.SPICtrlBMSSEn, "MSSEN").
		kv("amode", samd21.SPIAddrModes.Label(samd21.SPICtrlBAMode.Get(ctrlb))).
		bit(ctrlb, samd21.SPICtrlBRxEn, "RXEN"))

	p.emit(newLine("BAUD").add(hex(p.r8(samd21.SERCOMBaud))))
	if form == 2 {
		addr := p.r32(samd21.SERCOMAddr)
		p.emit(newLine("ADDR").
			kv("ADDR", hex(samd21.SPIAddrAddr.Get(addr))).
			kv("ADDRMASK", hex(samd21.SPIAddrMask.Get(addr))))
	}
}

// i2cCommon adds the CTRLA fields shared by host and client.
func i2cCommon(ctrla uint32) *line {
	return modeLine(ctrla).
		bit(ctrla, samd21.I2CCtrlAPinout, "PINOUT").
		kv("sdahold", samd21.I2CSDAHolds.Label(samd21.I2CCtrlASDAHold.Get(ctrla)))
}

// ackAction renders CTRLB.ACKACT: zero sends ACK.
func ackAction(ctrlb uint32) string {
	return choose(samd21.I2CCtrlBAckAct.IsSet(ctrlb), "NACK", "ACK")
}

func printI2CHost(p *printer, ctrla uint32) {
	p.emit(i2cCommon(ctrla).
		bit(ctrla, samd21.I2CCtrlAMExtTOEn, "MEXTTOEN").
		bit(ctrla, samd21.I2CCtrlASExtTOEn, "SEXTTOEN").
		kv("speed", samd21.I2CSpeeds.Label(samd21.I2CCtrlASpeed.Get(ctrla))).
		bit(ctrla, samd21.I2CCtrlASCLSM, "SCLSM").
		kv("inactout", samd21.I2CInactiveTimeouts.Label(samd21.I2CCtrlAInactOut.Get(ctrla))).
		bit(ctrla, samd21.I2CCtrlALowTOutEn, "LOWTOUTEN"))

	ctrlb := p.r32(samd21.SERCOMCtrlB)
	l := newLine("CTRLB").bit(ctrlb, samd21.I2CMCtrlBQCEn, "QCEN")
	if samd21.I2CMCtrlBSMEn.IsSet(ctrlb) {
		l.add("SMEN").kv("ackact", ackAction(ctrlb))
	}
	p.emit(l)

	p.emit(newLine("BAUD").add(hex(p.r32(samd21.SERCOMBaud))))
}

func printI2CClient(p *printer, ctrla uint32) {
	p.emit(i2cCommon(ctrla).
		bit(ctrla, samd21.I2CCtrlASExtTOEn, "SEXTTOEN").
		kv("speed", samd21.I2CSpeeds.Label(samd21.I2CCtrlASpeed.Get(ctrla))).
		bit(ctrla, samd21.I2CCtrlASCLSM, "SCLSM").
		bit(ctrla, samd21.I2CCtrlALowTOutEn, "LOWTOUTEN"))

	ctrlb := p.r32(samd21.SERCOMCtrlB)
	l := newLine("CTRLB")
	if samd21.I2CSCtrlBSMEn.IsSet(ctrlb) {
		l.add("SMEN").kv("ackact", ackAction(ctrlb))
	}
	p.emit(l.bit(ctrlb, samd21.I2CSCtrlBGCMD, "GCMD").
		bit(ctrlb, samd21.I2CSCtrlBAACKEn, "AACKEN").
		kv("amode", samd21.I2CAddrModes.Label(samd21.I2CSCtrlBAMode.Get(ctrlb))))

	addr := p.r32(samd21.SERCOMAddr)
	p.emit(newLine("ADDR").
		bit(addr, samd21.I2CSAddrGenCEn, "GENCEN").
		kv("ADDR", hex(samd21.I2CSAddrAddr.Get(addr))).
		bit(addr, samd21.I2CSAddrTenBitEn, "TENBITEN").
		kv("ADDRMASK", hex(samd21.I2CSAddrMask.Get(addr))))
}
