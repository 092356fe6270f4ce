package report

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintDMAC prints the DMA controller and each enabled channel. Channel
// registers are read through the CHID selector.
func PrintDMAC(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)

	ctrl := p.r16(samd21.DMACCtrl)
	if p.err != nil {
		return p.err
	}
	if !samd21.DMACCtrlDMAEnable.IsSet(ctrl) {
		p.disabled("DMAC")
		return p.err
	}
	p.header("DMAC")
	p.emit(newLine("CTRL").
		add("DMAENABLE").
		bit(ctrl, samd21.DMACCtrlCRCEnable, "CRCENABLE").
		kv("LVLEN", binary(samd21.DMACCtrlLvlEn.Get(ctrl))))
	p.emit(newLine("BASEADDR").add(hex(p.r32(samd21.DMACBaseAddr))))
	p.emit(newLine("WRBADDR").add(hex(p.r32(samd21.DMACWrbAddr))))

	for ch := 0; ch < samd21.DMACNumChannels; ch++ {
		vals := p.bank(samd21.DMACChannelBank, ch)
		a, b := vals[0], vals[1]
		label := "CHANNEL" + pad2(uint32(ch))
		if !samd21.DMACChCtrlAEnable.IsSet(a) {
			p.disabledLine(label)
			continue
		}
		p.emit(newLine(label).
			kv("trigsrc", samd21.DMACTriggers.Label(samd21.DMACChCtrlBTrig.Get(b))).
			kv("trigact", samd21.DMACTrigActions.Label(samd21.DMACChCtrlBAct.Get(b))).
			kv("lvl", samd21.DMACChCtrlBLvl.Get(b)).
			kv("evact", samd21.DMACEventActions.Label(samd21.DMACChCtrlBEvAct.Get(b))).
			bit(b, samd21.DMACChCtrlBEvIE, "EVIE").
			bit(b, samd21.DMACChCtrlBEvOE, "EVOE").
			bit(a, samd21.DMACChCtrlARunStd, "RUNSTDBY"))
	}
	return p.err
}

// PrintUSB prints the USB controller.
func PrintUSB(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.USBSync)

	ctrla := p.r8(samd21.USBCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.USBCtrlAEnable.IsSet(ctrla) {
		p.disabled("USB")
		return p.err
	}
	p.header("USB")

	host := samd21.USBCtrlAMode.IsSet(ctrla)
	p.emit(newLine("CTRLA").
		kv("mode", samd21.USBModes.Label(samd21.USBCtrlAMode.Get(ctrla))).
		bit(ctrla, samd21.USBCtrlARunStdby, "RUNSTDBY"))

	if !host {
		ctrlb := p.r16(samd21.USBCtrlB)
		p.emit(newLine("CTRLB").
			bit(ctrlb, samd21.USBCtrlBDetach, "DETACH").
			kv("spdconf", samd21.USBSpeeds.Label(samd21.USBCtrlBSpdConf.Get(ctrlb))))

		dadd := p.r8(samd21.USBDAdd)
		p.emit(newLine("DADD").
			bit(dadd, samd21.USBDAddAddEn, "ADDEN").
			kv("DADD", samd21.USBDAddAddr.Get(dadd)))

		status := p.r8(samd21.USBStatus)
		p.emit(newLine("STATUS").
			kv("speed", samd21.USBSpeeds.Label(samd21.USBStatusSpeed.Get(status))).
			kv("linestate", samd21.USBLineStates.Label(samd21.USBStatusLineState.Get(status))))
	}

	p.emit(newLine("FSMSTATUS").add(hex(p.r8(samd21.USBFSMState))))
	p.emit(newLine("DESCADD").add(hex(p.r32(samd21.USBDescAdd))))

	padcal := p.r16(samd21.USBPadCal)
	p.emit(newLine("PADCAL").
		kv("TRANSP", samd21.USBPadCalTransP.Get(padcal)).
		kv("TRANSN", samd21.USBPadCalTransN.Get(padcal)).
		kv("TRIM", samd21.USBPadCalTrim.Get(padcal)))
	return p.err
}

// PrintI2S prints the inter-IC sound controller: both clock units and both
// serializers.
func PrintI2S(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.I2SSync)

	ctrla := p.r8(samd21.I2SCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.I2SCtrlAEnable.IsSet(ctrla) {
		p.disabled("I2S")
		return p.err
	}
	p.header("I2S")

	for n := uint32(0); n < samd21.I2SNumUnits; n++ {
		label := fmt.Sprintf("CLKCTRL%d", n)
		if ctrla&(1<<(samd21.I2SCtrlACKEn0.Pos+uint8(n))) == 0 {
			p.disabledLine(label)
			continue
		}
		clk := p.r32(samd21.I2SClkCtrl0 + 4*n)
		p.emit(newLine(label).
			kv("slotsize", samd21.I2SSlotSizes.Label(samd21.I2SClkSlotSize.Get(clk))).
			kv("nbslots", samd21.I2SClkNbSlots.Get(clk)+1).
			kv("fswidth", samd21.I2SFrameSyncWidths.Label(samd21.I2SClkFSWidth.Get(clk))).
			kv("mckdiv", samd21.I2SClkMCKDiv.Get(clk)+1).
			kv("mckoutdiv", samd21.I2SClkMCKOutDiv.Get(clk)+1).
			flags(clk, samd21.I2SClkFlags))
	}

	for n := uint32(0); n < samd21.I2SNumSerial; n++ {
		label := fmt.Sprintf("SERCTRL%d", n)
		if ctrla&(1<<(samd21.I2SCtrlASerEn0.Pos+uint8(n))) == 0 {
			p.disabledLine(label)
			continue
		}
		ser := p.r32(samd21.I2SSerCtrl0 + 4*n)
		p.emit(newLine(label).
			kv("sermode", samd21.I2SSerModes.Label(samd21.I2SSerCtrlSerMode.Get(ser))).
			kv("datasize", samd21.I2SDataSizes.Label(samd21.I2SSerCtrlDataSize.Get(ser))).
			kv("clksel", choose(samd21.I2SSerCtrlClkSel.IsSet(ser), "CLK1", "CLK0")).
			bit(ser, samd21.I2SSerCtrlMono, "MONO").
			kv("dma", choose(samd21.I2SSerCtrlDMA.IsSet(ser), "MULTIPLE", "SINGLE")).
			bit(ser, samd21.I2SSerCtrlRxLoopbck, "RXLOOP"))
	}
	return p.err
}
