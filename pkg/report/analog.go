package report

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintADC prints the analog-to-digital converter.
func PrintADC(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.ADCSync())

	ctrla := p.r8(samd21.ADCCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.ADCCtrlAEnable.IsSet(ctrla) {
		p.disabled("ADC")
		return p.err
	}
	p.header("ADC")
	p.emit(newLine("CTRLA").bit(ctrla, samd21.ADCCtrlARunStdby, "RUNSTDBY"))

	ref := p.r8(samd21.ADCRefCtrl)
	p.emit(newLine("REFCTRL").
		kv("refsel", samd21.ADCRefs.Label(samd21.ADCRefCtrlRefSel.Get(ref))).
		bit(ref, samd21.ADCRefCtrlRefComp, "REFCOMP"))

	avg := p.r8(samd21.ADCAvgCtrl)
	p.emit(newLine("AVGCTRL").
		kv("samplenum", scale(samd21.ADCAvgCtrlSampleNum.Get(avg))).
		kv("adjres", samd21.ADCAvgCtrlAdjRes.Get(avg)))

	p.emit(newLine("SAMPCTRL").kv("samplen", samd21.ADCSampCtrlSampLen.Get(p.r8(samd21.ADCSampCtrl))))

	ctrlb := p.r16(samd21.ADCCtrlB)
	p.emit(newLine("CTRLB").
		flags(ctrlb, samd21.ADCCtrlBFlags).
		kv("ressel", samd21.ADCResolutions.Label(samd21.ADCCtrlBResSel.Get(ctrlb))).
		kv("prescaler", samd21.ADCPrescalers.Label(samd21.ADCCtrlBPrescaler.Get(ctrlb))))

	p.emit(newLine("WINCTRL").kv("winmode", samd21.ADCWinModes.Label(samd21.ADCWinCtrlWinMode.Get(p.r8(samd21.ADCWinCtrl)))))

	in := p.r32(samd21.ADCInputCtrl)
	p.emit(newLine("INPUTCTRL").
		kv("muxpos", samd21.ADCMuxPos.Label(samd21.ADCInputCtrlMuxPos.Get(in))).
		kv("muxneg", samd21.ADCMuxNeg.Label(samd21.ADCInputCtrlMuxNeg.Get(in))).
		kv("inputscan", samd21.ADCInputCtrlInputScan.Get(in)).
		kv("inputoffset", samd21.ADCInputCtrlOffset.Get(in)).
		kv("gain", samd21.ADCGains.Label(samd21.ADCInputCtrlGain.Get(in))))
	return p.err
}

// PrintDAC prints the digital-to-analog converter.
func PrintDAC(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.DACSync())

	ctrla := p.r8(samd21.DACCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.DACCtrlAEnable.IsSet(ctrla) {
		p.disabled("DAC")
		return p.err
	}
	p.header("DAC")
	p.emit(newLine("CTRLA").bit(ctrla, samd21.DACCtrlARunStdby, "RUNSTDBY"))

	ctrlb := p.r8(samd21.DACCtrlB)
	p.emit(newLine("CTRLB").
		flags(ctrlb, samd21.DACCtrlBFlags).
		kv("refsel", samd21.DACRefs.Label(samd21.DACCtrlBRefSel.Get(ctrlb))))

	p.emit(newLine("DATA").add(hex(p.r16(samd21.DACData))))
	return p.err
}

// PrintAC prints the analog comparators.
func PrintAC(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.ACSync())

	ctrla := p.r8(samd21.ACCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.ACCtrlAEnable.IsSet(ctrla) {
		p.disabled("AC")
		return p.err
	}
	p.header("AC")
	p.emit(newLine("CTRLA").
		bit(ctrla, samd21.ACCtrlARunStdby, "RUNSTDBY").
		bit(ctrla, samd21.ACCtrlALPMux, "LPMUX"))

	for n := uint32(0); n < samd21.ACNumComparators; n++ {
		label := fmt.Sprintf("COMP%d", n)
		cc := p.r32(samd21.ACCompCtrl0 + 4*n)
		if !samd21.ACCompCtrlEnable.IsSet(cc) {
			p.disabledLine(label)
			continue
		}
		p.emit(newLine(label).
			bit(cc, samd21.ACCompCtrlSingle, "SINGLE").
			kv("speed", samd21.ACSpeeds.Label(samd21.ACCompCtrlSpeed.Get(cc))).
			kv("intsel", samd21.ACIntSels.Label(samd21.ACCompCtrlIntSel.Get(cc))).
			kv("muxneg", samd21.ACMuxNeg.Label(samd21.ACCompCtrlMuxNeg.Get(cc))).
			kv("muxpos", samd21.ACMuxPos.Label(samd21.ACCompCtrlMuxPos.Get(cc))).
			bit(cc, samd21.ACCompCtrlSwap, "SWAP").
			kv("out", samd21.ACOutputs.Label(samd21.ACCompCtrlOut.Get(cc))).
			bit(cc, samd21.ACCompCtrlHyst, "HYST").
			kv("flen", samd21.ACFilters.Label(samd21.ACCompCtrlFLen.Get(cc))).
			kv("scaler", samd21.ACScalerValue.Get(p.r8(samd21.ACScaler0+n))))
	}

	win := p.r8(samd21.ACWinCtrl)
	if samd21.ACWinCtrlWEn0.IsSet(win) {
		p.emit(newLine("WIN0").kv("wintsel", samd21.ACWinTSels.Label(samd21.ACWinCtrlWinTSel0.Get(win))))
	} else {
		p.disabledLine("WIN0")
	}
	return p.err
}
