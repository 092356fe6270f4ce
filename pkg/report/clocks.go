package report

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintGCLK prints every generic clock consumer and every generator. Each
// CLKCTRL, GENCTRL and GENDIV slot is read through its banked selector.
func PrintGCLK(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("GCLK")
	p.wait(samd21.GCLKResetBusy, samd21.GCLKSyncBusy)

	p.println("GCLK_MAIN:  GEN00 (always)")
	for id := 0; id < samd21.GCLKNumClocks; id++ {
		v := p.bank(samd21.GCLKClkCtrlBank, id)[0]
		label := "GCLK_" + samd21.GCLKClockNames.Label(uint32(id))
		if !samd21.GCLKClkCtrlClkEn.IsSet(v) {
			p.disabledLine(label)
			continue
		}
		p.emit(newLine(label).
			add("GEN"+pad2(samd21.GCLKClkCtrlGen.Get(v))).
			bit(v, samd21.GCLKClkCtrlWrtLock, "WRTLOCK"))
	}

	for id := 0; id < samd21.GCLKNumGenerators; id++ {
		ctrl := p.bank(samd21.GCLKGenCtrlBank, id)[0]
		label := "GEN" + pad2(uint32(id))
		if !samd21.GCLKGenCtrlGenEn.IsSet(ctrl) {
			p.disabledLine(label)
			continue
		}
		div := samd21.GCLKGenDivDiv.Get(p.bank(samd21.GCLKGenDivBank, id)[0])
		src := samd21.GCLKSources.Label(samd21.GCLKGenCtrlSrc.Get(ctrl))
		switch {
		case samd21.GCLKGenCtrlDivSel.IsSet(ctrl):
			src += "/" + scale(div+1)
		case div > 1:
			src += fmt.Sprintf("/%d", div)
		}
		p.emit(newLine(label).add(src).
			bit(ctrl, samd21.GCLKGenCtrlIDC, "IDC").
			bit(ctrl, samd21.GCLKGenCtrlOOV, "OOV").
			bit(ctrl, samd21.GCLKGenCtrlOE, "OE").
			bit(ctrl, samd21.GCLKGenCtrlRunStdby, "RUNSTDBY"))
	}
	return p.err
}

// PrintSYSCTRL prints the oscillators, brown-out detector and references.
func PrintSYSCTRL(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("SYSCTRL")

	enabled := func(v uint32) bool { return samd21.SYSCTRLEnable.IsSet(v) }
	standby := func(l *line, v uint32) *line {
		return l.bit(v, samd21.SYSCTRLRunStdby, "RUNSTDBY").bit(v, samd21.SYSCTRLOnDemand, "ONDEMAND")
	}

	if xosc := p.r16(samd21.SYSCTRLXOSC); enabled(xosc) {
		l := newLine("XOSC").bit(xosc, samd21.XOSCXtalEn, "XTALEN")
		standby(l, xosc).
			bit(xosc, samd21.XOSCAmpGC, "AMPGC").
			kv("gain", samd21.XOSCGains.Label(samd21.XOSCGain.Get(xosc))).
			kv("startup", samd21.XOSCStartups.Label(samd21.XOSCStartup.Get(xosc)))
		p.emit(l)
	} else {
		p.disabledLine("XOSC")
	}

	if x32 := p.r16(samd21.SYSCTRLXOSC32K); enabled(x32) {
		l := newLine("XOSC32K").
			bit(x32, samd21.XOSC32KXtalEn, "XTALEN").
			bit(x32, samd21.XOSC32KEn32K, "EN32K").
			bit(x32, samd21.XOSC32KEn1K, "EN1K").
			bit(x32, samd21.XOSC32KAAmpEn, "AAMPEN")
		standby(l, x32).
			bit(x32, samd21.XOSC32KWrtLock, "WRTLOCK").
			kv("startup", samd21.XOSC32KStartups.Label(samd21.XOSC32KStartup.Get(x32)))
		p.emit(l)
	} else {
		p.disabledLine("XOSC32K")
	}

	if o32 := p.r32(samd21.SYSCTRLOSC32K); enabled(o32) {
		l := newLine("OSC32K").
			bit(o32, samd21.OSC32KEn32K, "EN32K").
			bit(o32, samd21.OSC32KEn1K, "EN1K")
		standby(l, o32).
			bit(o32, samd21.OSC32KWrtLock, "WRTLOCK").
			kv("startup", samd21.OSC32KStartups.Label(samd21.OSC32KStartup.Get(o32))).
			kv("CALIB", hex(samd21.OSC32KCalib.Get(o32)))
		p.emit(l)
	} else {
		p.disabledLine("OSC32K")
	}

	ulp := p.r8(samd21.SYSCTRLOSCULP32K)
	p.emit(newLine("OSCULP32K").
		bit(ulp, samd21.OSCULP32KWrtLock, "WRTLOCK").
		kv("CALIB", hex(samd21.OSCULP32KCalib.Get(ulp))))

	if o8 := p.r32(samd21.SYSCTRLOSC8M); enabled(o8) {
		l := standby(newLine("OSC8M"), o8).
			kv("presc", scale(samd21.OSC8MPresc.Get(o8))).
			kv("CALIB", hex(samd21.OSC8MCalib.Get(o8))).
			kv("frange", samd21.OSC8MFRanges.Label(samd21.OSC8MFRange.Get(o8)))
		p.emit(l)
	} else {
		p.disabledLine("OSC8M")
	}

	if dfll := p.r16(samd21.SYSCTRLDFLLCtrl); enabled(dfll) {
		l := newLine("DFLL").flags(dfll, samd21.DFLLFlags)
		val := p.r32(samd21.SYSCTRLDFLLVal)
		l.kv("coarse", samd21.DFLLValCoarse.Get(val)).kv("fine", samd21.DFLLValFine.Get(val))
		if samd21.DFLLCtrlMode.IsSet(dfll) {
			mul := p.r32(samd21.SYSCTRLDFLLMul)
			l.kv("mul", samd21.DFLLMulMul.Get(mul)).
				kv("fstep", samd21.DFLLMulFStep.Get(mul)).
				kv("cstep", samd21.DFLLMulCStep.Get(mul))
		}
		pclksr := p.r32(samd21.SYSCTRLPClkSR)
		l.flag(pclksr&samd21.DFLLReadyFlag != 0, "DFLLRDY").
			flag(pclksr&samd21.DFLLLockedMask == samd21.DFLLLockedMask, "LOCKED")
		p.emit(l)
	} else {
		p.disabledLine("DFLL")
	}

	if bod := p.r32(samd21.SYSCTRLBOD33); enabled(bod) {
		p.emit(newLine("BOD33").
			bit(bod, samd21.BOD33Hyst, "HYST").
			bit(bod, samd21.SYSCTRLRunStdby, "RUNSTDBY").
			bit(bod, samd21.BOD33Mode, "MODE").
			bit(bod, samd21.BOD33CEn, "CEN").
			kv("action", samd21.BOD33Actions.Label(samd21.BOD33Action.Get(bod))).
			kv("psel", scale(1+samd21.BOD33PSel.Get(bod))).
			kv("LEVEL", hex(samd21.BOD33Level.Get(bod))))
	} else {
		p.disabledLine("BOD33")
	}

	vreg := p.r16(samd21.SYSCTRLVReg)
	p.emit(newLine("VREG").
		bit(vreg, samd21.SYSCTRLRunStdby, "RUNSTDBY").
		bit(vreg, samd21.VRegForceLDO, "FORCELDO"))

	vref := p.r32(samd21.SYSCTRLVRef)
	p.emit(newLine("VREF").
		bit(vref, samd21.VRefTSEn, "TSEN").
		bit(vref, samd21.VRefBGOutEn, "BGOUTEN").
		kv("CALIB", hex(samd21.VRefCalib.Get(vref))))

	if dpll := p.r8(samd21.SYSCTRLDPLLCtrlA); enabled(dpll) {
		ratio := p.r32(samd21.SYSCTRLDPLLRatio)
		ctrlb := p.r32(samd21.SYSCTRLDPLLCtrlB)
		status := p.r8(samd21.SYSCTRLDPLLStatus)
		p.emit(standby(newLine("DPLL"), dpll).
			kv("refclk", samd21.DPLLRefClocks.Label(samd21.DPLLCtrlBRef.Get(ctrlb))).
			kv("ldr", samd21.DPLLRatioLDR.Get(ratio)).
			kv("ldrfrac", samd21.DPLLRatioFrac.Get(ratio)).
			kv("div", samd21.DPLLCtrlBDiv.Get(ctrlb)).
			bit(status, samd21.DPLLLock, "LOCK").
			bit(status, samd21.DPLLClkRdy, "CLKRDY"))
	} else {
		p.disabledLine("DPLL")
	}
	return p.err
}

// PrintEIC prints the external interrupt controller: the NMI and each of
// the 16 EXTINT lines.
func PrintEIC(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.EICSyncBusy)

	ctrl := p.r8(samd21.EICCtrl)
	if p.err != nil {
		return p.err
	}
	if !samd21.EICCtrlEnable.IsSet(ctrl) {
		p.disabled("EIC")
		return p.err
	}
	p.header("EIC")

	nmi := p.r8(samd21.EICNMICtrl)
	if sense := samd21.EICNMICtrlSense.Get(nmi); sense != 0 {
		p.emit(newLine("NMI").
			kv("sense", samd21.EICSenses.Label(sense)).
			bit(nmi, samd21.EICNMICtrlFiltEn, "FILTEN"))
	} else if opts.ShowDisabled {
		p.println("NMI:  none")
	}

	evctrl := p.r32(samd21.EICEvCtrl)
	wakeup := p.r32(samd21.EICWakeup)
	config := [2]uint32{p.r32(samd21.EICConfig0), p.r32(samd21.EICConfig0 + 4)}
	for n := 0; n < samd21.EICNumExtInt; n++ {
		entry := config[n/8] >> (4 * uint(n%8)) & 0xF
		sense := samd21.EICConfigSense.Get(entry)
		if sense == 0 && !opts.ShowDisabled {
			continue
		}
		p.emit(newLine("EXTINT"+pad2(uint32(n))).
			kv("sense", samd21.EICSenses.Label(sense)).
			bit(entry, samd21.EICConfigFiltEn, "FILTEN").
			flag(evctrl&(1<<n) != 0, "EXTINTEO").
			flag(wakeup&(1<<n) != 0, "WAKEUP"))
	}
	return p.err
}

// PrintEVSYS prints the 12 event channels and the 31 event users.
func PrintEVSYS(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("EVSYS")
	p.wait(samd21.EVSYSResetBusy)

	ctrl := p.r8(samd21.EVSYSCtrl)
	p.emit(newLine("CTRL").bit(ctrl, samd21.EVSYSCtrlGCLKReq, "GCLKREQ"))

	for ch := 0; ch < samd21.EVSYSNumChannels; ch++ {
		v := p.bank(samd21.EVSYSChannelBank, ch)[0]
		label := "CHANNEL" + pad2(uint32(ch))
		evgen := samd21.EVSYSChannelEvGen.Get(v)
		if evgen == 0 {
			p.disabledLine(label)
			continue
		}
		p.emit(newLine(label).
			kv("path", samd21.EVSYSPaths.Label(samd21.EVSYSChannelPath.Get(v))).
			kv("edgsel", samd21.EVSYSEdges.Label(samd21.EVSYSChannelEdgSel.Get(v))).
			kv("evgen", samd21.EVSYSGenerators.Label(evgen)))
	}

	for user := 0; user < samd21.EVSYSNumUsers; user++ {
		v := p.bank(samd21.EVSYSUserBank, user)[0]
		label := "USER" + pad2(uint32(user)) + " " + samd21.EVSYSUsers.Label(uint32(user))
		ch := samd21.EVSYSUserChannel.Get(v)
		if ch == 0 {
			p.disabledLine(label)
			continue
		}
		p.emit(newLine(label).add("CHANNEL" + pad2(ch-1)))
	}
	return p.err
}
