package report

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintTC prints timer/counter TCn (n = 3..7).
func PrintTC(ctx context.Context, opts *Options, blk regs.Block, idx int) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.TCSync(blk.Base))

	name := fmt.Sprintf("TC%d", idx)
	ctrla := p.r16(samd21.TCCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.TCCtrlAEnable.IsSet(ctrla) {
		p.disabled(name)
		return p.err
	}
	p.header(name)

	mode := samd21.TCCtrlAMode.Get(ctrla)
	p.emit(newLine("CTRLA").
		kv("mode", samd21.TCModes.Label(mode)).
		kv("wavegen", samd21.TCWaveGens.Label(samd21.TCCtrlAWaveGen.Get(ctrla))).
		kv("prescaler", samd21.TCPrescalers.Label(samd21.TCCtrlAPrescaler.Get(ctrla))).
		kv("prescsync", samd21.TCPrescSyncs.Label(samd21.TCCtrlAPrescSync.Get(ctrla))).
		bit(ctrla, samd21.TCCtrlARunStdby, "RUNSTDBY"))

	ctrlb := p.r8(samd21.TCCtrlBSet)
	p.emit(newLine("CTRLB").
		kv("dir", choose(samd21.TCCtrlBDir.IsSet(ctrlb), "DOWN", "UP")).
		bit(ctrlb, samd21.TCCtrlBOneShot, "ONESHOT"))

	p.emit(newLine("CTRLC").flags(p.r8(samd21.TCCtrlC), samd21.TCCtrlCFlags))

	ev := p.r16(samd21.TCEvCtrl)
	p.emit(newLine("EVCTRL").
		kv("evact", samd21.TCEventActions.Label(samd21.TCEvCtrlEvAct.Get(ev))).
		flags(ev, samd21.TCEvCtrlFlags))

	status := p.r8(samd21.TCStatus)
	p.emit(newLine("STATUS").
		bit(status, samd21.TCStatusStop, "STOP").
		bit(status, samd21.TCStatusSlave, "SLAVE"))

	switch mode {
	case samd21.TCModeCount8:
		p.emit(newLine("PER").add(hex(p.r8(samd21.TCPer8))))
		p.emit(newLine("CC0").add(hex(p.r8(samd21.TCCC0))))
		p.emit(newLine("CC1").add(hex(p.r8(samd21.TCCC0 + 1))))
	case samd21.TCModeCount16:
		p.emit(newLine("CC0").add(hex(p.r16(samd21.TCCC0))))
		p.emit(newLine("CC1").add(hex(p.r16(samd21.TCCC0 + 2))))
	case samd21.TCModeCount32:
		p.emit(newLine("CC0").add(hex(p.r32(samd21.TCCC0))))
		p.emit(newLine("CC1").add(hex(p.r32(samd21.TCCC0 + 4))))
	}
	return p.err
}

// PrintTCC prints timer/counter for control applications TCCn (n = 0..2).
func PrintTCC(ctx context.Context, opts *Options, blk regs.Block, idx int) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.TCCSync(blk.Base))

	name := fmt.Sprintf("TCC%d", idx)
	ctrla := p.r32(samd21.TCCCtrlA)
	if p.err != nil {
		return p.err
	}
	if !samd21.TCCCtrlAEnable.IsSet(ctrla) {
		p.disabled(name)
		return p.err
	}
	p.header(name)

	p.emit(newLine("CTRLA").
		kv("resolution", samd21.TCCResolutions.Label(samd21.TCCCtrlAResolution.Get(ctrla))).
		kv("prescaler", samd21.TCPrescalers.Label(samd21.TCCCtrlAPrescaler.Get(ctrla))).
		kv("prescsync", samd21.TCPrescSyncs.Label(samd21.TCCCtrlAPrescSync.Get(ctrla))).
		bit(ctrla, samd21.TCCCtrlARunStdby, "RUNSTDBY").
		bit(ctrla, samd21.TCCCtrlAALock, "ALOCK"))

	ctrlb := p.r8(samd21.TCCCtrlBSet)
	p.emit(newLine("CTRLB").
		kv("dir", choose(samd21.TCCCtrlBDir.IsSet(ctrlb), "DOWN", "UP")).
		bit(ctrlb, samd21.TCCCtrlBLUpd, "LUPD").
		bit(ctrlb, samd21.TCCCtrlBOneShot, "ONESHOT"))

	wave := p.r32(samd21.TCCWave)
	p.emit(newLine("WAVE").
		kv("wavegen", samd21.TCCWaveGens.Label(samd21.TCCWaveWaveGen.Get(wave))).
		kv("ramp", samd21.TCCRamps.Label(samd21.TCCWaveRamp.Get(wave))).
		bit(wave, samd21.TCCWaveCIPerEn, "CIPEREN").
		kv("POL", binary(samd21.TCCWavePol.Get(wave))).
		kv("SWAP", binary(samd21.TCCWaveSwap.Get(wave))))

	p.emit(newLine("DRVCTRL").kv("INVEN", binary(samd21.TCCDrvCtrlInvEn.Get(p.r32(samd21.TCCDrvCtrl)))))
	p.emit(newLine("STATUS").bit(p.r32(samd21.TCCStatus), samd21.TCCStatusStop, "STOP"))

	top := regs.Field{Width: uint8(samd21.TCCCounterBits[idx])}
	p.emit(newLine("PER").add(hex(top.Get(p.r32(samd21.TCCPer)))))
	for ch := 0; ch < samd21.TCCChannels[idx]; ch++ {
		p.emit(newLine(fmt.Sprintf("CC%d", ch)).add(hex(top.Get(p.r32(samd21.TCCCC0 + 4*uint32(ch))))))
	}
	return p.err
}
