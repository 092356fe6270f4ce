package report

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintRTC prints the real-time counter in whichever of its three modes it
// is configured.
func PrintRTC(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.RTCSyncBusy)

	ctrl := p.r16(samd21.RTCCtrl)
	if p.err != nil {
		return p.err
	}
	mode := samd21.RTCCtrlMode.Get(ctrl)
	name := fmt.Sprintf("RTC MODE%d", mode)
	if !samd21.RTCCtrlEnable.IsSet(ctrl) {
		p.disabled(name)
		return p.err
	}
	p.header(name)

	l := newLine("CTRL").
		kv("mode", samd21.RTCModes.Label(mode)).
		kv("prescaler", scale(samd21.RTCCtrlPrescaler.Get(ctrl)))
	switch mode {
	case samd21.RTCMode0:
		l.bit(ctrl, samd21.RTCCtrlMatchClr, "MATCHCLR")
	case samd21.RTCMode2:
		l.bit(ctrl, samd21.RTCCtrlClkRep, "CLKREP").bit(ctrl, samd21.RTCCtrlMatchClr, "MATCHCLR")
	case samd21.RTCMode1:
	default:
		p.emit(l)
		return p.err
	}
	p.emit(l)

	p.emit(newLine("READREQ").bit(p.r16(samd21.RTCReadReq), samd21.RTCReadReqRCont, "RCONT"))

	ev := p.r16(samd21.RTCEvCtrl)
	el := newLine("EVCTRL")
	for i := 0; i < 8; i++ {
		el.flag(samd21.RTCEvCtrlPerEO.Get(ev)&(1<<i) != 0, fmt.Sprintf("PEREO%d", i))
	}
	switch mode {
	case samd21.RTCMode0:
		el.flag(ev&(1<<8) != 0, "CMPEO0")
	case samd21.RTCMode1:
		el.flag(ev&(1<<8) != 0, "CMPEO0").flag(ev&(1<<9) != 0, "CMPEO1")
	case samd21.RTCMode2:
		el.flag(ev&(1<<8) != 0, "ALARMEO0")
	}
	p.emit(el.bit(ev, samd21.RTCEvCtrlOvfEO, "OVFEO"))

	p.emit(newLine("FREQCORR").add(hex(p.r8(samd21.RTCFreqCorr))))

	switch mode {
	case samd21.RTCMode0:
		p.emit(newLine("COMP0").add(hex(p.r32(samd21.RTCComp0))))
	case samd21.RTCMode1:
		p.emit(newLine("PER").kv("PER", hex(p.r16(samd21.RTCPer))))
		p.emit(newLine("COMP0").add(hex(p.r16(samd21.RTCComp0))))
		p.emit(newLine("COMP1").add(hex(p.r16(samd21.RTCComp1))))
	case samd21.RTCMode2:
		alarm := p.r32(samd21.RTCAlarm0)
		p.emit(newLine("ALARM").add(fmt.Sprintf("%s-%s-%s %s:%s:%s",
			pad2(samd21.RTCAlarmYear.Get(alarm)),
			pad2(samd21.RTCAlarmMonth.Get(alarm)),
			pad2(samd21.RTCAlarmDay.Get(alarm)),
			pad2(samd21.RTCAlarmHour.Get(alarm)),
			pad2(samd21.RTCAlarmMinute.Get(alarm)),
			pad2(samd21.RTCAlarmSecond.Get(alarm)))))
		p.emit(newLine("MASK").add(samd21.RTCMaskSels.Label(samd21.RTCMaskSel.Get(p.r8(samd21.RTCMask0)))))
	}
	return p.err
}
