package report

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/OpenTraceLab/zeroregs/pkg/idcode/deviceinfo"
	"github.com/OpenTraceLab/zeroregs/pkg/regs"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

// PrintDSU prints the device identification and the unique serial number.
func PrintDSU(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("DSU")

	did := p.r32(samd21.DSUDID)
	info := deviceinfo.Lookup(did)
	id := info.ID
	p.emit(newLine("DID").add(hex(did)).
		kv("processor", id.ProcessorName()).
		kv("family", id.Family).
		kv("series", id.Series).
		kv("die", id.Die).
		kv("revision", id.RevisionLetter()).
		kv("devsel", fmt.Sprintf("0x%02X", id.DevSel)))

	if info.Known {
		p.emit(newLine("device").add(info.Name).
			kv("flash", fmt.Sprintf("%dKB", info.FlashKB)).
			kv("sram", fmt.Sprintf("%dKB", info.SRAMKB)).
			kv("pins", info.Pins))
	} else if p.err == nil {
		glog.Warningf("dsu: %s", info.Description)
		p.emit(newLine("device").add("unknown"))
	}

	statusb := p.r8(samd21.DSUStatusB)
	p.emit(newLine("STATUSB").
		flag(statusb&samd21.DSUStatusBProt != 0, "PROT").
		flag(statusb&samd21.DSUStatusBDbgP != 0, "DBGPRES"))

	l := newLine("serial")
	for _, addr := range samd21.SerialNumberAddrs {
		l.add(hex(p.readAbs(addr, 4)))
	}
	p.emit(l)
	return p.err
}

// PrintNVMCTRL prints the flash controller configuration and the user row
// fuses.
func PrintNVMCTRL(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("NVMCTRL")

	ctrlb := p.r32(samd21.NVMCTRLCtrlB)
	p.emit(newLine("CTRLB").
		kv("RWS", samd21.NVMCTRLCtrlBRWS.Get(ctrlb)).
		bit(ctrlb, samd21.NVMCTRLCtrlBManW, "MANW").
		kv("sleepprm", samd21.NVMCTRLSleepPrm.Label(samd21.NVMCTRLCtrlBSleepPrm.Get(ctrlb))).
		kv("readmode", samd21.NVMCTRLReadModes.Label(samd21.NVMCTRLCtrlBReadMode.Get(ctrlb))).
		bit(ctrlb, samd21.NVMCTRLCtrlBCacheDis, "CACHEDIS"))

	param := p.r32(samd21.NVMCTRLParam)
	p.emit(newLine("PARAM").
		kv("NVMP", samd21.NVMCTRLParamNVMP.Get(param)).
		kv("psz", scale(3+samd21.NVMCTRLParamPSZ.Get(param))))

	p.emit(newLine("LOCK").add(binary(p.r16(samd21.NVMCTRLLock))))

	w0 := p.readAbs(samd21.UserRowAddr, 4)
	w1 := p.readAbs(samd21.UserRowWord1, 4)
	p.emit(newLine("user row").
		kv("bootprot", samd21.FuseBootProtSizes.Label(samd21.FuseBootProt.Get(w0))).
		kv("eeprom_size", samd21.FuseEEPROMSizes.Label(samd21.FuseEEPROMSize.Get(w0))).
		kv("bod33_level", hex(samd21.FuseBOD33Level.Get(w0))).
		kv("region_locks", binary(samd21.FuseRegionLocks.Get(w1))))
	return p.err
}

// PrintPAC prints the write-protected peripherals of PAC0, PAC1 and PAC2.
func PrintPAC(ctx context.Context, opts *Options, bus regs.Bus) error {
	p := newPrinter(ctx, opts, regs.Block{Bus: bus, Base: samd21.PAC0Base})
	p.header("PAC")

	for i, base := range samd21.PACBases {
		wpset := p.readAbs(base+samd21.PACWPSet, 4)
		if wpset == 0 && !opts.ShowDisabled {
			continue
		}
		l := newLine(fmt.Sprintf("PAC%d", i))
		names := samd21.PACBits[i]
		for bit := 0; bit < 32; bit++ {
			if wpset&(1<<bit) == 0 {
				continue
			}
			if bit < len(names) && names[bit] != "" {
				l.add(names[bit])
			} else {
				l.addf("%d?", bit)
			}
		}
		p.emit(l)
	}
	return p.err
}

// PrintPM prints sleep mode, clock dividers, clock masks and the last
// reset cause.
func PrintPM(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("PM")

	sleep := p.r8(samd21.PMSleep)
	p.emit(newLine("SLEEP").kv("idle", samd21.PMIdleLevels.Label(samd21.PMSleepIdle.Get(sleep))))

	for _, d := range []struct {
		label string
		off   uint32
	}{
		{"CPUSEL", samd21.PMCPUSel},
		{"APBASEL", samd21.PMAPBASel},
		{"APBBSEL", samd21.PMAPBBSel},
		{"APBCSEL", samd21.PMAPBCSel},
	} {
		p.emit(newLine(d.label).add("/" + scale(samd21.PMDiv.Get(p.r8(d.off)))))
	}

	for _, m := range []struct {
		label string
		off   uint32
		flags []regs.Flag
	}{
		{"AHBMASK", samd21.PMAHBMask, samd21.PMAHBClocks},
		{"APBAMASK", samd21.PMAPBAMask, samd21.PMAPBAClocks},
		{"APBBMASK", samd21.PMAPBBMask, samd21.PMAPBBClocks},
		{"APBCMASK", samd21.PMAPBCMask, samd21.PMAPBCClocks},
	} {
		p.emit(newLine(m.label).flags(p.r32(m.off), m.flags))
	}

	p.emit(newLine("RCAUSE").flags(p.r8(samd21.PMRCause), samd21.PMResetCauses))
	return p.err
}

// PrintSBMATRIX prints the bus matrix slave priorities and special function
// registers.
func PrintSBMATRIX(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.header("SBMATRIX")

	for i := uint32(0); i < samd21.SBMATRIXNumSlaves; i++ {
		pras := p.r32(samd21.SBMATRIXPRAS0 + 8*i)
		prbs := p.r32(samd21.SBMATRIXPRBS0 + 8*i)
		p.emit(newLine("PRS " + hex(i)).add(binary(pras)).add(binary(prbs)))
	}
	for i := uint32(0); i < samd21.SBMATRIXNumSFR; i++ {
		p.emit(newLine("SFR " + hex(i)).add(binary(p.r32(samd21.SBMATRIXSFR0 + 4*i))))
	}
	return p.err
}

// PrintWDT prints the watchdog configuration and its user row fuses.
func PrintWDT(ctx context.Context, opts *Options, blk regs.Block) error {
	p := newPrinter(ctx, opts, blk)
	p.wait(samd21.WDTSyncBusy)

	ctrl := p.r8(samd21.WDTCtrl)
	if p.err != nil {
		return p.err
	}
	if !samd21.WDTCtrlEnable.IsSet(ctrl) && !samd21.WDTCtrlAlwaysOn.IsSet(ctrl) {
		p.disabled("WDT")
		return p.err
	}
	p.header("WDT")

	p.emit(newLine("CTRL").
		bit(ctrl, samd21.WDTCtrlWEN, "WEN").
		bit(ctrl, samd21.WDTCtrlAlwaysOn, "ALWAYSON"))

	config := p.r8(samd21.WDTConfig)
	p.emit(newLine("CONFIG").
		kv("per", scale(3+samd21.WDTConfigPer.Get(config))).
		kv("window", scale(3+samd21.WDTConfigWindow.Get(config))))

	ewctrl := p.r8(samd21.WDTEWCtrl)
	p.emit(newLine("EWCTRL").kv("ewoffset", scale(3+samd21.WDTEWCtrlEWOffset.Get(ewctrl))))

	w0 := p.readAbs(samd21.UserRowAddr, 4)
	w1 := p.readAbs(samd21.UserRowWord1, 4)
	window := samd21.FuseWDTWindow0.Get(w0) | samd21.FuseWDTWindow1.Get(w1)<<1
	p.emit(newLine("NVM user row").
		kv("ENABLE", samd21.FuseWDTEnable.Get(w0)).
		kv("ALWAYSON", samd21.FuseWDTAlwaysOn.Get(w0)).
		kv("per", scale(3+samd21.FuseWDTPer.Get(w0))).
		kv("window", scale(3+window)).
		kv("ewoffset", scale(3+samd21.FuseWDTEWOffset.Get(w1))).
		kv("WEN", samd21.FuseWDTWEN.Get(w1)))
	return p.err
}
