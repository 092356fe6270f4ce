package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// Banks returns every banked register of the chip.
func Banks() []*regs.Bank {
	return []*regs.Bank{
		GCLKClkCtrlBank,
		GCLKGenCtrlBank,
		GCLKGenDivBank,
		EVSYSChannelBank,
		EVSYSUserBank,
		DMACChannelBank,
	}
}

// BankBySelect returns the bank whose selector lives at addr.
func BankBySelect(addr uint32) (*regs.Bank, bool) {
	for _, b := range Banks() {
		if b.Select == addr {
			return b, true
		}
	}
	return nil, false
}

// Region is a run of 32-bit words that is safe to read in one sweep:
// it contains no registers whose read has side effects (data FIFOs,
// result registers).
type Region struct {
	Name  string
	Addr  uint32
	Words int
}

// CaptureRegions returns the register regions of every peripheral in caps,
// plus the NVM user row and serial number.
func CaptureRegions(caps Set) []Region {
	var out []Region
	add := func(p Peripheral, rs ...Region) {
		if caps.Has(p) {
			out = append(out, rs...)
		}
	}

	add(DSU, Region{"DSU", DSUBase, 7})
	add(AC, Region{"AC", ACBase, 9})
	add(ADC, Region{"ADC", ADCBase, 6})
	add(DAC, Region{"DAC", DACBase, 3})
	add(DMAC, Region{"DMAC", DMACBase, 16})
	add(EIC, Region{"EIC", EICBase, 8})
	add(EVSYS, Region{"EVSYS", EVSYSBase, 4})
	add(GCLK, Region{"GCLK", GCLKBase, 3})
	add(I2S, Region{"I2S", I2SBase, 10})
	add(NVMCTRL,
		Region{"NVMCTRL", NVMCTRLBase, 9},
		Region{"USERROW", UserRowAddr, 2},
	)
	add(PAC,
		Region{"PAC0", PAC0Base, 2},
		Region{"PAC1", PAC1Base, 2},
		Region{"PAC2", PAC2Base, 2},
	)
	add(PM, Region{"PM", PMBase, 15})
	add(PORT,
		Region{"PORT.A", PORTBase, 24},
		Region{"PORT.B", PORTBase + PORTGroupSize, 24},
	)
	add(RTC, Region{"RTC", RTCBase, 8})
	add(SBMATRIX,
		Region{"SBMATRIX.PRS", SBMATRIXBase + SBMATRIXPRAS0, 2 * SBMATRIXNumSlaves},
		Region{"SBMATRIX.SFR", SBMATRIXBase + SBMATRIXSFR0, SBMATRIXNumSFR},
	)
	for i, p := range []Peripheral{SERCOM0, SERCOM1, SERCOM2, SERCOM3, SERCOM4, SERCOM5} {
		add(p,
			Region{string(p), SERCOMBase(i), 8},
			Region{string(p) + ".ADDR", SERCOMBase(i) + SERCOMAddr, 1},
		)
	}
	add(SYSCTRL, Region{"SYSCTRL", SYSCTRLBase, 21})
	for i, p := range []Peripheral{TCC0, TCC1, TCC2} {
		add(p, Region{string(p), TCCBase(i), 21})
	}
	for i, p := range []Peripheral{TC3, TC4, TC5, TC6, TC7} {
		add(p, Region{string(p), TCBase(i + 3), 8})
	}
	add(USB, Region{"USB", USBBase, 11})
	add(WDT, Region{"WDT", WDTBase, 2})

	if caps.Has(DSU) {
		out = append(out,
			Region{"SERIAL0", SerialNumberAddrs[0], 1},
			Region{"SERIAL1", SerialNumberAddrs[1], 3},
		)
	}
	return out
}

// CaptureBanks returns the banks belonging to peripherals in caps.
func CaptureBanks(caps Set) []*regs.Bank {
	var out []*regs.Bank
	if caps.Has(GCLK) {
		out = append(out, GCLKClkCtrlBank, GCLKGenCtrlBank, GCLKGenDivBank)
	}
	if caps.Has(EVSYS) {
		out = append(out, EVSYSChannelBank, EVSYSUserBank)
	}
	if caps.Has(DMAC) {
		out = append(out, DMACChannelBank)
	}
	return out
}
