package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// ScenarioBuilder assembles a simulated register file for tests and for the
// "sim" backend. Every banked register of the chip is pre-registered.
type ScenarioBuilder struct {
	bus *regs.MemBus
	err error
}

// NewScenarioBuilder returns a builder over an empty register file.
func NewScenarioBuilder() *ScenarioBuilder {
	bus := regs.NewMemBus()
	for _, b := range Banks() {
		bus.AddBank(b, nil)
	}
	return &ScenarioBuilder{bus: bus}
}

// Reg8 stores a byte register.
func (sb *ScenarioBuilder) Reg8(addr uint32, v uint8) *ScenarioBuilder {
	sb.bus.Poke8(addr, v)
	return sb
}

// Reg16 stores a halfword register.
func (sb *ScenarioBuilder) Reg16(addr uint32, v uint16) *ScenarioBuilder {
	sb.bus.Poke16(addr, v)
	return sb
}

// Reg32 stores a word register.
func (sb *ScenarioBuilder) Reg32(addr uint32, v uint32) *ScenarioBuilder {
	sb.bus.Poke32(addr, v)
	return sb
}

func (sb *ScenarioBuilder) slot(b *regs.Bank, id uint8, data uint32, v uint32) {
	if sb.err != nil {
		return
	}
	sb.err = sb.bus.SetSlot(b, id, data, v)
}

// Clock routes generic clock id from generator gen and enables it.
func (sb *ScenarioBuilder) Clock(id, gen uint8) *ScenarioBuilder {
	v := GCLKClkCtrlID.Set(0, uint32(id))
	v = GCLKClkCtrlGen.Set(v, uint32(gen))
	v = GCLKClkCtrlClkEn.Set(v, 1)
	sb.slot(GCLKClkCtrlBank, id, GCLKClkCtrlBank.Data[0].Addr, v)
	return sb
}

// Generator enables generator id with source src, divider div and the
// given extra GENCTRL bits (IDC, OE, DIVSEL, ...).
func (sb *ScenarioBuilder) Generator(id, src uint8, div uint16, extra uint32) *ScenarioBuilder {
	v := GCLKGenCtrlID.Set(0, uint32(id))
	v = GCLKGenCtrlSrc.Set(v, uint32(src))
	v = GCLKGenCtrlGenEn.Set(v, 1) | extra
	sb.slot(GCLKGenCtrlBank, id, GCLKGenCtrlBank.Data[0].Addr, v)

	d := GCLKGenDivID.Set(0, uint32(id))
	d = GCLKGenDivDiv.Set(d, uint32(div))
	sb.slot(GCLKGenDivBank, id, GCLKGenDivBank.Data[0].Addr, d)
	return sb
}

// EventChannel configures event channel ch.
func (sb *ScenarioBuilder) EventChannel(ch, evgen, path, edge uint8) *ScenarioBuilder {
	v := EVSYSChannelChannel.Set(0, uint32(ch))
	v = EVSYSChannelEvGen.Set(v, uint32(evgen))
	v = EVSYSChannelPath.Set(v, uint32(path))
	v = EVSYSChannelEdgSel.Set(v, uint32(edge))
	sb.slot(EVSYSChannelBank, ch, EVSYSChannelBank.Data[0].Addr, v)
	return sb
}

// EventUser binds event user to channel ch (0-based).
func (sb *ScenarioBuilder) EventUser(user, ch uint8) *ScenarioBuilder {
	v := EVSYSUserUser.Set(0, uint32(user))
	v = EVSYSUserChannel.Set(v, uint32(ch)+1)
	sb.slot(EVSYSUserBank, user, EVSYSUserBank.Data[0].Addr, v)
	return sb
}

// DMAChannel configures DMA channel ch.
func (sb *ScenarioBuilder) DMAChannel(ch uint8, enabled bool, trigsrc, trigact, lvl uint8) *ScenarioBuilder {
	var a uint32
	if enabled {
		a = DMACChCtrlAEnable.Set(0, 1)
	}
	b := DMACChCtrlBTrig.Set(0, uint32(trigsrc))
	b = DMACChCtrlBAct.Set(b, uint32(trigact))
	b = DMACChCtrlBLvl.Set(b, uint32(lvl))
	sb.slot(DMACChannelBank, ch, DMACBase+DMACChCtrlA, a)
	sb.slot(DMACChannelBank, ch, DMACBase+DMACChCtrlB, b)
	return sb
}

// PinMux hands pin (group, index) to peripheral function sel.
func (sb *ScenarioBuilder) PinMux(group, index int, sel uint8) *ScenarioBuilder {
	base := PORTBase + uint32(group)*PORTGroupSize
	pmux := base + PORTPMux + uint32(index/2)
	cur := sb.bus.Peek32(pmux&^3) >> (8 * (pmux & 3)) & 0xFF
	if index%2 == 0 {
		cur = (cur &^ 0x0F) | uint32(sel&0xF)
	} else {
		cur = (cur &^ 0xF0) | uint32(sel&0xF)<<4
	}
	sb.bus.Poke8(pmux, uint8(cur))
	sb.bus.Poke8(base+PORTPinCfg+uint32(index), uint8(PORTPinCfgPMuxEn.Set(0, 1)))
	return sb
}

// PinGPIO configures pin (group, index) as plain I/O. For inputs, out
// selects the pull direction when pull is set.
func (sb *ScenarioBuilder) PinGPIO(group, index int, output, out, inen, pull bool) *ScenarioBuilder {
	base := PORTBase + uint32(group)*PORTGroupSize
	bit := uint32(1) << uint(index)
	set := func(off uint32, on bool) {
		v := sb.bus.Peek32(base + off)
		if on {
			v |= bit
		} else {
			v &^= bit
		}
		sb.bus.Poke32(base+off, v)
	}
	set(PORTDir, output)
	set(PORTOut, out)

	var cfg uint32
	if inen {
		cfg = PORTPinCfgInEn.Set(cfg, 1)
	}
	if pull {
		cfg = PORTPinCfgPullEn.Set(cfg, 1)
	}
	sb.bus.Poke8(base+PORTPinCfg+uint32(index), uint8(cfg))
	return sb
}

// Build returns the assembled register file, or the first error met while
// filling banked slots.
func (sb *ScenarioBuilder) Build() (*regs.MemBus, error) {
	if sb.err != nil {
		return nil, sb.err
	}
	return sb.bus, nil
}

// Predefined scenarios

// ArduinoZeroBooted models an Arduino Zero shortly after the core library's
// init(): 48 MHz DFLL on generator 0 locked to the 32 kHz crystal,
// Serial on SERCOM5, Wire on SERCOM3, SPI on SERCOM4, USB device attached.
func ArduinoZeroBooted() (*regs.MemBus, error) {
	sb := NewScenarioBuilder()

	// identity
	sb.Reg32(DSUBase+DSUDID, 0x10010305)
	sb.Reg32(SerialNumberAddrs[0], 0x7A3C1F52)
	sb.Reg32(SerialNumberAddrs[1], 0x50503135)
	sb.Reg32(SerialNumberAddrs[2], 0x382E3120)
	sb.Reg32(SerialNumberAddrs[3], 0xFF0C1D2A)

	// flash: one wait state, 4096 pages of 64 bytes, fuses as shipped
	sb.Reg32(NVMCTRLBase+NVMCTRLCtrlB, 0x00000002)
	sb.Reg32(NVMCTRLBase+NVMCTRLParam, 0x00031000)
	sb.Reg16(NVMCTRLBase+NVMCTRLLock, 0xFFFF)
	sb.Reg32(UserRowAddr, 0xD8E0C7FA)
	sb.Reg32(UserRowWord1, 0xFFFFFC5D)

	// power manager
	sb.Reg32(PMBase+PMAHBMask, 0x0000007F)
	sb.Reg32(PMBase+PMAPBAMask, 0x0000007F)
	sb.Reg32(PMBase+PMAPBBMask, 0x0000007F)
	sb.Reg32(PMBase+PMAPBCMask, 0x00073FFC)
	sb.Reg8(PMBase+PMRCause, 0x01)

	// oscillators
	sb.Reg16(SYSCTRLBase+SYSCTRLXOSC, 0x0080)
	sb.Reg16(SYSCTRLBase+SYSCTRLXOSC32K, 0x060E)
	sb.Reg32(SYSCTRLBase+SYSCTRLOSC32K, 0x003F0080)
	sb.Reg8(SYSCTRLBase+SYSCTRLOSCULP32K, 0x1F)
	sb.Reg32(SYSCTRLBase+SYSCTRLOSC8M, 0x87070082)
	sb.Reg16(SYSCTRLBase+SYSCTRLDFLLCtrl, 0x0A06)
	sb.Reg32(SYSCTRLBase+SYSCTRLDFLLVal, 0x00007DFF)
	sb.Reg32(SYSCTRLBase+SYSCTRLDFLLMul, 0x1F3F05B8)
	sb.Reg32(SYSCTRLBase+SYSCTRLBOD33, 0x0027000E)
	sb.Reg32(SYSCTRLBase+SYSCTRLVRef, 0x01D80000)

	// generic clocks
	sb.Generator(0, 0x07, 0, GCLKGenCtrlIDC.Set(0, 1))
	sb.Generator(1, 0x05, 0, 0)
	sb.Generator(3, 0x06, 0, 0)
	sb.Clock(0x00, 1) // DFLL48M reference
	for _, id := range []uint8{0x05, 0x06, 0x14, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1E, 0x21} {
		sb.Clock(id, 0)
	}

	// PAC1 protects the DSU after reset
	sb.Reg32(PAC1Base+PACWPSet, 0x00000002)

	// pins: Serial (EDBG) on SERCOM5 pads 2/3, Serial1 on SERCOM0,
	// Wire on SERCOM3, SPI on SERCOM4, USB, LEDs
	sb.PinMux(1, 22, 3).PinMux(1, 23, 3)
	sb.PinMux(0, 10, 2).PinMux(0, 11, 2)
	sb.PinMux(0, 22, 2).PinMux(0, 23, 2)
	sb.PinMux(1, 10, 3).PinMux(1, 11, 3).PinMux(0, 12, 3)
	sb.PinMux(0, 24, 6).PinMux(0, 25, 6)
	sb.PinGPIO(0, 17, true, false, false, false)
	sb.PinGPIO(0, 27, true, true, false, false)
	sb.PinGPIO(1, 3, true, true, false, false)
	sb.PinGPIO(0, 2, false, false, true, false)
	sb.PinGPIO(0, 14, false, true, true, true)

	// SERCOM5: USART, internal clock, RX PAD3, TX PAD2, LSB first
	s5 := SERCOMBase(5)
	sb.Reg32(s5+SERCOMCtrlA, 0x40312006)
	sb.Reg32(s5+SERCOMCtrlB, 0x00030000)
	sb.Reg16(s5+SERCOMBaud, 0xFF2E)

	// SERCOM3: I2C host, 100 kHz
	s3 := SERCOMBase(3)
	sb.Reg32(s3+SERCOMCtrlA, 0x00000016)
	sb.Reg32(s3+SERCOMBaud, 0x000000E8)

	// SERCOM4: SPI host, DO PAD2, SCK PAD3, DI PAD0
	s4 := SERCOMBase(4)
	sb.Reg32(s4+SERCOMCtrlA, 0x0001000E)
	sb.Reg32(s4+SERCOMCtrlB, 0x00020000)
	sb.Reg8(s4+SERCOMBaud, 0x05)

	// ADC configured but idle, DAC referenced to AVCC
	sb.Reg8(ADCBase+ADCRefCtrl, 0x02)
	sb.Reg8(ADCBase+ADCSampCtrl, 0x3F)
	sb.Reg16(ADCBase+ADCCtrlB, 0x0720)
	sb.Reg32(ADCBase+ADCInputCtrl, 0x0F001800)
	sb.Reg8(DACBase+DACCtrlB, 0x41)

	// USB device, full speed, address 5
	sb.Reg8(USBBase+USBCtrlA, 0x02)
	sb.Reg8(USBBase+USBDAdd, 0x85)
	sb.Reg8(USBBase+USBStatus, 0x40)
	sb.Reg16(USBBase+USBPadCal, 0x3185)

	// WDT disabled with reset configuration
	sb.Reg8(WDTBase+WDTConfig, 0xBB)
	sb.Reg8(WDTBase+WDTEWCtrl, 0x0B)

	return sb.Build()
}
