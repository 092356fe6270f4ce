package samd21

// PAC register offsets.
const (
	PACWPClr = 0x00
	PACWPSet = 0x04
)

// PACBases lists the three protection controllers.
var PACBases = [3]uint32{PAC0Base, PAC1Base, PAC2Base}

// PACBits names the peripheral guarded by each WPSET bit, per PAC.
// Empty entries are unused bits.
var PACBits = [3][]string{
	{"", "PM", "SYSCTRL", "GCLK", "WDT", "RTC", "EIC"},
	{"", "DSU", "NVMCTRL", "PORT", "DMAC", "USB", "MTB"},
	{"", "EVSYS", "SERCOM0", "SERCOM1", "SERCOM2", "SERCOM3", "SERCOM4", "SERCOM5",
		"TCC0", "TCC1", "TCC2", "TC3", "TC4", "TC5", "TC6", "TC7",
		"ADC", "AC", "DAC", "PTC", "I2S", "AC1"},
}
