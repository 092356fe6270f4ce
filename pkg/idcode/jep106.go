package idcode

import "fmt"

// designers lists the JEP106 codes that show up in the DPIDR of SWD
// debug ports: ARM for its own DP implementations, plus the silicon
// vendors that ship custom ones. Codes carry the continuation count in
// bits [10:7] as they appear in DPIDR.DESIGNER.
var designers = map[uint16]Manufacturer{
	0x015: {Code: 0x015, Name: "NXP (Philips)", Abbreviation: "NXP"},
	0x017: {Code: 0x017, Name: "Texas Instruments", Abbreviation: "TI"},
	0x01F: {Code: 0x01F, Name: "Atmel", Abbreviation: "Atmel"},
	0x020: {Code: 0x020, Name: "STMicroelectronics", Abbreviation: "STM"},
	0x029: {Code: 0x029, Name: "Microchip Technology", Abbreviation: "Microchip"},
	0x23B: {Code: 0x23B, Name: "ARM Ltd", Abbreviation: "ARM"},
	0x244: {Code: 0x244, Name: "Nordic Semiconductor", Abbreviation: "Nordic"},
	0x493: {Code: 0x493, Name: "Raspberry Pi", Abbreviation: "RPi"},
}

// LookupManufacturer returns the designer behind a DPIDR JEP106 code.
// Codes outside the table come back named "Unknown (0xNNN)".
func LookupManufacturer(code uint16) (Manufacturer, bool) {
	m, ok := designers[code]
	if !ok {
		return Manufacturer{
			Code:         code,
			Name:         fmt.Sprintf("Unknown (0x%03X)", code),
			Abbreviation: "Unknown",
		}, false
	}
	return m, true
}
