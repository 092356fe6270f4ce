package deviceinfo

import "fmt"

// SAM D21 device entries, keyed by DID.SERIES and DID.DEVSEL
func init() {
	const samd21 = 0x01 // DID.SERIES for SAM D21

	parts := []struct {
		devsel uint8
		name   string
	}{
		{0x00, "ATSAMD21J18A"},
		{0x01, "ATSAMD21J17A"},
		{0x02, "ATSAMD21J16A"},
		{0x03, "ATSAMD21J15A"},
		{0x05, "ATSAMD21G18A"},
		{0x06, "ATSAMD21G17A"},
		{0x07, "ATSAMD21G16A"},
		{0x08, "ATSAMD21G15A"},
		{0x0A, "ATSAMD21E18A"},
		{0x0B, "ATSAMD21E17A"},
		{0x0C, "ATSAMD21E16A"},
		{0x0D, "ATSAMD21E15A"},
		{0x0F, "ATSAMD21G18AU"},
		{0x10, "ATSAMD21G17AU"},
		{0x20, "ATSAMD21J16B"},
		{0x21, "ATSAMD21J15B"},
		{0x23, "ATSAMD21G16B"},
		{0x24, "ATSAMD21G15B"},
		{0x26, "ATSAMD21E16B"},
		{0x27, "ATSAMD21E15B"},
	}

	for _, p := range parts {
		flash, sram := memorySizes(p.name[9:11])
		pins := pinCount(p.name[8])
		register(key{Series: samd21, DevSel: p.devsel}, DeviceInfo{
			Name:        p.name,
			Family:      "SAMD21",
			Description: fmt.Sprintf("ARM Cortex-M0+ MCU, %dKB flash, %dKB SRAM", flash, sram),
			Package:     fmt.Sprintf("%d-pin", pins),
			FlashKB:     flash,
			SRAMKB:      sram,
			Pins:        pins,
		})
	}
}

func memorySizes(density string) (flashKB, sramKB int) {
	switch density {
	case "18":
		return 256, 32
	case "17":
		return 128, 16
	case "16":
		return 64, 8
	case "15":
		return 32, 4
	}
	return 0, 0
}

func pinCount(letter byte) int {
	switch letter {
	case 'E':
		return 32
	case 'G':
		return 48
	case 'J':
		return 64
	}
	return 0
}
