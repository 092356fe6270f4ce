package deviceinfo

import "github.com/OpenTraceLab/zeroregs/pkg/idcode"

// DeviceInfo contains rich information about a SAM D21 part
type DeviceInfo struct {
	// Key fields
	ID    idcode.DeviceID
	Known bool

	// Human-friendly
	Name        string // "ATSAMD21G18A"
	Family      string // "SAMD21"
	Description string // "ARM Cortex-M0+ MCU, 256KB flash, 32KB SRAM"
	Package     string // "48-pin", if known

	// Memory sizes
	FlashKB int
	SRAMKB  int
	Pins    int
}
