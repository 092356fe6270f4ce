package samd21

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/zeroregs/pkg/regs"
)

// PORT register offsets within one group; groups are 0x80 apart.
const (
	PORTGroupSize = 0x80
	PORTDir       = 0x00
	PORTOut       = 0x10
	PORTIn        = 0x20
	PORTCtrl      = 0x24
	PORTPMux      = 0x30 // 16 bytes, two pins per byte
	PORTPinCfg    = 0x40 // 32 bytes, one per pin
)

// PINCFG fields.
var (
	PORTPinCfgPMuxEn = regs.Bit(0)
	PORTPinCfgInEn   = regs.Bit(1)
	PORTPinCfgPullEn = regs.Bit(2)
	PORTPinCfgDrvStr = regs.Bit(6)
)

// MuxCategories is the generic name of each peripheral function letter,
// used when a pin's function table has no entry for a selector.
var MuxCategories = [8]string{
	"EIC",        // A
	"REF",        // B
	"SERCOM",     // C
	"SERCOM-ALT", // D
	"TC/TCC",     // E
	"TCC",        // F
	"COM",        // G
	"AC/GCLK",    // H
}

// Pin describes one board pin and its peripheral function table.
// An empty Funcs entry means the function exists but is not enumerated.
type Pin struct {
	Name  string
	Group int // 0 = PA, 1 = PB
	Index int
	Funcs [8]string
}

// Port returns the pin's port name, e.g. "PA11".
func (p Pin) Port() string {
	return fmt.Sprintf("P%c%02d", 'A'+p.Group, p.Index)
}

// Function returns the function routed by a PMUX selector. Selectors
// beyond H are reserved encodings of the 4-bit field.
func (p Pin) Function(sel uint32) string {
	if sel >= uint32(len(p.Funcs)) {
		return fmt.Sprintf("reserved(0x%X)", sel)
	}
	if f := p.Funcs[sel]; f != "" {
		return f
	}
	return MuxCategories[sel]
}

// MuxLetter returns the datasheet letter for a selector.
func MuxLetter(sel uint32) string {
	if sel < 8 {
		return string(rune('A' + sel))
	}
	return "?"
}

// ParsePort parses "PA11"/"PB03" into group and index.
func ParsePort(s string) (group, index int, err error) {
	s = strings.ToUpper(s)
	if len(s) < 3 || s[0] != 'P' || s[1] < 'A' || s[1] > 'B' {
		return 0, 0, fmt.Errorf("samd21: invalid port %q", s)
	}
	n, err := strconv.Atoi(s[2:])
	if err != nil || n < 0 || n > 31 {
		return 0, 0, fmt.Errorf("samd21: invalid port %q", s)
	}
	return int(s[1] - 'A'), n, nil
}

// ArduinoZeroPins is the pin table of the Arduino Zero board.
var ArduinoZeroPins = []Pin{
	{Name: "D0/RX", Group: 0, Index: 11, Funcs: [8]string{"EIC:11", "AIN19/X3", "SERCOM0:3", "SERCOM2:3", "TCC1:1", "TCC0:3", "I2S:FS0", "GCLK:5"}},
	{Name: "D1/TX", Group: 0, Index: 10, Funcs: [8]string{"EIC:10", "AIN18/X2", "SERCOM0:2", "SERCOM2:2", "TCC1:0", "TCC0:2", "I2S:SCK0", "GCLK:4"}},
	{Name: "D2", Group: 0, Index: 14, Funcs: [8]string{"EIC:14", "", "SERCOM2:2", "SERCOM4:2", "TC3:0", "TCC0:4", "", "GCLK:0"}},
	{Name: "D3", Group: 0, Index: 9, Funcs: [8]string{"EIC:9", "AIN17/X1", "SERCOM0:1", "SERCOM2:1", "TCC0:1", "TCC1:3", "I2S:MCK0", ""}},
	{Name: "D4", Group: 0, Index: 8, Funcs: [8]string{"EIC:NMI", "AIN16/X0", "SERCOM0:0", "SERCOM2:0", "TCC0:0", "TCC1:2", "I2S:SD1", ""}},
	{Name: "D5", Group: 0, Index: 15, Funcs: [8]string{"EIC:15", "", "SERCOM2:3", "SERCOM4:3", "TC3:1", "TCC0:5", "", "GCLK:1"}},
	{Name: "D6", Group: 0, Index: 20, Funcs: [8]string{"EIC:4", "X8", "SERCOM5:2", "SERCOM3:2", "TC7:0", "TCC0:6", "I2S:SCK0", "GCLK:4"}},
	{Name: "D7", Group: 0, Index: 21, Funcs: [8]string{"EIC:5", "X9", "SERCOM5:3", "SERCOM3:3", "TC7:1", "TCC0:7", "I2S:FS0", "GCLK:5"}},
	{Name: "D8", Group: 0, Index: 6, Funcs: [8]string{"EIC:6", "AIN6/AIN2/Y4", "", "SERCOM0:2", "TCC1:0", "", "", ""}},
	{Name: "D9", Group: 0, Index: 7, Funcs: [8]string{"EIC:7", "AIN7/AIN3/Y5", "", "SERCOM0:3", "TCC1:1", "", "I2S:SD0", ""}},
	{Name: "D10", Group: 0, Index: 18, Funcs: [8]string{"EIC:2", "X6", "SERCOM1:2", "SERCOM3:2", "TC3:0", "TCC0:2", "", "AC:0"}},
	{Name: "D11", Group: 0, Index: 16, Funcs: [8]string{"EIC:0", "X4", "SERCOM1:0", "SERCOM3:0", "TCC2:0", "TCC0:6", "", "GCLK:2"}},
	{Name: "D12", Group: 0, Index: 19, Funcs: [8]string{"EIC:3", "X7", "SERCOM1:3", "SERCOM3:3", "TC3:1", "TCC0:3", "I2S:SD0", "AC:1"}},
	{Name: "D13", Group: 0, Index: 17, Funcs: [8]string{"EIC:1", "X5", "SERCOM1:1", "SERCOM3:1", "TCC1:1", "TCC0:7", "", "GCLK:3"}},
	{Name: "A0", Group: 0, Index: 2, Funcs: [8]string{"EIC:2", "AIN0/Y0/VOUT", "", "", "", "", "", ""}},
	{Name: "A1", Group: 1, Index: 8, Funcs: [8]string{"EIC:8", "AIN2/Y14", "", "SERCOM4:0", "TC4:0", "", "", ""}},
	{Name: "A2", Group: 1, Index: 9, Funcs: [8]string{"EIC:9", "AIN3/Y15", "", "SERCOM4:1", "TC4:1", "", "", ""}},
	{Name: "A3", Group: 0, Index: 4, Funcs: [8]string{"EIC:4", "ADC:VREFB/AIN4/AIN0/Y2", "", "SERCOM0:0", "TCC0:0", "", "", ""}},
	{Name: "A4", Group: 0, Index: 5, Funcs: [8]string{"EIC:5", "AIN5/AIN1/Y3", "", "SERCOM0:1", "TCC0:1", "", "", ""}},
	{Name: "A5", Group: 1, Index: 2, Funcs: [8]string{"EIC:2", "AIN10/Y8", "", "SERCOM5:0", "TC6:0", "", "", ""}},
	{Name: "SDA", Group: 0, Index: 22, Funcs: [8]string{"EIC:6", "X10", "SERCOM3:0", "SERCOM5:0", "TC4:0", "TCC0:4", "", "GCLK:6"}},
	{Name: "SCL", Group: 0, Index: 23, Funcs: [8]string{"EIC:7", "X11", "SERCOM3:1", "SERCOM5:1", "TC4:1", "TCC0:5", "USB:SOF", "GCLK:7"}},
	{Name: "SPI_MISO", Group: 0, Index: 12, Funcs: [8]string{"EIC:12", "", "SERCOM2:0", "SERCOM4:0", "TCC2:0", "TCC0:6", "", "AC:0"}},
	{Name: "SPI_MOSI", Group: 1, Index: 10, Funcs: [8]string{"EIC:10", "", "", "SERCOM4:2", "TC5:0", "TCC0:4", "I2S:MCK1", "GCLK:4"}},
	{Name: "SPI_SCK", Group: 1, Index: 11, Funcs: [8]string{"EIC:11", "", "", "SERCOM4:3", "TC5:1", "TCC0:5", "I2S:SCK1", "GCLK:5"}},
	{Name: "LED_RX", Group: 1, Index: 3, Funcs: [8]string{"EIC:3", "AIN11/Y9", "", "SERCOM5:1", "TC6:1", "", "", ""}},
	{Name: "LED_TX", Group: 0, Index: 27, Funcs: [8]string{"EIC:15", "", "", "", "", "", "", "GCLK:0"}},
	{Name: "USB_HOST_EN", Group: 0, Index: 28, Funcs: [8]string{"EIC:8", "", "", "", "", "", "", "GCLK:0"}},
	{Name: "USB_DM", Group: 0, Index: 24, Funcs: [8]string{"EIC:12", "", "SERCOM3:2", "SERCOM5:2", "TC5:0", "TCC1:2", "USB:DM", ""}},
	{Name: "USB_DP", Group: 0, Index: 25, Funcs: [8]string{"EIC:13", "", "SERCOM3:3", "SERCOM5:3", "TC5:1", "TCC1:3", "USB:DP", ""}},
	{Name: "EDBG_TX", Group: 1, Index: 22, Funcs: [8]string{"EIC:6", "", "", "SERCOM5:2", "TC7:0", "", "", "GCLK:0"}},
	{Name: "EDBG_RX", Group: 1, Index: 23, Funcs: [8]string{"EIC:7", "", "", "SERCOM5:3", "TC7:1", "", "", "GCLK:1"}},
	{Name: "EDBG_SDA", Group: 0, Index: 22, Funcs: [8]string{"EIC:6", "X10", "SERCOM3:0", "SERCOM5:0", "TC4:0", "TCC0:4", "", "GCLK:6"}},
	{Name: "EDBG_SCL", Group: 0, Index: 23, Funcs: [8]string{"EIC:7", "X11", "SERCOM3:1", "SERCOM5:1", "TC4:1", "TCC0:5", "USB:SOF", "GCLK:7"}},
	{Name: "EDBG_MISO", Group: 0, Index: 19, Funcs: [8]string{"EIC:3", "X7", "SERCOM1:3", "SERCOM3:3", "TC3:1", "TCC0:3", "I2S:SD0", "AC:1"}},
	{Name: "EDBG_MOSI", Group: 0, Index: 16, Funcs: [8]string{"EIC:0", "X4", "SERCOM1:0", "SERCOM3:0", "TCC2:0", "TCC0:6", "", "GCLK:2"}},
	{Name: "EDBG_SS", Group: 0, Index: 18, Funcs: [8]string{"EIC:2", "X6", "SERCOM1:2", "SERCOM3:2", "TC3:0", "TCC0:2", "", "AC:0"}},
	{Name: "EDBG_SCK", Group: 0, Index: 17, Funcs: [8]string{"EIC:1", "X5", "SERCOM1:1", "SERCOM3:1", "TCC1:1", "TCC0:7", "", "GCLK:3"}},
	{Name: "EDBG_GPIO0", Group: 0, Index: 13, Funcs: [8]string{"EIC:13", "", "SERCOM2:1", "SERCOM4:1", "TCC2:1", "TCC0:7", "", "AC:7"}},
	{Name: "EDBG_GPIO1", Group: 0, Index: 21, Funcs: [8]string{"EIC:5", "X9", "SERCOM5:3", "SERCOM3:3", "TC7:1", "TCC0:7", "I2S:FS0", "GCLK:5"}},
	{Name: "EDBG_GPIO2", Group: 0, Index: 6, Funcs: [8]string{"EIC:6", "AIN6/AIN2/Y4", "", "SERCOM0:2", "TCC1:0", "", "", ""}},
	{Name: "EDBG_GPIO3", Group: 0, Index: 7, Funcs: [8]string{"EIC:7", "AIN7/AIN3/Y5", "", "SERCOM0:3", "TCC1:1", "", "I2S:SD0", ""}},
	{Name: "AREF", Group: 0, Index: 3, Funcs: [8]string{"EIC:3", "ADC:VREFA/DAC:VREFA/AIN1/Y1", "", "", "", "", "", ""}},
}
