package samd21

import (
	"fmt"
	"sort"
	"strings"
)

// Peripheral identifies one peripheral instance.
type Peripheral string

const (
	DSU      Peripheral = "DSU"
	AC       Peripheral = "AC"
	ADC      Peripheral = "ADC"
	DAC      Peripheral = "DAC"
	DMAC     Peripheral = "DMAC"
	EIC      Peripheral = "EIC"
	EVSYS    Peripheral = "EVSYS"
	GCLK     Peripheral = "GCLK"
	I2S      Peripheral = "I2S"
	NVMCTRL  Peripheral = "NVMCTRL"
	PAC      Peripheral = "PAC"
	PM       Peripheral = "PM"
	PORT     Peripheral = "PORT"
	RTC      Peripheral = "RTC"
	SBMATRIX Peripheral = "SBMATRIX"
	SERCOM0  Peripheral = "SERCOM0"
	SERCOM1  Peripheral = "SERCOM1"
	SERCOM2  Peripheral = "SERCOM2"
	SERCOM3  Peripheral = "SERCOM3"
	SERCOM4  Peripheral = "SERCOM4"
	SERCOM5  Peripheral = "SERCOM5"
	SYSCTRL  Peripheral = "SYSCTRL"
	TCC0     Peripheral = "TCC0"
	TCC1     Peripheral = "TCC1"
	TCC2     Peripheral = "TCC2"
	TC3      Peripheral = "TC3"
	TC4      Peripheral = "TC4"
	TC5      Peripheral = "TC5"
	TC6      Peripheral = "TC6"
	TC7      Peripheral = "TC7"
	USB      Peripheral = "USB"
	WDT      Peripheral = "WDT"
)

// Base addresses of the peripheral register blocks.
const (
	PAC0Base     uint32 = 0x40000000
	PMBase       uint32 = 0x40000400
	SYSCTRLBase  uint32 = 0x40000800
	GCLKBase     uint32 = 0x40000C00
	WDTBase      uint32 = 0x40001000
	RTCBase      uint32 = 0x40001400
	EICBase      uint32 = 0x40001800
	PAC1Base     uint32 = 0x41000000
	DSUBase      uint32 = 0x41002000
	NVMCTRLBase  uint32 = 0x41004000
	PORTBase     uint32 = 0x41004400
	DMACBase     uint32 = 0x41004800
	USBBase      uint32 = 0x41005000
	MTBBase      uint32 = 0x41006000
	SBMATRIXBase uint32 = 0x41007000
	PAC2Base     uint32 = 0x42000000
	EVSYSBase    uint32 = 0x42000400
	SERCOM0Base  uint32 = 0x42000800
	TCC0Base     uint32 = 0x42002000
	TC3Base      uint32 = 0x42002C00
	ADCBase      uint32 = 0x42004000
	ACBase       uint32 = 0x42004400
	DACBase      uint32 = 0x42004800
	PTCBase      uint32 = 0x42004C00
	I2SBase      uint32 = 0x42005000
)

// SERCOMBase returns the base address of SERCOMn.
func SERCOMBase(n int) uint32 {
	return SERCOM0Base + uint32(n)*0x400
}

// TCCBase returns the base address of TCCn.
func TCCBase(n int) uint32 {
	return TCC0Base + uint32(n)*0x400
}

// TCBase returns the base address of TCn (n = 3..7).
func TCBase(n int) uint32 {
	return TC3Base + uint32(n-3)*0x400
}

// Order is the fixed report order.
var Order = []Peripheral{
	DSU, AC, ADC, DAC, DMAC, EIC, EVSYS, GCLK, I2S, NVMCTRL, PAC, PM, PORT, RTC,
	SBMATRIX, SERCOM0, SERCOM1, SERCOM2, SERCOM3, SERCOM4, SERCOM5, SYSCTRL,
	TCC0, TCC1, TCC2, TC3, TC4, TC5, TC6, TC7, USB, WDT,
}

func orderIndex(p Peripheral) int {
	for i, o := range Order {
		if o == p {
			return i
		}
	}
	return len(Order)
}

// ParsePeripheral resolves a case-insensitive peripheral name.
func ParsePeripheral(name string) (Peripheral, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, p := range Order {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("samd21: unknown peripheral %q", name)
}

// Set is a capability set: the peripherals present on a target.
type Set map[Peripheral]bool

// NewSet builds a set from a list of peripherals.
func NewSet(ps ...Peripheral) Set {
	s := make(Set, len(ps))
	for _, p := range ps {
		s[p] = true
	}
	return s
}

// ParseSet parses a comma or space separated peripheral list.
func ParseSet(list string) (Set, error) {
	s := make(Set)
	for _, f := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' }) {
		p, err := ParsePeripheral(f)
		if err != nil {
			return nil, err
		}
		s[p] = true
	}
	return s, nil
}

// Has reports whether p is present.
func (s Set) Has(p Peripheral) bool {
	return s[p]
}

// Add returns s with ps added.
func (s Set) Add(ps ...Peripheral) Set {
	for _, p := range ps {
		s[p] = true
	}
	return s
}

// Intersect returns the peripherals present in both sets.
func (s Set) Intersect(o Set) Set {
	out := make(Set)
	for p := range s {
		if o[p] {
			out[p] = true
		}
	}
	return out
}

// List returns the members in report order.
func (s Set) List() []Peripheral {
	out := make([]Peripheral, 0, len(s))
	for p, ok := range s {
		if ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return orderIndex(out[i]) < orderIndex(out[j]) })
	return out
}

func (s Set) String() string {
	names := make([]string, 0, len(s))
	for _, p := range s.List() {
		names = append(names, string(p))
	}
	return strings.Join(names, ",")
}

// common to every SAM D21 variant
var corePeripherals = []Peripheral{
	DSU, AC, ADC, DAC, DMAC, EIC, EVSYS, GCLK, I2S, NVMCTRL, PAC, PM, PORT, RTC,
	SERCOM0, SERCOM1, SERCOM2, SERCOM3, SYSCTRL, TCC0, TCC1, TCC2, TC3, TC4, TC5,
	USB, WDT,
}

// peripherals no variant reports unless they are asked for by name
var optionalPeripherals = []Peripheral{SBMATRIX}

// IsOptional reports whether p is left out of every default capability set
// and reported only when requested explicitly.
func IsOptional(p Peripheral) bool {
	for _, o := range optionalPeripherals {
		if o == p {
			return true
		}
	}
	return false
}

// VariantCapabilities returns the peripheral set of a SAM D21 part such as
// "ATSAMD21G18A". The pin-count letter decides the optional instances:
// E (32 pins) has four SERCOMs, G (48 pins) six, J (64 pins) six plus TC6
// and TC7. SBMATRIX is never included by default.
func VariantCapabilities(variant string) (Set, error) {
	name := strings.TrimPrefix(strings.ToUpper(variant), "AT")
	if !strings.HasPrefix(name, "SAMD21") || len(name) < 7 {
		return nil, fmt.Errorf("samd21: unsupported variant %q", variant)
	}

	s := NewSet(corePeripherals...)
	switch name[6] {
	case 'E':
	case 'G':
		s.Add(SERCOM4, SERCOM5)
	case 'J':
		s.Add(SERCOM4, SERCOM5, TC6, TC7)
	default:
		return nil, fmt.Errorf("samd21: unsupported pin count in %q", variant)
	}
	return s, nil
}

// DefaultVariant is the part fitted to the Arduino Zero.
const DefaultVariant = "ATSAMD21G18A"
