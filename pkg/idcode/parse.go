package idcode

import "fmt"

// ParseDPIDR parses a raw 32-bit DPIDR into its component fields
func ParseDPIDR(raw uint32) DPIDR {
	return DPIDR{
		Raw:          raw,
		Revision:     uint8((raw >> 28) & 0xF),
		PartNumber:   uint8((raw >> 20) & 0xFF),
		MinDP:        raw&(1<<16) != 0,
		Version:      uint8((raw >> 12) & 0xF),
		DesignerCode: uint16((raw >> 1) & 0x7FF),
		Valid:        raw&0x1 == 0x1,
	}
}

// ParseDeviceID parses a raw DSU DID value
func ParseDeviceID(raw uint32) DeviceID {
	return DeviceID{
		Raw:       raw,
		Processor: uint8((raw >> 28) & 0xF),
		Family:    uint8((raw >> 23) & 0x1F),
		Series:    uint8((raw >> 16) & 0x3F),
		Die:       uint8((raw >> 12) & 0xF),
		Revision:  uint8((raw >> 8) & 0xF),
		DevSel:    uint8(raw & 0xFF),
	}
}

// RevisionLetter returns the silicon revision as a letter ("A", "B", ...).
func (d DeviceID) RevisionLetter() string {
	return string(rune('A' + d.Revision))
}

// ProcessorName names the core encoded in the PROCESSOR field.
func (d DeviceID) ProcessorName() string {
	switch d.Processor {
	case 0:
		return "Cortex-M0"
	case 1:
		return "Cortex-M0+"
	case 2:
		return "Cortex-M3"
	case 3:
		return "Cortex-M4"
	}
	return fmt.Sprintf("processor(%d)", d.Processor)
}

func (d DPIDR) String() string {
	m, _ := LookupManufacturer(d.DesignerCode)
	return fmt.Sprintf("DPIDR 0x%08X: DPv%d part=0x%02X rev=%d designer=%s",
		d.Raw, d.Version, d.PartNumber, d.Revision, m.Name)
}
