package idcode

// DPIDR is a parsed ARM debug port identification register.
type DPIDR struct {
	Raw          uint32 // full DPIDR
	Revision     uint8  // [31:28]
	PartNumber   uint8  // [27:20]
	MinDP        bool   // [16] minimal debug port (no pushed ops, no transaction counter)
	Version      uint8  // [15:12] 1 = DPv1, 2 = DPv2
	DesignerCode uint16 // [11:1] JEP106
	Valid        bool   // bit 0 reads as one
}

// DeviceID is a parsed SAM D21 DSU DID register.
type DeviceID struct {
	Raw       uint32
	Processor uint8 // [31:28] 1 = Cortex-M0+
	Family    uint8 // [27:23] 0 = general purpose
	Series    uint8 // [21:16] 1 = SAM D21
	Die       uint8 // [15:12]
	Revision  uint8 // [11:8] 0 = A, 1 = B, ...
	DevSel    uint8 // [7:0] part within the series
}

// Manufacturer represents a JEP106 manufacturer entry
type Manufacturer struct {
	Code         uint16 // JEP106 code, continuation count in [10:7]
	Name         string // "Atmel"
	Abbreviation string // "ATM"
	Country      string // optional
}
