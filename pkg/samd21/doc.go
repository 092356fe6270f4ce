// Package samd21 describes the register map of the Microchip SAM D21
// microcontroller family as needed to decode a configuration dump.
//
// # Overview
//
// For each peripheral the package defines register offsets relative to the
// block base, bitfields as regs.Field values, and decode tables as
// regs.Enum or regs.Flag lists. Banked registers (GCLK CLKCTRL, GENCTRL and
// GENDIV, EVSYS CHANNEL and USER, DMAC channel control) are described as
// regs.Bank values that drive the select, synchronize, read sequence.
//
// Presence of optional instances (SERCOM4/5, TC6/7) is expressed as a
// capability Set derived from the part number rather than fixed at build
// time:
//
//	caps, err := samd21.VariantCapabilities("ATSAMD21G18A")
//	if caps.Has(samd21.SERCOM5) { ... }
//
// # Pins
//
// ArduinoZeroPins lists the Arduino Zero board pins with their eight
// peripheral functions (A..H). Pin.Function resolves a PMUX selector,
// falling back to the generic MuxCategories name for unlisted entries.
//
// # Simulation
//
// ScenarioBuilder fills a regs.MemBus with register values and banked slots;
// ArduinoZeroBooted returns a ready-made board state.
package samd21
