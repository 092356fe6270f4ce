package samd21

// DSU register offsets.
const (
	DSUStatusB = 0x02 // 8-bit
	DSUDID     = 0x18
)

// DSU STATUSB bits.
const (
	DSUStatusBProt = 1 << 0 // device is protected
	DSUStatusBDbgP = 1 << 1 // debugger present
)
