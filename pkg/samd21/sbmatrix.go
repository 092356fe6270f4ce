package samd21

// SBMATRIX register offsets.
const (
	SBMATRIXPRAS0 = 0x80  // PRASn at 0x80 + 8*n
	SBMATRIXPRBS0 = 0x84  // PRBSn at 0x84 + 8*n
	SBMATRIXSFR0  = 0x110 // SFRn at 0x110 + 4*n
)

const (
	SBMATRIXNumSlaves = 16
	SBMATRIXNumSFR    = 16
)
