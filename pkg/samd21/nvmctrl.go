package samd21

import "github.com/OpenTraceLab/zeroregs/pkg/regs"

// NVMCTRL register offsets.
const (
	NVMCTRLCtrlA  = 0x00 // 16-bit
	NVMCTRLCtrlB  = 0x04
	NVMCTRLParam  = 0x08
	NVMCTRLStatus = 0x18 // 16-bit
	NVMCTRLLock   = 0x20 // 16-bit
)

// NVMCTRL fields.
var (
	NVMCTRLCtrlBRWS      = regs.Field{Pos: 1, Width: 4}
	NVMCTRLCtrlBManW     = regs.Bit(7)
	NVMCTRLCtrlBSleepPrm = regs.Field{Pos: 8, Width: 2}
	NVMCTRLCtrlBReadMode = regs.Field{Pos: 16, Width: 2}
	NVMCTRLCtrlBCacheDis = regs.Bit(18)

	NVMCTRLParamNVMP = regs.Field{Pos: 0, Width: 16}
	NVMCTRLParamPSZ  = regs.Field{Pos: 16, Width: 3}
)

// NVMCTRLSleepPrm names CTRLB.SLEEPPRM.
var NVMCTRLSleepPrm = regs.Enum{"WAKEONACCESS", "WAKEUPINSTANT", "", "DISABLED"}

// NVMCTRLReadModes names CTRLB.READMODE.
var NVMCTRLReadModes = regs.Enum{"NO_MISS_PENALTY", "LOW_POWER", "DETERMINISTIC"}

// NVM user row and factory calibration addresses.
const (
	UserRowAddr  uint32 = 0x00804000
	UserRowWord1 uint32 = 0x00804004
)

// SerialNumberAddrs holds the 128-bit unique serial number words.
var SerialNumberAddrs = [4]uint32{0x0080A00C, 0x0080A040, 0x0080A044, 0x0080A048}

// User row fuses (word 0 unless noted).
var (
	FuseBootProt    = regs.Field{Pos: 0, Width: 3}
	FuseEEPROMSize  = regs.Field{Pos: 4, Width: 3}
	FuseBOD33Level  = regs.Field{Pos: 8, Width: 6}
	FuseWDTEnable   = regs.Bit(25)
	FuseWDTAlwaysOn = regs.Bit(26)
	FuseWDTPer      = regs.Field{Pos: 27, Width: 4}
	FuseWDTWindow0  = regs.Bit(31)

	// word 1
	FuseWDTWindow1  = regs.Field{Pos: 0, Width: 3}
	FuseWDTEWOffset = regs.Field{Pos: 3, Width: 4}
	FuseWDTWEN      = regs.Bit(7)
	FuseRegionLocks = regs.Field{Pos: 16, Width: 16}
)

// FuseBootProtSizes names BOOTPROT as the protected bootloader size.
var FuseBootProtSizes = regs.Enum{"32k", "16k", "8k", "4k", "2k", "1k", "512", "0"}

// FuseEEPROMSizes names EEPROM as the emulated EEPROM size.
var FuseEEPROMSizes = regs.Enum{"16k", "8k", "4k", "2k", "1k", "512", "256", "0"}
